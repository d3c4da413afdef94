package board

// AttackResult is the outcome of firing at a cell.
type AttackResult int

const (
	Miss AttackResult = iota
	Hit
	// AlreadyAttacked means the cell was resolved earlier; the turn is not consumed.
	AlreadyAttacked
)

// String returns a human-readable result name.
func (r AttackResult) String() string {
	switch r {
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	case AlreadyAttacked:
		return "already_attacked"
	default:
		return "unknown"
	}
}

// Shot describes a resolved attack.
type Shot struct {
	Target Coord
	Result AttackResult
	Ship   ShipDef // Ship that was hit; zero for misses
	Sunk   bool    // True if this hit sank Ship
}
