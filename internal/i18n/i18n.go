// Package i18n looks up display strings by symbolic key.
package i18n

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-logr/logr"
	"golang.org/x/text/language"

	"github.com/samdwyer/battleships/internal/gamedata"
)

// DefaultLanguage is used when no other table has the requested key.
const DefaultLanguage = "en"

// ErrUnsupportedLanguage is returned by SetLanguage for unknown languages.
var ErrUnsupportedLanguage = errors.New("language not supported")

// Localizer resolves dotted keys such as "battle.hit" against per-language tables.
// A missing key resolves to the key itself, never to an empty string.
type Localizer struct {
	tables  gamedata.Translations
	current string
	tags    []language.Tag
	codes   []string
	matcher language.Matcher
	log     logr.Logger
}

// New creates a localizer over the given tables, starting in DefaultLanguage.
func New(tables gamedata.Translations, log logr.Logger) *Localizer {
	codes := make([]string, 0, len(tables))
	for code := range tables {
		codes = append(codes, code)
	}
	// The default goes first so the matcher falls back to it.
	sort.Slice(codes, func(i, j int) bool {
		if codes[i] == DefaultLanguage || codes[j] == DefaultLanguage {
			return codes[i] == DefaultLanguage
		}
		return codes[i] < codes[j]
	})

	tags := make([]language.Tag, len(codes))
	for i, code := range codes {
		tags[i] = language.Make(code)
	}

	return &Localizer{
		tables:  tables,
		current: DefaultLanguage,
		tags:    tags,
		codes:   codes,
		matcher: language.NewMatcher(tags),
		log:     log,
	}
}

// Language returns the active language code.
func (l *Localizer) Language() string {
	return l.current
}

// SetLanguage switches to the table best matching a BCP-47 tag such as "es"
// or "es-MX". Unsupported languages are logged and leave the current
// language unchanged.
func (l *Localizer) SetLanguage(tag string) error {
	parsed, err := language.Parse(tag)
	if err != nil {
		l.log.Error(err, "Unparseable language tag, keeping current language", "tag", tag, "current", l.current)
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, tag)
	}

	_, index, confidence := l.matcher.Match(parsed)
	if confidence == language.No {
		err := fmt.Errorf("%w: %q", ErrUnsupportedLanguage, tag)
		l.log.Error(err, "Language not supported", "tag", tag, "current", l.current)
		return err
	}

	l.current = l.codes[index]
	l.log.V(1).Info("Language selected", "tag", tag, "language", l.current)
	return nil
}

// T returns the string for key, falling back to DefaultLanguage and then to
// the key itself.
func (l *Localizer) T(key string) string {
	if s, ok := lookup(l.tables[l.current], key); ok {
		return s
	}
	if l.current != DefaultLanguage {
		if s, ok := lookup(l.tables[DefaultLanguage], key); ok {
			return s
		}
	}
	return key
}

// Tf formats the string for key with args.
func (l *Localizer) Tf(key string, args ...any) string {
	return fmt.Sprintf(l.T(key), args...)
}

// lookup walks a nested table along a dotted key.
func lookup(table map[string]any, key string) (string, bool) {
	if table == nil {
		return "", false
	}

	var node any = table
	for _, part := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		node, ok = m[part]
		if !ok {
			return "", false
		}
	}

	s, ok := node.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
