package gamedata

import "errors"

// Translations maps a language code to its nested string table.
type Translations map[string]map[string]any

// LoadTranslations loads the string tables from the embedded translations.json file.
func LoadTranslations() (Translations, error) {
	t, err := Load[Translations]("translations.json")
	if err != nil {
		return nil, err
	}
	if len(t) == 0 {
		return nil, errors.New("no languages loaded from translations.json")
	}
	return t, nil
}
