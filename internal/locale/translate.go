package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed locales/*.json
var localeFS embed.FS

var languageFiles = map[string]string{
	"EN": "locales/en.json",
	"HR": "locales/hr.json",
	"DE": "locales/de.json",
}

// Translator resolves dotted key paths ("settings.theme.dark") against the
// translation table for a language. Tables are flattened once at load; a
// key missing from both the requested and the default language is a
// configuration error, not something to paper over at call sites.
type Translator struct {
	tables          map[string]map[string]string
	defaultLanguage string
}

// NewTranslator loads every embedded translation file and flattens it.
// defaultLanguage is the fallback when a lookup misses or the requested
// language is unknown.
func NewTranslator(defaultLanguage string) (*Translator, error) {
	if _, ok := languageFiles[defaultLanguage]; !ok {
		return nil, fmt.Errorf("unknown default language %q", defaultLanguage)
	}

	tables := make(map[string]map[string]string, len(languageFiles))
	for lang, path := range languageFiles {
		raw, err := localeFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", lang, err)
		}
		var tree map[string]any
		if err := json.Unmarshal(raw, &tree); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", lang, err)
		}
		flat := make(map[string]string)
		if err := flatten("", tree, flat); err != nil {
			return nil, fmt.Errorf("flatten locale %s: %w", lang, err)
		}
		tables[lang] = flat
	}

	return &Translator{tables: tables, defaultLanguage: defaultLanguage}, nil
}

// T looks up a dotted key in the given language, falling back to the
// default language. Missing keys are reported as errors.
func (tr *Translator) T(language, key string) (string, error) {
	if table, ok := tr.tables[language]; ok {
		if s, ok := table[key]; ok {
			return s, nil
		}
	}
	if s, ok := tr.tables[tr.defaultLanguage][key]; ok {
		return s, nil
	}
	return "", fmt.Errorf("translation key %q missing in %s and %s", key, language, tr.defaultLanguage)
}

// Must is T for literal keys known at compile time, where a miss means the
// locale files and the code disagree.
func (tr *Translator) Must(language, key string) string {
	s, err := tr.T(language, key)
	if err != nil {
		panic(err)
	}
	return s
}

// Keys returns every key in the default language table, sorted. Used by
// tests to verify the tables stay in sync.
func (tr *Translator) Keys() []string {
	table := tr.tables[tr.defaultLanguage]
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func flatten(prefix string, tree map[string]any, out map[string]string) error {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("key %q: unsupported value type %T", key, v)
		}
	}
	return nil
}
