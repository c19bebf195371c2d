package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTranslator(t *testing.T) *Translator {
	t.Helper()
	tr, err := NewTranslator("EN")
	require.NoError(t, err)
	return tr
}

func TestTranslatorLookup(t *testing.T) {
	tr := newTestTranslator(t)

	got, err := tr.T("EN", "settings.theme.dark")
	require.NoError(t, err)
	assert.Equal(t, "Dark", got)

	got, err = tr.T("HR", "settings.theme.dark")
	require.NoError(t, err)
	assert.Equal(t, "Tamna", got)

	got, err = tr.T("DE", "buttons.cancel")
	require.NoError(t, err)
	assert.Equal(t, "Abbrechen", got)
}

func TestTranslatorFallsBackToDefault(t *testing.T) {
	tr := newTestTranslator(t)

	// Unknown language falls through to the default table.
	got, err := tr.T("FR", "buttons.open")
	require.NoError(t, err)
	assert.Equal(t, "Open", got)
}

func TestTranslatorMissingKey(t *testing.T) {
	tr := newTestTranslator(t)

	_, err := tr.T("EN", "settings.theme.nope")
	assert.Error(t, err)

	_, err = tr.T("HR", "no.such.key")
	assert.Error(t, err)
}

func TestTranslatorUnknownDefaultLanguage(t *testing.T) {
	_, err := NewTranslator("FR")
	assert.Error(t, err)
}

// Every key present in the default language must resolve in every other
// language, directly or through fallback; and no language may carry keys
// the default language lacks.
func TestTranslationTablesInSync(t *testing.T) {
	tr := newTestTranslator(t)

	for _, lang := range []string{"EN", "HR", "DE"} {
		for _, key := range tr.Keys() {
			if _, ok := tr.tables[lang][key]; !ok {
				t.Errorf("language %s missing key %q", lang, key)
			}
		}
		for key := range tr.tables[lang] {
			if _, ok := tr.tables["EN"][key]; !ok {
				t.Errorf("language %s has stray key %q", lang, key)
			}
		}
	}
}

func TestMustPanicsOnMissingKey(t *testing.T) {
	tr := newTestTranslator(t)
	assert.Panics(t, func() { tr.Must("EN", "definitely.not.there") })
	assert.NotPanics(t, func() { tr.Must("EN", "your_lists") })
}
