package model

import "strings"

// Language codes accepted by the backend. Profiles arrive with the
// language lowercased; Normalize uppercases before use.
const (
	LanguageEN = "EN"
	LanguageHR = "HR"
	LanguageDE = "DE"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Setting types accepted by POST /settings.
const (
	SettingTheme    = "theme"
	SettingLanguage = "language"
	SettingCurrency = "currency"
)

// Profile is the server-held user record. Only the display preferences are
// interpreted client-side; remaining fields ride along untouched.
type Profile struct {
	ID        int64  `json:"id,omitempty"`
	Email     string `json:"email,omitempty"`
	Language  string `json:"language"`
	Currency  string `json:"currency"`
	Theme     string `json:"theme"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// DisplaySettings is the trio of preferences every formatting call needs.
// It is owned by the session manager and handed to callers by value;
// nothing reads it through package globals.
type DisplaySettings struct {
	Language string
	Currency string
	Theme    string
}

// Apply copies a profile's preferences over d, normalizing the language
// and falling back to the existing value for any field the server left
// empty.
func (d *DisplaySettings) Apply(p Profile) {
	if lang := NormalizeLanguage(p.Language); lang != "" {
		d.Language = lang
	}
	if p.Currency != "" {
		d.Currency = p.Currency
	}
	if p.Theme != "" {
		d.Theme = p.Theme
	}
}

// NormalizeLanguage uppercases a server-supplied language code. Unknown
// codes pass through uppercased; the translator handles its own fallback.
func NormalizeLanguage(code string) string {
	return strings.ToUpper(code)
}
