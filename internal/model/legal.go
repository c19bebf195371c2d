package model

// LegalPage carries one legal document in all supported languages.
type LegalPage struct {
	ID   int64            `json:"id"`
	Slug string           `json:"slug"`
	HR   LegalTranslation `json:"hr"`
	EN   LegalTranslation `json:"en"`
	DE   LegalTranslation `json:"de"`
}

// LegalTranslation is one language's rendering of a legal page.
type LegalTranslation struct {
	Title   string       `json:"title"`
	Content LegalContent `json:"content"`
}

// LegalContent is the rich-text body record attached to a translation.
type LegalContent struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Body string `json:"body"`
}

// Translation returns the page rendering for a language code, falling
// back to English when the requested language has no title.
func (p LegalPage) Translation(language string) LegalTranslation {
	var tr LegalTranslation
	switch NormalizeLanguage(language) {
	case LanguageHR:
		tr = p.HR
	case LanguageDE:
		tr = p.DE
	default:
		tr = p.EN
	}
	if tr.Title == "" {
		return p.EN
	}
	return tr
}
