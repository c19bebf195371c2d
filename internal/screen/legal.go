package screen

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/mperko/cjenik/internal/api"
	"github.com/mperko/cjenik/internal/locale"
	"github.com/mperko/cjenik/internal/model"
	"github.com/mperko/cjenik/internal/session"
)

// LegalScreen shows the legal documents in the current display language.
type LegalScreen struct {
	client  *api.Client
	session *session.Manager
	tr      *locale.Translator

	mu    sync.Mutex
	pages []model.LegalPage
}

// NewLegalScreen creates the legal pages screen.
func NewLegalScreen(client *api.Client, sess *session.Manager, tr *locale.Translator) *LegalScreen {
	return &LegalScreen{client: client, session: sess, tr: tr}
}

// Load fetches the legal pages; no authentication involved.
func (s *LegalScreen) Load(ctx context.Context) error {
	pages, err := s.client.LegalPages(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.pages = pages
	s.mu.Unlock()
	return nil
}

// Pages returns the loaded pages.
func (s *LegalScreen) Pages() []model.LegalPage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.LegalPage(nil), s.pages...)
}

// Render writes every page's translation for the current language.
func (s *LegalScreen) Render(w io.Writer) {
	lang := s.session.Display().Language

	s.mu.Lock()
	pages := append([]model.LegalPage(nil), s.pages...)
	s.mu.Unlock()

	fmt.Fprintf(w, "%s\n", s.tr.Must(lang, "legals.title"))
	for _, page := range pages {
		tr := page.Translation(lang)
		fmt.Fprintf(w, "\n## %s\n%s\n", tr.Title, tr.Content.Body)
	}
}
