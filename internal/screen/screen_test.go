package screen

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/mperko/cjenik/internal/api"
	"github.com/mperko/cjenik/internal/keystore"
	"github.com/mperko/cjenik/internal/locale"
	"github.com/mperko/cjenik/internal/model"
	"github.com/mperko/cjenik/internal/session"
)

// screenEnv wires a stub backend, a throwaway keystore, and a session
// manager left in its fallback display state.
type screenEnv struct {
	client  *api.Client
	session *session.Manager
	tr      *locale.Translator
}

func newScreenEnv(t *testing.T, fallback model.DisplaySettings, handler http.Handler) *screenEnv {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := keystore.Open(filepath.Join(t.TempDir(), "ks.db"), "test")
	if err != nil {
		t.Fatalf("open keystore: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	tr, err := locale.NewTranslator("EN")
	if err != nil {
		t.Fatalf("load translator: %v", err)
	}

	client := api.NewClient(api.Config{BaseURL: srv.URL})
	client.SetToken("test-token")

	return &screenEnv{
		client:  client,
		session: session.NewManager(client, store, fallback),
		tr:      tr,
	}
}

var enFallback = model.DisplaySettings{Language: "EN", Currency: "$", Theme: "light"}
