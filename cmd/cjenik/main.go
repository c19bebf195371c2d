package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mperko/cjenik/internal/api"
	"github.com/mperko/cjenik/internal/config"
	"github.com/mperko/cjenik/internal/keystore"
	"github.com/mperko/cjenik/internal/locale"
	"github.com/mperko/cjenik/internal/logging"
	"github.com/mperko/cjenik/internal/session"
)

// app is the wired-up client shared by every command.
type app struct {
	cfg     config.Config
	store   *keystore.Store
	client  *api.Client
	session *session.Manager
	tr      *locale.Translator
}

var a *app

// t translates a key in the current display language.
func t(key string) string {
	return a.tr.Must(a.session.Display().Language, key)
}

var rootCmd = &cobra.Command{
	Use:           "cjenik",
	Short:         "Track shopping lists and prices",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupApp(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if a != nil && a.store != nil {
			a.store.Close()
		}
	},
}

func setupApp(cmd *cobra.Command) error {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cmd.ErrOrStderr())

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0700); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	store, err := keystore.Open(cfg.DBPath, cfg.Passphrase)
	if err != nil {
		return fmt.Errorf("open keystore: %w", err)
	}

	tr, err := locale.NewTranslator(cfg.Fallback.Language)
	if err != nil {
		store.Close()
		return fmt.Errorf("load translations: %w", err)
	}

	client := api.NewClient(api.Config{BaseURL: cfg.APIBaseURL})
	sess := session.NewManager(client, store, cfg.Fallback)

	a = &app{cfg: cfg, store: store, client: client, session: sess, tr: tr}

	// Replay any persisted session before the command runs.
	return a.session.Restore(cmd.Context())
}

// requireAuth gates commands that need a logged-in session.
func requireAuth() error {
	if a.session.State() != session.StateAuthenticated {
		return fmt.Errorf("%s", t("auth.not_logged_in"))
	}
	return nil
}

func main() {
	rootCmd.AddCommand(
		loginCmd,
		signupCmd,
		logoutCmd,
		profileCmd,
		settingsCmd,
		listsCmd,
		listCmd,
		productCmd,
		legalsCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
