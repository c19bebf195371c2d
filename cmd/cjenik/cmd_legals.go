package main

import (
	"github.com/spf13/cobra"

	"github.com/mperko/cjenik/internal/screen"
)

var legalsCmd = &cobra.Command{
	Use:   "legals",
	Short: "Show the legal pages in your language",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := screen.NewLegalScreen(a.client, a.session, a.tr)
		if err := s.Load(cmd.Context()); err != nil {
			return err
		}
		s.Render(cmd.OutOrStdout())
		return nil
	},
}
