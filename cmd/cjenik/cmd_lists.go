package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mperko/cjenik/internal/api"
	"github.com/mperko/cjenik/internal/locale"
	"github.com/mperko/cjenik/internal/screen"
)

var (
	listsPageFlag int

	listShopFlag     string
	listDateFlag     string
	listCurrencyFlag string
)

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Show your shopping lists, paged",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		s := screen.NewListsScreen(a.client, a.session, a.tr)
		if err := s.Fetch(cmd.Context(), listsPageFlag); err != nil {
			return err
		}
		s.Render(cmd.OutOrStdout())
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Work with a single shopping list",
}

var listShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a list with its products",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		s := screen.NewDetailScreen(a.client, a.session, a.tr)
		if err := s.Load(cmd.Context(), id); err != nil {
			return err
		}
		s.Render(cmd.OutOrStdout())
		return nil
	},
}

var listAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a shopping list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		s := screen.NewListsScreen(a.client, a.session, a.tr)
		if err := s.Create(cmd.Context(), listInputFromFlags()); err != nil {
			return err
		}
		s.Render(cmd.OutOrStdout())
		return nil
	},
}

var listEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a shopping list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		s := screen.NewListsScreen(a.client, a.session, a.tr)
		if err := s.Edit(cmd.Context(), id, listInputFromFlags()); err != nil {
			return err
		}
		s.Render(cmd.OutOrStdout())
		return nil
	},
}

var listRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a shopping list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		s := screen.NewListsScreen(a.client, a.session, a.tr)
		if err := s.Delete(cmd.Context(), id); err != nil {
			return err
		}
		s.Render(cmd.OutOrStdout())
		return nil
	},
}

// listInputFromFlags assembles the editable list fields, defaulting the
// date to today and the currency to the active display currency.
func listInputFromFlags() api.ListInput {
	date := listDateFlag
	if date == "" {
		date = locale.DeHumanizeDate(time.Now())
	}
	currency := listCurrencyFlag
	if currency == "" {
		currency = a.session.Display().Currency
	}
	return api.ListInput{ShopName: listShopFlag, TakenAt: date, Currency: currency}
}

func init() {
	listsCmd.Flags().IntVar(&listsPageFlag, "page", 1, "Page to fetch")

	for _, c := range []*cobra.Command{listAddCmd, listEditCmd} {
		c.Flags().StringVar(&listShopFlag, "shop", "", "Shop name")
		c.Flags().StringVar(&listDateFlag, "date", "", "Date (YYYY-MM-DD, default today)")
		c.Flags().StringVar(&listCurrencyFlag, "currency", "", "Currency symbol (default from settings)")
	}

	listCmd.AddCommand(listShowCmd, listAddCmd, listEditCmd, listRmCmd)
}
