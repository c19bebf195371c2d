package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mperko/cjenik/internal/screen"
)

var (
	productNameFlag    string
	productCompanyFlag string
	productPriceFlag   string
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Work with products on a list",
}

var productAddCmd = &cobra.Command{
	Use:   "add <list-id>",
	Short: "Add a priced product to a list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		listID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		s := screen.NewDetailScreen(a.client, a.session, a.tr)
		if err := s.Load(cmd.Context(), listID); err != nil {
			return err
		}
		if err := s.AddProduct(cmd.Context(), productNameFlag, productCompanyFlag, productPriceFlag); err != nil {
			return err
		}
		s.Render(cmd.OutOrStdout())
		return nil
	},
}

var productRmCmd = &cobra.Command{
	Use:   "rm <list-id> <product-id>",
	Short: "Delete a product from a list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}
		listID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		productID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return err
		}
		s := screen.NewDetailScreen(a.client, a.session, a.tr)
		if err := s.Load(cmd.Context(), listID); err != nil {
			return err
		}
		if err := s.DeleteProduct(cmd.Context(), productID); err != nil {
			return err
		}
		s.Render(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	productAddCmd.Flags().StringVar(&productNameFlag, "name", "", "Product name")
	productAddCmd.Flags().StringVar(&productCompanyFlag, "company", "", "Producer or brand")
	productAddCmd.Flags().StringVar(&productPriceFlag, "price", "", "Price in major units, e.g. 12.50")

	productCmd.AddCommand(productAddCmd, productRmCmd)
}
