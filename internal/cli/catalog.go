package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/klwxsrx/hwstore-client/internal/storefront/api"
)

func newProductsCmd(deps Dependencies) *cobra.Command {
	var category string
	var page int

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List catalog products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter api.Category
			if category != "" {
				var err error
				filter, err = api.ParseCategory(category)
				if err != nil {
					return fmt.Errorf("%w, expected one of: %s", err, categoryNames())
				}
			}

			result, err := deps.Catalog.MustLoad().List(cmd.Context(), filter, page)
			if err != nil {
				return describeError(err)
			}

			writeProducts(cmd.OutOrStdout(), result.Items)
			pages := (result.Total + result.PageSize - 1) / max(result.PageSize, 1)
			fmt.Fprintf(cmd.OutOrStdout(), "\npage %d of %d, %d products\n", result.Page, pages, result.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category: "+categoryNames())
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func newProductCmd(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := deps.Catalog.MustLoad().Get(cmd.Context(), args[0])
			if err != nil {
				return describeError(err)
			}

			writeProduct(cmd.OutOrStdout(), *product)
			return nil
		},
	}
}

func newMotherboardsCmd(deps Dependencies) *cobra.Command {
	var cpuID string

	cmd := &cobra.Command{
		Use:   "motherboards",
		Short: "List motherboards compatible with a CPU",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cpuID == "" {
				return fmt.Errorf("cpu must be not empty")
			}

			result, err := deps.Configurator.MustLoad().CompatibleMotherboards(cmd.Context(), cpuID)
			if err != nil {
				return describeError(err)
			}

			writeProducts(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVar(&cpuID, "cpu", "", "CPU product id")
	return cmd
}

func newPowerSuppliesCmd(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "power-supplies <part-id>...",
		Short: "List power supplies that can feed the given parts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := deps.Configurator.MustLoad().SuitablePowerSupplies(cmd.Context(), args)
			if err != nil {
				return describeError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "required: %dW\n\n", result.RequiredWattage)
			writeProducts(cmd.OutOrStdout(), result.Items)
			return nil
		},
	}
}

func categoryNames() string {
	names := make([]string, 0, len(api.Categories))
	for _, c := range api.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
