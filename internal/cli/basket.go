package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBasketCmd(deps Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "basket",
		Short: "Show the basket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			basket, err := deps.Basket.MustLoad().Get(cmd.Context())
			if err != nil {
				return describeError(err)
			}

			writeBasket(cmd.OutOrStdout(), *basket)
			return nil
		},
	}

	var quantity int
	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the basket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			basket, err := deps.Basket.MustLoad().AddItem(cmd.Context(), args[0], quantity)
			if err != nil {
				return describeError(err)
			}

			writeBasket(cmd.OutOrStdout(), *basket)
			return nil
		},
	}
	add.Flags().IntVar(&quantity, "qty", 1, "quantity")

	remove := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the basket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			basket, err := deps.Basket.MustLoad().RemoveItem(cmd.Context(), args[0])
			if err != nil {
				return describeError(err)
			}

			writeBasket(cmd.OutOrStdout(), *basket)
			return nil
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}

func newOrdersCmd(deps Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List your orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orders, err := deps.Orders.MustLoad().List(cmd.Context())
			if err != nil {
				return describeError(err)
			}

			writeOrders(cmd.OutOrStdout(), orders)
			return nil
		},
	}

	place := &cobra.Command{
		Use:   "place",
		Short: "Place an order for the basket contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			order, err := deps.Orders.MustLoad().Place(cmd.Context())
			if err != nil {
				return describeError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Order %s placed, total %s\n", order.ID, formatPrice(order.Total))
			return nil
		},
	}

	cmd.AddCommand(place)
	return cmd
}
