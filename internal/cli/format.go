package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/klwxsrx/hwstore-client/internal/storefront/api"
)

func formatPrice(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}

func writeProducts(out io.Writer, products []api.Product) {
	if len(products) == 0 {
		fmt.Fprintln(out, "No products found.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tBRAND\tNAME\tPRICE\tIN STOCK")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n", p.ID, p.Category, p.Brand, p.Name, formatPrice(p.Price), p.InStock)
	}
	_ = w.Flush()
}

func writeProduct(out io.Writer, p api.Product) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%s\n", p.ID)
	fmt.Fprintf(w, "Name:\t%s\n", p.Name)
	fmt.Fprintf(w, "Brand:\t%s\n", p.Brand)
	fmt.Fprintf(w, "Category:\t%s\n", p.Category)
	fmt.Fprintf(w, "Price:\t%s\n", formatPrice(p.Price))
	fmt.Fprintf(w, "In stock:\t%d\n", p.InStock)

	keys := make([]string, 0, len(p.Specs))
	for k := range p.Specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s:\t%s\n", k, p.Specs[k])
	}
	_ = w.Flush()
}

func writeBasket(out io.Writer, basket api.Basket) {
	if len(basket.Items) == 0 {
		fmt.Fprintln(out, "Basket is empty.")
		return
	}

	writeItems(out, basket.Items)
	fmt.Fprintf(out, "\ntotal: %s\n", formatPrice(basket.Total))
}

func writeOrders(out io.Writer, orders []api.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(out, "No orders yet.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tCREATED\tITEMS\tTOTAL")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", o.ID, o.Status, o.CreatedAt.Format("2006-01-02 15:04"), len(o.Items), formatPrice(o.Total))
	}
	_ = w.Flush()
}

func writeItems(out io.Writer, items []api.BasketItem) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tQTY\tPRICE")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", item.Product.ID, item.Product.Name, item.Quantity, formatPrice(item.Product.Price))
	}
	_ = w.Flush()
}
