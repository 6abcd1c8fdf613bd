package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	cartQty   int
	cartColor string
	cartSize  string
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the local cart",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the cart contents and total",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		lines := a.cart.Lines()
		if len(lines) == 0 {
			fmt.Println("Your Cart is empty")
			return nil
		}
		for _, l := range lines {
			sel := ""
			if l.Color != "" {
				sel += " color=" + l.Color
			}
			if l.Size != "" {
				sel += " size=" + l.Size
			}
			fmt.Printf("%-4s %-24s x%-3d $%8.2f%s\n",
				l.Product.ID, l.Product.Title, l.Qty,
				l.Product.Price*float64(l.Qty), sel)
		}
		fmt.Printf("\nTotal: $%.2f  (est. tax $%.2f, $%.2f with tax)\n",
			a.cart.Total(), a.cart.EstimatedTax(), a.cart.TotalWithTax())
		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx = a.context(ctx)

		p, err := a.loader.Get(ctx, args[0])
		if err != nil {
			return err
		}
		a.cart.Add(ctx, *p, cartQty, cartColor, cartSize)
		fmt.Printf("Added %s. Cart holds %d items, total $%.2f\n",
			p.Title, a.cart.Count(), a.cart.Total())
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a line from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx = a.context(ctx)

		a.cart.Remove(ctx, args[0], cartColor, cartSize)
		fmt.Printf("Cart holds %d items, total $%.2f\n", a.cart.Count(), a.cart.Total())
		return nil
	},
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update <product-id>",
	Short: "Set the quantity on a line; zero removes it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx = a.context(ctx)

		a.cart.UpdateQty(ctx, args[0], cartQty, cartColor, cartSize)
		fmt.Printf("Cart holds %d items, total $%.2f\n", a.cart.Count(), a.cart.Total())
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx = a.context(ctx)

		a.cart.Clear(ctx)
		fmt.Println("Cart cleared")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{cartAddCmd, cartRemoveCmd, cartUpdateCmd} {
		c.Flags().StringVar(&cartColor, "color", "", "selected color")
		c.Flags().StringVar(&cartSize, "size", "", "selected size")
	}
	cartAddCmd.Flags().IntVar(&cartQty, "qty", 1, "quantity to add")
	cartUpdateCmd.Flags().IntVar(&cartQty, "qty", 1, "new quantity")

	cartCmd.AddCommand(cartShowCmd, cartAddCmd, cartRemoveCmd, cartUpdateCmd, cartClearCmd)
}
