package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"storefront/internal/catalog"
	"storefront/internal/models"
	"storefront/internal/util"
)

var (
	listQuery      string
	listGender     string
	listCategories []string
	listSizes      []string
	listColors     []string
	listMinPrice   float64
	listMaxPrice   float64
	listSort       string
	listPage       int
	listPerPage    int
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse the catalog",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products matching the given filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx = a.context(ctx)

		all, err := a.loader.Products(ctx)
		if err != nil {
			return err
		}

		f := catalog.Filter{
			Query:      listQuery,
			Gender:     listGender,
			Categories: listCategories,
			Sizes:      listSizes,
			Colors:     listColors,
			Sort:       catalog.SortMode(listSort),
		}
		if cmd.Flags().Changed("min-price") {
			f.MinPrice = &listMinPrice
		}
		if cmd.Flags().Changed("max-price") {
			f.MaxPrice = &listMaxPrice
		}

		filtered := catalog.Apply(all, f)
		if len(filtered) == 0 {
			fmt.Println("No products found.")
			return nil
		}

		pageItems, totalPages := util.Page(filtered, listPage, listPerPage)
		for _, p := range pageItems {
			printProductRow(p)
		}
		fmt.Printf("\n%d of %d products (page %d/%d)\n",
			len(pageItems), len(filtered), listPage, totalPages)

		facets := catalog.Facets(all)
		fmt.Printf("collections: %s | price %.2f-%.2f\n",
			strings.Join(facets.Categories, ", "), facets.MinPrice, facets.MaxPrice)
		return nil
	},
}

var productsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one product with its related items",
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

		printProductRow(*p)
		if p.Description != "" {
			fmt.Println(p.Description)
		}
		if len(p.Colors) > 0 {
			fmt.Printf("colors: %s\n", strings.Join(p.Colors, ", "))
		}
		if len(p.Sizes) > 0 {
			fmt.Printf("sizes:  %s\n", strings.Join(p.Sizes, ", "))
		}
		if p.Stock != nil {
			if *p.Stock == 0 {
				fmt.Println("Out of stock")
			} else {
				fmt.Printf("in stock: %d\n", *p.Stock)
			}
		}

		all, err := a.loader.Products(ctx)
		if err != nil {
			return err
		}
		related := catalog.Related(all, *p, 4)
		if len(related) > 0 {
			fmt.Println("\nRelated products:")
			for _, r := range related {
				printProductRow(r)
			}
		}
		return nil
	},
}

func printProductRow(p models.Product) {
	badges := ""
	if catalog.OnSale(p) {
		badges += fmt.Sprintf(" [SALE -%d%%]", catalog.DiscountPercent(p))
	}
	if catalog.IsNew(p, time.Now()) {
		badges += " [NEW]"
	}
	fmt.Printf("%-4s %-24s $%8.2f  %s%s\n", p.ID, p.Title, p.Price, p.Category, badges)
}

func init() {
	fl := productsListCmd.Flags()
	fl.StringVarP(&listQuery, "query", "q", "", "case-insensitive title search")
	fl.StringVarP(&listGender, "gender", "g", "", "audience filter (men, women, ...)")
	fl.StringArrayVarP(&listCategories, "category", "c", nil, "category filter, repeatable")
	fl.StringArrayVar(&listSizes, "size", nil, "size filter, repeatable")
	fl.StringArrayVar(&listColors, "color", nil, "color filter, repeatable")
	fl.Float64Var(&listMinPrice, "min-price", 0, "inclusive lower price bound")
	fl.Float64Var(&listMaxPrice, "max-price", 0, "inclusive upper price bound")
	fl.StringVar(&listSort, "sort", "relevance", "relevance, asc or desc")
	fl.IntVar(&listPage, "page", 1, "page number")
	fl.IntVar(&listPerPage, "per-page", util.DefaultPageSize, "products per page")

	productsCmd.AddCommand(productsListCmd, productsShowCmd)
}
