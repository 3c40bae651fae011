// Package app wires the catalog client into the storefront CLI commands.
package app

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/eyobt/suq-storefront/internal/catalog"
	"github.com/eyobt/suq-storefront/internal/client"
	"github.com/eyobt/suq-storefront/internal/format"
	"github.com/eyobt/suq-storefront/internal/taxonomy"
)

// Run creates the instrumented API client and dispatches the CLI command.
// It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config, args []string) error {
	lg.Info("Initializing", zap.String("endpoint", cfg.APIEndpoint))
	ctx = zctx.Base(ctx, lg)

	// No client timeout: a hanging request blocks until the surrounding
	// context is canceled.
	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithTracerProvider(m.TracerProvider()),
			otelhttp.WithMeterProvider(m.MeterProvider()),
		),
	}

	api := client.New(cfg.APIEndpoint, client.Options{HTTPClient: httpClient})
	norm := catalog.NewNormalizer(cfg.APIEndpoint, lg)

	if len(args) == 0 {
		args = []string{"products"}
	}

	switch args[0] {
	case "products":
		return runProducts(ctx, api, norm, args[1:])
	case "product":
		return runProduct(ctx, api, args[1:])
	case "categories":
		return runCategories(ctx, api)
	default:
		return errors.Errorf("unknown command %q (expected products, product, or categories)", args[0])
	}
}

func runProducts(ctx context.Context, api *client.Client, norm *catalog.Normalizer, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	var (
		page        = fs.Int("page", 1, "page number")
		pageSize    = fs.Int("page-size", 8, "items per page")
		category    = fs.String("category", "", "category filter (SHOES, CLOTHING, ...)")
		subCategory = fs.String("sub-category", "", "sub-category filter")
		minPrice    = fs.String("min-price", "", "minimum price filter")
		maxPrice    = fs.String("max-price", "", "maximum price filter")
		search      = fs.String("search", "", "search term")
		sort        = fs.String("sort", "none", "sort option (newest, oldest, price-high, price-low)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := client.ProductFilter{
		Page:        *page,
		PageSize:    *pageSize,
		Category:    *category,
		SubCategory: *subCategory,
		Search:      *search,
	}
	var err error
	if filter.MinPrice, err = parsePrice(*minPrice); err != nil {
		return errors.Wrap(err, "min-price")
	}
	if filter.MaxPrice, err = parsePrice(*maxPrice); err != nil {
		return errors.Wrap(err, "max-price")
	}
	if opt, ok := taxonomy.SortOptionByValue(*sort); ok {
		switch opt.Field {
		case "created_at":
			filter.CreatedAt = opt.Order
		case "price":
			filter.Price = opt.Order
		}
	}

	result := api.FetchProducts(ctx, filter)
	products := norm.NormalizeItems(result.Items)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSUB-CATEGORY\tCOLORS\tPRICE")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, p.SubCategory, strings.Join(p.Colors, ","), p.Price)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("page %d/%d, %d products total\n", result.Page, result.TotalPages, result.Total)
	return nil
}

func runProduct(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("product", flag.ContinueOnError)
	category := fs.String("category", "", "category name used to render variant sizes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: product [flags] <id>")
	}
	id := fs.Arg(0)

	detail := api.FetchProductByID(ctx, id)
	if detail == nil {
		return errors.Errorf("product %q not found", id)
	}

	fmt.Printf("%s (%s)\n", detail.Name, detail.ID)
	fmt.Printf("status: %s\n", detail.Status)
	fmt.Printf("price: %s\n", format.Price(detail.Price))
	if detail.Brand != "" {
		fmt.Printf("brand: %s\n", detail.Brand)
	}
	if detail.Material != "" {
		fmt.Printf("material: %s\n", detail.Material)
	}
	if detail.Description != "" {
		fmt.Printf("\n%s\n", detail.Description)
	}

	if len(detail.Variants) > 0 {
		fmt.Println("\nvariants:")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  SIZE\tCOLOR\tSTOCK")
		for _, v := range detail.Variants {
			fmt.Fprintf(w, "  %s\t%s\t%d\n",
				format.SizeValue(v.Size, *category),
				format.ColorValue(v.Color),
				v.StockQuantity)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func runCategories(ctx context.Context, api *client.Client) error {
	ref := api.FetchReferenceData(ctx)

	for _, cat := range ref.Categories {
		fmt.Printf("%s (%s)\n", cat.DisplayName, format.CategoryImagePath(cat))
		for _, sub := range ref.SubCategories[cat.Name] {
			fmt.Printf("  %s (%s)\n", sub.Name, format.SubCategoryImagePath(sub, cat.Name))
		}
	}
	return nil
}

func parsePrice(s string) (decimal.NullDecimal, error) {
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}
