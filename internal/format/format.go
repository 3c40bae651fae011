// Package format renders prices, sizes, and static asset paths for display.
package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/eyobt/suq-storefront/internal/catalog"
	"github.com/eyobt/suq-storefront/internal/taxonomy"
)

// notAvailable is rendered when a size cannot be interpreted.
const notAvailable = "N/A"

// Price renders a price for display: integral values render bare ("10"),
// anything else with exactly two decimals ("10.50"). Rounding is decimal
// half-away-from-zero, so 7.005 renders as "7.01".
func Price(d decimal.Decimal) string {
	if d.IsInteger() {
		// Truncate drops a leftover scale so "10.00" renders as "10".
		return d.Truncate(0).String()
	}
	return d.StringFixed(2)
}

// PriceString parses a string-or-numeric price representation and renders it
// like Price. Unparsable input renders as "0.00", matching the normalizer's
// default.
func PriceString(s string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return "0.00"
	}
	return Price(d)
}

// Size renders a structured product size for the given category name.
// Dispatch is by upper-cased category: shoes render "<size> <metric>",
// clothing joins the present measurements, accessories use the free-form
// custom size. A nil size or unrecognized category renders "N/A".
func Size(size *catalog.ProductSize, categoryName string) string {
	if size == nil {
		return notAvailable
	}

	switch strings.ToUpper(categoryName) {
	case taxonomy.CategoryShoes:
		s := strings.TrimSpace(number(size.Size) + " " + size.Metric)
		if s == "" {
			return notAvailable
		}
		return s

	case taxonomy.CategoryClothing:
		var m []string
		if size.Fit != "" {
			m = append(m, "Fit: "+size.Fit)
		}
		if size.Bust != 0 {
			m = append(m, "Bust: "+number(size.Bust)+"cm")
		}
		if size.Waist != 0 {
			m = append(m, "Waist: "+number(size.Waist)+"cm")
		}
		if size.Hips != 0 {
			m = append(m, "Hips: "+number(size.Hips)+"cm")
		}
		if size.Length != 0 {
			m = append(m, "Length: "+number(size.Length)+"cm")
		}
		if size.Sleeve != 0 {
			m = append(m, "Sleeve: "+number(size.Sleeve)+"cm")
		}
		if size.CustomSize != "" {
			m = append(m, "Custom: "+size.CustomSize)
		}
		if len(m) > 0 {
			return strings.Join(m, ", ")
		}
		if size.SizeLetter != "" {
			return size.SizeLetter
		}
		return notAvailable

	case taxonomy.CategoryAccessories:
		if size.CustomSize != "" {
			return size.CustomSize
		}
		return notAvailable

	default:
		return notAvailable
	}
}

// SizeValue renders either arm of the size union: legacy strings render
// as-is (blank renders "N/A"), structured records go through Size.
func SizeValue(v catalog.SizeValue, categoryName string) string {
	if rec, ok := v.Record(); ok {
		return Size(rec, categoryName)
	}
	legacy, _ := v.Legacy()
	if strings.TrimSpace(legacy) == "" {
		return notAvailable
	}
	return legacy
}

// ColorValue renders either arm of the color union, preferring the
// human-readable name of a structured record.
func ColorValue(v catalog.ColorValue) string {
	if rec, ok := v.Record(); ok {
		if rec.Name != "" {
			return rec.Name
		}
		return rec.Color
	}
	legacy, _ := v.Legacy()
	return legacy
}

// ImagePath resolves the static asset path for a category or sub-category
// tile. A literal "Others" entry always maps to the shared others image
// regardless of category; an empty category resolves a top-level path; a
// sub-category path is namespaced by its lower-cased parent category.
func ImagePath(name, image, category string) string {
	if name == "Others" {
		return "/categories/others.png"
	}
	if category == "" {
		return "/categories/" + image
	}
	return "/categories/" + strings.ToLower(category) + "/" + image
}

// CategoryImagePath resolves the asset path for a top-level category tile.
func CategoryImagePath(c taxonomy.Category) string {
	return ImagePath(c.Name, c.Image, "")
}

// SubCategoryImagePath resolves the asset path for a sub-category tile under
// the given category.
func SubCategoryImagePath(sc taxonomy.SubCategory, category string) string {
	return ImagePath(sc.Name, sc.Image, category)
}

// number renders a measurement value without trailing zeros; zero means
// absent and renders empty.
func number(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
