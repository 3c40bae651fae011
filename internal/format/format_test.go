package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/eyobt/suq-storefront/internal/catalog"
	"github.com/eyobt/suq-storefront/internal/taxonomy"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10", "10"},
		{"10.5", "10.50"},
		{"10.00", "10"},
		{"7.005", "7.01"},
		{"0", "0"},
		{"-3.1", "-3.10"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Price(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestPriceString(t *testing.T) {
	assert.Equal(t, "10", PriceString("10"))
	assert.Equal(t, "10.50", PriceString(" 10.5 "))
	assert.Equal(t, "0.00", PriceString("not a price"))
	assert.Equal(t, "0.00", PriceString(""))
}

func TestSize(t *testing.T) {
	tests := []struct {
		name     string
		size     *catalog.ProductSize
		category string
		want     string
	}{
		{
			name:     "nil size short-circuits",
			size:     nil,
			category: "SHOES",
			want:     "N/A",
		},
		{
			name:     "shoes size and metric",
			size:     &catalog.ProductSize{Size: 9, Metric: "US"},
			category: "SHOES",
			want:     "9 US",
		},
		{
			name:     "shoes size only",
			size:     &catalog.ProductSize{Size: 42.5},
			category: "SHOES",
			want:     "42.5",
		},
		{
			name:     "shoes empty",
			size:     &catalog.ProductSize{},
			category: "SHOES",
			want:     "N/A",
		},
		{
			name:     "shoes lower-cased category",
			size:     &catalog.ProductSize{Size: 9, Metric: "US"},
			category: "shoes",
			want:     "9 US",
		},
		{
			name:     "clothing single measurement",
			size:     &catalog.ProductSize{Bust: 90},
			category: "CLOTHING",
			want:     "Bust: 90cm",
		},
		{
			name: "clothing joins in fixed order",
			size: &catalog.ProductSize{
				Fit:        "Slim",
				Bust:       90,
				Waist:      70,
				Hips:       95,
				Length:     120,
				Sleeve:     60,
				CustomSize: "petite",
			},
			category: "CLOTHING",
			want:     "Fit: Slim, Bust: 90cm, Waist: 70cm, Hips: 95cm, Length: 120cm, Sleeve: 60cm, Custom: petite",
		},
		{
			name:     "clothing falls back to letter size",
			size:     &catalog.ProductSize{SizeLetter: "XL"},
			category: "CLOTHING",
			want:     "XL",
		},
		{
			name:     "clothing empty",
			size:     &catalog.ProductSize{},
			category: "CLOTHING",
			want:     "N/A",
		},
		{
			name:     "accessories custom size",
			size:     &catalog.ProductSize{CustomSize: "One size"},
			category: "ACCESSORIES",
			want:     "One size",
		},
		{
			name:     "accessories empty",
			size:     &catalog.ProductSize{},
			category: "ACCESSORIES",
			want:     "N/A",
		},
		{
			name:     "unknown category",
			size:     &catalog.ProductSize{Size: 9, Metric: "US"},
			category: "FURNITURE",
			want:     "N/A",
		},
		{
			name:     "missing category",
			size:     &catalog.ProductSize{Size: 9},
			category: "",
			want:     "N/A",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Size(tt.size, tt.category))
		})
	}
}

func TestSizeValue(t *testing.T) {
	assert.Equal(t, "40 EU", SizeValue(catalog.LegacySize("40 EU"), "SHOES"))
	assert.Equal(t, "N/A", SizeValue(catalog.LegacySize("  "), "SHOES"))
	assert.Equal(t, "9 US",
		SizeValue(catalog.StructuredSize(catalog.ProductSize{Size: 9, Metric: "US"}), "SHOES"))
}

func TestColorValue(t *testing.T) {
	assert.Equal(t, "red", ColorValue(catalog.LegacyColor("red")))
	assert.Equal(t, "Black", ColorValue(catalog.StructuredColor(catalog.ProductColor{Color: "#000", Name: "Black"})))
	assert.Equal(t, "#000", ColorValue(catalog.StructuredColor(catalog.ProductColor{Color: "#000"})))
}

func TestImagePath(t *testing.T) {
	// "Others" wins regardless of category.
	assert.Equal(t, "/categories/others.png", ImagePath("Others", "x.png", "SHOES"))
	assert.Equal(t, "/categories/others.png", ImagePath("Others", "x.png", ""))

	assert.Equal(t, "/categories/shoes-cat.png", ImagePath("SHOES", "shoes-cat.png", ""))
	assert.Equal(t, "/categories/shoes/heel.png", ImagePath("Heels", "heel.png", "SHOES"))
}

func TestImagePathHelpers(t *testing.T) {
	cat, ok := taxonomy.CategoryByName(taxonomy.CategoryShoes)
	assert.True(t, ok)
	assert.Equal(t, "/categories/shoes-cat.png", CategoryImagePath(cat))

	sub := taxonomy.SubCategories[taxonomy.CategoryShoes][0]
	assert.Equal(t, "/categories/shoes/heel.png", SubCategoryImagePath(sub, taxonomy.CategoryShoes))
}
