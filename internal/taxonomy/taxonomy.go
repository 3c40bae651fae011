// Package taxonomy holds the static category reference tables consumed by the
// normalizer, the formatters, and the CLI. The tables predate the categories
// API and stay authoritative for category images and filter/sort options;
// fetching them dynamically is an explicit non-goal.
package taxonomy

import "github.com/shopspring/decimal"

// Category is a top-level product category.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Image       string `json:"image"`
}

// SubCategory is a second-level grouping inside a category.
type SubCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Image       string `json:"image"`
}

// PriceRange is a predefined price filter bucket. Min and Max are open-ended
// when invalid.
type PriceRange struct {
	ID   string
	Name string
	Min  decimal.NullDecimal
	Max  decimal.NullDecimal
}

// SortOption maps a UI sort choice to the API's field/order query parameters.
// Field is empty for the "none" option.
type SortOption struct {
	Value string
	Label string
	Field string
	Order string
}

// Canonical category names as the API spells them.
const (
	CategoryShoes       = "SHOES"
	CategoryClothing    = "CLOTHING"
	CategoryAccessories = "ACCESSORIES"
	CategoryCosmetics   = "COSMETICS"
)

// Categories is the fixed top-level category table.
var Categories = []Category{
	{ID: "shoes", Name: CategoryShoes, DisplayName: "Shoes", Image: "shoes-cat.png"},
	{ID: "clothing", Name: CategoryClothing, DisplayName: "Clothing", Image: "clothings-cat.png"},
	{ID: "accessories", Name: CategoryAccessories, DisplayName: "Accessories", Image: "accessories-cat.png"},
	{ID: "cosmetics", Name: CategoryCosmetics, DisplayName: "Cosmetics", Image: "cosmetics-cat.png"},
}

// SubCategories maps a canonical category name to its fixed sub-category table.
var SubCategories = map[string][]SubCategory{
	CategoryShoes: {
		{ID: "heel", Name: "Heels", DisplayName: "Heels", Image: "heel.png"},
		{ID: "sneaker", Name: "Sneakers", DisplayName: "Sneakers", Image: "sneaker.png"},
		{ID: "slipper", Name: "Slippers", DisplayName: "Slippers", Image: "slipper.png"},
		{ID: "sandal", Name: "Sandals", DisplayName: "Sandals", Image: "sandal.png"},
		{ID: "boots", Name: "Boots", DisplayName: "Boots", Image: "boots.png"},
		{ID: "flat", Name: "Flats", DisplayName: "Flats", Image: "flat.png"},
	},
	CategoryClothing: {
		{ID: "dresses", Name: "Dresses", DisplayName: "Dresses", Image: "women-dresses.webp"},
		{ID: "tops", Name: "Tops", DisplayName: "Tops", Image: "women-shirt.webp"},
		{ID: "bottoms", Name: "Bottoms", DisplayName: "Bottoms", Image: "women-pants.webp"},
		{ID: "sweatshirts", Name: "Sweatshirts & Hoodies", DisplayName: "Sweatshirts & Hoodies", Image: "women-jacket.webp"},
		{ID: "outerwear", Name: "Outerwear", DisplayName: "Outerwear", Image: "women-coat.webp"},
		{ID: "sports", Name: "Sports", DisplayName: "Sports", Image: "women-sports.webp"},
		{ID: "swimwear", Name: "Swimwear", DisplayName: "Swimwear", Image: "swimwear.webp"},
		{ID: "sleepwear", Name: "Sleepwear", DisplayName: "Sleepwear", Image: "women-pjs.webp"},
		{ID: "undergarments", Name: "Undergarments", DisplayName: "Undergarments", Image: "women-shorts.webp"},
		{ID: "others", Name: "Others", DisplayName: "Others", Image: "others.webp"},
	},
	CategoryAccessories: {
		{ID: "jewelry", Name: "Jewelry", DisplayName: "Jewelry", Image: "jewelry.png"},
		{ID: "bags", Name: "Bags", DisplayName: "Bags", Image: "bag.png"},
		{ID: "hats", Name: "Hats", DisplayName: "Hats", Image: "hats.png"},
		{ID: "belts", Name: "Belts", DisplayName: "Belts", Image: "belts.png"},
		{ID: "scarves", Name: "Scarves", DisplayName: "Scarves", Image: "scarves.png"},
		{ID: "sunglasses", Name: "Sunglasses", DisplayName: "Sunglasses", Image: "sunglasses.png"},
		{ID: "watches", Name: "Watches", DisplayName: "Watches", Image: "watches.png"},
		{ID: "hair", Name: "Hair Accessories", DisplayName: "Hair Accessories", Image: "hair.png"},
		{ID: "others", Name: "Others", DisplayName: "Others", Image: "others.png"},
	},
	CategoryCosmetics: {
		{ID: "face", Name: "Face", DisplayName: "Face", Image: "face.png"},
		{ID: "eyes", Name: "Eyes", DisplayName: "Eyes", Image: "eyes.png"},
		{ID: "lips", Name: "Lips", DisplayName: "Lips", Image: "lips.png"},
		{ID: "nails", Name: "Nails", DisplayName: "Nails", Image: "nails.png"},
		{ID: "skincare", Name: "Skincare", DisplayName: "Skincare", Image: "skincare.png"},
		{ID: "haircare", Name: "Haircare", DisplayName: "Haircare", Image: "haircare.png"},
		{ID: "tools", Name: "Tools", DisplayName: "Tools", Image: "tools.png"},
		{ID: "others", Name: "Others", DisplayName: "Others", Image: "others.png"},
	},
}

// FilterCategories is the category filter list shown on listing pages,
// including the pseudo-entry for "all".
var FilterCategories = []Category{
	{ID: "all", Name: "All Categories"},
	{ID: CategoryShoes, Name: "Shoes"},
	{ID: CategoryCosmetics, Name: "Cosmetics"},
	{ID: CategoryClothing, Name: "Clothing"},
	{ID: CategoryAccessories, Name: "Accessories"},
}

// PriceRanges is the fixed price filter table, in Birr.
var PriceRanges = []PriceRange{
	{ID: "all", Name: "All Prices"},
	{ID: "0-50", Name: "Under 50 Birr", Max: bound(50)},
	{ID: "50-100", Name: "50 - 100 Birr", Min: bound(50), Max: bound(100)},
	{ID: "100-200", Name: "100 - 200 Birr", Min: bound(100), Max: bound(200)},
	{ID: "200+", Name: "Over 200 Birr", Min: bound(200)},
}

// SortOptions is the fixed sort table for listing pages.
var SortOptions = []SortOption{
	{Value: "none", Label: "None"},
	{Value: "newest", Label: "Newest", Field: "created_at", Order: "desc"},
	{Value: "oldest", Label: "Oldest", Field: "created_at", Order: "asc"},
	{Value: "price-high", Label: "Price: High to Low", Field: "price", Order: "desc"},
	{Value: "price-low", Label: "Price: Low to High", Field: "price", Order: "asc"},
}

func bound(v int64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromInt(v), Valid: true}
}

// CategoryByName returns the static category with the given canonical name.
func CategoryByName(name string) (Category, bool) {
	for _, c := range Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// SortOptionByValue returns the sort option with the given value.
func SortOptionByValue(value string) (SortOption, bool) {
	for _, o := range SortOptions {
		if o.Value == value {
			return o, true
		}
	}
	return SortOption{}, false
}
