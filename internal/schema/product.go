package schema

// ProductForm is the admin product-creation form.
type ProductForm struct {
	Name         string      `json:"name"`
	Variant      NumberInput `json:"variant"`
	Description  string      `json:"description"`
	Brand        string      `json:"brand,omitempty"`
	Category     string      `json:"category"`
	SubCategory  string      `json:"subCategory"`
	Material     string      `json:"material,omitempty"`
	ReturnPolicy string      `json:"returnPolicy"`
	Price        NumberInput `json:"price"`
	// Images holds staged upload IDs; optional at validation time.
	Images []string `json:"images,omitempty"`
}

// Validate gates the form before submission. Brand, material, and images are
// optional; the number-or-empty unions reject the empty sentinel with a
// dedicated "is required" message.
func (f ProductForm) Validate() Issues {
	return Check(
		RequiredString("name", f.Name, "Name of the product is required"),
		PositiveNumber("variant", f.Variant,
			"Variant must be a positive number",
			"Variant must be a positive number"),
		Required("variant", f.Variant, "Variant is required"),
		RequiredString("description", f.Description, "Description is required"),
		RequiredString("category", f.Category, "Category is required"),
		RequiredString("subCategory", f.SubCategory, "Sub Category is required"),
		RequiredString("returnPolicy", f.ReturnPolicy, "Return Policy is required"),
		PositiveNumber("price", f.Price,
			"Price must be a positive number",
			"Price must be a positive number"),
		Required("price", f.Price, "Price is required"),
	)
}

// VariantForm is the per-color variant entry form.
type VariantForm struct {
	Color         string      `json:"color,omitempty"`
	ColorName     string      `json:"colorName"`
	StockQuantity NumberInput `json:"stock_quantity"`
}

// Validate gates the variant form and returns the coerced stock quantity:
// text input is parsed to an integer, unparsable text coerces to 0.
func (f VariantForm) Validate() (stock int, issues Issues) {
	issues = Check(
		RequiredString("colorName", f.ColorName, "Color name is required"),
		PositiveQuantity("stock_quantity", f.StockQuantity,
			"Stock amount must be a positive number",
			"Stock amount is required"),
	)
	return f.StockQuantity.Int(), issues
}

// VariantCounts is the variant layout form: how many colors the product has
// and the stock per color.
type VariantCounts struct {
	ColorAmount NumberInput `json:"colorAmount"`
	Stock       NumberInput `json:"stock"`
}

// Validate gates the variant layout form.
func (f VariantCounts) Validate() Issues {
	return Check(
		PositiveNumber("colorAmount", f.ColorAmount,
			"Color amount must be a positive number",
			"Color amount must be a positive number"),
		Required("colorAmount", f.ColorAmount, "Color amount is required"),
		PositiveNumber("stock", f.Stock,
			"Stock amount must be a positive number",
			"Stock amount must be a positive number"),
		Required("stock", f.Stock, "Stock amount is required"),
	)
}
