package schema

import "github.com/shopspring/decimal"

// SizeForm is the size entry form for shoes and other categories with a
// numeric size against a sizing standard (EU, US, UK).
type SizeForm struct {
	Metric string      `json:"metric"`
	Size   NumberInput `json:"size"`
}

// Validate gates the size form and returns the normalized numeric size.
// Text input is parsed to a number; unparsable text leaves the size unset,
// which the cross-field pass then reports against the size field. The
// mutual-requirement refinement runs only after per-field checks pass.
func (f SizeForm) Validate() (size decimal.NullDecimal, issues Issues) {
	issues = Check(
		RequiredString("metric", f.Metric, "Size standard is required"),
		func(is *Issues) {
			switch f.Size.kind {
			case inputNumber:
				if !f.Size.num.IsPositive() {
					is.add("size", "Size must be a positive number")
				}
			case inputEmpty, inputInvalid:
				is.add("size", "Size is required")
			}
		},
	)

	// Text that parses to zero counts as no size at all, so the cross-field
	// pass below reports it rather than letting a "0" slip through.
	if d, ok := f.Size.Decimal(); ok && !(f.Size.kind == inputText && d.IsZero()) {
		size = decimal.NullDecimal{Decimal: d, Valid: true}
	}

	issues = issues.Refine(MutualRequirement(
		"metric", f.Metric != "", "Size standard is required when size is provided",
		"size", size.Valid, "Size is required when size standard is provided",
	))
	return size, issues
}

// CosmeticSizeForm is the size entry form for cosmetics: an optional amount
// against a unit metric, or a free-form custom size. Metric and size require
// each other when either is entered.
type CosmeticSizeForm struct {
	Metric     string      `json:"metric,omitempty"`
	Size       NumberInput `json:"size"`
	CustomSize string      `json:"customSize,omitempty"`
}

// Validate gates the cosmetic size form.
func (f CosmeticSizeForm) Validate() Issues {
	return Check(
		PositiveNumber("size", f.Size,
			"Size must be a number",
			"Size must be a positive number"),
	).Refine(MutualRequirement(
		"metric", f.Metric != "", "Metric is required when size value is provided",
		"size", !f.Size.IsEmpty(), "Size value is required when metric is provided",
	))
}

// ClothingSizeForm is the size entry form for clothing: a required letter
// size plus optional body measurements in centimeters.
type ClothingSizeForm struct {
	SizeLetters string      `json:"sizeLetters"`
	Bust        NumberInput `json:"bust"`
	Waist       NumberInput `json:"waist"`
	Hips        NumberInput `json:"hips"`
	Length      NumberInput `json:"length"`
	Sleeve      NumberInput `json:"sleeve"`
	Fit         string      `json:"fit,omitempty"`
	CustomSize  string      `json:"customSize,omitempty"`
}

// Validate gates the clothing size form. Measurements are optional but must
// be positive numbers when entered.
func (f ClothingSizeForm) Validate() Issues {
	return Check(
		RequiredString("sizeLetters", f.SizeLetters, "Size letter is required"),
		PositiveNumber("bust", f.Bust,
			"Bust size must be a number",
			"Size must be a positive number"),
		PositiveNumber("waist", f.Waist,
			"Waist Size must be a number",
			"Size must be a positive number"),
		PositiveNumber("hips", f.Hips,
			"Hips size must be a number",
			"Size must be a positive number"),
		PositiveNumber("length", f.Length,
			"Length must be a number",
			"Size must be a positive number"),
		PositiveNumber("sleeve", f.Sleeve,
			"Sleeve size must be a number",
			"Size must be a positive number"),
	)
}
