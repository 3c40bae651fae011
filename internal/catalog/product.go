// Package catalog defines the canonical product entities and the normalizer
// that converts raw, partially-trusted API payloads into them.
package catalog

import (
	"bytes"
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Placeholder values used when a listing item is missing fields or fails to
// normalize entirely.
const (
	PlaceholderImage = "/placeholder-image.jpg"

	unknownID   = "unknown-id"
	unnamedName = "Unnamed Product"
	errorID     = "error-id"
	errorName   = "Error Loading Product"
	zeroPrice   = "0.00"
)

// Product is the stable listing-view shape. It is derived from a raw API item
// on every fetch and never persisted.
//
// Invariants: Colors holds distinct, non-blank entries in first-seen order;
// Price is always a two-decimal numeric string ("0.00" when the source value
// is absent or unparsable); Image is an absolute URL or PlaceholderImage.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	SubCategory string   `json:"sub_category"`
	Colors      []string `json:"colors"`
	Price       string   `json:"price"`
}

// Status is the publication state of a product.
type Status string

const (
	StatusOnline   Status = "ONLINE"
	StatusOffline  Status = "OFFLINE"
	StatusDraft    Status = "DRAFT"
	StatusArchived Status = "ARCHIVED"

	// StatusInvalid is what unknown status strings decode to.
	StatusInvalid Status = ""
)

// Valid reports whether s is one of the known publication states.
func (s Status) Valid() bool {
	switch s {
	case StatusOnline, StatusOffline, StatusDraft, StatusArchived:
		return true
	}
	return false
}

// UnmarshalJSON decodes a status string, mapping unknown values to
// StatusInvalid rather than failing the whole payload.
func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return errors.Wrap(err, "status")
	}
	v := Status(raw)
	if !v.Valid() {
		v = StatusInvalid
	}
	*s = v
	return nil
}

// ProductDetail is the full product entity returned by the detail endpoint.
// It is fetched on demand and not cached across calls.
type ProductDetail struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Brand         string           `json:"brand"`
	Material      string           `json:"material"`
	Price         decimal.Decimal  `json:"price"`
	Status        Status           `json:"status"`
	ProductImages []ProductImage   `json:"product_images"`
	Variants      []ProductVariant `json:"variants"`
	CategoryID    int              `json:"categoryId"`
}

// ProductImage is a stored image reference on a product.
type ProductImage struct {
	URL string `json:"url"`
	ID  string `json:"id,omitempty"`
}

// ProductVariant is a sellable size/color combination. Size and Color are
// unions of a structured record and a legacy plain string; callers must
// discriminate at use time.
type ProductVariant struct {
	ID            string     `json:"id,omitempty"`
	Size          SizeValue  `json:"size"`
	Color         ColorValue `json:"color"`
	StockQuantity int        `json:"stock_quantity"`
}

// ProductSize is the superset of category-specific measurement fields. Only
// the subset relevant to the product's category is populated; zero means
// absent. Interpretation belongs to the category-dispatched formatter.
type ProductSize struct {
	Metric     string  `json:"metric,omitempty"`
	Size       float64 `json:"size,omitempty"`
	CustomSize string  `json:"customSize,omitempty"`
	SizeLetter string  `json:"sizeLetter,omitempty"`
	Bust       float64 `json:"bust,omitempty"`
	Waist      float64 `json:"waist,omitempty"`
	Hips       float64 `json:"hips,omitempty"`
	Length     float64 `json:"length,omitempty"`
	Sleeve     float64 `json:"sleeve,omitempty"`
	Fit        string  `json:"fit,omitempty"`
}

// ProductColor is the structured color record: a color value (usually a hex
// code) plus a human-readable name.
type ProductColor struct {
	Color string `json:"color"`
	Name  string `json:"name"`
}

// SizeValue is a tagged union of a legacy plain-string size and a structured
// ProductSize record. Older products in the catalog still carry the string
// form, so both arms must round-trip.
type SizeValue struct {
	legacy string
	record *ProductSize
}

// LegacySize wraps a plain-string size.
func LegacySize(s string) SizeValue { return SizeValue{legacy: s} }

// StructuredSize wraps a ProductSize record.
func StructuredSize(s ProductSize) SizeValue { return SizeValue{record: &s} }

// Legacy returns the plain-string arm, if that is what was decoded.
func (v SizeValue) Legacy() (string, bool) { return v.legacy, v.record == nil }

// Record returns the structured arm, if that is what was decoded.
func (v SizeValue) Record() (*ProductSize, bool) { return v.record, v.record != nil }

// UnmarshalJSON decodes either union arm, rejecting any other JSON shape.
func (v *SizeValue) UnmarshalJSON(b []byte) error {
	switch kind(b) {
	case '"':
		v.record = nil
		return json.Unmarshal(b, &v.legacy)
	case '{':
		rec := &ProductSize{}
		if err := json.Unmarshal(b, rec); err != nil {
			return err
		}
		v.legacy, v.record = "", rec
		return nil
	}
	return errors.New("size: expected string or object")
}

// MarshalJSON encodes the populated arm.
func (v SizeValue) MarshalJSON() ([]byte, error) {
	if v.record != nil {
		return json.Marshal(v.record)
	}
	return json.Marshal(v.legacy)
}

// ColorValue is the color counterpart of SizeValue: a legacy plain string or
// a structured ProductColor record.
type ColorValue struct {
	legacy string
	record *ProductColor
}

// LegacyColor wraps a plain-string color.
func LegacyColor(s string) ColorValue { return ColorValue{legacy: s} }

// StructuredColor wraps a ProductColor record.
func StructuredColor(c ProductColor) ColorValue { return ColorValue{record: &c} }

// Legacy returns the plain-string arm, if that is what was decoded.
func (v ColorValue) Legacy() (string, bool) { return v.legacy, v.record == nil }

// Record returns the structured arm, if that is what was decoded.
func (v ColorValue) Record() (*ProductColor, bool) { return v.record, v.record != nil }

// UnmarshalJSON decodes either union arm, rejecting any other JSON shape.
func (v *ColorValue) UnmarshalJSON(b []byte) error {
	switch kind(b) {
	case '"':
		v.record = nil
		return json.Unmarshal(b, &v.legacy)
	case '{':
		rec := &ProductColor{}
		if err := json.Unmarshal(b, rec); err != nil {
			return err
		}
		v.legacy, v.record = "", rec
		return nil
	}
	return errors.New("color: expected string or object")
}

// MarshalJSON encodes the populated arm.
func (v ColorValue) MarshalJSON() ([]byte, error) {
	if v.record != nil {
		return json.Marshal(v.record)
	}
	return json.Marshal(v.legacy)
}

// kind returns the first non-whitespace byte of b, or 0 when b is blank.
func kind(b []byte) byte {
	trimmed := bytes.TrimLeft(b, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
