package catalog

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Normalizer converts raw listing items into canonical Products. Failures are
// isolated per item: a malformed element becomes a fixed placeholder product
// and never aborts the rest of the batch.
type Normalizer struct {
	base string
	lg   *zap.Logger
}

// NewNormalizer creates a Normalizer resolving image URLs against the given
// API base endpoint.
func NewNormalizer(base string, lg *zap.Logger) *Normalizer {
	if lg == nil {
		lg = zap.NewNop()
	}
	return &Normalizer{base: strings.TrimRight(base, "/"), lg: lg}
}

// rawItem is the permissive decode target for a single listing item. Scalar
// fields that the API serves as either numbers or strings decode as any and
// go through the default-resolution helpers below.
type rawItem struct {
	ID          any `json:"id"`
	Name        any `json:"name"`
	SubCategory any `json:"sub_category"`
	Price       any `json:"price"`
	Images      []struct {
		URL string `json:"url"`
	} `json:"product_images"`
	Variants []struct {
		// Kept raw: listing payloads carry nulls, legacy strings, and
		// the occasional junk value here, none of which may sink the
		// whole item.
		Color json.RawMessage `json:"color"`
	} `json:"variants"`
}

// NormalizeItems converts a batch of raw items into Products. The output
// always has the same length as the input: items that cannot be decoded are
// replaced by ErrorProduct.
func (n *Normalizer) NormalizeItems(items []json.RawMessage) []Product {
	out := make([]Product, len(items))
	for i, raw := range items {
		p, err := n.normalizeItem(raw)
		if err != nil {
			n.lg.Error("normalize product item",
				zap.Int("index", i),
				zap.Error(err),
			)
			out[i] = ErrorProduct()
			continue
		}
		out[i] = p
	}
	return out
}

func (n *Normalizer) normalizeItem(raw json.RawMessage) (Product, error) {
	var item rawItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return Product{}, err
	}

	image := PlaceholderImage
	if len(item.Images) > 0 && item.Images[0].URL != "" {
		image = n.base + "/file/" + item.Images[0].URL
	}

	colors := make([]string, 0, len(item.Variants))
	seen := make(map[string]struct{}, len(item.Variants))
	for _, v := range item.Variants {
		name, ok := nestedColorName(v.Color)
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		colors = append(colors, name)
	}

	return Product{
		ID:          stringOr(item.ID, unknownID),
		Name:        stringOr(item.Name, unnamedName),
		Image:       image,
		SubCategory: stringOr(item.SubCategory, ""),
		Colors:      colors,
		Price:       priceOr(item.Price),
	}, nil
}

// nestedColorName extracts the nested color field of a structured color
// record. Anything else (a legacy string, null, junk) carries no nested name
// and is skipped rather than failing the item.
func nestedColorName(raw json.RawMessage) (string, bool) {
	if kind(raw) != '{' {
		return "", false
	}
	var rec ProductColor
	if err := json.Unmarshal(raw, &rec); err != nil {
		return "", false
	}
	if strings.TrimSpace(rec.Color) == "" {
		return "", false
	}
	return rec.Color, true
}

// ErrorProduct is the placeholder substituted for an item that failed to
// normalize. The batch keeps its length; the cause is only logged.
func ErrorProduct() Product {
	return Product{
		ID:     errorID,
		Name:   errorName,
		Image:  PlaceholderImage,
		Colors: []string{},
		Price:  zeroPrice,
	}
}

// stringOr renders a decoded JSON scalar as a string, falling back when the
// value is absent or blank. JSON numbers arrive as float64 and are rendered
// without a trailing ".0" for integral values.
func stringOr(v any, fallback string) string {
	switch t := v.(type) {
	case string:
		if t == "" {
			return fallback
		}
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return fallback
	default:
		return fallback
	}
}

// priceOr renders a decoded price scalar as a two-decimal string, defaulting
// to "0.00" when the value is absent or unparsable. String prices are parsed
// exactly, so "7.005" rounds to "7.01" rather than through a float.
func priceOr(v any) string {
	switch t := v.(type) {
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		if err != nil {
			return zeroPrice
		}
		return d.StringFixed(2)
	case float64:
		return decimal.NewFromFloat(t).StringFixed(2)
	default:
		return zeroPrice
	}
}
