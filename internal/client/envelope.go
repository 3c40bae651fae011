package client

import (
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// decodeProductPage scans the pagination envelope without trusting its
// shape. A payload without a data array is structurally invalid; unknown
// keys are skipped. Items stay raw so the normalizer can isolate per-item
// failures.
func decodeProductPage(body []byte) (ProductPage, error) {
	var (
		page    ProductPage
		hasData bool
	)

	d := jx.DecodeBytes(body)
	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "data":
			hasData = true
			page.Items = []json.RawMessage{}
			return d.Arr(func(d *jx.Decoder) error {
				raw, err := d.Raw()
				if err != nil {
					return err
				}
				// Raw aliases the decoder buffer, copy before keeping.
				item := make(json.RawMessage, len(raw))
				copy(item, raw)
				page.Items = append(page.Items, item)
				return nil
			})
		case "page":
			return intField(d, &page.Page)
		case "pageSize":
			return intField(d, &page.PageSize)
		case "total":
			return intField(d, &page.Total)
		case "totalPages":
			return intField(d, &page.TotalPages)
		default:
			return d.Skip()
		}
	}); err != nil {
		return ProductPage{}, errors.Wrap(err, "scan envelope")
	}

	if !hasData {
		return ProductPage{}, errors.New("envelope has no data field")
	}
	return page, nil
}

func intField(d *jx.Decoder, dst *int) error {
	v, err := d.Int()
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
