// Package schema validates product, variant, and size form input before
// submission. Each form is a plain struct with a Validate method built from
// small per-field rules plus explicit cross-field refinement passes; the
// result is a field-addressable issue set, never an exception. Validation is
// stateless: the same input always yields the same issues.
package schema

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Issue is a single validation failure scoped to one form field.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Issues is an ordered collection of field-scoped failures. An empty set
// means the input is valid.
type Issues []Issue

// Error joins all messages, making Issues usable as an error value.
func (is Issues) Error() string {
	msgs := make([]string, len(is))
	for i, issue := range is {
		msgs[i] = issue.Field + ": " + issue.Message
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether any issue is attached to the given field.
func (is Issues) Has(field string) bool {
	_, ok := is.First(field)
	return ok
}

// First returns the first message attached to the given field.
func (is Issues) First(field string) (string, bool) {
	for _, issue := range is {
		if issue.Field == field {
			return issue.Message, true
		}
	}
	return "", false
}

func (is *Issues) add(field, message string) {
	*is = append(*is, Issue{Field: field, Message: message})
}

// Rule is a composable validation step appending zero or more issues.
type Rule func(is *Issues)

// Check runs per-field rules in order and collects their issues.
func Check(rules ...Rule) Issues {
	var is Issues
	for _, r := range rules {
		r(&is)
	}
	return is
}

// Refine runs cross-field refinement rules, but only when the per-field
// checks produced no issues. Cross-field constraints are meaningless over
// fields that already failed their own checks.
func (is Issues) Refine(rules ...Rule) Issues {
	if len(is) > 0 {
		return is
	}
	for _, r := range rules {
		r(&is)
	}
	return is
}

// RequiredString fails with message when value is empty.
func RequiredString(field, value, message string) Rule {
	return func(is *Issues) {
		if value == "" {
			is.add(field, message)
		}
	}
}

// PositiveNumber validates the numeric arm of a NumberInput: a non-positive
// number fails with positiveMsg, while free text or a non-numeric JSON type
// fails with typeMsg. The empty sentinel passes; pair with Required to
// reject it.
func PositiveNumber(field string, n NumberInput, typeMsg, positiveMsg string) Rule {
	return func(is *Issues) {
		switch n.kind {
		case inputNumber:
			if !n.num.IsPositive() {
				is.add(field, positiveMsg)
			}
		case inputText, inputInvalid:
			is.add(field, typeMsg)
		}
	}
}

// Required rejects the empty sentinel of a NumberInput with requiredMsg. The
// message is deliberately distinct from the positivity message so "not
// entered" and "entered wrong" surface differently.
func Required(field string, n NumberInput, requiredMsg string) Rule {
	return func(is *Issues) {
		if n.kind == inputEmpty {
			is.add(field, requiredMsg)
		}
	}
}

// PositiveQuantity validates a "number | string" stock-style field: a
// non-positive number fails with positiveMsg, a blank value fails with
// requiredMsg, and free text passes (it is coerced later by Int).
func PositiveQuantity(field string, n NumberInput, positiveMsg, requiredMsg string) Rule {
	return func(is *Issues) {
		switch n.kind {
		case inputNumber:
			if !n.num.IsPositive() {
				is.add(field, positiveMsg)
			}
		case inputEmpty:
			is.add(field, requiredMsg)
		case inputInvalid:
			is.add(field, positiveMsg)
		}
	}
}

// MutualRequirement enforces that two fields are either both present or both
// absent, attaching a direction-specific message to whichever side is
// missing.
func MutualRequirement(aField string, aPresent bool, aMsg, bField string, bPresent bool, bMsg string) Rule {
	return func(is *Issues) {
		if bPresent && !aPresent {
			is.add(aField, aMsg)
		}
		if aPresent && !bPresent {
			is.add(bField, bMsg)
		}
	}
}

type inputKind uint8

const (
	inputEmpty inputKind = iota
	inputNumber
	inputText
	inputInvalid
)

// NumberInput models the form union "number | string": a numeric value, a
// free-text value, or the empty-string sentinel meaning "not entered yet".
// The sentinel must stay indistinguishable from an absent field downstream.
// The zero value is the empty sentinel.
type NumberInput struct {
	kind inputKind
	num  decimal.Decimal
	text string
}

// Number builds a numeric input.
func Number(d decimal.Decimal) NumberInput {
	return NumberInput{kind: inputNumber, num: d}
}

// NumberFromFloat builds a numeric input from a float form value.
func NumberFromFloat(v float64) NumberInput {
	return Number(decimal.NewFromFloat(v))
}

// Text builds a free-text input. Blank text is the empty sentinel.
func Text(s string) NumberInput {
	if strings.TrimSpace(s) == "" {
		return NumberInput{}
	}
	return NumberInput{kind: inputText, text: s}
}

// IsEmpty reports whether the input is the "not entered" sentinel.
func (n NumberInput) IsEmpty() bool { return n.kind == inputEmpty }

// Decimal returns the numeric arm, either entered directly or parsed from
// text. Text that does not parse as a number reports false.
func (n NumberInput) Decimal() (decimal.Decimal, bool) {
	switch n.kind {
	case inputNumber:
		return n.num, true
	case inputText:
		d, err := decimal.NewFromString(strings.TrimSpace(n.text))
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	}
	return decimal.Decimal{}, false
}

// Int coerces the input to an integer the way the variant form does: numbers
// truncate, text parses its leading integer, everything else is 0.
func (n NumberInput) Int() int {
	switch n.kind {
	case inputNumber:
		return int(n.num.IntPart())
	case inputText:
		v, err := strconv.Atoi(strings.TrimSpace(n.text))
		if err != nil {
			return 0
		}
		return v
	}
	return 0
}

// UnmarshalJSON accepts a JSON number, a string (blank meaning the empty
// sentinel), or null; any other shape decodes as invalid and is reported by
// the rules rather than failing the decode.
func (n *NumberInput) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	switch {
	case trimmed == "null":
		*n = NumberInput{}
	case strings.HasPrefix(trimmed, `"`):
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Text(s)
	default:
		d, err := decimal.NewFromString(trimmed)
		if err != nil {
			*n = NumberInput{kind: inputInvalid}
			return nil
		}
		*n = Number(d)
	}
	return nil
}

// MarshalJSON encodes the populated arm; the empty sentinel encodes as "".
func (n NumberInput) MarshalJSON() ([]byte, error) {
	switch n.kind {
	case inputNumber:
		return []byte(n.num.String()), nil
	case inputText:
		return json.Marshal(n.text)
	default:
		return json.Marshal("")
	}
}
