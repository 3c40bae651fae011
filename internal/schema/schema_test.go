package schema

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberInput_Unmarshal(t *testing.T) {
	var form struct {
		Price NumberInput `json:"price"`
	}

	t.Run("number", func(t *testing.T) {
		require.NoError(t, json.Unmarshal([]byte(`{"price": 12.5}`), &form))
		d, ok := form.Price.Decimal()
		require.True(t, ok)
		assert.Equal(t, "12.5", d.String())
		assert.False(t, form.Price.IsEmpty())
	})

	t.Run("empty string sentinel", func(t *testing.T) {
		require.NoError(t, json.Unmarshal([]byte(`{"price": ""}`), &form))
		assert.True(t, form.Price.IsEmpty())
	})

	t.Run("blank string is the sentinel too", func(t *testing.T) {
		require.NoError(t, json.Unmarshal([]byte(`{"price": "  "}`), &form))
		assert.True(t, form.Price.IsEmpty())
	})

	t.Run("numeric text parses", func(t *testing.T) {
		require.NoError(t, json.Unmarshal([]byte(`{"price": "42"}`), &form))
		d, ok := form.Price.Decimal()
		require.True(t, ok)
		assert.Equal(t, "42", d.String())
	})

	t.Run("absent field is the sentinel", func(t *testing.T) {
		var fresh struct {
			Price NumberInput `json:"price"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{}`), &fresh))
		assert.True(t, fresh.Price.IsEmpty())
	})

	t.Run("null is the sentinel", func(t *testing.T) {
		require.NoError(t, json.Unmarshal([]byte(`{"price": null}`), &form))
		assert.True(t, form.Price.IsEmpty())
	})

	t.Run("wrong type decodes as invalid, not an error", func(t *testing.T) {
		require.NoError(t, json.Unmarshal([]byte(`{"price": [1]}`), &form))
		assert.False(t, form.Price.IsEmpty())
		_, ok := form.Price.Decimal()
		assert.False(t, ok)
	})
}

func TestNumberInput_Int(t *testing.T) {
	assert.Equal(t, 7, Number(decimal.NewFromFloat(7.9)).Int())
	assert.Equal(t, 12, Text("12").Int())
	assert.Equal(t, 0, Text("a dozen").Int())
	assert.Equal(t, 0, NumberInput{}.Int())
}

func TestCheckAndRefine(t *testing.T) {
	issues := Check(
		RequiredString("name", "", "Name is required"),
		RequiredString("brand", "Suq", "Brand is required"),
	)
	require.Len(t, issues, 1)
	assert.True(t, issues.Has("name"))
	assert.False(t, issues.Has("brand"))

	msg, ok := issues.First("name")
	require.True(t, ok)
	assert.Equal(t, "Name is required", msg)

	// Refinements do not run over already-failed input.
	refined := issues.Refine(func(is *Issues) {
		is.add("cross", "should not appear")
	})
	assert.False(t, refined.Has("cross"))

	// But they do run on clean input.
	clean := Check().Refine(func(is *Issues) {
		is.add("cross", "fires")
	})
	assert.True(t, clean.Has("cross"))
}

func TestIssues_Error(t *testing.T) {
	issues := Issues{
		{Field: "name", Message: "Name is required"},
		{Field: "price", Message: "Price is required"},
	}
	assert.Equal(t, "name: Name is required; price: Price is required", issues.Error())
}

func TestPositiveNumberRule(t *testing.T) {
	tests := []struct {
		name  string
		input NumberInput
		want  string
	}{
		{"positive passes", Number(decimal.NewFromInt(5)), ""},
		{"zero fails positivity", Number(decimal.Zero), "must be positive"},
		{"negative fails positivity", Number(decimal.NewFromInt(-1)), "must be positive"},
		{"empty sentinel passes", NumberInput{}, ""},
		{"text fails type check", Text("soon"), "must be a number"},
		{"invalid fails type check", NumberInput{kind: inputInvalid}, "must be a number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := Check(PositiveNumber("f", tt.input, "must be a number", "must be positive"))
			if tt.want == "" {
				assert.Empty(t, issues)
				return
			}
			msg, ok := issues.First("f")
			require.True(t, ok)
			assert.Equal(t, tt.want, msg)
		})
	}
}

func TestRequiredRule(t *testing.T) {
	assert.True(t, Check(Required("f", NumberInput{}, "f is required")).Has("f"))
	assert.Empty(t, Check(Required("f", Number(decimal.NewFromInt(1)), "f is required")))
	assert.Empty(t, Check(Required("f", Text("later"), "f is required")))
}
