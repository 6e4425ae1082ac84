package codec

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/flooring/internal/model"
)

const sampleOrderLine = "1~Sample Customer~Ohio~6.25~Wood~100~5.15~4.75~515.00~475.00~61.875000~1051.875000"

func TestOrderCodec_Decode(t *testing.T) {
	o, err := OrderCodec{}.Decode(sampleOrderLine)
	require.NoError(t, err)

	assert.Equal(t, 1, o.OrderNumber)
	assert.Equal(t, "Sample Customer", o.CustomerName)
	assert.Equal(t, "Ohio", o.Tax.State)
	assert.Empty(t, o.Tax.StateAbbreviation)
	assert.Equal(t, "Wood", o.Product.ProductType)
	assert.True(t, decimal.RequireFromString("1051.875").Equal(o.Total))
	assert.True(t, decimal.RequireFromString("4.75").Equal(o.Product.LaborCostPerSquareFoot))
}

func TestOrderCodec_RoundTrip(t *testing.T) {
	lines := []string{
		sampleOrderLine,
		"2~Acme, Inc.~Pennsylvania~6.75~Carpet~212.5~2.25~2.10~478.125~446.250~62.3587500~986.7337500",
		"17~Test Customer~Ohio~6.25~Carpet~200~2.25~2.10~450.00~420.00~54.375000~924.375000",
		"3~x~Ohio~0~Tile~100.000~0~0~0.000~0.000~0~0.000",
	}

	c := OrderCodec{}
	for _, line := range lines {
		o, err := c.Decode(line)
		require.NoError(t, err, line)
		assert.Equal(t, line, c.Encode(o))
	}
}

func TestOrderCodec_EncodeComputedOrder(t *testing.T) {
	wood := model.Product{
		ProductType:            "Wood",
		CostPerSquareFoot:      decimal.RequireFromString("5.15"),
		LaborCostPerSquareFoot: decimal.RequireFromString("4.75"),
	}
	ohio := model.TaxData{StateAbbreviation: "OH", State: "Ohio", TaxRate: decimal.RequireFromString("6.25")}

	o := model.NewOrder(1, "Sample Customer", decimal.RequireFromString("100"), ohio, wood)
	assert.Equal(t, sampleOrderLine, OrderCodec{}.Encode(o))
}

func TestOrderCodec_FieldCountMismatchIsMalformed(t *testing.T) {
	lines := []string{
		"",
		"1~Sample Customer~Ohio",
		sampleOrderLine + "~extra",
		"1~Bob~Jr~Ohio~6.25~Wood~100~5.15~4.75~515.00~475.00~61.875000~1051.875000",
	}

	for _, line := range lines {
		_, err := OrderCodec{}.Decode(line)
		require.Error(t, err)
		assert.True(t, IsMalformed(err), "expected malformed for %q, got %v", line, err)

		var countErr *FieldCountError
		require.True(t, errors.As(err, &countErr))
		assert.Equal(t, OrderFields, countErr.Want)
	}
}

func TestOrderCodec_BadNumberIsFatal(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		field string
	}{
		{"order number", "one~Sample Customer~Ohio~6.25~Wood~100~5.15~4.75~515.00~475.00~61.875~1051.875", "OrderNumber"},
		{"tax rate", "1~Sample Customer~Ohio~6,25~Wood~100~5.15~4.75~515.00~475.00~61.875~1051.875", "TaxRate"},
		{"area", "1~Sample Customer~Ohio~6.25~Wood~~5.15~4.75~515.00~475.00~61.875~1051.875", "Area"},
		{"total", "1~Sample Customer~Ohio~6.25~Wood~100~5.15~4.75~515.00~475.00~61.875~$1051.88", "Total"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OrderCodec{}.Decode(tt.line)
			require.Error(t, err)
			assert.False(t, IsMalformed(err), "numeric failures must not be skippable")

			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tt.field, fieldErr.Field)
		})
	}
}

func TestProductCodec(t *testing.T) {
	c := ProductCodec{}
	line := "Carpet~2.25~2.10"

	p, err := c.Decode(line)
	require.NoError(t, err)
	assert.Equal(t, "Carpet", p.ProductType)
	assert.Equal(t, line, c.Encode(p))

	_, err = c.Decode("Carpet~2.25")
	assert.True(t, IsMalformed(err))

	_, err = c.Decode("Carpet~cheap~2.10")
	require.Error(t, err)
	assert.False(t, IsMalformed(err))
}

func TestTaxCodec(t *testing.T) {
	c := TaxCodec{}
	line := "OH~Ohio~6.25"

	tax, err := c.Decode(line)
	require.NoError(t, err)
	assert.Equal(t, "OH", tax.StateAbbreviation)
	assert.Equal(t, "Ohio", tax.State)
	assert.Equal(t, line, c.Encode(tax))

	_, err = c.Decode("OH~Ohio~6.25~extra")
	assert.True(t, IsMalformed(err))

	_, err = c.Decode("OH~Ohio~six")
	require.Error(t, err)
	assert.False(t, IsMalformed(err))
}

func TestHeaders(t *testing.T) {
	assert.Equal(t, OrderHeader, OrderCodec{}.Header())
	assert.Equal(t, "[ProductType,CostPerSquareFoot,LaborCostPerSquareFoot]", ProductCodec{}.Header())
	assert.Equal(t, "[StateAbbreviation,State,TaxRate]", TaxCodec{}.Header())
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "515.00", FormatDecimal(decimal.RequireFromString("515.00")))
	assert.Equal(t, "100", FormatDecimal(decimal.RequireFromString("100")))
	assert.Equal(t, "0.10", FormatDecimal(decimal.RequireFromString("0.10")))
	assert.Equal(t, "-3.50", FormatDecimal(decimal.RequireFromString("-3.50")))
}
