package codec

import (
	"github.com/roach88/flooring/internal/model"
)

// Reference file headers.
const (
	ProductHeader = "[ProductType,CostPerSquareFoot,LaborCostPerSquareFoot]"
	TaxHeader     = "[StateAbbreviation,State,TaxRate]"
)

// ProductCodec encodes product type, cost/sqft, labor cost/sqft.
type ProductCodec struct{}

var _ Codec[model.Product] = ProductCodec{}

func (ProductCodec) Header() string { return ProductHeader }

func (ProductCodec) Encode(p model.Product) string {
	return join(
		p.ProductType,
		FormatDecimal(p.CostPerSquareFoot),
		FormatDecimal(p.LaborCostPerSquareFoot),
	)
}

func (ProductCodec) Decode(line string) (model.Product, error) {
	f, err := split(line, 3)
	if err != nil {
		return model.Product{}, err
	}
	nums, err := decimalFields(
		[]string{"CostPerSquareFoot", "LaborCostPerSquareFoot"},
		[]string{f[1], f[2]},
	)
	if err != nil {
		return model.Product{}, err
	}
	return model.Product{
		ProductType:            f[0],
		CostPerSquareFoot:      nums[0],
		LaborCostPerSquareFoot: nums[1],
	}, nil
}

// TaxCodec encodes state abbreviation, state name, tax rate.
type TaxCodec struct{}

var _ Codec[model.TaxData] = TaxCodec{}

func (TaxCodec) Header() string { return TaxHeader }

func (TaxCodec) Encode(t model.TaxData) string {
	return join(t.StateAbbreviation, t.State, FormatDecimal(t.TaxRate))
}

func (TaxCodec) Decode(line string) (model.TaxData, error) {
	f, err := split(line, 3)
	if err != nil {
		return model.TaxData{}, err
	}
	rate, err := parseDecimal("TaxRate", f[2])
	if err != nil {
		return model.TaxData{}, err
	}
	return model.TaxData{
		StateAbbreviation: f[0],
		State:             f[1],
		TaxRate:           rate,
	}, nil
}
