package codec

import (
	"strconv"

	"github.com/roach88/flooring/internal/model"
)

// OrderHeader is the first line of every order shard file.
const OrderHeader = "[OrderNumber, CustomerName, State, TaxRate, ProductType, Area, CostPerSquareFoot, LaborCostPerSquareFoot, MaterialCost, LaborCost, Tax, Total]"

// OrderFields is the number of fields in an order line.
const OrderFields = 12

// OrderCodec encodes orders in shard files.
//
// Field order: order number, customer name, state, tax rate, product type,
// area, cost/sqft, labor cost/sqft, material cost, labor cost, tax, total.
// The state abbreviation is not stored.
type OrderCodec struct{}

var _ Codec[model.Order] = OrderCodec{}

func (OrderCodec) Header() string { return OrderHeader }

func (OrderCodec) Encode(o model.Order) string {
	return join(
		strconv.Itoa(o.OrderNumber),
		o.CustomerName,
		o.Tax.State,
		FormatDecimal(o.Tax.TaxRate),
		o.Product.ProductType,
		FormatDecimal(o.Area),
		FormatDecimal(o.Product.CostPerSquareFoot),
		FormatDecimal(o.Product.LaborCostPerSquareFoot),
		FormatDecimal(o.MaterialCost),
		FormatDecimal(o.LaborCost),
		FormatDecimal(o.TaxAmount),
		FormatDecimal(o.Total),
	)
}

func (OrderCodec) Decode(line string) (model.Order, error) {
	f, err := split(line, OrderFields)
	if err != nil {
		return model.Order{}, err
	}

	number, err := parseInt("OrderNumber", f[0])
	if err != nil {
		return model.Order{}, err
	}

	// f[1], f[2] and f[4] are text; every other field is numeric.
	nums, err := decimalFields(
		[]string{"TaxRate", "Area", "CostPerSquareFoot", "LaborCostPerSquareFoot", "MaterialCost", "LaborCost", "Tax", "Total"},
		[]string{f[3], f[5], f[6], f[7], f[8], f[9], f[10], f[11]},
	)
	if err != nil {
		return model.Order{}, err
	}

	return model.Order{
		OrderNumber:  number,
		CustomerName: f[1],
		Tax: model.TaxData{
			State:   f[2],
			TaxRate: nums[0],
		},
		Product: model.Product{
			ProductType:            f[4],
			CostPerSquareFoot:      nums[2],
			LaborCostPerSquareFoot: nums[3],
		},
		Area:         nums[1],
		MaterialCost: nums[4],
		LaborCost:    nums[5],
		TaxAmount:    nums[6],
		Total:        nums[7],
	}, nil
}
