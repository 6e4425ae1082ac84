package model

import (
	"github.com/shopspring/decimal"
)

// Product is the per-square-foot pricing for one product type.
type Product struct {
	ProductType            string          `json:"product_type"`
	CostPerSquareFoot      decimal.Decimal `json:"cost_per_square_foot"`
	LaborCostPerSquareFoot decimal.Decimal `json:"labor_cost_per_square_foot"`
}

// TaxData is the tax rate charged in one state.
// TaxRate is a percentage: 6.25 means 6.25%.
type TaxData struct {
	StateAbbreviation string          `json:"state_abbreviation,omitempty"`
	State             string          `json:"state"`
	TaxRate           decimal.Decimal `json:"tax_rate"`
}

// Order is a priced flooring order.
//
// MaterialCost, LaborCost, TaxAmount and Total are derived by NewOrder and
// must never be set from caller input.
type Order struct {
	OrderNumber  int             `json:"order_number"`
	CustomerName string          `json:"customer_name"`
	Tax          TaxData         `json:"tax"`
	Product      Product         `json:"product"`
	Area         decimal.Decimal `json:"area"`
	MaterialCost decimal.Decimal `json:"material_cost"`
	LaborCost    decimal.Decimal `json:"labor_cost"`
	TaxAmount    decimal.Decimal `json:"tax_amount"`
	Total        decimal.Decimal `json:"total"`
}

// NewOrder prices an order for area square feet of product shipped to the
// state described by tax.
//
// The tax rate is converted from percent with an exact decimal shift rather
// than a division, so 990.00 at 6.25% yields 61.875000 with no rounding.
func NewOrder(number int, customerName string, area decimal.Decimal, tax TaxData, product Product) Order {
	material := area.Mul(product.CostPerSquareFoot)
	labor := area.Mul(product.LaborCostPerSquareFoot)
	subtotal := material.Add(labor)
	taxAmount := subtotal.Mul(tax.TaxRate.Shift(-2))

	return Order{
		OrderNumber:  number,
		CustomerName: customerName,
		Tax:          tax,
		Product:      product,
		Area:         area,
		MaterialCost: material,
		LaborCost:    labor,
		TaxAmount:    taxAmount,
		Total:        subtotal.Add(taxAmount),
	}
}

// NextOrderNumber returns the number the next order added to orders should
// carry: one more than the highest existing number, or 1 for an empty shard.
func NextOrderNumber(orders []Order) int {
	highest := 0
	for _, o := range orders {
		if o.OrderNumber > highest {
			highest = o.OrderNumber
		}
	}
	return highest + 1
}
