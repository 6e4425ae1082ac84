package harness

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/roach88/flooring/internal/model"
)

// evaluateAssertions checks the final shard files. A missing shard is never
// opened, so checking it does not create it.
func (h *Harness) evaluateAssertions(assertions []Assertion, result *Result) error {
	for i, a := range assertions {
		date, err := model.ParseOrderDate(a.Date)
		if err != nil {
			return fmt.Errorf("assertions[%d]: %w", i, err)
		}
		exists, err := h.shards.Exists(date)
		if err != nil {
			return err
		}

		switch a.Type {
		case AssertShardExists:
			if !exists {
				result.AddError("assertions[%d]: shard %s does not exist", i, a.Date)
			}
		case AssertShardAbsent:
			if exists {
				result.AddError("assertions[%d]: shard %s exists", i, a.Date)
			}
		case AssertOrderCount:
			orders, err := h.readShard(date, exists)
			if err != nil {
				return err
			}
			if len(orders) != a.Count {
				result.AddError("assertions[%d]: shard %s has %d orders, want %d", i, a.Date, len(orders), a.Count)
			}
		case AssertOrder:
			orders, err := h.readShard(date, exists)
			if err != nil {
				return err
			}
			assertOrder(result, i, a, orders)
		default:
			return fmt.Errorf("assertions[%d]: unknown assertion type %q", i, a.Type)
		}
	}
	return nil
}

func (h *Harness) readShard(date time.Time, exists bool) ([]model.Order, error) {
	if !exists {
		return nil, nil
	}
	st, err := h.shards.Open(model.FormatOrderDate(date))
	if err != nil {
		return nil, err
	}
	return st.All(), nil
}

func assertOrder(result *Result, index int, a Assertion, orders []model.Order) {
	var found *model.Order
	for i := range orders {
		if orders[i].OrderNumber == a.Number {
			found = &orders[i]
			break
		}
	}
	if found == nil {
		result.AddError("assertions[%d]: shard %s has no order %d", index, a.Date, a.Number)
		return
	}

	text := map[string]string{
		"customer_name": found.CustomerName,
		"state":         found.Tax.State,
		"product":       found.Product.ProductType,
	}
	numbers := map[string]decimal.Decimal{
		"area":          found.Area,
		"material_cost": found.MaterialCost,
		"labor_cost":    found.LaborCost,
		"tax":           found.TaxAmount,
		"total":         found.Total,
	}

	for field, want := range a.Expect {
		if got, ok := text[field]; ok {
			if got != want {
				result.AddError("assertions[%d]: order %d %s = %q, want %q", index, a.Number, field, got, want)
			}
			continue
		}
		got, ok := numbers[field]
		if !ok {
			result.AddError("assertions[%d]: unknown order field %q", index, field)
			continue
		}
		w, err := decimal.NewFromString(want)
		if err != nil || !got.Equal(w) {
			result.AddError("assertions[%d]: order %d %s = %s, want %s", index, a.Number, field, got, want)
		}
	}
}
