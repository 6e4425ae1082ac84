package harness

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/roach88/flooring/internal/codec"
	"github.com/roach88/flooring/internal/engine"
	"github.com/roach88/flooring/internal/flatfile"
	"github.com/roach88/flooring/internal/model"
	"github.com/roach88/flooring/internal/store"
	"github.com/roach88/flooring/internal/testutil"
)

// Filesystem layout of a scenario run.
const (
	ordersDir    = "/data/Orders"
	productsFile = "/data/Products.txt"
	taxesFile    = "/data/Taxes.txt"
)

// Harness holds the state of one scenario run.
type Harness struct {
	fs       afero.Fs
	shards   *store.Shards
	products *store.ProductStore
	taxes    *store.TaxStore
	clock    *testutil.FixedClock
	factory  *engine.Factory
	log      *zap.Logger
}

// Option configures a run.
type Option func(*Harness)

// WithLogger routes engine and store logs to log. Default: discarded.
func WithLogger(log *zap.Logger) Option {
	return func(h *Harness) {
		h.log = log
	}
}

// Run executes a scenario on a fresh in-memory filesystem.
//
// Execution flow:
//  1. write reference files and preload setup orders
//  2. run each flow step through a Manager bound to the step's date
//  3. snapshot the shard files
//  4. evaluate assertions
//
// A returned error means the scenario could not run; failed expectations
// are reported in the Result.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	h := &Harness{fs: afero.NewMemMapFs(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(h)
	}

	if err := h.init(scenario); err != nil {
		return nil, err
	}
	if err := h.setup(scenario.Setup); err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}

	result := NewResult()
	for i, step := range scenario.Flow {
		ev, err := h.execute(i+1, step)
		if err != nil {
			return nil, fmt.Errorf("flow[%d] %s: %w", i, step.Op, err)
		}
		result.Trace = append(result.Trace, ev.TraceEvent)
		checkExpect(result, i, step.Expect, ev)
	}

	if err := h.snapshot(result); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	if err := h.evaluateAssertions(scenario.Assertions, result); err != nil {
		return nil, fmt.Errorf("assertions: %w", err)
	}
	return result, nil
}

func (h *Harness) init(s *Scenario) error {
	today, err := model.ParseOrderDate(s.Today)
	if err != nil {
		return err
	}
	h.clock = testutil.NewFixedClock(today.Add(12 * time.Hour))

	products, err := productRecords(s.Products)
	if err != nil {
		return err
	}
	taxes, err := taxRecords(s.Taxes)
	if err != nil {
		return err
	}
	if err := writeRecords(h.fs, productsFile, codec.Codec[model.Product](codec.ProductCodec{}), products); err != nil {
		return err
	}
	if err := writeRecords(h.fs, taxesFile, codec.Codec[model.TaxData](codec.TaxCodec{}), taxes); err != nil {
		return err
	}

	h.products, err = store.OpenProducts(h.fs, productsFile, h.log)
	if err != nil {
		return err
	}
	h.taxes, err = store.OpenTaxes(h.fs, taxesFile, h.log)
	if err != nil {
		return err
	}
	h.shards = store.NewShards(h.fs, ordersDir, h.log)
	h.factory = engine.NewFactory(h.shards, h.products, h.taxes,
		engine.WithClock(h.clock),
		engine.WithLogger(h.log),
		engine.WithSessionIDs(testutil.NewFixedSessionGenerator(s.Name)),
	)
	return nil
}

func (h *Harness) setup(shards []ShardSetup) error {
	for _, sh := range shards {
		st, err := h.shards.Open(sh.Date)
		if err != nil {
			return err
		}
		for _, in := range sh.Orders {
			tax, ok := h.taxes.Get(in.State)
			if !ok {
				return fmt.Errorf("unknown state %q", in.State)
			}
			product, ok := h.products.Get(in.Product)
			if !ok {
				return fmt.Errorf("unknown product %q", in.Product)
			}
			area, err := decimal.NewFromString(in.Area)
			if err != nil {
				return fmt.Errorf("area %q: %w", in.Area, err)
			}
			o := model.NewOrder(st.NextOrderNumber(), in.Name, area, tax, product)
			if err := st.Add(o); err != nil {
				return err
			}
		}
	}
	return nil
}

// outcome is a trace event plus the decoded values expectations need.
type outcome struct {
	TraceEvent
	result engine.Result
	total  decimal.Decimal
}

func (h *Harness) execute(n int, step Step) (outcome, error) {
	ev := outcome{TraceEvent: TraceEvent{Step: n, Op: step.Op, Date: step.Date}}

	if step.Op == OpAdvance {
		h.clock.Advance(time.Duration(step.Days) * 24 * time.Hour)
		ev.Days = step.Days
		return ev, nil
	}

	m, err := h.factory.Create(step.Date)
	if err != nil {
		return ev, err
	}

	var resp engine.Response
	switch step.Op {
	case OpAdd:
		area, err := parseArea(step.Area)
		if err != nil {
			return ev, err
		}
		r, err := m.AddOrder(step.Name, step.State, step.Product, area)
		if err != nil {
			return ev, err
		}
		resp = r.Response
		ev.setOrder(r.Order)
	case OpEdit:
		area, err := parseArea(step.Area)
		if err != nil {
			return ev, err
		}
		r, err := m.EditOrder(step.Date, step.Number, step.Name, step.State, step.Product, area)
		if err != nil {
			return ev, err
		}
		resp = r.Response
		ev.setOrder(r.Order)
	case OpRemove:
		r, err := m.RemoveOrder(step.Date, step.Number)
		if err != nil {
			return ev, err
		}
		resp = r.Response
		ev.OrderNumber = r.OrderNumber
	case OpLookup:
		r, err := m.LookupOrders(step.Date)
		if err != nil {
			return ev, err
		}
		resp = r.Response
		ev.Count = len(r.Orders)
	case OpValidate:
		resp, err = m.ValidateDate(step.Date)
		if err != nil {
			return ev, err
		}
	default:
		return ev, fmt.Errorf("unknown op %q", step.Op)
	}

	ev.result = resp.Result
	ev.Result = resp.Result.String()
	ev.Message = resp.Message
	return ev, nil
}

func (o *outcome) setOrder(order model.Order) {
	if order.OrderNumber == 0 {
		return
	}
	o.OrderNumber = order.OrderNumber
	o.total = order.Total
	o.Total = codec.FormatDecimal(order.Total)
}

func checkExpect(result *Result, index int, want *ExpectClause, got outcome) {
	if want == nil {
		return
	}
	if got.Result != want.Result {
		result.AddError("flow[%d]: result = %s, want %s (%s)", index, got.Result, want.Result, got.Message)
	}
	if want.Message != "" && got.Message != want.Message {
		result.AddError("flow[%d]: message = %q, want %q", index, got.Message, want.Message)
	}
	if want.OrderNumber != 0 && got.OrderNumber != want.OrderNumber {
		result.AddError("flow[%d]: order number = %d, want %d", index, got.OrderNumber, want.OrderNumber)
	}
	if want.Total != "" {
		total, err := decimal.NewFromString(want.Total)
		if err != nil || !got.total.Equal(total) {
			result.AddError("flow[%d]: total = %s, want %s", index, got.Total, want.Total)
		}
	}
	if want.Count != nil && got.Count != *want.Count {
		result.AddError("flow[%d]: count = %d, want %d", index, got.Count, *want.Count)
	}
}

func (h *Harness) snapshot(result *Result) error {
	dates, err := h.shards.Dates()
	if err != nil {
		return err
	}
	for _, d := range dates {
		data, err := afero.ReadFile(h.fs, h.shards.Path(d))
		if err != nil {
			return err
		}
		result.Shards = append(result.Shards, ShardFile{Name: store.FileName(d), Content: string(data)})
	}
	return nil
}

func parseArea(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("area %q: %w", s, err)
	}
	return d, nil
}

func productRecords(rows []ProductRow) ([]model.Product, error) {
	if len(rows) == 0 {
		return []model.Product{testutil.Wood(), testutil.Carpet()}, nil
	}
	out := make([]model.Product, len(rows))
	for i, r := range rows {
		cost, err := decimal.NewFromString(r.Cost)
		if err != nil {
			return nil, fmt.Errorf("product %s cost: %w", r.Type, err)
		}
		labor, err := decimal.NewFromString(r.Labor)
		if err != nil {
			return nil, fmt.Errorf("product %s labor: %w", r.Type, err)
		}
		out[i] = model.Product{ProductType: r.Type, CostPerSquareFoot: cost, LaborCostPerSquareFoot: labor}
	}
	return out, nil
}

func taxRecords(rows []TaxRow) ([]model.TaxData, error) {
	if len(rows) == 0 {
		return []model.TaxData{testutil.Ohio()}, nil
	}
	out := make([]model.TaxData, len(rows))
	for i, r := range rows {
		rate, err := decimal.NewFromString(r.Rate)
		if err != nil {
			return nil, fmt.Errorf("tax %s rate: %w", r.State, err)
		}
		out[i] = model.TaxData{StateAbbreviation: r.Abbreviation, State: r.State, TaxRate: rate}
	}
	return out, nil
}

func writeRecords[T any](fsys afero.Fs, path string, c codec.Codec[T], records []T) error {
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = c.Encode(r)
	}
	return flatfile.Write(fsys, path, c.Header(), lines)
}
