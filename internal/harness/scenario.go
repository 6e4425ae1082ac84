package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/flooring/internal/engine"
	"github.com/roach88/flooring/internal/model"
)

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Today is the MMDDYYYY date the clock starts on.
	Today string `yaml:"today"`

	// Products and Taxes replace the default reference data
	// (Wood, Carpet and Ohio) when set.
	Products []ProductRow `yaml:"products,omitempty"`
	Taxes    []TaxRow     `yaml:"taxes,omitempty"`

	// Setup preloads orders before the flow runs. Setup orders bypass the
	// engine and its date checks.
	Setup []ShardSetup `yaml:"setup,omitempty"`

	// Flow is the sequence of operations under test.
	Flow []Step `yaml:"flow"`

	// Assertions check the final shard files.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// ProductRow is one product record.
type ProductRow struct {
	Type  string `yaml:"type"`
	Cost  string `yaml:"cost"`
	Labor string `yaml:"labor"`
}

// TaxRow is one tax record.
type TaxRow struct {
	Abbreviation string `yaml:"abbreviation"`
	State        string `yaml:"state"`
	Rate         string `yaml:"rate"`
}

// ShardSetup preloads the orders of one date.
type ShardSetup struct {
	Date   string       `yaml:"date"`
	Orders []OrderInput `yaml:"orders"`
}

// OrderInput is the caller-supplied part of an order.
type OrderInput struct {
	Name    string `yaml:"name"`
	State   string `yaml:"state"`
	Product string `yaml:"product"`
	Area    string `yaml:"area"`
}

// Step operations.
const (
	OpAdd      = "add"
	OpEdit     = "edit"
	OpRemove   = "remove"
	OpLookup   = "lookup"
	OpValidate = "validate"
	OpAdvance  = "advance"
)

// Step is one operation in the flow.
type Step struct {
	// Op is one of add, edit, remove, lookup, validate, advance.
	Op string `yaml:"op"`

	// Date is passed to the operation and binds its order book.
	Date string `yaml:"date,omitempty"`

	// Number is the order number for edit and remove.
	Number int `yaml:"number,omitempty"`

	Name    string `yaml:"name,omitempty"`
	State   string `yaml:"state,omitempty"`
	Product string `yaml:"product,omitempty"`
	Area    string `yaml:"area,omitempty"`

	// Days moves the clock forward (advance only).
	Days int `yaml:"days,omitempty"`

	// Expect checks the outcome. If nil, any outcome is accepted.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the expected outcome of a step. Only set fields
// are checked.
type ExpectClause struct {
	Result      string `yaml:"result"`
	Message     string `yaml:"message,omitempty"`
	OrderNumber int    `yaml:"order_number,omitempty"`
	Total       string `yaml:"total,omitempty"`
	Count       *int   `yaml:"count,omitempty"`
}

// Assertion validates the final shard files.
type Assertion struct {
	// Type is shard_exists, shard_absent, order_count or order.
	Type string `yaml:"type"`

	Date string `yaml:"date"`

	// Count is the expected number of orders (order_count).
	Count int `yaml:"count,omitempty"`

	// Number selects the order (order).
	Number int `yaml:"number,omitempty"`

	// Expect holds expected field values (order). Keys: customer_name,
	// state, product, area, material_cost, labor_cost, tax, total.
	Expect map[string]string `yaml:"expect,omitempty"`
}

// Assertion types.
const (
	AssertShardExists = "shard_exists"
	AssertShardAbsent = "shard_absent"
	AssertOrderCount  = "order_count"
	AssertOrder       = "order"
)

// LoadScenario reads and parses a scenario YAML file.
// Unknown fields are rejected so typos fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if _, err := model.ParseOrderDate(s.Today); err != nil {
		return fmt.Errorf("today: %w", err)
	}
	if len(s.Flow) == 0 {
		return fmt.Errorf("flow list is required and must be non-empty")
	}

	for i, sh := range s.Setup {
		if _, err := model.ParseOrderDate(sh.Date); err != nil {
			return fmt.Errorf("setup[%d]: %w", i, err)
		}
	}

	for i, step := range s.Flow {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a); err != nil {
			return err
		}
	}
	return nil
}

func validateStep(index int, step *Step) error {
	switch step.Op {
	case OpAdd, OpEdit, OpRemove, OpLookup, OpValidate:
		if step.Op != OpValidate && step.Date == "" {
			return fmt.Errorf("flow[%d]: date is required for %s", index, step.Op)
		}
	case OpAdvance:
		if step.Days <= 0 {
			return fmt.Errorf("flow[%d]: days must be positive for advance", index)
		}
		if step.Expect != nil {
			return fmt.Errorf("flow[%d]: advance takes no expect clause", index)
		}
	case "":
		return fmt.Errorf("flow[%d]: op is required", index)
	default:
		return fmt.Errorf("flow[%d]: unknown op %q", index, step.Op)
	}

	if step.Expect != nil {
		if _, err := engine.ParseResult(step.Expect.Result); err != nil {
			return fmt.Errorf("flow[%d].expect: %w", index, err)
		}
	}
	return nil
}

func validateAssertion(index int, a *Assertion) error {
	if a.Date == "" {
		return fmt.Errorf("assertions[%d]: date is required", index)
	}

	switch a.Type {
	case AssertShardExists, AssertShardAbsent:
	case AssertOrderCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for order_count", index)
		}
	case AssertOrder:
		if a.Number <= 0 {
			return fmt.Errorf("assertions[%d]: number is required for order", index)
		}
		if len(a.Expect) == 0 {
			return fmt.Errorf("assertions[%d]: expect is required for order", index)
		}
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
