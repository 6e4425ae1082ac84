package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios(t *testing.T) {
	paths, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			scenario, err := LoadScenario(path)
			require.NoError(t, err)

			result, err := RunWithGolden(t, scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestRun_ReportsFailedExpectations(t *testing.T) {
	scenario, err := ParseScenario([]byte(`
name: wrong_expectations
description: Every expectation here is wrong.
today: "07052020"
flow:
  - op: add
    date: "07062020"
    name: Sample Customer
    state: Ohio
    product: Wood
    area: "100"
    expect:
      result: Fail
      order_number: 4
      total: "1"
  - op: lookup
    date: "07062020"
    expect:
      result: Success
      count: 3
assertions:
  - type: shard_absent
    date: "07062020"
  - type: order
    date: "07062020"
    number: 1
    expect:
      customer_name: Someone Else
      colour: red
`))
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Len(t, result.Errors, 7)
	assert.Contains(t, result.Errors[0], "result = Success, want Fail")
}

func TestRun_UnknownSetupProduct(t *testing.T) {
	scenario, err := ParseScenario([]byte(`
name: bad_setup
description: Setup names a product that is not in the catalog.
today: "07052020"
setup:
  - date: "07062020"
    orders:
      - {name: A, state: Ohio, product: Marble, area: "100"}
flow:
  - op: lookup
    date: "07062020"
`))
	require.NoError(t, err)

	_, err = Run(scenario)
	assert.ErrorContains(t, err, `unknown product "Marble"`)
}

func TestRun_CustomReferenceData(t *testing.T) {
	scenario, err := ParseScenario([]byte(`
name: custom_reference
description: Scenario supplies its own products and taxes.
today: "07052020"
products:
  - {type: Tile, cost: "3.50", labor: "4.15"}
taxes:
  - {abbreviation: PA, state: Pennsylvania, rate: "6.75"}
flow:
  - op: add
    date: "07062020"
    name: Sample Customer
    state: Pennsylvania
    product: Tile
    area: "100"
    expect:
      result: Success
      total: "816.6375"
  - op: add
    date: "07062020"
    name: Sample Customer
    state: Ohio
    product: Tile
    area: "100"
    expect:
      result: Fail
`))
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	require.Len(t, result.Shards, 1)
	assert.Contains(t, result.Shards[0].Content, "1~Sample Customer~Pennsylvania~6.75~Tile~100~3.50~4.15~350.00~415.00~51.637500~816.637500\n")
}

func TestTraceEvent_String(t *testing.T) {
	tests := []struct {
		ev   TraceEvent
		want string
	}{
		{TraceEvent{Step: 1, Op: OpAdd, Date: "07062020", Result: "Success", OrderNumber: 1, Total: "1051.875000"}, "1 add 07062020: Success order=1 total=1051.875000"},
		{TraceEvent{Step: 2, Op: OpLookup, Date: "07062020", Result: "Success"}, "2 lookup 07062020: Success count=0"},
		{TraceEvent{Step: 3, Op: OpLookup, Date: "x", Result: "Invalid", Message: "Please enter a valid date."}, `3 lookup x: Invalid "Please enter a valid date."`},
		{TraceEvent{Step: 4, Op: OpAdvance, Days: 2}, "4 advance 2d"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ev.String())
	}
}

func TestSnapshot_NoShards(t *testing.T) {
	r := NewResult()
	r.Trace = append(r.Trace, TraceEvent{Step: 1, Op: OpValidate, Date: "07062020", Result: "Success"})

	assert.Equal(t, "# scenario: s\n# trace\n1 validate 07062020: Success\n# no shards\n", string(Snapshot("s", r)))
}
