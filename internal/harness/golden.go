package harness

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot renders a result as the text stored in golden files: the trace,
// one line per step, followed by every remaining shard file verbatim.
func Snapshot(name string, result *Result) []byte {
	var b strings.Builder
	b.WriteString("# scenario: " + name + "\n")
	b.WriteString("# trace\n")
	for _, ev := range result.Trace {
		b.WriteString(ev.String())
		b.WriteByte('\n')
	}
	if len(result.Shards) == 0 {
		b.WriteString("# no shards\n")
	}
	for _, f := range result.Shards {
		b.WriteString("# " + f.Name + "\n")
		b.WriteString(f.Content)
	}
	return []byte(b.String())
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// Returns error if the scenario could not run. A snapshot mismatch fails
// the test through goldie.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	AssertGolden(t, scenario.Name, result)
	return result, nil
}

// AssertGolden compares the snapshot of an existing result against a
// golden file.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, Snapshot(name, result))
}
