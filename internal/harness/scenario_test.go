package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalScenario = `
name: minimal
description: One lookup.
today: "07052020"
flow:
  - op: lookup
    date: "07062020"
`

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minimal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalScenario), 0o644))

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "minimal", s.Name)
	require.Len(t, s.Flow, 1)
	assert.Equal(t, OpLookup, s.Flow[0].Op)
	assert.Nil(t, s.Flow[0].Expect)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read scenario file")
}

func TestParseScenario_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		errMsg string
	}{
		{
			name:   "unknown field",
			yaml:   minimalScenario + "assertion: []\n",
			errMsg: "failed to parse YAML",
		},
		{
			name:   "missing name",
			yaml:   "description: d\ntoday: \"07052020\"\nflow: [{op: lookup, date: \"07062020\"}]\n",
			errMsg: "name is required",
		},
		{
			name:   "missing description",
			yaml:   "name: n\ntoday: \"07052020\"\nflow: [{op: lookup, date: \"07062020\"}]\n",
			errMsg: "description is required",
		},
		{
			name:   "bad today",
			yaml:   "name: n\ndescription: d\ntoday: \"2020-07-05\"\nflow: [{op: lookup, date: \"07062020\"}]\n",
			errMsg: "today",
		},
		{
			name:   "empty flow",
			yaml:   "name: n\ndescription: d\ntoday: \"07052020\"\nflow: []\n",
			errMsg: "flow list is required",
		},
		{
			name:   "unknown op",
			yaml:   "name: n\ndescription: d\ntoday: \"07052020\"\nflow: [{op: purge, date: \"07062020\"}]\n",
			errMsg: `unknown op "purge"`,
		},
		{
			name:   "missing date",
			yaml:   "name: n\ndescription: d\ntoday: \"07052020\"\nflow: [{op: add}]\n",
			errMsg: "date is required for add",
		},
		{
			name:   "advance without days",
			yaml:   "name: n\ndescription: d\ntoday: \"07052020\"\nflow: [{op: advance}]\n",
			errMsg: "days must be positive",
		},
		{
			name:   "unknown result",
			yaml:   "name: n\ndescription: d\ntoday: \"07052020\"\nflow: [{op: lookup, date: \"07062020\", expect: {result: Maybe}}]\n",
			errMsg: `unknown result "Maybe"`,
		},
		{
			name:   "bad setup date",
			yaml:   "name: n\ndescription: d\ntoday: \"07052020\"\nsetup: [{date: July}]\nflow: [{op: lookup, date: \"07062020\"}]\n",
			errMsg: "setup[0]",
		},
		{
			name:   "order assertion without expect",
			yaml:   minimalScenario + "assertions: [{type: order, date: \"07062020\", number: 1}]\n",
			errMsg: "expect is required for order",
		},
		{
			name:   "unknown assertion",
			yaml:   minimalScenario + "assertions: [{type: trace_order, date: \"07062020\"}]\n",
			errMsg: `unknown assertion type "trace_order"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}
