package harness

import (
	"fmt"
	"strings"
)

// TraceEvent records the outcome of one flow step.
type TraceEvent struct {
	Step        int    `json:"step"`
	Op          string `json:"op"`
	Date        string `json:"date,omitempty"`
	Result      string `json:"result,omitempty"`
	Message     string `json:"message,omitempty"`
	OrderNumber int    `json:"order_number,omitempty"`
	Total       string `json:"total,omitempty"`
	Count       int    `json:"count,omitempty"`
	Days        int    `json:"days,omitempty"`
}

// String renders the event as one snapshot line, e.g.
//
//	1 add 07062020: Success order=1 total=1051.875000
func (e TraceEvent) String() string {
	if e.Op == OpAdvance {
		return fmt.Sprintf("%d advance %dd", e.Step, e.Days)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d %s %s: %s", e.Step, e.Op, e.Date, e.Result)
	if e.OrderNumber > 0 {
		fmt.Fprintf(&b, " order=%d", e.OrderNumber)
	}
	if e.Total != "" {
		fmt.Fprintf(&b, " total=%s", e.Total)
	}
	if e.Op == OpLookup && e.Result == "Success" {
		fmt.Fprintf(&b, " count=%d", e.Count)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, " %q", e.Message)
	}
	return b.String()
}

// ShardFile is the final content of one shard file.
type ShardFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every expect clause and assertion held.
	Pass bool `json:"pass"`

	// Trace holds one event per flow step.
	Trace []TraceEvent `json:"trace"`

	// Errors holds the failed expectations. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Shards holds every shard file left after the flow, oldest date first.
	Shards []ShardFile `json:"shards"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
		Shards: []ShardFile{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Pass = false
}
