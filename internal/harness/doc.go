// Package harness runs conformance scenarios against the order engine.
//
// A scenario is a YAML file naming a fixed "today", the reference data, any
// orders to preload, and a flow of engine operations with expected
// outcomes. Each run uses a fresh in-memory filesystem, a fixed clock and a
// fixed session id, so the same scenario always produces the same trace and
// the same shard files.
//
// After a run the trace and the final contents of every shard file can be
// compared against a golden snapshot in testdata/golden. To regenerate
// snapshots:
//
//	go test ./internal/harness -update
package harness
