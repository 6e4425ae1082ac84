// Package store provides the file-backed repositories of the flooring order
// book.
//
// Every repository is an instance of Table, a small keyed collection that
// loads its records from one flat file through a codec.Codec and rewrites the
// whole file on save:
//
//   - OrderStore: one date's orders, keyed by order number. Opened through
//     Shards, which names shard files Orders_MMDDYYYY.txt.
//   - ProductStore and TaxStore: global reference data keyed by product type
//     and state name. Keys are case-folded once, at the store boundary.
//
// # Shard Lifecycle
//
// A shard file moves through exactly these states:
//
//	absent --open--> header-only --add--> populated --remove last--> absent
//
// Opening a shard creates the header-only file. Persisting never creates a
// file: once a shard has been deleted, writes through a stale OrderStore are
// dropped until the shard is opened again.
//
// # Row Errors
//
// Rows with the wrong field count are skipped with a warning. Rows with
// unparseable numbers abort the load with an error.
//
// Stores are not safe for concurrent use. A store is meant to live for one
// session against one date.
package store
