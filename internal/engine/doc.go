// Package engine implements the order rule engine.
//
// A Manager is bound to one date's order book and to the global product and
// tax catalogs. Every operation validates its inputs in a fixed order, stops
// at the first failure, and reports the outcome as a Result of Success, Fail
// or Invalid. Storage faults are returned as Go errors alongside the
// response and are never folded into Fail.
//
// Parsing an order date has a side effect: when the date is not strictly
// after today, the shard file for that date is deleted. Every operation
// parses its date, so any touch of a stale date purges it.
package engine
