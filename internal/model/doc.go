// Package model defines the flooring order records and the arithmetic that
// derives an order's financials.
//
// # Records
//
//   - Order: one customer order inside a date shard, identified by OrderNumber
//   - Product: reference pricing per product type (material and labor per sq ft)
//   - TaxData: reference tax rate per state
//
// An Order holds value copies of the Product and TaxData it was priced with.
// Later edits to the reference tables never reprice stored orders.
//
// # Order Dates
//
// Order dates are written MMDDYYYY with no separators. Slashes are stripped
// before parsing, so "07/06/2020" and "07062020" name the same shard. Every
// other shape ("07-06-2020", "7/6/2020", "06.01.2013") is rejected.
package model
