// Package codec encodes and decodes single record lines of the flooring text
// files.
//
// A line is a fixed, ordered list of fields joined by Separator. There is no
// escaping: a value containing "~" corrupts its row. Customer names cannot
// contain "~" because the engine's name rule rejects it, and reference data
// is maintained by hand.
//
// Decoding has two distinct failure paths that callers must keep apart:
//
//   - Wrong field count: the error matches ErrMalformed. Loaders skip the
//     row and keep going so one damaged line does not hide the rest of a file.
//   - Unparseable numeric field: the error is a *FieldError and does NOT
//     match ErrMalformed. Loaders abort; corrupt numbers are never skipped.
package codec
