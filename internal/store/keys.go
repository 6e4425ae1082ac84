package store

import (
	"golang.org/x/text/cases"
)

// FoldKey returns the case-insensitive lookup key for s.
func FoldKey(s string) string {
	return cases.Fold().String(s)
}
