package store

import (
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/roach88/flooring/internal/codec"
	"github.com/roach88/flooring/internal/model"
)

// ReferenceStore is a global, case-insensitively keyed collection of
// reference records loaded once from a file that must already exist.
type ReferenceStore[T any] struct {
	table *Table[string, T]
	name  func(T) string
	log   *zap.Logger
}

// ProductStore holds products keyed by product type.
type ProductStore = ReferenceStore[model.Product]

// TaxStore holds tax data keyed by state name.
type TaxStore = ReferenceStore[model.TaxData]

// OpenProducts loads the product file at path.
func OpenProducts(fs afero.Fs, path string, log *zap.Logger) (*ProductStore, error) {
	return openReference(fs, path, codec.ProductCodec{}, func(p model.Product) string { return p.ProductType }, log)
}

// OpenTaxes loads the tax file at path.
func OpenTaxes(fs afero.Fs, path string, log *zap.Logger) (*TaxStore, error) {
	return openReference(fs, path, codec.TaxCodec{}, func(t model.TaxData) string { return t.State }, log)
}

func openReference[T any](fs afero.Fs, path string, c codec.Codec[T], name func(T) string, log *zap.Logger) (*ReferenceStore[T], error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("path", path))

	key := func(r T) string { return FoldKey(name(r)) }
	t := NewTable(fs, path, c, key, log)
	if err := t.Load(); err != nil {
		return nil, fmt.Errorf("load reference data: %w", err)
	}
	log.Debug("reference data loaded", zap.Int("rows", t.Len()))
	return &ReferenceStore[T]{table: t, name: name, log: log}, nil
}

// Data returns every record in file order, for building choice lists.
func (s *ReferenceStore[T]) Data() []T {
	return s.table.All()
}

// GetAll is Data.
func (s *ReferenceStore[T]) GetAll() []T {
	return s.table.All()
}

// Get returns the record named name, ignoring case.
func (s *ReferenceStore[T]) Get(name string) (T, bool) {
	return s.table.Get(FoldKey(name))
}

// Add appends r in memory unless its name is already taken, and reports
// whether it was added. Call Save to persist.
func (s *ReferenceStore[T]) Add(r T) bool {
	return s.table.Insert(r)
}

// Update replaces the record sharing r's name and persists the file.
// It reports whether a record was replaced.
func (s *ReferenceStore[T]) Update(r T) (bool, error) {
	if !s.table.Replace(r) {
		return false, nil
	}
	s.log.Info("reference record updated", zap.String("key", s.name(r)))
	return true, s.table.Save()
}

// Delete removes the record named name from memory and reports whether one
// was removed. Call Save to persist.
func (s *ReferenceStore[T]) Delete(name string) bool {
	return s.table.Remove(FoldKey(name))
}

// Save rewrites the reference file.
func (s *ReferenceStore[T]) Save() error {
	return s.table.Save()
}

// Path returns the reference file path.
func (s *ReferenceStore[T]) Path() string {
	return s.table.Path()
}
