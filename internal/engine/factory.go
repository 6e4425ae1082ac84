package engine

import (
	"github.com/roach88/flooring/internal/model"
	"github.com/roach88/flooring/internal/store"
)

// Factory builds Managers over one shard directory and one pair of
// reference stores.
type Factory struct {
	shards   *store.Shards
	products *store.ProductStore
	taxes    *store.TaxStore
	opts     []Option
}

// NewFactory returns a Factory. opts are passed to every Manager it builds.
func NewFactory(shards *store.Shards, products *store.ProductStore, taxes *store.TaxStore, opts ...Option) *Factory {
	return &Factory{
		shards:   shards,
		products: products,
		taxes:    taxes,
		opts:     opts,
	}
}

// Create opens the order shard for date and binds a new Manager to it.
// An unparseable date still yields a Manager; its operations report Invalid.
func (f *Factory) Create(date string) (*Manager, error) {
	orders, err := f.shards.Open(date)
	if err != nil {
		return nil, err
	}
	return New(orders, f.products, f.taxes, f.shards, f.opts...), nil
}

// Products returns every product, for choice lists.
func (f *Factory) Products() []model.Product {
	return f.products.Data()
}

// Taxes returns every served state, for choice lists.
func (f *Factory) Taxes() []model.TaxData {
	return f.taxes.Data()
}
