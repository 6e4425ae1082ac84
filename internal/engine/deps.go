package engine

import (
	"time"

	"github.com/roach88/flooring/internal/model"
)

// OrderBook is the order collection of one date. *store.OrderStore
// implements it.
type OrderBook interface {
	RawDate() string
	Len() int
	All() []model.Order
	GetByNumber(n int) (model.Order, bool)
	NextOrderNumber() int
	Add(o model.Order) error
	Update(o model.Order) error
	Remove(n int) error
}

// ProductCatalog looks up products by type, ignoring case.
type ProductCatalog interface {
	Get(productType string) (model.Product, bool)
}

// TaxTable looks up tax data by state name, ignoring case.
type TaxTable interface {
	Get(state string) (model.TaxData, bool)
}

// ShardPurger deletes the order shard of a date. *store.Shards implements it.
type ShardPurger interface {
	Delete(date time.Time) error
}
