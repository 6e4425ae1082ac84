package store

import (
	"time"

	"go.uber.org/zap"

	"github.com/roach88/flooring/internal/codec"
	"github.com/roach88/flooring/internal/model"
)

var codecForOrders codec.Codec[model.Order] = codec.OrderCodec{}

func orderKey(o model.Order) int { return o.OrderNumber }

// OrderStore holds the orders of one date. Obtain one from Shards.Open.
type OrderStore struct {
	shards *Shards
	raw    string
	date   time.Time
	table  *Table[int, model.Order]
	log    *zap.Logger
}

// RawDate returns the date the store was opened with, slashes stripped.
func (s *OrderStore) RawDate() string {
	return s.raw
}

// Date returns the parsed shard date, or the zero time when the store was
// opened with an unparseable date.
func (s *OrderStore) Date() time.Time {
	return s.date
}

// Bound reports whether the store is backed by a shard file path.
func (s *OrderStore) Bound() bool {
	return !s.date.IsZero()
}

// Path returns the shard file path, or "" for an unbound store.
func (s *OrderStore) Path() string {
	return s.table.Path()
}

// Len returns the number of orders.
func (s *OrderStore) Len() int {
	return s.table.Len()
}

// All returns the orders in file order.
func (s *OrderStore) All() []model.Order {
	return s.table.All()
}

// GetByNumber returns the order numbered n.
func (s *OrderStore) GetByNumber(n int) (model.Order, bool) {
	return s.table.Get(n)
}

// GetByCustomerName returns every order whose customer name equals name,
// ignoring case.
func (s *OrderStore) GetByCustomerName(name string) []model.Order {
	key := FoldKey(name)
	return s.table.Filter(func(o model.Order) bool {
		return FoldKey(o.CustomerName) == key
	})
}

// NextOrderNumber returns the number the next added order should carry.
func (s *OrderStore) NextOrderNumber() int {
	return model.NextOrderNumber(s.table.rows)
}

// Add appends o and persists. An order whose number is already taken is
// ignored.
func (s *OrderStore) Add(o model.Order) error {
	if !s.table.Insert(o) {
		s.log.Debug("order number already present", zap.Int("order", o.OrderNumber))
		return nil
	}
	s.log.Info("order added", zap.Int("order", o.OrderNumber))
	return s.Persist()
}

// Update replaces the order with o's number and persists. Nothing happens
// when no order has that number.
func (s *OrderStore) Update(o model.Order) error {
	if !s.table.Replace(o) {
		return nil
	}
	s.log.Info("order updated", zap.Int("order", o.OrderNumber))
	return s.Persist()
}

// Remove deletes order n. Removing the last order deletes the shard file
// instead of leaving a header-only file behind.
func (s *OrderStore) Remove(n int) error {
	if !s.table.Remove(n) {
		return nil
	}
	s.log.Info("order removed", zap.Int("order", n))
	if s.table.Len() == 0 {
		if !s.Bound() {
			return nil
		}
		return s.shards.Delete(s.date)
	}
	return s.Persist()
}

// Persist rewrites the shard file with the current orders.
//
// It is a no-op for an unbound store and when the shard file no longer
// exists, so a purged shard is not recreated behind the caller's back.
func (s *OrderStore) Persist() error {
	if !s.Bound() {
		return nil
	}
	ok, err := s.shards.Exists(s.date)
	if err != nil {
		return err
	}
	if !ok {
		s.log.Debug("shard file absent, skipping persist", zap.String("path", s.Path()))
		return nil
	}
	return s.table.Save()
}
