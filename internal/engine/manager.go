package engine

import (
	"fmt"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/roach88/flooring/internal/model"
)

// Response messages.
const (
	MsgInvalidDate   = "Please enter a valid date."
	MsgOrderNotFound = "Could not find order."

	msgStateNotServed   = "We can't sell to the state: %s"
	msgNoSuchProduct    = "Product doesn't exist: %s"
	msgDateNotFuture    = "Date must be later than today's date: %s"
	msgInvalidName      = "Invalid customer name input."
	msgNegativeArea     = "Area value must be a positive decimal."
	msgAreaTooSmall     = "Area value must be 100 or higher."
	msgEditNoOrder      = "Couldn't find order with that number."
	msgEditInvalidName  = "Invalid customer name. Check special characters."
	msgEditInvalidState = "Invalid state."
	msgEditNoProduct    = "Invalid product type."
	msgEditNegativeArea = "Area must be a positive decimal."
	msgEditAreaTooSmall = "Area must be at least 100 sq ft."
)

// MinArea is the smallest orderable area in square feet.
var MinArea = decimal.NewFromInt(100)

// displayDateLayout renders today's date in Fail messages.
const displayDateLayout = "01/02/2006"

// Manager applies the order rules to one date's order book.
type Manager struct {
	orders   OrderBook
	products ProductCatalog
	taxes    TaxTable
	purger   ShardPurger
	clock    Clock
	session  string
	log      *zap.Logger
}

// New binds a Manager to orders and the reference catalogs. purger deletes
// stale and orphaned shard files.
func New(orders OrderBook, products ProductCatalog, taxes TaxTable, purger ShardPurger, opts ...Option) *Manager {
	s := newSettings(opts)
	session := s.ids.Generate()
	return &Manager{
		orders:   orders,
		products: products,
		taxes:    taxes,
		purger:   purger,
		clock:    s.clock,
		session:  session,
		log: s.log.With(
			zap.String("session", session),
			zap.String("date", orders.RawDate()),
		),
	}
}

// SessionID returns the id attached to this Manager's log lines.
func (m *Manager) SessionID() string {
	return m.session
}

// Orders returns the bound order book.
func (m *Manager) Orders() OrderBook {
	return m.orders
}

// ValidateDate parses date, purging its shard when it is not in the future.
// The result is Success or Invalid.
func (m *Manager) ValidateDate(date string) (Response, error) {
	var resp Response
	if _, err := m.parseDate(&resp, date, m.clock.Now()); err != nil {
		return resp, m.opError("validate", date, 0, err)
	}
	return resp, nil
}

// AddOrder creates an order on the bound date.
//
// Checks run in order and the first failure wins: date parses (Invalid),
// state is served, product exists, date is after today, customer name is
// valid, area is not negative, area is at least MinArea. After any Fail the
// shard file is deleted if the order book is still empty.
func (m *Manager) AddOrder(customerName, state, productType string, area decimal.Decimal) (AddOrderResponse, error) {
	var resp AddOrderResponse
	raw := m.orders.RawDate()
	now := m.clock.Now()

	date, err := m.parseDate(&resp.Response, raw, now)
	if err != nil {
		return resp, m.opError("add", raw, 0, err)
	}
	if resp.Result == Invalid {
		return resp, nil
	}

	tax, taxOK := m.taxes.Get(state)
	product, productOK := m.products.Get(productType)

	switch {
	case !taxOK:
		resp.fail(fmt.Sprintf(msgStateNotServed, state))
	case !productOK:
		resp.fail(fmt.Sprintf(msgNoSuchProduct, productType))
	case !model.IsFutureDate(date, now):
		resp.fail(fmt.Sprintf(msgDateNotFuture, now.Format(displayDateLayout)))
	case !ValidCustomerName(customerName):
		resp.fail(msgInvalidName)
	case area.IsNegative():
		resp.fail(msgNegativeArea)
	case area.LessThan(MinArea):
		resp.fail(msgAreaTooSmall)
	}

	if resp.Result == Fail {
		m.log.Debug("add rejected", zap.String("reason", resp.Message))
		if m.orders.Len() == 0 {
			if err := m.purger.Delete(date); err != nil {
				return resp, m.opError("add", raw, 0, err)
			}
		}
		return resp, nil
	}

	order := model.NewOrder(m.orders.NextOrderNumber(), customerName, area, tax, product)
	if err := m.orders.Add(order); err != nil {
		return resp, m.opError("add", raw, order.OrderNumber, err)
	}

	resp.Order = order
	m.log.Debug("order added", zap.Int("order", order.OrderNumber), zap.String("total", order.Total.String()))
	return resp, nil
}

// EditOrder replaces order orderNumber with an order built from the new
// values. The replacement keeps the order number and has its costs
// recomputed.
//
// Checks run in order: date parses (Invalid), order exists, customer name
// is valid, state is served, product exists, area is not negative, area is
// at least MinArea.
func (m *Manager) EditOrder(date string, orderNumber int, customerName, state, productType string, area decimal.Decimal) (EditOrderResponse, error) {
	var resp EditOrderResponse

	if _, err := m.parseDate(&resp.Response, date, m.clock.Now()); err != nil {
		return resp, m.opError("edit", date, orderNumber, err)
	}
	if resp.Result == Invalid {
		return resp, nil
	}

	if _, ok := m.orders.GetByNumber(orderNumber); !ok {
		resp.fail(msgEditNoOrder)
		return resp, nil
	}
	if !ValidCustomerName(customerName) {
		resp.fail(msgEditInvalidName)
		return resp, nil
	}
	tax, ok := m.taxes.Get(state)
	if !ok {
		resp.fail(msgEditInvalidState)
		return resp, nil
	}
	product, ok := m.products.Get(productType)
	if !ok {
		resp.fail(msgEditNoProduct)
		return resp, nil
	}
	if area.IsNegative() {
		resp.fail(msgEditNegativeArea)
		return resp, nil
	}
	if area.LessThan(MinArea) {
		resp.fail(msgEditAreaTooSmall)
		return resp, nil
	}

	updated := model.NewOrder(orderNumber, customerName, area, tax, product)
	if err := m.orders.Update(updated); err != nil {
		return resp, m.opError("edit", date, orderNumber, err)
	}

	resp.Order = updated
	m.log.Debug("order edited", zap.Int("order", orderNumber))
	return resp, nil
}

// RemoveOrder deletes order orderNumber. Removing the last order of a date
// deletes its shard file.
func (m *Manager) RemoveOrder(date string, orderNumber int) (RemoveOrderResponse, error) {
	var resp RemoveOrderResponse

	if _, err := m.parseDate(&resp.Response, date, m.clock.Now()); err != nil {
		return resp, m.opError("remove", date, orderNumber, err)
	}
	if resp.Result == Invalid {
		return resp, nil
	}

	if _, ok := m.orders.GetByNumber(orderNumber); !ok {
		resp.fail(MsgOrderNotFound)
		return resp, nil
	}
	if err := m.orders.Remove(orderNumber); err != nil {
		return resp, m.opError("remove", date, orderNumber, err)
	}

	resp.OrderNumber = orderNumber
	m.log.Debug("order removed", zap.Int("order", orderNumber))
	return resp, nil
}

// LookupOrders returns every order of the bound date. An empty order book
// is still Success.
func (m *Manager) LookupOrders(date string) (LookupResponse, error) {
	var resp LookupResponse

	if _, err := m.parseDate(&resp.Response, date, m.clock.Now()); err != nil {
		return resp, m.opError("lookup", date, 0, err)
	}
	if resp.Result == Invalid {
		return resp, nil
	}

	resp.Orders = m.orders.All()
	return resp, nil
}

// parseDate parses raw into resp. An unparseable date sets Invalid. A date
// that is not strictly after now has its shard deleted.
func (m *Manager) parseDate(resp *Response, raw string, now time.Time) (time.Time, error) {
	date, err := model.ParseOrderDate(raw)
	if err != nil {
		resp.Result = Invalid
		resp.Message = MsgInvalidDate
		m.log.Debug("invalid order date", zap.String("input", raw))
		return time.Time{}, nil
	}

	resp.Date = date
	if !model.IsFutureDate(date, now) {
		if err := m.purger.Delete(date); err != nil {
			return date, err
		}
	}
	return date, nil
}

func (m *Manager) opError(op, date string, orderNumber int, err error) error {
	m.log.Error("storage fault", zap.String("op", op), zap.Error(err))
	return &OperationError{Op: op, Date: date, OrderNumber: orderNumber, Err: err}
}

// ValidCustomerName reports whether name holds only letters, digits,
// commas, periods and spaces. The empty name is valid.
func ValidCustomerName(name string) bool {
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		switch r {
		case ',', '.', ' ':
			continue
		}
		return false
	}
	return true
}
