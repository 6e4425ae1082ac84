package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/roach88/flooring/internal/model"
	"github.com/roach88/flooring/internal/store"
	"github.com/roach88/flooring/internal/testutil"
)

// The fixture clock reads July 5, 2020, so 07062020 is the first future date.
const (
	futureDate = "07062020"
	todayDate  = "07052020"
	pastDate   = "07062017"
)

type fixture struct {
	fs      afero.Fs
	shards  *store.Shards
	clock   *testutil.FixedClock
	factory *Factory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fsys := testutil.NewReferenceFS(t, nil, nil)

	products, err := store.OpenProducts(fsys, testutil.ProductsFile, nil)
	require.NoError(t, err)
	taxes, err := store.OpenTaxes(fsys, testutil.TaxesFile, nil)
	require.NoError(t, err)

	shards := store.NewShards(fsys, testutil.OrdersDir, nil)
	clock := testutil.ClockOn(2020, time.July, 5)

	return &fixture{
		fs:     fsys,
		shards: shards,
		clock:  clock,
		factory: NewFactory(shards, products, taxes,
			WithClock(clock),
			WithSessionIDs(testutil.NewFixedSessionGenerator("")),
		),
	}
}

func (f *fixture) manager(t *testing.T, date string) *Manager {
	t.Helper()
	m, err := f.factory.Create(date)
	require.NoError(t, err)
	return m
}

// seedOrder stores the sample order (Test Customer, 200 sq ft of Carpet in
// Ohio) on date.
func (f *fixture) seedOrder(t *testing.T, date string) model.Order {
	t.Helper()
	st, err := f.shards.Open(date)
	require.NoError(t, err)
	o := model.NewOrder(st.NextOrderNumber(), "Test Customer", decimal.NewFromInt(200), testutil.Ohio(), testutil.Carpet())
	require.NoError(t, st.Add(o))
	return o
}

func (f *fixture) shardExists(t *testing.T, date string) bool {
	t.Helper()
	d, err := model.ParseOrderDate(date)
	require.NoError(t, err)
	ok, err := f.shards.Exists(d)
	require.NoError(t, err)
	return ok
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
