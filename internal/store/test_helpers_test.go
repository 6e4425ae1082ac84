package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/roach88/flooring/internal/codec"
	"github.com/roach88/flooring/internal/model"
)

const ordersDir = "/data/Orders"

// createTestShards returns a shard directory on a fresh in-memory filesystem.
func createTestShards(t *testing.T) *Shards {
	t.Helper()
	return NewShards(afero.NewMemMapFs(), ordersDir, nil)
}

// createTestOrder prices a Wood order shipped to Ohio.
func createTestOrder(number int, name, area string) model.Order {
	wood := model.Product{
		ProductType:            "Wood",
		CostPerSquareFoot:      decimal.RequireFromString("5.15"),
		LaborCostPerSquareFoot: decimal.RequireFromString("4.75"),
	}
	ohio := model.TaxData{StateAbbreviation: "OH", State: "Ohio", TaxRate: decimal.RequireFromString("6.25")}
	return model.NewOrder(number, name, decimal.RequireFromString(area), ohio, wood)
}

// writeFile writes header plus lines to path.
func writeFile(t *testing.T, fs afero.Fs, path, header string, lines ...string) {
	t.Helper()
	content := header + "\n"
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

// readFile returns the contents of path.
func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func orderLine(o model.Order) string {
	return codec.OrderCodec{}.Encode(o)
}
