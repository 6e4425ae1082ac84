package testutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/roach88/flooring/internal/codec"
	"github.com/roach88/flooring/internal/flatfile"
	"github.com/roach88/flooring/internal/model"
)

// Paths used by fixture filesystems.
const (
	DataDir      = "/data"
	OrdersDir    = "/data/Orders"
	ProductsFile = "/data/Products.txt"
	TaxesFile    = "/data/Taxes.txt"
)

// Wood is priced at 5.15 material and 4.75 labor per square foot.
func Wood() model.Product {
	return model.Product{
		ProductType:            "Wood",
		CostPerSquareFoot:      decimal.RequireFromString("5.15"),
		LaborCostPerSquareFoot: decimal.RequireFromString("4.75"),
	}
}

// Carpet is priced at 2.25 material and 2.10 labor per square foot.
func Carpet() model.Product {
	return model.Product{
		ProductType:            "Carpet",
		CostPerSquareFoot:      decimal.RequireFromString("2.25"),
		LaborCostPerSquareFoot: decimal.RequireFromString("2.10"),
	}
}

// Ohio is taxed at 6.25%.
func Ohio() model.TaxData {
	return model.TaxData{StateAbbreviation: "OH", State: "Ohio", TaxRate: decimal.RequireFromString("6.25")}
}

// NewReferenceFS returns an in-memory filesystem holding ProductsFile and
// TaxesFile. With no arguments it writes Wood, Carpet and Ohio.
func NewReferenceFS(t *testing.T, products []model.Product, taxes []model.TaxData) afero.Fs {
	t.Helper()
	if products == nil {
		products = []model.Product{Wood(), Carpet()}
	}
	if taxes == nil {
		taxes = []model.TaxData{Ohio()}
	}

	fsys := afero.NewMemMapFs()
	WriteRecords(t, fsys, ProductsFile, codec.Codec[model.Product](codec.ProductCodec{}), products...)
	WriteRecords(t, fsys, TaxesFile, codec.Codec[model.TaxData](codec.TaxCodec{}), taxes...)
	require.NoError(t, fsys.MkdirAll(OrdersDir, 0o755))
	return fsys
}

// WriteRecords writes a header-prefixed file holding records.
func WriteRecords[T any](t *testing.T, fsys afero.Fs, path string, c codec.Codec[T], records ...T) {
	t.Helper()
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = c.Encode(r)
	}
	require.NoError(t, flatfile.Write(fsys, path, c.Header(), lines))
}

// ReadFile returns the contents of path, failing the test if it is missing.
func ReadFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	return string(data)
}

// FileExists reports whether path exists.
func FileExists(t *testing.T, fsys afero.Fs, path string) bool {
	t.Helper()
	ok, err := afero.Exists(fsys, path)
	require.NoError(t, err)
	return ok
}
