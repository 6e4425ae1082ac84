// Package seed provides sample reference data and the in-memory storage
// mode.
package seed

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"

	"github.com/roach88/flooring/internal/codec"
	"github.com/roach88/flooring/internal/flatfile"
	"github.com/roach88/flooring/internal/model"
	"github.com/roach88/flooring/internal/store"
)

// Catalog is a set of reference records.
type Catalog struct {
	Products []model.Product
	Taxes    []model.TaxData
}

func product(name, cost, labor string) model.Product {
	return model.Product{
		ProductType:            name,
		CostPerSquareFoot:      decimal.RequireFromString(cost),
		LaborCostPerSquareFoot: decimal.RequireFromString(labor),
	}
}

func tax(abbr, state, rate string) model.TaxData {
	return model.TaxData{StateAbbreviation: abbr, State: state, TaxRate: decimal.RequireFromString(rate)}
}

// Default is the catalog written by "flooring init".
func Default() Catalog {
	return Catalog{
		Products: []model.Product{
			product("Carpet", "2.25", "2.10"),
			product("Laminate", "1.75", "2.10"),
			product("Tile", "3.50", "4.15"),
			product("Wood", "5.15", "4.75"),
		},
		Taxes: []model.TaxData{
			tax("OH", "Ohio", "6.25"),
			tax("PA", "Pennsylvania", "6.75"),
			tax("MI", "Michigan", "5.75"),
			tax("IN", "Indiana", "6.00"),
		},
	}
}

// Sample is the small catalog behind memory mode.
func Sample() Catalog {
	return Catalog{
		Products: []model.Product{
			product("Wood", "5.15", "4.75"),
			product("Carpet", "2.25", "2.10"),
		},
		Taxes: []model.TaxData{
			tax("OH", "Ohio", "6.25"),
		},
	}
}

// SampleOrder is the order every memory-mode shard starts with.
func SampleOrder() model.Order {
	return model.NewOrder(1, "Test Customer", decimal.NewFromInt(200), tax("OH", "Ohio", "6.25"), product("Carpet", "2.25", "2.10"))
}

// WriteCatalog writes the product and tax files of c. Existing files are
// left alone. It returns the paths it wrote.
func WriteCatalog(fsys afero.Fs, productsPath, taxesPath string, c Catalog) ([]string, error) {
	var written []string

	ok, err := writeIfAbsent(fsys, productsPath, codec.Codec[model.Product](codec.ProductCodec{}), c.Products)
	if err != nil {
		return written, err
	}
	if ok {
		written = append(written, productsPath)
	}

	ok, err = writeIfAbsent(fsys, taxesPath, codec.Codec[model.TaxData](codec.TaxCodec{}), c.Taxes)
	if err != nil {
		return written, err
	}
	if ok {
		written = append(written, taxesPath)
	}
	return written, nil
}

func writeIfAbsent[T any](fsys afero.Fs, path string, c codec.Codec[T], records []T) (bool, error) {
	exists, err := flatfile.Exists(fsys, path)
	if err != nil || exists {
		return false, err
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = c.Encode(r)
	}
	if err := flatfile.Write(fsys, path, c.Header(), lines); err != nil {
		return false, fmt.Errorf("seed %s: %w", path, err)
	}
	return true, nil
}

// MemoryFS returns an in-memory filesystem holding the Sample catalog.
func MemoryFS(productsPath, taxesPath string) (afero.Fs, error) {
	fsys := afero.NewMemMapFs()
	if _, err := WriteCatalog(fsys, productsPath, taxesPath, Sample()); err != nil {
		return nil, err
	}
	return fsys, nil
}

// SampleShard writes a shard holding SampleOrder for date, unless date is
// unparseable or its shard already exists.
func SampleShard(shards *store.Shards, date string) error {
	d, err := model.ParseOrderDate(date)
	if err != nil {
		return nil
	}
	exists, err := shards.Exists(d)
	if err != nil || exists {
		return err
	}
	line := codec.OrderCodec{}.Encode(SampleOrder())
	return flatfile.Write(shards.FS(), shards.Path(d), codec.OrderHeader, []string{line})
}
