// Package dataset — file-level loaders and numbered dataset resolution.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/palletpack/knapsack"
)

// Paths returns the pallet and truck file paths of dataset n under dir.
func Paths(dir string, n int) (pallets, truck string) {
	return filepath.Join(dir, fmt.Sprintf("Pallets_%02d.csv", n)),
		filepath.Join(dir, fmt.Sprintf("TruckAndPallets_%02d.csv", n))
}

// LoadPallets reads the pallet catalog at path. Errors are prefixed with path.
func LoadPallets(path string) ([]knapsack.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	items, err := ReadPallets(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return items, nil
}

// LoadTruck reads the truck record at path. Errors are prefixed with path.
func LoadTruck(path string) (Truck, error) {
	f, err := os.Open(path)
	if err != nil {
		return Truck{}, err
	}
	defer f.Close()

	t, err := ReadTruck(f)
	if err != nil {
		return Truck{}, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Load reads dataset n from dir and checks it is ready to solve.
//
// Errors:
//   - ErrInvalidNumber for n < 1,
//   - *fs.PathError when a file cannot be opened,
//   - the read errors of ReadPallets / ReadTruck,
//   - ErrItemCountMismatch when the truck's pallet count disagrees with the catalog,
//   - the knapsack validation sentinels (duplicate IDs, bad weights, ...).
func Load(dir string, n int) (*Dataset, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNumber, n)
	}
	palletsPath, truckPath := Paths(dir, n)

	items, err := LoadPallets(palletsPath)
	if err != nil {
		return nil, err
	}
	truck, err := LoadTruck(truckPath)
	if err != nil {
		return nil, err
	}
	if truck.Pallets != len(items) {
		return nil, fmt.Errorf("%w: %s declares %d, %s has %d",
			ErrItemCountMismatch, filepath.Base(truckPath), truck.Pallets, filepath.Base(palletsPath), len(items))
	}
	if err = knapsack.Validate(items, truck.Capacity); err != nil {
		return nil, fmt.Errorf("dataset %02d: %w", n, err)
	}

	return &Dataset{Number: n, Items: items, Truck: truck}, nil
}
