// Package dataset — sentinel errors and loaded records.
package dataset

import (
	"errors"

	"github.com/katalvlaran/palletpack/knapsack"
)

// Sentinel errors returned by the loaders.
var (
	// ErrEmptyFile indicates a file without a header line or without the
	// record a truck file must carry.
	ErrEmptyFile = errors.New("dataset: empty file")

	// ErrMissingColumn indicates a header that names some columns but not all.
	ErrMissingColumn = errors.New("dataset: missing column")

	// ErrMalformedRow indicates a row with too few fields or a non-integer value.
	ErrMalformedRow = errors.New("dataset: malformed row")

	// ErrItemCountMismatch indicates a truck record whose declared pallet
	// count differs from the number of rows in the pallet file.
	ErrItemCountMismatch = errors.New("dataset: pallet count mismatch")

	// ErrInvalidNumber indicates a dataset number below 1.
	ErrInvalidNumber = errors.New("dataset: dataset number must be positive")
)

// Truck is the single record of a TruckAndPallets file.
type Truck struct {
	// Capacity is the maximum total pallet weight.
	Capacity int64

	// Pallets is the number of pallets the dataset declares.
	Pallets int
}

// Dataset is one numbered catalog together with its truck.
type Dataset struct {
	Number int
	Items  []knapsack.Item
	Truck  Truck
}
