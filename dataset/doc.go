// Package dataset loads pallet catalogs and truck records from CSV files.
//
// Two files describe one numbered dataset:
//
//   - Pallets_NN.csv         — header line, then one pallet per row.
//     Columns are located by header name ("pallet" or "id", "weight",
//     "profit"); when no header name is recognised the columns are read
//     positionally as id, weight, profit.
//
//   - TruckAndPallets_NN.csv — header line, then a single row holding the
//     truck capacity and the declared number of pallets.
//
// NN is the dataset number, zero-padded to two digits (Pallets_07.csv,
// Pallets_12.csv).
//
// Every malformed row is reported, not just the first: row errors are
// combined with go.uber.org/multierr and each wraps ErrMalformedRow with
// its line and column. A failed load returns no partial data.
//
// Load additionally checks the pallet count declared by the truck record
// and runs knapsack.Validate, so a Dataset that loads without error can be
// handed to any solver.
package dataset
