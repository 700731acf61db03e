// Package dataset — CSV readers for pallet and truck files.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/katalvlaran/palletpack/knapsack"
)

// columns maps the pallet fields to record positions.
type columns struct {
	id, weight, profit int
}

// width is the minimum number of fields a row must carry.
func (c columns) width() int {
	return max(c.id, c.weight, c.profit) + 1
}

// positional is the layout used when the header names no known column.
var positional = columns{id: 0, weight: 1, profit: 2}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	return cr
}

// readHeader consumes the header line. An input without one is ErrEmptyFile.
func readHeader(cr *csv.Reader) ([]string, error) {
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformedRow, err)
	}

	return header, nil
}

// locateColumns finds the pallet columns by header name. A header naming
// none of them falls back to the positional layout; a header naming only
// some of them is ErrMissingColumn.
func locateColumns(header []string) (columns, error) {
	c := columns{id: -1, weight: -1, profit: -1}
	for i, raw := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff")))
		switch {
		case c.id < 0 && (strings.Contains(name, "pallet") || name == "id"):
			c.id = i
		case c.weight < 0 && strings.Contains(name, "weight"):
			c.weight = i
		case c.profit < 0 && strings.Contains(name, "profit"):
			c.profit = i
		}
	}

	found := 0
	var missing []string
	for _, f := range []struct {
		name string
		pos  int
	}{{"id", c.id}, {"weight", c.weight}, {"profit", c.profit}} {
		if f.pos >= 0 {
			found++
		} else {
			missing = append(missing, f.name)
		}
	}
	switch found {
	case 0:
		return positional, nil
	case 3:
		return c, nil
	default:
		return columns{}, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
}

// field parses record[pos] as a base-10 integer of the given bit size.
func field(rec []string, pos int, name string, line, bitSize int) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(rec[pos]), 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d, column %q: %q is not an integer", ErrMalformedRow, line, name, rec[pos])
	}

	return v, nil
}

// ReadPallets parses a pallet catalog. Items keep file order.
//
// Every malformed row contributes one error; the combined error (see
// multierr.Errors) is returned with a nil catalog.
func ReadPallets(r io.Reader) ([]knapsack.Item, error) {
	cr := newReader(r)
	header, err := readHeader(cr)
	if err != nil {
		return nil, err
	}
	cols, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	var (
		items = make([]knapsack.Item, 0, 64)
		errs  error
		rec   []string
		line  int
	)
	for {
		rec, err = cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Syntax errors leave the reader at an unreliable position.
			errs = multierr.Append(errs, fmt.Errorf("%w: %v", ErrMalformedRow, err))
			break
		}
		line, _ = cr.FieldPos(0)
		if len(rec) < cols.width() {
			errs = multierr.Append(errs, fmt.Errorf("%w: line %d: want %d fields, got %d",
				ErrMalformedRow, line, cols.width(), len(rec)))
			continue
		}

		id, idErr := field(rec, cols.id, "id", line, strconv.IntSize)
		w, wErr := field(rec, cols.weight, "weight", line, 64)
		p, pErr := field(rec, cols.profit, "profit", line, 64)
		if rowErr := multierr.Combine(idErr, wErr, pErr); rowErr != nil {
			errs = multierr.Append(errs, rowErr)
			continue
		}
		items = append(items, knapsack.Item{ID: int(id), Weight: w, Profit: p})
	}
	if errs != nil {
		return nil, errs
	}

	return items, nil
}

// ReadTruck parses a truck file: a header, then exactly one
// (capacity, pallets) record.
func ReadTruck(r io.Reader) (Truck, error) {
	cr := newReader(r)
	if _, err := readHeader(cr); err != nil {
		return Truck{}, err
	}

	rec, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Truck{}, fmt.Errorf("%w: no truck record", ErrEmptyFile)
	}
	if err != nil {
		return Truck{}, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}
	line, _ := cr.FieldPos(0)
	if len(rec) < 2 {
		return Truck{}, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrMalformedRow, line, len(rec))
	}

	capacity, capErr := field(rec, 0, "capacity", line, 64)
	pallets, palErr := field(rec, 1, "pallets", line, strconv.IntSize)
	if err = multierr.Combine(capErr, palErr); err != nil {
		return Truck{}, err
	}

	switch _, err = cr.Read(); {
	case err == nil:
		next, _ := cr.FieldPos(0)
		return Truck{}, fmt.Errorf("%w: line %d: more than one truck record", ErrMalformedRow, next)
	case !errors.Is(err, io.EOF):
		return Truck{}, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}

	return Truck{Capacity: capacity, Pallets: int(pallets)}, nil
}
