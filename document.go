package csvdoc

import (
	"fmt"
	"slices"
)

// Document owns one Header and one Body. Every row holds exactly one cell
// per header column. A Document is not safe for concurrent mutation.
type Document struct {
	header Header
	body   Body
}

// New assembles a Document from a pre-built header and body. It returns a
// *SizeError when a row's width differs from the header and a *ColumnError
// when a cell's column disagrees with the header name at the same position.
func New(header Header, body Body) (*Document, error) {
	width := header.Len()
	for i, r := range body.rows {
		if len(r.cells) != width {
			return nil, fmt.Errorf("csvdoc: row %d: %w", i, &SizeError{Expected: width, Actual: len(r.cells)})
		}
		for j, c := range r.cells {
			if c.column != header.names[j] {
				return nil, fmt.Errorf("csvdoc: row %d, field %d: %w", i, j+1, &ColumnError{Name: c.column})
			}
		}
	}
	return &Document{header: header.clone(), body: body.clone()}, nil
}

// Value returns the value stored under column in the row at rowIndex.
func (d *Document) Value(column string, rowIndex int) (string, error) {
	row, err := d.body.Row(rowIndex)
	if err != nil {
		return "", fmt.Errorf("csvdoc: get %q at row %d: %w", column, rowIndex, err)
	}
	v, err := row.Value(column)
	if err != nil {
		return "", fmt.Errorf("csvdoc: get %q at row %d: %w", column, rowIndex, err)
	}
	return v, nil
}

// Append adds a row built from values at the end of the body.
func (d *Document) Append(values []string) error {
	row, err := d.buildRow(values)
	if err != nil {
		return err
	}
	d.body.rows = append(d.body.rows, row)
	return nil
}

// Insert places a row built from values at index, shifting later rows down.
// Any index from 0 to Len() is valid; inserting at Len() appends.
func (d *Document) Insert(index int, values []string) error {
	row, err := d.buildRow(values)
	if err != nil {
		return err
	}
	if index < 0 || index > len(d.body.rows) {
		return &IndexError{Op: "insert", Index: index, Bound: len(d.body.rows), Inclusive: true}
	}
	d.body.rows = slices.Insert(d.body.rows, index, row)
	return nil
}

// Update replaces the row at index with one built from values.
func (d *Document) Update(index int, values []string) error {
	row, err := d.buildRow(values)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(d.body.rows) {
		return &IndexError{Op: "update", Index: index, Bound: len(d.body.rows)}
	}
	d.body.rows[index] = row
	return nil
}

// Remove deletes the row at index, shifting later rows up.
func (d *Document) Remove(index int) error {
	if index < 0 || index >= len(d.body.rows) {
		return &IndexError{Op: "remove", Index: index, Bound: len(d.body.rows)}
	}
	d.body.rows = slices.Delete(d.body.rows, index, index+1)
	return nil
}

// Header returns a snapshot of the header.
func (d *Document) Header() Header { return d.header.clone() }

// Body returns a snapshot of the body.
func (d *Document) Body() Body { return d.body.clone() }

// Len returns the number of rows.
func (d *Document) Len() int { return len(d.body.rows) }

// Width returns the number of columns.
func (d *Document) Width() int { return len(d.header.names) }

// Row returns a snapshot of the row at index.
func (d *Document) Row(index int) (Row, error) {
	return d.body.Row(index)
}

// Column returns every value of the named column in row order.
func (d *Document) Column(name string) ([]string, error) {
	i, err := d.header.Index(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(d.body.rows))
	for j, r := range d.body.rows {
		out[j] = r.cells[i].value
	}
	return out, nil
}

// Records returns the body as a matrix of values, without the header.
func (d *Document) Records() [][]string {
	out := make([][]string, len(d.body.rows))
	for i, r := range d.body.rows {
		out[i] = r.Values()
	}
	return out
}

// buildRow zips values with the header names, failing with a *SizeError when
// the counts differ.
func (d *Document) buildRow(values []string) (Row, error) {
	if len(values) != len(d.header.names) {
		return Row{}, &SizeError{Expected: len(d.header.names), Actual: len(values)}
	}
	cells := make([]Cell, len(values))
	for i, v := range values {
		cells[i] = Cell{column: d.header.names[i], value: v}
	}
	return Row{cells: cells}, nil
}
