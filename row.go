package csvdoc

import "slices"

// Cell is a single column name and value pair. It is immutable once created.
type Cell struct {
	column string
	value  string
}

// NewCell returns a Cell holding value under column.
func NewCell(column, value string) Cell {
	return Cell{column: column, value: value}
}

// Column returns the header name the cell belongs to.
func (c Cell) Column() string { return c.column }

// Value returns the cell's text.
func (c Cell) Value() string { return c.value }

// Row is an ordered sequence of cells, one per header column.
// The i-th cell corresponds to the i-th header column.
type Row struct {
	cells []Cell
}

// NewRow builds a Row from cells in column order.
func NewRow(cells ...Cell) Row {
	return Row{cells: slices.Clone(cells)}
}

// Value scans the cells in order and returns the value of the first cell
// whose column matches. It returns a *ColumnError when none match.
func (r Row) Value(column string) (string, error) {
	for _, c := range r.cells {
		if c.column == column {
			return c.value, nil
		}
	}
	return "", &ColumnError{Name: column}
}

// Len returns the number of cells.
func (r Row) Len() int { return len(r.cells) }

// Values returns the cell values in column order.
func (r Row) Values() []string {
	out := make([]string, len(r.cells))
	for i, c := range r.cells {
		out[i] = c.value
	}
	return out
}

// Cells returns a copy of the row's cells.
func (r Row) Cells() []Cell {
	return slices.Clone(r.cells)
}

func (r Row) clone() Row {
	return Row{cells: slices.Clone(r.cells)}
}
