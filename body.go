package csvdoc

// Body is the ordered collection of rows.
type Body struct {
	rows []Row
}

// NewBody returns a Body holding copies of rows.
func NewBody(rows ...Row) Body {
	b := Body{rows: make([]Row, len(rows))}
	for i, r := range rows {
		b.rows[i] = r.clone()
	}
	return b
}

// Row returns an independent copy of the row at index.
func (b Body) Row(index int) (Row, error) {
	if index < 0 || index >= len(b.rows) {
		return Row{}, &IndexError{Op: "row", Index: index, Bound: len(b.rows)}
	}
	return b.rows[index].clone(), nil
}

// Len returns the number of rows.
func (b Body) Len() int { return len(b.rows) }

// Rows returns copies of every row in order.
func (b Body) Rows() []Row {
	return b.clone().rows
}

func (b Body) clone() Body {
	return NewBody(b.rows...)
}
