package csvdoc

import "slices"

// Header is the ordered list of column names. Names are not required to be
// unique, but lookups by name resolve to the first match.
type Header struct {
	names []string
}

// NewHeader returns a Header with the given column names.
func NewHeader(names ...string) Header {
	return Header{names: slices.Clone(names)}
}

// Name returns the column name at index.
func (h Header) Name(index int) (string, error) {
	if index < 0 || index >= len(h.names) {
		return "", &IndexError{Op: "header", Index: index, Bound: len(h.names)}
	}
	return h.names[index], nil
}

// Len returns the number of columns.
func (h Header) Len() int { return len(h.names) }

// Names returns a copy of the column names.
func (h Header) Names() []string {
	return slices.Clone(h.names)
}

// Index returns the position of the first column called name.
func (h Header) Index(name string) (int, error) {
	if i := slices.Index(h.names, name); i >= 0 {
		return i, nil
	}
	return -1, &ColumnError{Name: name}
}

// append is only used while decoding, before the header is attached to a Document.
func (h *Header) append(name string) {
	h.names = append(h.names, name)
}

func (h Header) clone() Header {
	return Header{names: slices.Clone(h.names)}
}
