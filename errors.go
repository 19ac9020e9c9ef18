package csvdoc

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when a row or column index falls outside the valid range.
	ErrIndexOutOfRange = errors.New("csvdoc: index out of range")
	// ErrSizeMismatch is returned when a value count does not match the header width.
	ErrSizeMismatch = errors.New("csvdoc: value count does not match header")
	// ErrColumnNotFound is returned when a column name is not present.
	ErrColumnNotFound = errors.New("csvdoc: column not found")
	// ErrNoHeader is returned when the input holds no header line.
	ErrNoHeader = errors.New("csvdoc: missing header line")
	// ErrInvalidDelimiter is returned when the field delimiter is a record terminator.
	ErrInvalidDelimiter = errors.New("csvdoc: invalid field delimiter")
)

// Kind classifies an error returned by this package.
type Kind int

const (
	KindUnknown Kind = iota
	KindIO
	KindSizeMismatch
	KindIndexOutOfRange
	KindColumnNotFound
	KindParse
)

var kindNames = [...]string{
	KindUnknown:         "unknown",
	KindIO:              "io",
	KindSizeMismatch:    "size mismatch",
	KindIndexOutOfRange: "index out of range",
	KindColumnNotFound:  "column not found",
	KindParse:           "parse",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// KindOf walks the chain of err and reports the most specific classification.
// Structural kinds win over KindParse, so a ParseError wrapping a SizeError
// reports KindSizeMismatch.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrSizeMismatch):
		return KindSizeMismatch
	case errors.Is(err, ErrIndexOutOfRange):
		return KindIndexOutOfRange
	case errors.Is(err, ErrColumnNotFound):
		return KindColumnNotFound
	}
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return KindIO
	}
	var perr *ParseError
	if errors.As(err, &perr) || errors.Is(err, ErrNoHeader) {
		return KindParse
	}
	return KindUnknown
}

// IndexError reports an index outside [0, Bound), or [0, Bound] when Inclusive is set.
type IndexError struct {
	Op        string
	Index     int
	Bound     int
	Inclusive bool
}

// Error formats the offending index together with the valid range.
func (e *IndexError) Error() string {
	if e == nil {
		return ""
	}
	closing := ")"
	if e.Inclusive {
		closing = "]"
	}
	prefix := "csvdoc: "
	if e.Op != "" {
		prefix += e.Op + ": "
	}
	return fmt.Sprintf("%sindex %d out of range [0,%d%s", prefix, e.Index, e.Bound, closing)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrIndexOutOfRange
}

// SizeError reports a value count that differs from the header width.
type SizeError struct {
	Expected int
	Actual   int
}

func (e *SizeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("csvdoc: expected %d values, got %d", e.Expected, e.Actual)
}

// Unwrap returns ErrSizeMismatch.
func (e *SizeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrSizeMismatch
}

// ColumnError reports a column name that could not be resolved.
type ColumnError struct {
	Name string
}

func (e *ColumnError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("csvdoc: column %q not found", e.Name)
}

// Unwrap returns ErrColumnNotFound.
func (e *ColumnError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrColumnNotFound
}

// IOError records which file operation failed. Op is one of
// "open", "create", "read", "write", "flush" or "close".
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path == "" {
		return fmt.Sprintf("csvdoc: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("csvdoc: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying platform error.
func (e *IOError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError contains location information for decoding errors.
// Line is 1-based; Field is the 1-based field position, or 0 when the
// error concerns the whole line.
type ParseError struct {
	Line  int
	Field int
	Err   error
}

// Error formats the parse error message with the stored line, field, and Err values.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == 0 {
		return fmt.Sprintf("csvdoc: parse error on line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("csvdoc: parse error on line %d, field %d: %v", e.Line, e.Field, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Unwrap.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
