package csvdoc

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
)

var errNilDocument = errors.New("csvdoc: document is nil")

// Codec reads and writes Documents. The zero value uses ',' as the field
// delimiter and logs through slog.Default.
type Codec struct {
	// Comma is the field delimiter. Default is ','.
	Comma byte
	// Logger receives debug records for file reads and writes. Nil means slog.Default().
	Logger *slog.Logger
}

// ReadFile parses the file at path with the default Codec.
func ReadFile(path string) (*Document, error) {
	return Codec{}.ReadFile(path)
}

// WriteFile serializes doc to path with the default Codec.
func WriteFile(path string, doc *Document) error {
	return Codec{}.WriteFile(path, doc)
}

// Decode parses a Document from src with the default Codec.
func Decode(src io.Reader) (*Document, error) {
	return Codec{}.Decode(src)
}

// Encode writes doc to dst with the default Codec.
func Encode(dst io.Writer, doc *Document) error {
	return Codec{}.Encode(dst, doc)
}

// ReadFile opens path and decodes it. The file is closed before returning.
func (c Codec) ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	doc, err := c.decode(f, path)
	if err != nil {
		return nil, err
	}
	c.logger().Debug("csvdoc: read document", "path", path, "columns", doc.Width(), "rows", doc.Len())
	return doc, nil
}

// WriteFile serializes doc to path. A missing file is created with mode 0644;
// an existing file is truncated before writing so no bytes of the previous
// content survive.
func (c Codec) WriteFile(path string, doc *Document) (err error) {
	if doc == nil {
		return errNilDocument
	}

	op := "open"
	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		op = "create"
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return &IOError{Op: op, Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: cerr}
		}
		if err == nil {
			c.logger().Debug("csvdoc: wrote document", "path", path, "columns", doc.Width(), "rows", doc.Len())
		}
	}()

	return c.encode(f, path, doc)
}

// Decode parses a Document from src. The first record becomes the header and
// every following record a row matched positionally against it.
func (c Codec) Decode(src io.Reader) (*Document, error) {
	return c.decode(src, "")
}

// Encode writes the header line followed by every row, then flushes.
func (c Codec) Encode(dst io.Writer, doc *Document) error {
	if doc == nil {
		return errNilDocument
	}
	return c.encode(dst, "", doc)
}

func (c Codec) decode(src io.Reader, path string) (*Document, error) {
	r := NewReader(src)
	r.Comma = c.Comma

	names, err := r.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, readError(path, err)
	}

	var header Header
	for _, name := range names {
		header.append(name)
	}
	width := header.Len()

	var body Body
	// blankLine holds the first line of a run of blank lines, which is only
	// acceptable when nothing but blank lines follows it.
	blankLine := 0
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, readError(path, err)
		}
		line := r.Line()

		if width > 1 && len(fields) == 1 && fields[0] == "" {
			if blankLine == 0 {
				blankLine = line
			}
			continue
		}
		if blankLine != 0 {
			return nil, &ParseError{Line: blankLine, Err: &SizeError{Expected: width, Actual: 1}}
		}

		cells := make([]Cell, 0, width)
		for i, field := range fields {
			name, err := header.Name(i)
			if err != nil {
				return nil, &ParseError{Line: line, Field: i + 1, Err: err}
			}
			cells = append(cells, Cell{column: name, value: field})
		}
		if len(cells) != width {
			return nil, &ParseError{Line: line, Err: &SizeError{Expected: width, Actual: len(cells)}}
		}
		body.rows = append(body.rows, Row{cells: cells})
	}

	return &Document{header: header, body: body}, nil
}

func (c Codec) encode(dst io.Writer, path string, doc *Document) error {
	w := NewWriter(dst)
	w.Comma = c.Comma

	if err := w.Write(doc.header.names); err != nil {
		return writeError("write", path, err)
	}
	record := make([]string, len(doc.header.names))
	for _, row := range doc.body.rows {
		for i, cell := range row.cells {
			record[i] = cell.value
		}
		if err := w.Write(record); err != nil {
			return writeError("write", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return writeError("flush", path, err)
	}
	return nil
}

func (c Codec) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func readError(path string, err error) error {
	if errors.Is(err, ErrInvalidDelimiter) {
		return err
	}
	return &IOError{Op: "read", Path: path, Err: err}
}

func writeError(op, path string, err error) error {
	if errors.Is(err, ErrInvalidDelimiter) {
		return err
	}
	return &IOError{Op: op, Path: path, Err: err}
}
