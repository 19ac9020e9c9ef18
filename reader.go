package csvdoc

import (
	"bytes"
	"io"
	"unsafe"
)

const defaultBufferSize = 1 << 10 // 1024 bytes

// Reader splits delimited text into records. Records end at '\n' and fields
// end at Comma. There is no quoting: a delimiter inside a value splits it,
// and '\r' is kept as ordinary data.
type Reader struct {
	src io.Reader

	// Comma is the field delimiter. Default is ','.
	Comma byte
	// ReuseRecord indicates whether Read should reuse the backing array of the returned slice.
	ReuseRecord bool

	buf    []byte
	bufPos int
	bufLen int
	bufErr error

	record      []string
	dataBuf     []byte
	fieldBounds []int
	finished    bool
	line        int
	recordLine  int
}

// NewReader creates a Reader that consumes delimited data from r, panicking if r is nil.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		panic("csvdoc: reader source cannot be nil")
	}

	return &Reader{
		src:         r,
		Comma:       ',',
		buf:         make([]byte, defaultBufferSize),
		record:      make([]string, 0, 16),
		dataBuf:     make([]byte, 0, 512),
		fieldBounds: make([]int, 0, 32),
		line:        1,
	}
}

// Line returns the 1-based line on which the most recently read record started.
func (r *Reader) Line() int {
	if r == nil {
		return 0
	}
	return r.recordLine
}

// Read returns the fields of the next record. io.EOF signals that no more
// records remain; any other error comes from the underlying source.
func (r *Reader) Read() (dst []string, err error) {
	if r == nil || r.src == nil {
		return nil, io.EOF
	}
	if r.finished {
		return nil, io.EOF
	}

	comma := r.Comma
	if comma == 0 {
		comma = ','
	}
	if comma == '\n' || comma == '\r' {
		return nil, ErrInvalidDelimiter
	}

	if r.ReuseRecord {
		r.record = r.record[:0]
	} else {
		r.record = nil
	}
	r.dataBuf = r.dataBuf[:0]
	r.fieldBounds = r.fieldBounds[:0]
	r.recordLine = r.line

	fieldStart := 0
	sawData := false

	for {
		if r.bufPos >= r.bufLen {
			if r.bufErr != nil {
				err := r.bufErr
				r.bufErr = nil
				if err != io.EOF {
					return nil, err
				}
				r.finished = true
				// Flush a trailing record if data ended without a newline.
				if sawData {
					r.fieldBounds = append(r.fieldBounds, fieldStart, len(r.dataBuf))
					return r.buildRecord(), nil
				}
				return nil, io.EOF
			}

			n, err := r.src.Read(r.buf)
			if n == 0 {
				if err != nil {
					r.bufErr = err
				}
				continue
			}
			r.bufPos = 0
			r.bufLen = n
			r.bufErr = err
		}

		sawData = true

		// Locate the closest delimiter or record terminator within the buffered bytes.
		data := r.buf[r.bufPos:r.bufLen]
		next := len(data)
		delim := byte(0)
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			next = i
			delim = '\n'
		}
		if i := bytes.IndexByte(data[:next], comma); i >= 0 {
			next = i
			delim = comma
		}

		r.dataBuf = append(r.dataBuf, data[:next]...)
		r.bufPos += next

		switch delim {
		case 0:
			continue
		case comma:
			r.bufPos++
			r.fieldBounds = append(r.fieldBounds, fieldStart, len(r.dataBuf))
			fieldStart = len(r.dataBuf)
		case '\n':
			r.bufPos++
			r.fieldBounds = append(r.fieldBounds, fieldStart, len(r.dataBuf))
			r.line++
			return r.buildRecord(), nil
		}
	}
}

// ReadAll exhausts the reader, repeatedly calling Read to collect records until io.EOF
// and returning the accumulated records slice plus the first non-EOF error encountered.
func (r *Reader) ReadAll() (records [][]string, err error) {
	for {
		record, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

// buildRecord maps the accumulated fieldBounds onto the data buffer, respecting ReuseRecord.
func (r *Reader) buildRecord() []string {
	fieldCount := len(r.fieldBounds) / 2

	var recordStr string
	if r.ReuseRecord {
		if len(r.dataBuf) > 0 {
			// Zero-copy string construction so fields can share a single backing buffer.
			recordStr = unsafe.String(unsafe.SliceData(r.dataBuf), len(r.dataBuf))
		}
		if cap(r.record) < fieldCount {
			r.record = make([]string, fieldCount)
		}
		r.record = r.record[:fieldCount]
	} else {
		recordStr = string(r.dataBuf)
		r.record = make([]string, fieldCount)
	}

	for i := 0; i < fieldCount; i++ {
		start := r.fieldBounds[2*i]
		end := r.fieldBounds[2*i+1]
		r.record[i] = recordStr[start:end]
	}
	return r.record
}
