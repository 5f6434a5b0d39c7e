package parse

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var ErrTruncated = errors.New("parse: truncated data")

// Reader is a big-endian cursor over a font table embedded in a larger
// buffer. Offsets are relative to the table start.
type Reader struct {
	data   []byte
	start  int
	offset int
}

func NewReader(data []byte, start int) *Reader {
	return &Reader{data: data, start: start}
}

// Seek moves the cursor to offset, relative to the table start.
func (r *Reader) Seek(offset int) {
	r.offset = offset
}

func (r *Reader) Uint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *Reader) Uint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// Offset32 reads a 32-bit offset field.
func (r *Reader) Offset32() (uint32, error) {
	return r.Uint32()
}

func (r *Reader) Uint16List(n int) ([]uint16, error) {
	b, err := r.take(2 * n)
	if err != nil {
		return nil, err
	}
	out := make([]uint16, n)
	for i := range out {
		out[i] = binary.BigEndian.Uint16(b[2*i:])
	}
	return out, nil
}

func (r *Reader) Uint32List(n int) ([]uint32, error) {
	b, err := r.take(4 * n)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = binary.BigEndian.Uint32(b[4*i:])
	}
	return out, nil
}

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrTruncated, n)
	}
	pos := r.start + r.offset
	if pos < 0 || pos > len(r.data) || n > len(r.data)-pos {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, n, r.offset, max(len(r.data)-pos, 0))
	}
	r.offset += n
	return r.data[pos : pos+n], nil
}
