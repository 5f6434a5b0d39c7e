package table

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Table is a tagged, ordered list of fields.
type Table struct {
	Tag    string
	Fields []Field
}

func New(tag string, fields []Field) *Table {
	return &Table{Tag: tag, Fields: fields}
}

// Size returns the encoded length in bytes.
func (t *Table) Size() int {
	total := 0
	for _, f := range t.Fields {
		total += f.Type.Size()
	}
	return total
}

// Field returns the first field named name.
func (t *Table) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Encode writes every field to w in order. Nothing is written when a field
// is invalid.
func (t *Table) Encode(w io.Writer) error {
	if len(t.Tag) != 4 {
		return fmt.Errorf("%w: %q", ErrInvalidTag, t.Tag)
	}
	for _, f := range t.Fields {
		if err := f.check(); err != nil {
			return err
		}
	}
	buf := make([]byte, 0, t.Size())
	for _, f := range t.Fields {
		buf = appendField(buf, f)
	}
	_, err := w.Write(buf)
	return err
}

// Bytes returns the encoded table.
func (t *Table) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func appendField(buf []byte, f Field) []byte {
	if f.Type == FieldUint16 {
		return binary.BigEndian.AppendUint16(buf, uint16(f.Value))
	}
	return binary.BigEndian.AppendUint32(buf, f.Value)
}
