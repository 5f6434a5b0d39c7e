package table

import "fmt"

// FieldType identifies the on-disk width of a field.
type FieldType uint8

const (
	FieldUint16 FieldType = 2
	FieldUint32 FieldType = 3
)

// Size returns the encoded width in bytes, or 0 for unknown types.
func (t FieldType) Size() int {
	switch t {
	case FieldUint16:
		return 2
	case FieldUint32:
		return 4
	default:
		return 0
	}
}

func (t FieldType) String() string {
	switch t {
	case FieldUint16:
		return "uint16"
	case FieldUint32:
		return "uint32"
	default:
		return fmt.Sprintf("FieldType(%d)", uint8(t))
	}
}

// Field is one named value of a table, emitted in declaration order.
type Field struct {
	Name  string    `json:"name"`
	Type  FieldType `json:"type"`
	Value uint32    `json:"value"`
}

// NewFieldUint16 creates a uint16 field.
func NewFieldUint16(name string, v uint16) Field {
	return Field{Name: name, Type: FieldUint16, Value: uint32(v)}
}

// NewFieldUint32 creates a uint32 field.
func NewFieldUint32(name string, v uint32) Field {
	return Field{Name: name, Type: FieldUint32, Value: v}
}

func (f Field) check() error {
	switch f.Type {
	case FieldUint16:
		if f.Value > 0xffff {
			return fmt.Errorf("%w: %s=%d (%s)", ErrValueOverflow, f.Name, f.Value, f.Type)
		}
	case FieldUint32:
	default:
		return fmt.Errorf("%w: %s type=%d", ErrUnknownFieldType, f.Name, uint8(f.Type))
	}
	return nil
}
