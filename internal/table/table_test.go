package table

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeFieldsInOrder(t *testing.T) {
	tbl := New("TEST", []Field{
		NewFieldUint16("a", 0x0102),
		NewFieldUint32("b", 0x03040506),
		NewFieldUint16("c", 0x0708),
	})

	got, err := tbl.Bytes()
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}
	want := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	if !bytes.Equal(got, want) {
		t.Fatalf("unexpected bytes: %x want %x", got, want)
	}
	if tbl.Size() != len(want) {
		t.Fatalf("unexpected size: %d", tbl.Size())
	}
}

func TestFieldLookup(t *testing.T) {
	tbl := New("TEST", []Field{NewFieldUint16("a", 1), NewFieldUint16("a", 2)})
	f, ok := tbl.Field("a")
	if !ok || f.Value != 1 {
		t.Fatalf("expected first field, got %+v ok=%v", f, ok)
	}
	if _, ok := tbl.Field("missing"); ok {
		t.Fatalf("expected missing field")
	}
}

func TestEncodeRejectsOverflowWithoutWriting(t *testing.T) {
	tbl := New("TEST", []Field{
		NewFieldUint16("ok", 1),
		{Name: "wide", Type: FieldUint16, Value: 0x10000},
	})
	var buf bytes.Buffer
	err := tbl.Encode(&buf)
	if !errors.Is(err, ErrValueOverflow) {
		t.Fatalf("expected ErrValueOverflow, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected nothing written, got %d bytes", buf.Len())
	}
}

func TestEncodeRejectsUnknownTypeAndTag(t *testing.T) {
	if _, err := New("TEST", []Field{{Name: "x", Type: 9}}).Bytes(); !errors.Is(err, ErrUnknownFieldType) {
		t.Fatalf("expected ErrUnknownFieldType, got %v", err)
	}
	if _, err := New("TOOLONG", nil).Bytes(); !errors.Is(err, ErrInvalidTag) {
		t.Fatalf("expected ErrInvalidTag, got %v", err)
	}
}
