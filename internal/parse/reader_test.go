package parse

import (
	"errors"
	"testing"
)

func TestReaderSequentialReads(t *testing.T) {
	data := []byte{
		0xff, 0xee, // junk before the table
		0x12, 0x34,
		0xde, 0xad, 0xbe, 0xef,
		0x00, 0x01, 0x00, 0x02,
	}
	r := NewReader(data, 2)

	u16, err := r.Uint16()
	if err != nil || u16 != 0x1234 {
		t.Fatalf("uint16: got %#x err=%v", u16, err)
	}
	u32, err := r.Offset32()
	if err != nil || u32 != 0xdeadbeef {
		t.Fatalf("offset32: got %#x err=%v", u32, err)
	}
	list, err := r.Uint16List(2)
	if err != nil {
		t.Fatalf("uint16 list: %v", err)
	}
	if len(list) != 2 || list[0] != 1 || list[1] != 2 {
		t.Fatalf("unexpected list: %v", list)
	}
	if _, err := r.Uint16(); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected end of table, got %v", err)
	}
}

func TestReaderSeekIsRelativeToStart(t *testing.T) {
	data := []byte{0x99, 0x00, 0x00, 0x00, 0x00, 0x0a, 0x0b, 0x0c, 0x0d, 0x01, 0x02, 0x03, 0x04}
	r := NewReader(data, 1)
	r.Seek(4)

	got, err := r.Uint32List(2)
	if err != nil {
		t.Fatalf("uint32 list: %v", err)
	}
	if got[0] != 0x0a0b0c0d || got[1] != 0x01020304 {
		t.Fatalf("unexpected values: %#x", got)
	}
}

func TestReaderTruncated(t *testing.T) {
	cases := []struct {
		name string
		read func(r *Reader) error
		r    *Reader
	}{
		{"uint16 past end", func(r *Reader) error { _, err := r.Uint16(); return err }, NewReader([]byte{1}, 0)},
		{"uint32 past end", func(r *Reader) error { _, err := r.Uint32(); return err }, NewReader([]byte{1, 2, 3}, 0)},
		{"start past end", func(r *Reader) error { _, err := r.Uint16(); return err }, NewReader([]byte{1, 2}, 5)},
		{"negative start", func(r *Reader) error { _, err := r.Uint16(); return err }, NewReader([]byte{1, 2}, -1)},
		{"list past end", func(r *Reader) error { _, err := r.Uint16List(3); return err }, NewReader([]byte{0, 1, 0, 2}, 0)},
		{"negative length", func(r *Reader) error { _, err := r.Uint32List(-1); return err }, NewReader([]byte{0}, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.read(tc.r)
			if !errors.Is(err, ErrTruncated) {
				t.Fatalf("expected ErrTruncated, got %v", err)
			}
		})
	}
}

func TestReaderFailedReadDoesNotAdvance(t *testing.T) {
	r := NewReader([]byte{0, 7, 1}, 0)
	if _, err := r.Uint32(); err == nil {
		t.Fatalf("expected error")
	}
	v, err := r.Uint16()
	if err != nil || v != 7 {
		t.Fatalf("expected cursor untouched, got %d err=%v", v, err)
	}
}
