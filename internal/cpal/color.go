package cpal

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"
)

// ColorRecord is a straight-alpha RGBA color.
type ColorRecord struct {
	R, G, B, A uint8
}

var _ color.Color = ColorRecord{}

// UnpackColorRecord swaps a packed on-disk B,G,R,A value into a
// ColorRecord. It is the inverse of Packed.
func UnpackColorRecord(v uint32) ColorRecord {
	return ColorRecord{
		B: uint8(v >> 24),
		G: uint8(v >> 16),
		R: uint8(v >> 8),
		A: uint8(v),
	}
}

// Packed returns the record as a 32-bit value in on-disk channel order.
func (c ColorRecord) Packed() uint32 {
	return uint32(c.B)<<24 | uint32(c.G)<<16 | uint32(c.R)<<8 | uint32(c.A)
}

func (c ColorRecord) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c ColorRecord) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// String formats the record as #rrggbbaa.
func (c ColorRecord) String() string {
	return "#" + hex.EncodeToString([]byte{c.R, c.G, c.B, c.A})
}

// ParseHexColor parses #rrggbb or #rrggbbaa. Alpha defaults to opaque.
func ParseHexColor(s string) (ColorRecord, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 && len(raw) != 8 {
		return ColorRecord{}, fmt.Errorf("cpal: invalid hex color %q", s)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return ColorRecord{}, fmt.Errorf("cpal: invalid hex color %q: %w", s, err)
	}
	c := ColorRecord{R: b[0], G: b[1], B: b[2], A: 0xff}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}
