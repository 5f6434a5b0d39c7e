package cpal

import (
	"fmt"
	"math"

	"github.com/danmuck/cpalctl/internal/table"
	"github.com/rs/zerolog/log"
)

// Request describes a table to encode. Zero values select the defaults:
// version 0, NumPaletteEntries inferred as len(ColorRecords), and a single
// palette at index 0 when ColorRecordIndices is nil. A non-nil empty
// ColorRecordIndices is rejected.
type Request struct {
	Version            uint16
	NumPaletteEntries  uint16
	ColorRecords       []ColorRecord
	ColorRecordIndices []uint16
}

// Encode validates req and lays it out as an ordered field list. Color
// records are swapped back to on-disk B,G,R,A order.
func Encode(req Request) (*table.Table, error) {
	if req.ColorRecordIndices == nil {
		req.ColorRecordIndices = []uint16{0}
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	numPaletteEntries := req.NumPaletteEntries
	if numPaletteEntries == 0 {
		numPaletteEntries = uint16(len(req.ColorRecords))
		if len(req.ColorRecordIndices) > 1 {
			log.Warn().
				Int("num_palettes", len(req.ColorRecordIndices)).
				Uint16("num_palette_entries", numPaletteEntries).
				Msg("cpal.Encode inferred palette size with multiple palettes")
		}
	}

	numPalettes := len(req.ColorRecordIndices)
	fields := make([]table.Field, 0, 5+numPalettes+len(req.ColorRecords))
	fields = append(fields,
		table.NewFieldUint16("version", req.Version),
		table.NewFieldUint16("numPaletteEntries", numPaletteEntries),
		table.NewFieldUint16("numPalettes", uint16(numPalettes)),
		table.NewFieldUint16("numColorRecords", uint16(len(req.ColorRecords))),
		table.NewFieldUint32("colorRecordsArrayOffset", uint32(headerSize+2*numPalettes)),
	)
	for i, idx := range req.ColorRecordIndices {
		fields = append(fields, table.NewFieldUint16(fmt.Sprintf("colorRecordIndices_%d", i), idx))
	}
	for i, c := range req.ColorRecords {
		fields = append(fields, table.NewFieldUint32(fmt.Sprintf("colorRecords_%d", i), c.Packed()))
	}

	log.Debug().
		Int("num_palettes", numPalettes).
		Int("num_color_records", len(req.ColorRecords)).
		Msg("cpal.Encode")
	return table.New(Tag, fields), nil
}

// Marshal encodes req straight to bytes.
func Marshal(req Request) ([]byte, error) {
	t, err := Encode(req)
	if err != nil {
		return nil, err
	}
	return t.Bytes()
}

func (req Request) validate() error {
	checks := []error{
		argument(req.Version == Version0, "version", "only version 0 is supported"),
		argument(len(req.ColorRecords) > 0, "colorRecords", "no color records given"),
		argument(len(req.ColorRecords) <= math.MaxUint16, "colorRecords", "too many color records"),
		argument(len(req.ColorRecordIndices) > 0, "colorRecordIndices", "no color record indices given"),
		argument(len(req.ColorRecordIndices) <= math.MaxUint16, "colorRecordIndices", "too many palettes"),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}
