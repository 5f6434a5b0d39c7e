package cpal

import (
	"github.com/danmuck/cpalctl/internal/parse"
	"github.com/rs/zerolog/log"
)

// Decode reads a CPAL table that begins at data[start]. Only truncation is
// reported; index ranges are left to Validate.
func Decode(data []byte, start int) (*Table, error) {
	p := parse.NewReader(data, start)

	version, err := p.Uint16()
	if err != nil {
		return nil, FormatError{Field: "version", Err: err}
	}
	numPaletteEntries, err := p.Uint16()
	if err != nil {
		return nil, FormatError{Field: "numPaletteEntries", Err: err}
	}
	numPalettes, err := p.Uint16()
	if err != nil {
		return nil, FormatError{Field: "numPalettes", Err: err}
	}
	numColorRecords, err := p.Uint16()
	if err != nil {
		return nil, FormatError{Field: "numColorRecords", Err: err}
	}
	colorRecordsArrayOffset, err := p.Offset32()
	if err != nil {
		return nil, FormatError{Field: "colorRecordsArrayOffset", Err: err}
	}
	indices, err := p.Uint16List(int(numPalettes))
	if err != nil {
		return nil, FormatError{Field: "colorRecordIndices", Err: err}
	}

	// An empty pool has nothing at colorRecordsArrayOffset to read.
	records := make([]ColorRecord, numColorRecords)
	if numColorRecords > 0 {
		p.Seek(int(colorRecordsArrayOffset))
		packed, err := p.Uint32List(int(numColorRecords))
		if err != nil {
			return nil, FormatError{Field: "colorRecords", Err: err}
		}
		for i, v := range packed {
			records[i] = UnpackColorRecord(v)
		}
	}

	log.Debug().
		Uint16("version", version).
		Uint16("num_palette_entries", numPaletteEntries).
		Uint16("num_palettes", numPalettes).
		Uint16("num_color_records", numColorRecords).
		Msg("cpal.Decode")

	return &Table{
		Version:            version,
		NumPaletteEntries:  numPaletteEntries,
		ColorRecords:       records,
		ColorRecordIndices: indices,
	}, nil
}
