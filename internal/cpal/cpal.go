package cpal

import "fmt"

const (
	Tag = "CPAL"

	// Version0 is the only table version handled here.
	Version0 uint16 = 0

	headerSize = 12
)

// Table is a decoded color palette table. Palettes are derived from the
// pool and the start indices on demand; a Table is not mutated after it is
// built.
type Table struct {
	Version            uint16
	NumPaletteEntries  uint16
	ColorRecords       []ColorRecord
	ColorRecordIndices []uint16
}

func (t *Table) NumPalettes() int {
	return len(t.ColorRecordIndices)
}

// Palette returns palette i as a view into the color pool. A range running
// past the pool is truncated, so an out-of-range index yields a short or
// empty palette.
func (t *Table) Palette(i int) []ColorRecord {
	n := len(t.ColorRecords)
	start := min(int(t.ColorRecordIndices[i]), n)
	end := min(start+int(t.NumPaletteEntries), n)
	return t.ColorRecords[start:end:end]
}

func (t *Table) Palettes() [][]ColorRecord {
	out := make([][]ColorRecord, len(t.ColorRecordIndices))
	for i := range out {
		out[i] = t.Palette(i)
	}
	return out
}

// Validate checks the invariants that Decode leaves unchecked.
func (t *Table) Validate() error {
	if t.Version != Version0 {
		return FormatError{Field: "version", Err: ErrUnsupportedVersion}
	}
	if len(t.ColorRecordIndices) == 0 {
		return FormatError{Field: "numPalettes", Err: ErrNoPalettes}
	}
	for i, idx := range t.ColorRecordIndices {
		if int(idx)+int(t.NumPaletteEntries) > len(t.ColorRecords) {
			return FormatError{
				Field: fmt.Sprintf("colorRecordIndices_%d", i),
				Err: fmt.Errorf("%w: %d+%d > %d",
					ErrIndexOutOfRange, idx, t.NumPaletteEntries, len(t.ColorRecords)),
			}
		}
	}
	return nil
}
