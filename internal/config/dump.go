package config

import (
	"fmt"
	"io"

	"github.com/danmuck/cpalctl/internal/cpal"
	"github.com/pelletier/go-toml/v2"
)

type dumpFile struct {
	Version            uint16     `toml:"version"`
	NumPaletteEntries  uint16     `toml:"num_palette_entries" comment:"0 is inferred as len(colors) on encode"`
	ColorRecordIndices []uint16   `toml:"color_record_indices"`
	Colors             []string   `toml:"colors"`
	Palettes           [][]string `toml:"derived_palettes,omitempty" comment:"read-only view, ignored on encode"`
}

// WriteSource writes t as a palette source that LoadSource accepts. With
// withPalettes the derived palettes are added as a comment-only view.
func WriteSource(w io.Writer, t *cpal.Table, withPalettes bool) error {
	out := dumpFile{
		Version:            t.Version,
		NumPaletteEntries:  t.NumPaletteEntries,
		ColorRecordIndices: t.ColorRecordIndices,
		Colors:             hexColors(t.ColorRecords),
	}
	if withPalettes {
		for _, p := range t.Palettes() {
			out.Palettes = append(out.Palettes, hexColors(p))
		}
	}
	enc := toml.NewEncoder(w)
	enc.SetArraysMultiline(true)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("write palette source: %w", err)
	}
	return nil
}

func hexColors(records []cpal.ColorRecord) []string {
	out := make([]string, len(records))
	for i, c := range records {
		out[i] = c.String()
	}
	return out
}
