package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/cpalctl/internal/cpal"
)

// sourceFile is the on-disk palette source. Either colors (with optional
// indices) or palettes may be given, not both. derived_palettes is written
// by WriteSource and ignored here.
type sourceFile struct {
	Version            uint16     `toml:"version"`
	NumPaletteEntries  uint16     `toml:"num_palette_entries"`
	ColorRecordIndices []uint16   `toml:"color_record_indices"`
	Colors             []string   `toml:"colors"`
	Palettes           [][]string `toml:"palettes"`
	DerivedPalettes    [][]string `toml:"derived_palettes"`
}

// LoadSource reads a palette source file into an encoder request.
func LoadSource(path string) (cpal.Request, error) {
	var raw sourceFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cpal.Request{}, fmt.Errorf("load palette source: %w", err)
	}
	return raw.request(meta)
}

// ParseSource is LoadSource for in-memory data.
func ParseSource(data string) (cpal.Request, error) {
	var raw sourceFile
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return cpal.Request{}, fmt.Errorf("parse palette source: %w", err)
	}
	return raw.request(meta)
}

func (raw sourceFile) request(meta toml.MetaData) (cpal.Request, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cpal.Request{}, fmt.Errorf("palette source: unknown key %q", undecoded[0].String())
	}
	if meta.IsDefined("palettes") {
		if meta.IsDefined("colors") || meta.IsDefined("color_record_indices") {
			return cpal.Request{}, fmt.Errorf("palette source: palettes cannot be combined with colors or color_record_indices")
		}
		palettes := make([][]cpal.ColorRecord, len(raw.Palettes))
		for i, p := range raw.Palettes {
			colors, err := parseColors(p)
			if err != nil {
				return cpal.Request{}, fmt.Errorf("palettes[%d]: %w", i, err)
			}
			palettes[i] = colors
		}
		req, err := cpal.FromPalettes(palettes)
		if err != nil {
			return cpal.Request{}, err
		}
		req.Version = raw.Version
		return req, nil
	}

	colors, err := parseColors(raw.Colors)
	if err != nil {
		return cpal.Request{}, err
	}
	req := cpal.Request{
		Version:           raw.Version,
		NumPaletteEntries: raw.NumPaletteEntries,
		ColorRecords:      colors,
	}
	// An explicit empty list is kept so the encoder can reject it.
	if meta.IsDefined("color_record_indices") {
		req.ColorRecordIndices = raw.ColorRecordIndices
		if req.ColorRecordIndices == nil {
			req.ColorRecordIndices = []uint16{}
		}
	}
	return req, nil
}

func parseColors(in []string) ([]cpal.ColorRecord, error) {
	out := make([]cpal.ColorRecord, 0, len(in))
	for i, s := range in {
		c, err := cpal.ParseHexColor(s)
		if err != nil {
			return nil, fmt.Errorf("colors[%d]: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}
