package cpal

import (
	"fmt"
	"math"
	"slices"
)

// FromPalettes builds a request from explicit palettes. A palette that
// already appears as a contiguous run of the pool reuses that run; one whose
// head matches the tail of the pool only appends the remainder.
func FromPalettes(palettes [][]ColorRecord) (Request, error) {
	if len(palettes) == 0 {
		return Request{}, ValidationError{Field: "palettes", Reason: "no palettes given"}
	}
	size := len(palettes[0])
	if size == 0 {
		return Request{}, ValidationError{Field: "palettes", Reason: "empty palette"}
	}
	if size > math.MaxUint16 {
		return Request{}, ValidationError{Field: "palettes", Reason: "palette too large"}
	}

	var pool []ColorRecord
	indices := make([]uint16, 0, len(palettes))
	for i, palette := range palettes {
		if len(palette) != size {
			return Request{}, ValidationError{
				Field:  fmt.Sprintf("palettes_%d", i),
				Reason: fmt.Sprintf("has %d entries, want %d", len(palette), size),
			}
		}
		start := findRun(pool, palette)
		if start < 0 {
			k := tailOverlap(pool, palette)
			start = len(pool) - k
			pool = append(pool, palette[k:]...)
		}
		if start > math.MaxUint16 {
			return Request{}, ValidationError{Field: "colorRecords", Reason: "too many color records"}
		}
		indices = append(indices, uint16(start))
	}

	return Request{
		Version:            Version0,
		NumPaletteEntries:  uint16(size),
		ColorRecords:       pool,
		ColorRecordIndices: indices,
	}, nil
}

func findRun(pool, run []ColorRecord) int {
	for start := 0; start+len(run) <= len(pool); start++ {
		if slices.Equal(pool[start:start+len(run)], run) {
			return start
		}
	}
	return -1
}

// tailOverlap returns the longest k < len(run) such that the last k records
// of pool equal the first k of run.
func tailOverlap(pool, run []ColorRecord) int {
	for k := min(len(run)-1, len(pool)); k > 0; k-- {
		if slices.Equal(pool[len(pool)-k:], run[:k]) {
			return k
		}
	}
	return 0
}
