// Package cpal decodes and encodes the OpenType Color Palette table.
//
// A CPAL table stores a flat pool of color records and one start index per
// palette. Every palette has the same number of entries and palettes may
// overlap inside the pool. Colors are stored as B,G,R,A on disk and exposed
// as R,G,B,A in memory.
//
// Reference: https://learn.microsoft.com/en-us/typography/opentype/spec/cpal
package cpal
