// Package table serializes font tables described as ordered field lists.
//
// Ownership boundary:
// - field descriptors (name, width, value)
// - big-endian emission of a whole table
package table
