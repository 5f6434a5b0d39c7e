package table

import "errors"

var (
	ErrUnknownFieldType = errors.New("table: unknown field type")
	ErrValueOverflow    = errors.New("table: value overflows field width")
	ErrInvalidTag       = errors.New("table: invalid tag")
)
