package catalog

import "errors"

var (
	ErrUnknownTable = errors.New("unknown table")
	ErrTableExists  = errors.New("table already exists")
)
