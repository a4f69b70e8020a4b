package repository

import "errors"

// Sentinel kinds for input and output errors.
var (
	ErrReadInput         = errors.New("read input failed")
	ErrMissingColumn     = errors.New("input column missing")
	ErrUnknownEncoding   = errors.New("unknown text encoding")
	ErrWriteOutput       = errors.New("write output failed")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)
