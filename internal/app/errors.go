package service

import "errors"

// Sentinel kinds for run errors.
var (
	ErrNoSource = errors.New("no source configured")
	ErrNoSink   = errors.New("no sink configured")
	ErrRun      = errors.New("feature run failed")
)
