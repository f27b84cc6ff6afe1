package cli

import "errors"

var (
	// ErrNoInput is returned when a command has neither a file nor --example.
	ErrNoInput = errors.New("no shifts given: pass --file or --example")
	// ErrReadShifts wraps failures reading or decoding a shift file.
	ErrReadShifts = errors.New("failed to read shifts")
)
