package service

import "errors"

// Sentinel errors returned by the controller.
var (
	// ErrBusy is returned while another analysis or appeal is in flight.
	ErrBusy = errors.New("an analysis is already in progress")
)
