package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrIncompleteBooking = errors.New("booking data is incomplete")
	ErrInvalidTransition = errors.New("action is not valid in the current flow step")
	ErrNoSeatsSelected   = errors.New("at least one seat must be selected")
	ErrBookingFailed     = errors.New("booking submission failed")
)
