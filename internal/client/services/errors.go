package services

import "errors"

var (
	ErrEmptyID            = errors.New("empty id")
	ErrInvalidPowerAction = errors.New("invalid power action")
	ErrInvalidDuration    = errors.New("order duration must be at least one month")
	ErrEmptyCode          = errors.New("empty gift code")
	ErrEmptyTicketFields  = errors.New("ticket subject and body are required")
)
