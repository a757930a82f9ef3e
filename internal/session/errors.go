package session

import "errors"

// Error variables for session commands.
var (
	ErrUnknownCommand    = errors.New("unknown command")
	ErrUsage             = errors.New("usage")
	ErrInvalidNumber     = errors.New("invalid number")
	ErrContractViolation = errors.New("contract violation")
)
