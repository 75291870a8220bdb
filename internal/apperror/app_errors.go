package apperror

import "errors"

var (
	ErrInvalidCoordinate = errors.New("coordinate is out of range")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrMalformedMove     = errors.New("move must be two integers")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrInvalidMode       = errors.New("invalid game mode")
	ErrInputClosed       = errors.New("input stream is closed")
	ErrTurnLimitExceeded = errors.New("turn limit exceeded")
	ErrUnknownDriver     = errors.New("unknown journal driver")
	ErrInvalidConfig     = errors.New("invalid configuration")
)
