package apperror

import "errors"

var (
	ErrInvalidMove           = errors.New("invalid move")
	ErrPreconditionViolation = errors.New("precondition violation")
	ErrMatchNotFound         = errors.New("match not found")
	ErrMatchFinished         = errors.New("match is already finished")
)
