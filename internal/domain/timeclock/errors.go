package timeclock

import "errors"

var (
	// Registration errors
	ErrDuplicateRegisterType = errors.New("invalid register time")
	ErrAddPunch              = errors.New("error adding time clock punch")

	// General errors
	ErrPunchNotFound = errors.New("time clock punch not found")
	ErrUpdatePunch   = errors.New("error updating time clock punch")

	// Evaluation errors
	ErrAlreadyEvaluated = errors.New("time clock punch already evaluated")
	ErrInvalidDate   = errors.New("invalid date format, use YYYY-MM-DD")
)
