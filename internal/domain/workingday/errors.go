package workingday

import "errors"

var (
	ErrWorkingDayNotFound   = errors.New("working day not found")
	ErrWorkingDayNameExists = errors.New("working day with this name already exists")
	ErrAddWorkingDay        = errors.New("error adding working day")
	ErrUpdateWorkingDay     = errors.New("error updating working day")
)
