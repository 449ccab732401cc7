package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrAddEmployee      = errors.New("error adding employee")
	ErrUpdateEmployee   = errors.New("error updating employee")
)
