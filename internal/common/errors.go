// Package common provides shared errors and logging utilities used across
// the application.
package common

import "errors"

// Application errors. Callers distinguish failure kinds with errors.Is:
// validation failures (invalid amount, unknown category, empty update) are
// caught before any write; ErrNotFound means the target row does not exist;
// anything else is a storage fault.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD form")
	ErrCategoryNotFound = errors.New("category not found")
	ErrEmptyUpdate      = errors.New("nothing to update")
)
