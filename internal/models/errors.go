package models

import "errors"

var (
	ErrBusinessNotFound = errors.New("models: business not found")
	ErrInvalidFilters   = errors.New("models: invalid search filters")
)
