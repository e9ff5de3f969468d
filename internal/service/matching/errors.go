package matching

import "errors"

var (
	ErrInvalidRiderID = errors.New("invalid rider id")
	ErrRiderNotFound  = errors.New("rider not found")
)
