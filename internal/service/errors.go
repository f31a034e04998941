package service

import "errors"

var (
	// ErrInsufficientStock rejects a usage that would drive an inventory
	// item's quantity below zero.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrAmbiguousAssignee rejects a job assigned to both an employee and
	// a crew at once.
	ErrAmbiguousAssignee = errors.New("job cannot be assigned to both an employee and a crew")
)
