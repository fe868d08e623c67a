package services

import "errors"

// ErrNotFound is returned when a project or nested entity id does not resolve.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned for missing required fields, before any
// persistence call happens.
var ErrValidation = errors.New("invalid input")
