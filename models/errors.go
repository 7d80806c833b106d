package models

import "github.com/pkg/errors"

// ErrNotFound marks a lookup miss so controllers can answer 404
// instead of a generic failure.
var ErrNotFound = errors.New("record not found")
