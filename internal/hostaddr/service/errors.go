package service

import "errors"

var (
	// ErrEnumeration is returned when the platform interface tables cannot be read
	ErrEnumeration = errors.New("interface enumeration failed")
)
