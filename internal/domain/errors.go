package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidProfile = errors.New("invalid profile")
	ErrNoHandle       = errors.New("handle not configured")
	ErrUnavailable    = errors.New("upstream unavailable")
)
