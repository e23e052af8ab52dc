package domain

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownListing  = errors.New("unknown listing")
	ErrUnknownTab      = errors.New("unknown tab")
)
