package usecase

import "errors"

var (
	// ErrUnknownGroup is returned for a category group outside the ten
	// snapshot groups.
	ErrUnknownGroup = errors.New("unknown category group")
	// ErrUnknownCategory is returned for a market category outside
	// index/bond/currency/commodities.
	ErrUnknownCategory = errors.New("unknown market category")
)
