package models

import (
	"errors"
	"fmt"
)

var (
	// ErrDataFetch reports a provider that returned no usable price series.
	ErrDataFetch = errors.New("data fetch error")
	// ErrDomain reports an arithmetic domain violation: a zero price in a growth
	// calculation or a forecast lookup against an empty growth sequence.
	ErrDomain = errors.New("domain error")
	// ErrInputFormat reports a malformed scalar coming from the input surface.
	ErrInputFormat = errors.New("input format error")
	// ErrConfiguration reports a simulation rejected before its first month.
	// It wraps ErrDomain.
	ErrConfiguration = fmt.Errorf("configuration error: %w", ErrDomain)
)
