package chaintable

import (
	"errors"

	"github.com/theflywheel/chaintable/list"
)

var (
	ErrNilTable = errors.New("chaintable: nil table")
	ErrNilKey   = errors.New("chaintable: nil key")

	// ErrInvalidCursor is shared with the list package so errors.Is matches
	// either cursor kind.
	ErrInvalidCursor = list.ErrInvalidCursor
)
