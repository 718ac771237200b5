package repository

import "github.com/pkg/errors"

// ErrNotFound is returned (wrapped) by lookups that match no row.
var ErrNotFound = errors.New("not found")
