package sentinel

import "errors"

// Sentinel errors for storage facts. Stores return these (optionally wrapped)
// so services can translate them into domain errors:
// - ErrNotFound: no record with the requested id
// - ErrConflict: a record with the same id already exists
// - ErrInvalidState: the stored record cannot take the requested change
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
)
