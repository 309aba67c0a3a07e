package seeder

import (
	"errors"
	"fmt"
)

// ErrMissingParentID is returned when a fan-out stage is handed a parent that
// has not been persisted yet.
var ErrMissingParentID = errors.New("parent has no assigned id")

// PersistenceError reports a batch or commit the sink rejected.
type PersistenceError struct {
	Stage Stage
	Table string
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist %s into %s: %v", e.Stage, e.Table, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
