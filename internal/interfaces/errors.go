package interfaces

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repositories when the requested record does not
// exist or when an update/delete matched no rows.
var ErrNotFound = errors.New("record not found")

// ConstraintViolationError is returned by repositories when the storage
// engine rejects a write because it would break a declared constraint,
// typically a foreign key on delete. The delete-conflict resolver matches on
// this type instead of sniffing driver error text.
type ConstraintViolationError struct {
	Op  string
	Err error
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("%s: constraint violation: %v", e.Op, e.Err)
}

func (e *ConstraintViolationError) Unwrap() error {
	return e.Err
}
