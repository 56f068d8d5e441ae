package store

import (
	"fmt"
)

// NotFoundError reports a missing record — either the target of an operation
// or the parent a child operation requires.
type NotFoundError struct {
	Kind string // "section", "category", "thread", "post", "user"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s does not exist", e.Kind, e.ID)
}

// InvalidInputError reports a missing or empty required field, or an update
// payload with no usable fields.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// UsernameTakenError reports a uniqueness violation on user creation.
type UsernameTakenError struct {
	Username string
}

func (e *UsernameTakenError) Error() string {
	return fmt.Sprintf("username %q already exists", e.Username)
}

// StorageError wraps a failure of the underlying store itself: connectivity,
// timeouts, duplicate-key exhaustion. These are not recoverable at the
// request boundary and should surface as server errors.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
