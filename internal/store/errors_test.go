package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{Kind: "thread", ID: "abc123def4"}
	want := "thread with id abc123def4 does not exist"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}

func TestStorageErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("request: %w", &StorageError{Op: "find post", Err: context.DeadlineExceeded})
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatal("Expected errors.As to find StorageError through wrapping")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("Expected timeout to be visible through the StorageError chain")
	}
}

func TestDomainErrorsAreDistinct(t *testing.T) {
	var notFound *NotFoundError
	var invalid *InvalidInputError
	var taken *UsernameTakenError

	err := error(&UsernameTakenError{Username: "a"})
	if errors.As(err, &notFound) || errors.As(err, &invalid) {
		t.Error("UsernameTakenError matched an unrelated error kind")
	}
	if !errors.As(err, &taken) {
		t.Error("UsernameTakenError did not match its own kind")
	}
}
