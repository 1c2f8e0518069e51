package testutil

import (
	"errors"
)

const DatabaseError = "database error occurred"

type OperationResult[T any] struct {
	Data T
	Err  error
}

// Return a generic typed error return for a Database call.
func GetMockRepoError[T any]() *OperationResult[T] {
	return NewErrorResult[T](DatabaseError)
}

func NewErrorResult[T any](err string) *OperationResult[T] {
	return &OperationResult[T]{
		Data: *new(T),
		Err:  errors.New(err),
	}
}
