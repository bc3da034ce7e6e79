package store

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func IsValidation(err error) bool {
	validation := &ValidationError{}
	return errors.As(err, &validation)
}

type DuplicateKeyError struct {
	RollNumber string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("roll number %q already exists", e.RollNumber)
}

func IsDuplicateKey(err error) bool {
	duplicateKey := &DuplicateKeyError{}
	return errors.As(err, &duplicateKey)
}

type NotFoundError struct {
	RollNumber string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no student with roll number %q", e.RollNumber)
}

func IsNotFound(err error) bool {
	notFound := &NotFoundError{}
	return errors.As(err, &notFound)
}

type PersistenceError struct {
	nested error
}

func (e *PersistenceError) Error() string {
	return e.nested.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.nested
}

func IsPersistence(err error) bool {
	persistence := &PersistenceError{}
	return errors.As(err, &persistence)
}
