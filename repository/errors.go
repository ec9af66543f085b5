package repository

import "errors"

var (
	// ErrUserNotFound is returned when an operation references a user UUID
	// with no matching row.
	ErrUserNotFound = errors.New("user not found")

	// ErrCarNotFound covers both a missing car and a car owned by a
	// different user; callers cannot tell the two apart, which keeps car
	// ids unguessable across users.
	ErrCarNotFound = errors.New("car not found or doesn't belong to this user")

	// ErrNoValidFields is returned when a partial update carries none of
	// the recognized detail fields.
	ErrNoValidFields = errors.New("no valid fields to update")
)
