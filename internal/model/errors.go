package model

import "errors"

var (
	// ErrNotFound signals that the target id has no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail signals a registration attempt with an email already in use.
	ErrDuplicateEmail = errors.New("a user with that email already exists")
	// ErrInvalidCredentials signals a failed sign-in attempt.
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	// ErrPermissionDenied signals an authenticated caller acting on a note it may not access.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrTitleRequired signals a note create or update with an empty title.
	ErrTitleRequired = errors.New("title must not be empty")
)
