package domain

import "errors"

var (
	// ErrNoteNotFound signals a missing note.
	ErrNoteNotFound = errors.New("note not found")
	// ErrAlreadyExists signals a duplicate note.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidNote signals a note that fails domain validation.
	ErrInvalidNote = errors.New("invalid note")
	// ErrInvalidFilter signals a filter configuration that fails validation.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrInvalidRequest signals a malformed search request.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUserRequired signals an operation that needs an authenticated user.
	ErrUserRequired = errors.New("user id required")
	// ErrSuperseded signals a search discarded because a newer request from
	// the same client started before it finished.
	ErrSuperseded = errors.New("request superseded")
)
