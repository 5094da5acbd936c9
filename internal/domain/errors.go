package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateEmail  = errors.New("email already exists")
	ErrDuplicateTitle  = errors.New("title already exists")
	ErrUnknownEmail    = errors.New("no account with that email")
	ErrWrongPassword   = errors.New("password incorrect")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidInput    = errors.New("invalid input")
)
