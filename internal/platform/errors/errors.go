package apperrors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrCalendarNotFound = errors.New("calendar not found")
	ErrNotAuthorized    = errors.New("calendar access not authorized")
)
