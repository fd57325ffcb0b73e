package favorite

import "errors"

var (
	ErrNotFound      = errors.New("favorite not found")
	ErrAlreadyExists = errors.New("favorite already exists")
	ErrInvalidInput  = errors.New("invalid input")
)
