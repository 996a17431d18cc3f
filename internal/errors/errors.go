package errors

import (
	"errors"
)

var (
	ErrEmailAlreadyExists = errors.New("Email already exists")
	ErrEmailNotFound      = errors.New("couldn't find email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPokemonNotFound    = errors.New("pokemon not found")
)
