package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("user already exists")
	ErrUnauthorized   = errors.New("invalid credentials")
	ErrInvalidToken   = errors.New("token is invalid")
	ErrInvalidInput   = errors.New("invalid input")
)
