package domain

import "errors"

var (
	ErrLeadNotFound       = errors.New("lead not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrValidation         = errors.New("bad request")
	ErrInternal           = errors.New("internal server error")
)
