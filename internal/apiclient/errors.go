package apiclient

import "errors"

var (
	ErrAlreadyInitialized = errors.New("api client already initialized")
	ErrInvalidAddress     = errors.New("invalid api client address")
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
