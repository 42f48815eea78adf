package login

import "errors"

var (
	ErrInvalidCredentials = errors.New("login and password are required")
	ErrMalformedToken     = errors.New("server returned a malformed token")
	ErrMalformedResponse  = errors.New("server returned a malformed login response")
)
