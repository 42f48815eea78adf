package stubapi

import "errors"

var (
	ErrInvalidDataProvided      = errors.New("invalid data provided")
	ErrWrongCredentials         = errors.New("invalid login/password")
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")
	ErrTokenIsExpiredOrInvalid  = errors.New("token is expired or invalid")
	ErrInvalidStubSettings      = errors.New("invalid stub settings")
)
