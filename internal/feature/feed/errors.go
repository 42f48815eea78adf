package feed

import "errors"

var (
	ErrNoSession  = errors.New("no active session")
	ErrDecodeFeed = errors.New("decode feed")
)
