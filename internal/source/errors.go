package source

import "errors"

var (
	// ErrUnknownSource is returned for ids missing from the registry.
	ErrUnknownSource = errors.New("unknown source")
	// ErrFetchFailed is returned when the transport reports a non-success result.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrParse is returned when a payload is not a JSON entry list.
	ErrParse = errors.New("parse error")
)
