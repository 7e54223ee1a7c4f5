package tetsuo

import "errors"

var (
	// ErrTitleUnavailable wraps every reason the title mesh could not be built.
	ErrTitleUnavailable = errors.New("title unavailable")

	// ErrNoResult is reported when a loader finished without producing a result.
	ErrNoResult = errors.New("loader finished without a result")
)
