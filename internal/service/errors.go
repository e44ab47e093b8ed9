package service

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchFailure matches every error produced while retrieving a page.
	ErrFetchFailure = errors.New("fetch failure")

	// ErrMalformedInput is returned for a missing or unusable URL.
	ErrMalformedInput = errors.New("malformed input")
)

// FetchError describes why a page could not be retrieved. StatusCode is zero
// when the request never produced a response.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status code: %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailure
}
