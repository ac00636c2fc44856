package sportvision

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCategory is returned for a category outside the known set.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrNothingScraped is returned when every requested page failed.
	ErrNothingScraped = errors.New("no page could be scraped")
)

// FetchError reports a page whose markup could not be retrieved.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// MissingFieldError reports a required field that a listing node lacks.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// NodeError ties an extraction failure to the listing node's position in
// its page.
type NodeError struct {
	Index int
	Err   error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("listing node %d: %v", e.Index, e.Err)
}

func (e *NodeError) Unwrap() error { return e.Err }
