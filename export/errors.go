package export

import (
	"errors"
	"fmt"
	"net/url"

	"google.golang.org/api/googleapi"
)

var (
	// ErrAPI marks every failure of an upstream API request.
	ErrAPI = errors.New("api request failed")
	// ErrNotFound indicates the playlist lookup returned no items.
	ErrNotFound = errors.New("playlist not found")
	// ErrInvalidName indicates the playlist title is unusable as a filename.
	ErrInvalidName = errors.New("invalid playlist name")
	// ErrIO marks every filesystem failure while writing the export.
	ErrIO = errors.New("i/o failure")
)

// APIError carries the upstream status and message of a failed request.
// Status is zero when the failure happened before a response arrived.
type APIError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

func (e *APIError) Is(target error) bool { return target == ErrAPI }

type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

func newAPIError(op string, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return err
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = redactKey(urlErr.URL)
	}

	apiErr = &APIError{Op: op, Message: err.Error(), Err: err}
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		apiErr.Status = gErr.Code
		if gErr.Message != "" {
			apiErr.Message = gErr.Message
		}
	}

	return apiErr
}

// redactKey drops the API key from a request URL so it never ends up in
// error messages or logs.
func redactKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if !q.Has("key") {
		return raw
	}
	q.Del("key")
	u.RawQuery = q.Encode()

	return u.String()
}
