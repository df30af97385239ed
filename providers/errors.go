package providers

import "errors"

// ErrEmptyResponse is returned if provider has responded with an empty
// JSON object.
var ErrEmptyResponse = errors.New("empty response")
