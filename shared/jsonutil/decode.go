package jsonutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrInvalidBody wraps every request body decoding failure.
var ErrInvalidBody = errors.New("invalid JSON body")

// DecodeBody decodes the request body into dst. An empty body leaves dst
// untouched, which mirrors a body parser that yields an empty object.
// Anything but whitespace after the first JSON value is rejected.
func DecodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after the JSON value", ErrInvalidBody)
	}
	return nil
}
