package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// MaxBodySize caps how much of a request body DecodeJSON reads.
const MaxBodySize = 1 << 20 // 1 MB

// DecodeJSON parses the request body into v. The request must carry an
// application/json content type and the body must hold exactly one JSON
// value no larger than MaxBodySize.
func DecodeJSON(r *http.Request, v any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return fmt.Errorf("%w: %q", ErrUnsupportedMediaType, r.Header.Get("Content-Type"))
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodySize+1))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if len(body) > MaxBodySize {
		return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, MaxBodySize)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrMalformedBody)
		}
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if err := dec.Decode(new(json.RawMessage)); err != io.EOF {
		return fmt.Errorf("%w: trailing data after JSON value", ErrMalformedBody)
	}

	return nil
}
