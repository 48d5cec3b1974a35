// Package binder turns HTTP requests into the generic body maps consumed by
// field extraction.
package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
)

// MaxMultipartMemory bounds the memory used when parsing multipart bodies.
const MaxMultipartMemory = 10 << 20

// Body decodes the request body into a map keyed by control name.
//
// Supported media types:
//   - application/x-www-form-urlencoded and multipart/form-data: a key with
//     one value maps to a string, repeated keys to []string
//   - application/json: the top-level object, decoded as-is
func Body(r *http.Request) (map[string]any, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected a form or JSON body", ErrMissingContentType)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return Values(r.PostForm), nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(MaxMultipartMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return Values(r.MultipartForm.Value), nil
	case "application/json":
		return decodeJSON(r.Body)
	default:
		return nil, fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mediaType)
	}
}

// Query returns the URL query parameters as a body map.
func Query(r *http.Request) map[string]any {
	return Values(r.URL.Query())
}

// Values flattens url.Values: single values become strings, repeated ones
// stay []string.
func Values(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for key, items := range values {
		switch len(items) {
		case 0:
		case 1:
			out[key] = items[0]
		default:
			out[key] = append([]string(nil), items...)
		}
	}
	return out
}

func decodeJSON(body io.Reader) (map[string]any, error) {
	if body == nil {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidJSON)
	}
	out := map[string]any{}
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return out, nil
}
