package httpclient

import (
	"context"
	"io"
	"net/http"
)

// HTTPRequest describes a single outgoing request
type HTTPRequest struct {
	URL     string
	Method  string
	Headers map[string]string
	Body    io.Reader
	Context context.Context
}

// HTTPResponse is a fully read response.
// Headers keeps the first value of every header under its canonical key.
type HTTPResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// Header returns the first value of the named header
func (r *HTTPResponse) Header(name string) string {
	if r == nil || r.Headers == nil {
		return ""
	}
	return r.Headers[http.CanonicalHeaderKey(name)]
}
