// Package audit probes a running site over HTTP and checks its redirect, sitemap,
// robots and page metadata contracts.
package audit

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aleister1102/siteguard/internal/common"
	"github.com/aleister1102/siteguard/internal/httpclient"
)

// Fetcher issues a single HTTP request and returns the fully read response
type Fetcher interface {
	Do(req *httpclient.HTTPRequest) (*httpclient.HTTPResponse, error)
}

// fetch returns the last response when retries ran out on a transient status,
// so checks judge the status code instead of reporting a network failure.
func fetch(ctx context.Context, f Fetcher, method, url string) (*httpclient.HTTPResponse, error) {
	resp, err := f.Do(&httpclient.HTTPRequest{URL: url, Method: method, Context: ctx})
	var httpErr *common.HTTPError
	if err != nil && resp != nil && errors.As(err, &httpErr) {
		return resp, nil
	}
	return resp, err
}

func get(ctx context.Context, f Fetcher, url string) (*httpclient.HTTPResponse, error) {
	return fetch(ctx, f, http.MethodGet, url)
}

// joinURL appends an absolute path to a base URL without doubling the slash
func joinURL(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + path
}
