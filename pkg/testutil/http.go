// Package testutil provides common test utilities for handler and integration tests.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const xhrHeader = "X-Requested-With"

// NewFormRequest creates an HTTP request with a form-encoded body.
func NewFormRequest(t *testing.T, method, path string, form url.Values) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// NewRequest creates a simple HTTP request without a body.
func NewRequest(t *testing.T, method, path string) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, path, nil)
}

// DoRequest executes a request against a handler and returns the recorder.
func DoRequest(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// Browser sends requests to one handler and replays the cookies it was
// given, the way a browser keeps its session between page loads.
type Browser struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func NewBrowser(t *testing.T, handler http.Handler) *Browser {
	t.Helper()
	return &Browser{t: t, handler: handler, cookies: make(map[string]*http.Cookie)}
}

// Do attaches stored cookies to req, runs it and keeps any cookies set on
// the response.
func (b *Browser) Do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rr := DoRequest(b.handler, req)
	for _, c := range rr.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return rr
}

func (b *Browser) Get(path string) *httptest.ResponseRecorder {
	b.t.Helper()
	return b.Do(NewRequest(b.t, http.MethodGet, path))
}

func (b *Browser) PostForm(path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	return b.Do(NewFormRequest(b.t, http.MethodPost, path, form))
}

// PostXHR posts like the page script does for delete buttons.
func (b *Browser) PostXHR(path string) *httptest.ResponseRecorder {
	b.t.Helper()
	req := NewFormRequest(b.t, http.MethodPost, path, url.Values{})
	req.Header.Set(xhrHeader, "XMLHttpRequest")
	return b.Do(req)
}

// Cookie returns the stored cookie called name, or nil.
func (b *Browser) Cookie(name string) *http.Cookie {
	return b.cookies[name]
}

// ReadBody reads the response body as a string.
func ReadBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err, "failed to read response body")
	return string(body)
}

// UnmarshalResponse unmarshals the response body into the target struct.
func UnmarshalResponse[T any](t *testing.T, rr *httptest.ResponseRecorder) *T {
	t.Helper()
	var result T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result), "failed to unmarshal response")
	return &result
}

// AssertStatus asserts the response status code matches expected.
func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, expected int) {
	t.Helper()
	assert.Equal(t, expected, rr.Code, "unexpected status code")
}

// AssertRedirect asserts a 3xx response pointing at location.
func AssertRedirect(t *testing.T, rr *httptest.ResponseRecorder, location string) {
	t.Helper()
	assert.GreaterOrEqual(t, rr.Code, 300, "expected a redirect")
	assert.Less(t, rr.Code, 400, "expected a redirect")
	assert.Equal(t, location, rr.Header().Get("Location"), "unexpected redirect target")
}

// AssertErrorCode asserts the JSON error envelope carries expectedCode.
func AssertErrorCode(t *testing.T, rr *httptest.ResponseRecorder, expectedCode string) {
	t.Helper()
	errResp := UnmarshalResponse[map[string]string](t, rr)
	assert.Equal(t, expectedCode, (*errResp)["error"], "unexpected error code")
}

// AssertBodyContains asserts the body includes every fragment.
func AssertBodyContains(t *testing.T, rr *httptest.ResponseRecorder, fragments ...string) {
	t.Helper()
	body := rr.Body.String()
	for _, f := range fragments {
		assert.Contains(t, body, f)
	}
}
