package jsonbody

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echo() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(w, r.Body)
	})
}

func post(h http.Handler, contentType, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestMiddleware(t *testing.T) {
	h := Middleware(Options{Limit: 32})(echo())

	cases := []struct {
		name        string
		contentType string
		body        string
		want        int
	}{
		{name: "valid json", contentType: "application/json", body: `{"senha":"A12"}`, want: http.StatusOK},
		{name: "charset param", contentType: "application/json; charset=utf-8", body: `{}`, want: http.StatusOK},
		{name: "empty body", contentType: "application/json", body: "", want: http.StatusOK},
		{name: "malformed", contentType: "application/json", body: `{"senha":`, want: http.StatusBadRequest},
		{name: "too large", contentType: "application/json", body: `{"x":"` + strings.Repeat("a", 64) + `"}`, want: http.StatusRequestEntityTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, post(h, tc.contentType, tc.body).Code)
		})
	}
}

func TestMiddleware_IgnoresNonJSON(t *testing.T) {
	called := false
	h := Middleware(Options{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	w := post(h, "text/plain", `{"senha":`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestMiddleware_CustomReject(t *testing.T) {
	var gotErr error
	h := Middleware(Options{Reject: func(w http.ResponseWriter, _ *http.Request, status int, err error) {
		gotErr = err
		w.WriteHeader(status)
	}})(echo())

	w := post(h, "application/json", "[1,")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.ErrorIs(t, gotErr, ErrMalformed)
}

func TestIsJSON(t *testing.T) {
	assert.True(t, IsJSON("application/json"))
	assert.True(t, IsJSON("application/problem+json"))
	assert.False(t, IsJSON("text/html"))
	assert.False(t, IsJSON(""))
}

func TestMiddleware_HandlerReadsBodyAgain(t *testing.T) {
	h := Middleware(Options{})(echo())

	w := post(h, "application/json", `{"senha":"A12"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"senha":"A12"}`, w.Body.String())
}
