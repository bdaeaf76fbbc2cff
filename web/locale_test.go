package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLocale(t *testing.T) {
	cases := []struct {
		name   string
		target string
		accept string
		want   string
	}{
		{name: "fallback", target: "/", want: "pt-BR"},
		{name: "query wins", target: "/?locale=en-US", accept: "es", want: "en-US"},
		{name: "accept language", target: "/", accept: "en-GB,en;q=0.8", want: "en-US"},
		{name: "portuguese from portugal maps to pt-BR", target: "/?locale=pt-PT", want: "pt-BR"},
		{name: "bad query falls to accept", target: "/?locale=%3F%3F", accept: "es-MX", want: "es-419"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.accept != "" {
				r.Header.Set("Accept-Language", tc.accept)
			}
			assert.Equal(t, tc.want, resolveLocale(r, "pt-BR"))
		})
	}
}
