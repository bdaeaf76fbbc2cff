// Package jsonbody valida corpos JSON antes de chegarem aos handlers.
//
// Só atua em requisições com Content-Type application/json (ou *+json).
// Corpo acima do limite gera 413, JSON malformado gera 400; o corpo válido é
// reposto em r.Body para o handler ler de novo.
package jsonbody

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// DefaultLimit é 100 KiB.
const DefaultLimit int64 = 100 * 1024

var (
	ErrTooLarge  = errors.New("request body too large")
	ErrMalformed = errors.New("malformed JSON body")
)

type Options struct {
	Limit int64
	// Reject escreve a resposta de erro. Padrão: http.Error.
	Reject func(w http.ResponseWriter, r *http.Request, status int, err error)
}

func Middleware(opts Options) func(http.Handler) http.Handler {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if opts.Reject == nil {
		opts.Reject = func(w http.ResponseWriter, _ *http.Request, status int, err error) {
			http.Error(w, err.Error(), status)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody || !IsJSON(r.Header.Get("Content-Type")) {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, opts.Limit))
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					opts.Reject(w, r, http.StatusRequestEntityTooLarge, ErrTooLarge)
					return
				}
				opts.Reject(w, r, http.StatusBadRequest, fmt.Errorf("read body: %w", err))
				return
			}
			if len(bytes.TrimSpace(body)) > 0 && !json.Valid(body) {
				opts.Reject(w, r, http.StatusBadRequest, ErrMalformed)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			next.ServeHTTP(w, r)
		})
	}
}

// IsJSON aceita application/json e tipos estruturados como application/problem+json.
func IsJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
