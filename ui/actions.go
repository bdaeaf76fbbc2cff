package ui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

var (
	ErrActionExists   = errors.New("action already registered")
	ErrActionNotFound = errors.New("action not found")
)

// ActionFunc é o callback de um clique.
type ActionFunc func(ctx context.Context, r *http.Request) error

// Registry liga nomes de ação aos callbacks. Cada POST em ActionPrefix/{nome}
// chama o callback exatamente uma vez.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]ActionFunc
}

func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]ActionFunc)}
}

func (reg *Registry) Register(name string, fn ActionFunc) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("register action: empty name")
	}
	if fn == nil {
		return fmt.Errorf("register action %q: nil callback", name)
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.actions[name]; ok {
		return fmt.Errorf("register action %q: %w", name, ErrActionExists)
	}
	reg.actions[name] = fn
	return nil
}

// MustRegister é Register para a montagem do servidor; panics em erro.
func (reg *Registry) MustRegister(name string, fn ActionFunc) {
	if err := reg.Register(name, fn); err != nil {
		panic(err)
	}
}

func (reg *Registry) Invoke(ctx context.Context, name string, r *http.Request) error {
	reg.mu.RLock()
	fn, ok := reg.actions[name]
	reg.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrActionNotFound, name)
	}
	return fn(ctx, r)
}

// ServeHTTP atende POST ActionPrefix/{nome}: 204 em sucesso, 404 para ação
// desconhecida, 500 quando o callback falha.
func (reg *Registry) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeActionError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
		return
	}
	name, err := url.PathUnescape(strings.TrimPrefix(r.URL.EscapedPath(), ActionPrefix+"/"))
	if err != nil {
		writeActionError(w, http.StatusBadRequest, "invalid action name")
		return
	}

	err = reg.Invoke(r.Context(), name, r)
	switch {
	case errors.Is(err, ErrActionNotFound):
		writeActionError(w, http.StatusNotFound, err.Error())
	case err != nil:
		writeActionError(w, http.StatusInternalServerError, err.Error())
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeActionError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
}
