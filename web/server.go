package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"time"

	"filazero/api"
	"filazero/config"
	"filazero/middleware/ratelimit"
	"filazero/middleware/requestlog"
	"filazero/price"
	"filazero/ui"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// HTMXScript é a versão do htmx carregada pelas páginas.
const HTMXScript = "https://unpkg.com/htmx.org@2.0.4"

// StatusChecker é o que a home precisa do backend; *api.Client satisfaz.
type StatusChecker interface {
	Status(ctx context.Context) (api.StatusResponse, error)
	Health(ctx context.Context) (api.HealthResponse, error)
}

type Options struct {
	Config config.Frontend
	Logger *zap.Logger
	// Backend nil cria um api.Client para Config.APIURL.
	Backend StatusChecker
	// Registry recebe as ações padrão; nil cria um novo.
	Registry *ui.Registry
	Now      func() time.Time
}

type server struct {
	cfg      config.Frontend
	logger   *zap.Logger
	backend  StatusChecker
	registry *ui.Registry
	prices   *price.Memo
	now      func() time.Time
}

// NewHandler monta o servidor web com middlewares.
func NewHandler(opts Options) (http.Handler, error) {
	target, err := opts.Config.APIBaseURL()
	if err != nil {
		return nil, err
	}
	s := &server{
		cfg:      opts.Config,
		logger:   opts.Logger,
		backend:  opts.Backend,
		registry: opts.Registry,
		prices:   &price.Memo{},
		now:      opts.Now,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.backend == nil {
		s.backend = api.NewClient(target)
	}
	if s.registry == nil {
		s.registry = ui.NewRegistry()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if err := s.registerActions(); err != nil {
		return nil, err
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		s.logger.Warn("proxy error", zap.Error(err), zap.String("path", r.URL.Path))
		api.WriteError(w, r, http.StatusBadGateway, "backend indisponível")
	}

	r := mux.NewRouter()
	r.HandleFunc("/", s.home).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/env.json", s.envJSON).Methods(http.MethodGet)
	r.HandleFunc("/ui/price", s.priceFragment).Methods(http.MethodGet)
	r.PathPrefix(ui.ActionPrefix + "/").Handler(s.registry)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(StaticFS()))))
	r.PathPrefix("/api/").Handler(http.StripPrefix("/api", proxy))
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, r, s.page("Página não encontrada", ui.Group(
			ui.Text("A página "+r.URL.Path+" não existe."),
			ui.BackButton(ui.ButtonProps{}),
		)), templ.WithStatus(http.StatusNotFound))
	})

	h := http.Handler(r)
	h = ratelimit.ConcurrencyMiddleware(ratelimit.ConcurrencyOptions{Max: s.cfg.ConcurrencyMax})(h)
	h = requestlog.Recover(s.logger, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	})(h)
	h = requestlog.AccessLog(s.logger)(h)
	return requestlog.RequestID(h), nil
}

func (s *server) registerActions() error {
	actions := map[string]ui.ActionFunc{
		ActionRefreshStatus: func(ctx context.Context, _ *http.Request) error {
			ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			h, err := s.backend.Health(ctx)
			if err != nil {
				return fmt.Errorf("health check: %w", err)
			}
			s.logger.Info("backend healthy", zap.String("version", h.Version), zap.String("environment", h.Environment))
			return nil
		},
		ActionDismissNotice: func(ctx context.Context, _ *http.Request) error {
			s.logger.Debug("notice dismissed", zap.String("request_id", requestlog.ID(ctx)))
			return nil
		},
	}
	for name, fn := range actions {
		if err := s.registry.Register(name, fn); err != nil {
			return err
		}
	}
	return nil
}

func (s *server) envJSON(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(s.cfg)
}
