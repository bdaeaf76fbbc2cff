package config

import (
	"fmt"
	"net/url"
	"strconv"
	"sync"
)

// Frontend é o objeto de configuração do app web. Serializado em /env.json;
// DevPort e ConcurrencyMax ficam de fora.
type Frontend struct {
	APIURL          string `env:"VITE_API_URL" envDefault:"http://localhost:3001" json:"apiUrl"`
	AppName         string `env:"VITE_APP_NAME" envDefault:"FilaZero" json:"appName"`
	AppVersion      string `env:"VITE_APP_VERSION" envDefault:"1.0.0" json:"appVersion"`
	Env             string `env:"VITE_ENV" envDefault:"development" json:"environment"`
	DefaultLocale   string `env:"VITE_DEFAULT_LOCALE" envDefault:"pt-BR" json:"defaultLocale"`
	DefaultCurrency string `env:"VITE_DEFAULT_CURRENCY" envDefault:"BRL" json:"defaultCurrency"`
	DevPort         int    `env:"DEV_PORT" envDefault:"5173" json:"-"`
	ConcurrencyMax  int    `env:"WEB_CONCURRENCY_MAX" envDefault:"200" json:"-"`
}

func (f Frontend) IsDevelopment() bool { return f.Env == "development" }
func (f Frontend) IsProduction() bool  { return f.Env == "production" }

// Addr é o endereço de escuta do servidor web.
func (f Frontend) Addr() string { return ":" + strconv.Itoa(f.DevPort) }

// APIBaseURL devolve VITE_API_URL já validada.
func (f Frontend) APIBaseURL() (*url.URL, error) {
	u, err := url.Parse(f.APIURL)
	if err != nil {
		return nil, fmt.Errorf("%w: VITE_API_URL: %v", ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, invalid("VITE_API_URL must be an absolute http(s) URL, got %q", f.APIURL)
	}
	return u, nil
}

// LoadFrontendFrom lê a configuração de vars; vars nil usa o ambiente.
func LoadFrontendFrom(vars map[string]string) (Frontend, error) {
	var cfg Frontend
	if err := parseEnv(&cfg, vars); err != nil {
		return Frontend{}, err
	}
	if cfg.DevPort <= 0 || cfg.DevPort > 65535 {
		return Frontend{}, invalid("DEV_PORT must be between 1 and 65535, got %d", cfg.DevPort)
	}
	if _, err := cfg.APIBaseURL(); err != nil {
		return Frontend{}, err
	}
	return cfg, nil
}

var loadEnvironment = sync.OnceValues(func() (Frontend, error) {
	return LoadFrontendFrom(nil)
})

// Environment devolve a configuração do processo, lida na primeira chamada.
// O valor é uma cópia: alterá-lo não afeta as próximas chamadas.
func Environment() (Frontend, error) {
	return loadEnvironment()
}
