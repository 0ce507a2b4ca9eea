package config

import (
	"flag"
	"io"
	"net/url"
	"os"
	"strings"

	apperr "github.com/anon-d/redirector/internal/error"
)

type ServerConfig struct {
	AddrServer string
	Path       string
	TargetURL  string
	Env        string
}

// NewServerConfig собирает конфигурацию сервера.
// Приоритет: переменные окружения > флаги > значения по умолчанию.
func NewServerConfig() *ServerConfig {
	cfg := &ServerConfig{}

	fs := flag.NewFlagSet("redirector", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.AddrServer, "a", ":8080", "address and port to run server")
	fs.StringVar(&cfg.Path, "p", "/injection", "route path to redirect from")
	fs.StringVar(&cfg.TargetURL, "t", "http://example.com", "absolute URL to redirect to")
	fs.StringVar(&cfg.Env, "e", "dev", "environment: dev or release")
	_ = fs.Parse(os.Args[1:])

	if addr := os.Getenv("SERVER_ADDRESS"); addr != "" {
		cfg.AddrServer = addr
	}
	if path := os.Getenv("REDIRECT_PATH"); path != "" {
		cfg.Path = path
	}
	if target := os.Getenv("TARGET_URL"); target != "" {
		cfg.TargetURL = target
	}
	if env := os.Getenv("ENV"); env != "" {
		cfg.Env = env
	}

	return cfg
}

// Validate проверяет, что целевой URL абсолютный, а путь маршрута начинается с "/".
func (c *ServerConfig) Validate() error {
	u, err := url.Parse(c.TargetURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return apperr.ErrInvalidTargetURL
	}
	if !strings.HasPrefix(c.Path, "/") {
		return apperr.ErrInvalidPath
	}
	return nil
}
