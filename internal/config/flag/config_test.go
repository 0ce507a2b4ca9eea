package config

import (
	"errors"
	"testing"

	apperr "github.com/anon-d/redirector/internal/error"
)

const (
	ServerAddr = ":8081"
	EnvVar     = "release"
	Path       = "/go"
	Target     = "http://target-host:8081/landing"
)

// TestNewServerConfig проводит табличные тесты для функции NewServerConfig.
// 1 - все переменные окружения переданы;
// 2 - переданы все переменные окружения, кроме адреса сервера;
// 3 - переменные окружения не переданы, используются значения по умолчанию
func TestNewServerConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    ServerConfig
	}{
		{
			name: "All environments setup",
			envVars: map[string]string{
				"SERVER_ADDRESS": ServerAddr,
				"REDIRECT_PATH":  Path,
				"TARGET_URL":     Target,
				"ENV":            EnvVar,
			},
			want: ServerConfig{
				AddrServer: ServerAddr,
				Path:       Path,
				TargetURL:  Target,
				Env:        EnvVar,
			},
		},
		{
			name: "Missing server address",
			envVars: map[string]string{
				"REDIRECT_PATH": Path,
				"TARGET_URL":    Target,
				"ENV":           EnvVar,
			},
			want: ServerConfig{
				AddrServer: ":8080",
				Path:       Path,
				TargetURL:  Target,
				Env:        EnvVar,
			},
		},
		{
			name:    "Default parameters",
			envVars: map[string]string{},
			want: ServerConfig{
				AddrServer: ":8080",
				Path:       "/injection",
				TargetURL:  "http://example.com",
				Env:        "dev",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			for key, val := range tt.envVars {
				t.Setenv(key, val)
			}

			got := NewServerConfig()

			if got.AddrServer != tt.want.AddrServer {
				t.Errorf("AddrServer = %v, want %v", got.AddrServer, tt.want.AddrServer)
			}
			if got.Path != tt.want.Path {
				t.Errorf("Path = %v, want %v", got.Path, tt.want.Path)
			}
			if got.TargetURL != tt.want.TargetURL {
				t.Errorf("TargetURL = %v, want %v", got.TargetURL, tt.want.TargetURL)
			}
			if got.Env != tt.want.Env {
				t.Errorf("Env = %v, want %v", got.Env, tt.want.Env)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ServerConfig
		wantErr error
	}{
		{
			name:    "Valid config",
			cfg:     ServerConfig{AddrServer: ":8080", Path: "/injection", TargetURL: "http://example.com", Env: "dev"},
			wantErr: nil,
		},
		{
			name:    "Relative target URL",
			cfg:     ServerConfig{AddrServer: ":8080", Path: "/injection", TargetURL: "/local/path", Env: "dev"},
			wantErr: apperr.ErrInvalidTargetURL,
		},
		{
			name:    "Target URL without host",
			cfg:     ServerConfig{AddrServer: ":8080", Path: "/injection", TargetURL: "http://", Env: "dev"},
			wantErr: apperr.ErrInvalidTargetURL,
		},
		{
			name:    "Path without leading slash",
			cfg:     ServerConfig{AddrServer: ":8080", Path: "injection", TargetURL: "http://example.com", Env: "dev"},
			wantErr: apperr.ErrInvalidPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
