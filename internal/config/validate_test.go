package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "port out of range",
			mutate:  func(cfg *Config) { cfg.Server.Port = 0 },
			wantErr: "server.port",
		},
		{
			name:    "bad origin",
			mutate:  func(cfg *Config) { cfg.Server.AllowedOrigins = []string{"not a url"} },
			wantErr: "allowed_origins",
		},
		{
			name:    "unknown tls mode",
			mutate:  func(cfg *Config) { cfg.Server.TLS.Mode = "maybe" },
			wantErr: "server.tls.mode",
		},
		{
			name:    "auto tls without domain",
			mutate:  func(cfg *Config) { cfg.Server.TLS.Mode = "auto"; cfg.Server.TLS.Auto.CacheDir = "/tmp/certs" },
			wantErr: "server.tls.auto.domain",
		},
		{
			name:    "manual tls without key",
			mutate:  func(cfg *Config) { cfg.Server.TLS.Mode = "manual"; cfg.Server.TLS.CertFile = "cert.pem" },
			wantErr: "server.tls.key_file",
		},
		{
			name:    "missing database path",
			mutate:  func(cfg *Config) { cfg.Database.Path = "" },
			wantErr: "database.path",
		},
		{
			name:    "search url without scheme",
			mutate:  func(cfg *Config) { cfg.Search.BaseURL = "api.linkup.so/v1" },
			wantErr: "search.base_url",
		},
		{
			name:    "zero cache ttl",
			mutate:  func(cfg *Config) { cfg.Cache.TTL = 0 },
			wantErr: "cache.ttl",
		},
		{
			name:    "rate limit without budget",
			mutate:  func(cfg *Config) { cfg.RateLimit.Events.Limit = 0 },
			wantErr: "rate_limit.events.limit",
		},
		{
			name:   "rate limit disabled skips budget check",
			mutate: func(cfg *Config) { cfg.RateLimit.Enabled = false; cfg.RateLimit.Events.Limit = 0 },
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *Config) { cfg.Log.Level = "verbose" },
			wantErr: "log.level",
		},
		{
			name:    "unknown log format",
			mutate:  func(cfg *Config) { cfg.Log.Format = "xml" },
			wantErr: "log.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Defaults()
	cfg.Server.Port = -1
	cfg.Database.Path = ""
	cfg.Log.Level = "loud"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"server.port", "database.path", "log.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q: %v", want, err)
		}
	}
}
