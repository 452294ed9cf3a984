package config

import "time"

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Search    SearchConfig    `koanf:"search"`
	Cache     CacheConfig     `koanf:"cache"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Log       LogConfig       `koanf:"log"`
}

type ServerConfig struct {
	Host           string    `koanf:"host"`
	Port           int       `koanf:"port"`
	PublicURL      string    `koanf:"public_url"`
	AllowedOrigins []string  `koanf:"allowed_origins"`
	TLS            TLSConfig `koanf:"tls"`
}

type TLSConfig struct {
	Mode     string        `koanf:"mode"`
	CertFile string        `koanf:"cert_file"`
	KeyFile  string        `koanf:"key_file"`
	Auto     TLSAutoConfig `koanf:"auto"`
}

type TLSAutoConfig struct {
	Domain   string `koanf:"domain"`
	Email    string `koanf:"email"`
	CacheDir string `koanf:"cache_dir"`
}

type DatabaseConfig struct {
	Path string `koanf:"path"`
}

type SearchConfig struct {
	BaseURL string        `koanf:"base_url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`
}

type CacheConfig struct {
	TTL           time.Duration `koanf:"ttl"`
	MaxEntries    int           `koanf:"max_entries"`
	SweepInterval time.Duration `koanf:"sweep_interval"`
}

type RateLimitConfig struct {
	Enabled bool              `koanf:"enabled"`
	Events  RateLimitEndpoint `koanf:"events"`
}

type RateLimitEndpoint struct {
	Limit  int           `koanf:"limit"`
	Window time.Duration `koanf:"window"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      8080,
			PublicURL: "http://localhost:8080",
			TLS: TLSConfig{
				Mode: "off",
			},
		},
		Database: DatabaseConfig{
			Path: "./data/scout.db",
		},
		Search: SearchConfig{
			BaseURL: "https://api.linkup.so/v1",
			Timeout: 30 * time.Second,
		},
		Cache: CacheConfig{
			TTL:           time.Hour,
			MaxEntries:    256,
			SweepInterval: 10 * time.Minute,
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			Events:  RateLimitEndpoint{Limit: 30, Window: time.Minute},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
