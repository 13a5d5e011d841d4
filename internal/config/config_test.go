package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/datagate")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.MaxConns != 20 {
		t.Errorf("Database.MaxConns = %d, want 20", cfg.Database.MaxConns)
	}
	if cfg.Upload.MaxFileSize != 104857600 {
		t.Errorf("Upload.MaxFileSize = %d, want 104857600", cfg.Upload.MaxFileSize)
	}
	if cfg.Upload.MaxConcurrent != 5 {
		t.Errorf("Upload.MaxConcurrent = %d, want 5", cfg.Upload.MaxConcurrent)
	}
	if cfg.Validation.MaxErrors != 10 {
		t.Errorf("Validation.MaxErrors = %d, want 10", cfg.Validation.MaxErrors)
	}
	if cfg.Validation.APIMaxErrors != 3 {
		t.Errorf("Validation.APIMaxErrors = %d, want 3", cfg.Validation.APIMaxErrors)
	}
	if cfg.Validation.APIMaxWarnings != 5 {
		t.Errorf("Validation.APIMaxWarnings = %d, want 5", cfg.Validation.APIMaxWarnings)
	}
	if cfg.Validation.TypeSampleSize != 1000 {
		t.Errorf("Validation.TypeSampleSize = %d, want 1000", cfg.Validation.TypeSampleSize)
	}
	if !cfg.Rate.Enabled {
		t.Error("Rate.Enabled = false, want true")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/datagate")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("UPLOAD_MAX_CONCURRENT", "2")
	t.Setenv("UPLOAD_MAX_WAIT_TIME", "45s")
	t.Setenv("VALIDATION_MAX_ERRORS", "25")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.0.0/16")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Upload.MaxConcurrent != 2 {
		t.Errorf("Upload.MaxConcurrent = %d, want 2", cfg.Upload.MaxConcurrent)
	}
	if cfg.Upload.MaxWaitTime != 45*time.Second {
		t.Errorf("Upload.MaxWaitTime = %v, want 45s", cfg.Upload.MaxWaitTime)
	}
	if cfg.Validation.MaxErrors != 25 {
		t.Errorf("Validation.MaxErrors = %d, want 25", cfg.Validation.MaxErrors)
	}
	if cfg.Rate.Enabled {
		t.Error("Rate.Enabled = true, want false")
	}
	want := []string{"10.0.0.0/8", "192.168.0.0/16"}
	if len(cfg.Security.TrustedProxies) != len(want) {
		t.Fatalf("TrustedProxies = %v, want %v", cfg.Security.TrustedProxies, want)
	}
	for i := range want {
		if cfg.Security.TrustedProxies[i] != want[i] {
			t.Errorf("TrustedProxies[%d] = %q, want %q", i, cfg.Security.TrustedProxies[i], want[i])
		}
	}
}

func TestLoadDatabaseURLAlternate(t *testing.T) {
	t.Setenv("DB_URL", "postgres://alt:5432/datagate")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Database.URL != "postgres://alt:5432/datagate" {
		t.Errorf("Database.URL = %q, want alternate env var value", cfg.Database.URL)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	// DATABASE_URL and DB_URL both unset
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() succeeded without DATABASE_URL, want error")
	}
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/datagate")
	t.Setenv("SERVER_PORT", "not-a-number")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() succeeded with invalid SERVER_PORT, want error")
	}
	if !strings.Contains(err.Error(), "SERVER_PORT") {
		t.Errorf("error %q does not name the offending variable", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "port out of range",
			mutate: func(c *Config) { c.Server.Port = 70000 },
			want:   "SERVER_PORT",
		},
		{
			name:   "max conns below min conns",
			mutate: func(c *Config) { c.Database.MaxConns = 2; c.Database.MinConns = 5 },
			want:   "DB_MAX_CONNS",
		},
		{
			name:   "zero concurrency",
			mutate: func(c *Config) { c.Upload.MaxConcurrent = 0 },
			want:   "UPLOAD_MAX_CONCURRENT",
		},
		{
			name:   "api cap above full cap",
			mutate: func(c *Config) { c.Validation.APIMaxErrors = 50 },
			want:   "VALIDATION_API_MAX_ERRORS",
		},
		{
			name:   "unknown log level",
			mutate: func(c *Config) { c.Logging.Level = "verbose" },
			want:   "LOG_LEVEL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "postgres://localhost:5432/datagate")
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}

			tt.mutate(cfg)
			err = cfg.Validate()
			if err == nil {
				t.Fatal("Validate() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"", 9090, ":9090"},
		{"127.0.0.1", 80, "127.0.0.1:80"},
	}

	for _, tt := range tests {
		sc := ServerConfig{Host: tt.host, Port: tt.port}
		if got := sc.Addr(); got != tt.want {
			t.Errorf("Addr() with host=%q port=%d = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}
