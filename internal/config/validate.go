package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Server.UploadsPerMinute < 0 {
		return fmt.Errorf("server.uploads_per_minute must be >= 0 (got %d)", c.Server.UploadsPerMinute)
	}

	if err := c.Files.validate(); err != nil {
		return fmt.Errorf("files: %w", err)
	}

	if c.Auth.Required && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters when auth.required is set (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	if c.Workspace.RequestTimeout <= 0 {
		return fmt.Errorf("workspace.request_timeout must be > 0 (got %s)", c.Workspace.RequestTimeout)
	}

	return nil
}

func (f *FilesConfig) validate() error {
	if strings.TrimSpace(f.Dir) == "" {
		return fmt.Errorf("dir is required")
	}
	if strings.TrimSpace(f.SQLitePath) == "" {
		return fmt.Errorf("sqlite_path is required")
	}
	if f.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", f.MaxUploadBytes)
	}
	return nil
}
