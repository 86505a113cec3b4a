package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Admin.validate(); err != nil {
		return fmt.Errorf("admin: %w", err)
	}

	if c.Inbound.DedupTTL < 0 {
		return fmt.Errorf("inbound.dedup_ttl must be >= 0 (got %v)", c.Inbound.DedupTTL)
	}

	switch strings.ToLower(c.Log.Format) {
	case "", "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (a *AdminConfig) validate() error {
	if a.SessionSecret == "" {
		a.SessionSecret = DefaultAdminSessionSecret
	}
	if a.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be > 0 (got %v)", a.SessionTTL)
	}
	if !strings.HasPrefix(a.CookiePath, "/") {
		return fmt.Errorf("cookie_path must start with / (got %q)", a.CookiePath)
	}
	if a.ImpersonationTTL <= 0 {
		return fmt.Errorf("impersonation_ttl must be > 0 (got %v)", a.ImpersonationTTL)
	}
	if a.LoginRateLimit <= 0 {
		return fmt.Errorf("login_rate_limit must be > 0 (got %d)", a.LoginRateLimit)
	}
	u, err := url.Parse(a.AppURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("app_url must be an absolute URL (got %q)", a.AppURL)
	}
	a.AppURL = strings.TrimRight(a.AppURL, "/")
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	return nil
}
