package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks cross-field constraints cleanenv tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port: %d out of range", c.Server.Port))
	}

	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, errors.New("auth.jwt_secret: must be at least 32 characters"))
	}

	if c.SMTP.Host != "" && c.SMTP.OperatorAddr == "" {
		errs = append(errs, errors.New("smtp.operator_addr: required when smtp.host is set"))
	}
	if c.SMTP.Host != "" && !strings.Contains(c.SMTP.OperatorAddr, "@") {
		errs = append(errs, fmt.Errorf("smtp.operator_addr: %q is not an email address", c.SMTP.OperatorAddr))
	}

	if c.Watcher.Channel == "" {
		errs = append(errs, errors.New("watcher.channel: must not be empty"))
	}

	if c.Feed.DefaultLimit <= 0 || c.Feed.MaxLimit < c.Feed.DefaultLimit {
		errs = append(errs, fmt.Errorf("feed: default_limit %d / max_limit %d inconsistent",
			c.Feed.DefaultLimit, c.Feed.MaxLimit))
	}

	return errors.Join(errs...)
}
