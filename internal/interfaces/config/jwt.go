// Package config
package config

import (
	"errors"
	"github.com/flightline-dev/flightline/internal/interfaces/log"
	"github.com/thanhpk/randstr"
	"time"
)

// JWTConfig carries distinct signing secrets for access and refresh tokens,
// so a refresh token can never pass for an access token.
type JWTConfig struct {
	AccessSecret    string        `json:"access_secret"`
	AccessExpires   string        `json:"access_expires"`
	AccessDuration  time.Duration `json:"-"`
	RefreshSecret   string        `json:"refresh_secret"`
	RefreshExpires  string        `json:"refresh_expires"`
	RefreshDuration time.Duration `json:"-"`
}

func defaultJWTConfig() *JWTConfig {
	return &JWTConfig{
		AccessSecret:   randstr.String(64),
		AccessExpires:  "30m",
		RefreshSecret:  randstr.String(64),
		RefreshExpires: "168h",
	}
}

func (config *JWTConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.AccessExpires); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.jwt.access_expires"), err)
	} else {
		config.AccessDuration = duration
	}

	if duration, err := time.ParseDuration(config.RefreshExpires); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.jwt.refresh_expires"), err)
	} else {
		config.RefreshDuration = duration
	}

	if config.AccessSecret == "" {
		config.AccessSecret = randstr.String(64)
		logger.Debug("Generated random JWT access secret")
	}

	if config.RefreshSecret == "" {
		config.RefreshSecret = randstr.String(64)
		logger.Debug("Generated random JWT refresh secret")
	}

	if config.AccessSecret == config.RefreshSecret {
		return ValidFail(errors.New("invalid json field http_server.jwt, access_secret and refresh_secret must differ"))
	}

	return ValidPass()
}
