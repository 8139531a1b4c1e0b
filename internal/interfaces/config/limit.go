// Package config
package config

import (
	"errors"
	"github.com/flightline-dev/flightline/internal/interfaces/log"
	"time"
)

type HttpServerLimit struct {
	RateLimit         int           `json:"rate_limit"`
	RateLimitWindow   string        `json:"rate_limit_window"`
	RateLimitDuration time.Duration `json:"-"`
	UsernameLengthMin int           `json:"username_length_min"`
	UsernameLengthMax int           `json:"username_length_max"`
	PasswordLengthMin int           `json:"password_length_min"`
	PasswordLengthMax int           `json:"password_length_max"`
	TailNoLengthMax   int           `json:"tail_no_length_max"`
}

func defaultHttpServerLimit() *HttpServerLimit {
	return &HttpServerLimit{
		RateLimit:         15,
		RateLimitWindow:   "1m",
		UsernameLengthMin: 3,
		UsernameLengthMax: 32,
		PasswordLengthMin: 6,
		PasswordLengthMax: 64,
		TailNoLengthMax:   16,
	}
}

func (config *HttpServerLimit) checkValid(_ log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.RateLimitWindow); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.limits.rate_limit_window"), err)
	} else {
		config.RateLimitDuration = duration
	}

	if config.UsernameLengthMin <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.username_length_min, value must larger than 0"))
	}
	if config.UsernameLengthMax > 64 {
		return ValidFail(errors.New("invalid json field http_server.limits.username_length_max, value must less than 64"))
	}
	if config.UsernameLengthMin >= config.UsernameLengthMax {
		return ValidFail(errors.New("invalid json field http_server.limits.username_length_min, value must less than http_server.limits.username_length_max"))
	}

	if config.PasswordLengthMin <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.password_length_min, value must larger than 0"))
	}
	if config.PasswordLengthMax > 128 {
		return ValidFail(errors.New("invalid json field http_server.limits.password_length_max, value must less than 128"))
	}
	if config.PasswordLengthMin >= config.PasswordLengthMax {
		return ValidFail(errors.New("invalid json field http_server.limits.password_length_min, value must less than http_server.limits.password_length_max"))
	}

	if config.TailNoLengthMax <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.tail_no_length_max, value must larger than 0"))
	}

	return ValidPass()
}
