// Package config
package config

import (
	"fmt"
	"github.com/flightline-dev/flightline/internal/interfaces/log"
)

type HttpServerConfig struct {
	Host      string           `json:"host"`
	Port      uint             `json:"port"`
	Address   string           `json:"-"`
	ProxyType int              `json:"proxy_type"`
	BodyLimit string           `json:"body_limit"`
	Store     *HttpServerStore `json:"store"`
	Limits    *HttpServerLimit `json:"limits"`
	JWT       *JWTConfig       `json:"jwt"`
	SSL       *SSLConfig       `json:"ssl"`
}

func defaultHttpServerConfig() *HttpServerConfig {
	return &HttpServerConfig{
		Host:      "0.0.0.0",
		Port:      8081,
		ProxyType: 0,
		BodyLimit: "16MB",
		Store:     defaultHttpServerStore(),
		Limits:    defaultHttpServerLimit(),
		JWT:       defaultJWTConfig(),
		SSL:       defaultSSLConfig(),
	}
}

func (config *HttpServerConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if result := checkPort(config.Port); result.IsFail() {
		return result
	}

	config.Address = fmt.Sprintf("%s:%d", config.Host, config.Port)

	if config.BodyLimit == "" {
		logger.WarnF("body_limit is empty, request body size is not restricted")
	}

	if result := config.SSL.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.Limits.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.JWT.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.Store.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
