// Package config
package config

import (
	"github.com/flightline-dev/flightline/internal/interfaces/log"
)

type ServerConfig struct {
	HttpServer *HttpServerConfig `json:"http_server"`
}

func defaultServerConfig() *ServerConfig {
	return &ServerConfig{
		HttpServer: defaultHttpServerConfig(),
	}
}

func (config *ServerConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if result := config.HttpServer.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
