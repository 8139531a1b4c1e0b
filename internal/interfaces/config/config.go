// Package config
package config

import (
	"github.com/flightline-dev/flightline/internal/interfaces/log"
)

type Config struct {
	Server    *ServerConfig    `json:"server"`
	Database  *DatabaseConfig  `json:"database"`
	Bootstrap *BootstrapConfig `json:"bootstrap"`
}

func DefaultConfig() *Config {
	return &Config{
		Server:    defaultServerConfig(),
		Database:  defaultDatabaseConfig(),
		Bootstrap: defaultBootstrapConfig(),
	}
}

func (c *Config) CheckValid(logger log.LoggerInterface) *ValidResult {
	if result := c.Database.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.Server.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.Bootstrap.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
