// Package interfaces
package interfaces

import (
	. "github.com/flightline-dev/flightline/internal/interfaces/config"
)

type ConfigManagerInterface interface {
	Config() *Config
	SaveConfig() error
}
