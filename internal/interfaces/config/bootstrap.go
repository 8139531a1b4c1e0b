// Package config
package config

import (
	"errors"
	"github.com/flightline-dev/flightline/internal/interfaces/log"
	"github.com/thanhpk/randstr"
)

// BootstrapConfig describes the default admin account created at startup
// when no admin-level user exists yet.
type BootstrapConfig struct {
	AdminUsername string `json:"admin_username"`
	AdminPassword string `json:"admin_password"`
}

func defaultBootstrapConfig() *BootstrapConfig {
	return &BootstrapConfig{
		AdminUsername: "admin",
		AdminPassword: randstr.String(16),
	}
}

func (config *BootstrapConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if config.AdminUsername == "" {
		return ValidFail(errors.New("invalid json field bootstrap.admin_username, cannot be empty"))
	}
	if config.AdminPassword == "" {
		config.AdminPassword = randstr.String(16)
		logger.WarnF("bootstrap.admin_password is empty, generated password: %s", config.AdminPassword)
	}
	return ValidPass()
}
