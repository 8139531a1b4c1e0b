// Package global
package global

import (
	"context"
	"flag"
)

const (
	DefaultFilePermissions     = 0644
	DefaultDirectoryPermission = 0755
)

var (
	DebugMode      = flag.Bool("debug", false, "enable debug logging")
	ConfigFilePath = flag.String("config", "config.json", "path to the configuration file")
)

type Callable interface {
	Invoke(ctx context.Context) error
}
