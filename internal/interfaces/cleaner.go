// Package interfaces
package interfaces

import (
	"github.com/flightline-dev/flightline/internal/interfaces/global"
)

type CleanerInterface interface {
	Init()
	Add(callable global.Callable)
	Clean()
}
