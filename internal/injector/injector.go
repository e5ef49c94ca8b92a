//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"
	"github.com/zeusync/entitytype/internal/core/observability/log"
)

func InitializeEngine(level log.Level) *Engine {
	wire.Build(ProviderSet)
	return nil
}
