package injector

import (
	"github.com/google/wire"
	"github.com/zeusync/entitytype/internal/core/entity"
	"github.com/zeusync/entitytype/internal/core/kinds"
	"github.com/zeusync/entitytype/internal/core/observability/log"
)

// Engine bundles the registries a process resolves entity capabilities with.
type Engine struct {
	Logger   *log.Logger
	Kinds    *kinds.Registry
	Entities *entity.Registry
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	kinds.NewRegistry,
	ProvideEntityRegistry,
	wire.Struct(new(Engine), "*"),
)

func ProvideLogger(level log.Level) *log.Logger {
	return log.New(level)
}

func ProvideEntityRegistry(logger *log.Logger) *entity.Registry {
	return entity.NewRegistry(logger)
}
