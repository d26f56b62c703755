//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/geometry/internal/observability/log"
	"github.com/zeusync/geometry/internal/scene"
)

func ProvideScene() *scene.Scene {
	wire.Build(log.Provide, scene.Provide)
	return nil
}
