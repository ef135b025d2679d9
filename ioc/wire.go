//go:build wireinject

package ioc

import (
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitPortfolioConfig, InitDocumentStore)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitMetricsRegisterer,
		initContentModule,
		initUploadModule,
		InitWebServer)
	return new(App), nil
}
