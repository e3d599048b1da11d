//go:build wireinject
// +build wireinject

package main

import (
	"Blog/config"
	"Blog/dao"
	"Blog/dao/cache"
	"Blog/handler"
	"Blog/pkg/server"
	"Blog/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, func(), error) {
	wire.Build(
		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.Like), "*"),
		wire.Struct(new(handler.Health), "*"),

		server.NewGinEngine,
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil, nil, nil
}
