package di

import (
	"go.uber.org/fx"

	"github.com/mtkshopping/marketplace/internal/app"
	"github.com/mtkshopping/marketplace/internal/config"
	"github.com/mtkshopping/marketplace/internal/logger"
	"github.com/mtkshopping/marketplace/internal/pkg/auth"
	"github.com/mtkshopping/marketplace/internal/pkg/ident"
	"github.com/mtkshopping/marketplace/internal/server/http/router"
	"github.com/mtkshopping/marketplace/internal/storage/postgres"
	"github.com/mtkshopping/marketplace/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		ident.Module,
		postgres.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
