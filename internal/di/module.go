package di

import (
	"go.uber.org/fx"

	"github.com/treadworks/orderflow/internal/adapter/mailer"
	"github.com/treadworks/orderflow/internal/adapter/pdfdoc"
	"github.com/treadworks/orderflow/internal/app"
	"github.com/treadworks/orderflow/internal/config"
	"github.com/treadworks/orderflow/internal/logger"
	"github.com/treadworks/orderflow/internal/pkg/auth"
	"github.com/treadworks/orderflow/internal/server/http/handlers"
	"github.com/treadworks/orderflow/internal/server/http/router"
	"github.com/treadworks/orderflow/internal/sites"
	"github.com/treadworks/orderflow/internal/storage/postgres"
	"github.com/treadworks/orderflow/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		sites.Module,
		postgres.Module,
		mailer.Module,
		pdfdoc.Module,
		usecase.Module,
		fx.Provide(func(r *pdfdoc.Renderer) app.DocumentRenderer { return r }),
		fx.Provide(func(f *app.WorkflowFacade) handlers.WorkflowFacade { return f }),
		fx.Provide(func(s *postgres.Storage) handlers.HealthChecker { return s }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
