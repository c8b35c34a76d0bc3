package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/km-arc/go-calculator/framework/config"
	"github.com/km-arc/go-calculator/framework/container"
	"github.com/km-arc/go-calculator/framework/logging"
	"github.com/km-arc/go-calculator/framework/providers"
)

// Application is the top-level application container.
// It embeds the Container and ProviderRegistry so user code can call
// app.Singleton(), app.Register(), app.Make() directly.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
	Config    *config.Config
	Logger    *zap.Logger
}

// New loads configuration, builds the logger and registers the framework
// providers. Application providers are added with Register before Boot.
func New(envFiles ...string) (*Application, error) {
	cfg := config.Load(envFiles...)

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	return NewWith(cfg, logger)
}

// NewWith creates an application from an already loaded configuration and
// logger.
func NewWith(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("app", cfg.App.Name), zap.String("env", cfg.App.Env))

	c := container.New(container.WithLogger(logger.Named("container")))
	registry := container.NewProviderRegistry(c)
	registry.Eager = cfg.Container.Eager

	app := &Application{
		Container: c,
		Providers: registry,
		Config:    cfg,
		Logger:    logger,
	}

	// Register framework core providers
	if err := app.Register(&providers.ConfigServiceProvider{Config: cfg}); err != nil {
		return nil, err
	}
	if err := app.Register(&providers.LoggingServiceProvider{Logger: logger}); err != nil {
		return nil, err
	}
	return app, nil
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) error {
	return a.Providers.Register(provider)
}

// Boot runs the Boot phase on all providers, building the container first
// when configured as eager.
func (a *Application) Boot() error {
	if err := a.Providers.Boot(); err != nil {
		return fmt.Errorf("booting %s: %w", a.Config.App.Name, err)
	}
	a.Logger.Info("application booted",
		zap.Bool("eager", a.Providers.Eager),
		zap.Strings("instantiated", a.InstantiationOrder()),
	)
	return nil
}

// Shutdown flushes buffered log entries.
func (a *Application) Shutdown() {
	_ = a.Logger.Sync()
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config.App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config.App.Debug }
func (a *Application) Version() string     { return "0.1.0" }
