package providers

import (
	"go.uber.org/zap"

	"github.com/km-arc/go-calculator/framework/config"
	"github.com/km-arc/go-calculator/framework/container"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider binds the loaded configuration into the container.
//
// Bound abstracts:
//   - "config"         → *config.Config
//   - "configuration"  → alias of "config"
type ConfigServiceProvider struct {
	container.BaseProvider
	Config *config.Config
}

func (p *ConfigServiceProvider) Register(app *container.Container) error {
	if err := app.Instance("config", p.Config); err != nil {
		return err
	}
	return app.Alias("config", "configuration")
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider binds the application logger.
//
// Bound abstracts:
//   - "logger"  → *zap.Logger
type LoggingServiceProvider struct {
	container.BaseProvider
	Logger *zap.Logger
}

func (p *LoggingServiceProvider) Register(app *container.Container) error {
	return app.Instance("logger", p.Logger)
}

// Boot reports the definitions known once every provider is registered.
func (p *LoggingServiceProvider) Boot(app *container.Container) error {
	p.Logger.Debug("providers booted", zap.Strings("bindings", app.Bindings()))
	return nil
}
