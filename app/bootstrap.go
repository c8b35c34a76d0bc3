// Package app is the composition root: it assembles the framework
// application with the application's own service providers.
package app

import (
	"fmt"

	"github.com/km-arc/go-calculator/app/calculator"
	"github.com/km-arc/go-calculator/app/providers"
	foundation "github.com/km-arc/go-calculator/framework/app"
	"github.com/km-arc/go-calculator/framework/config"
	"github.com/km-arc/go-calculator/framework/container"
)

// scopeKeys maps each component to the configuration key of its scope.
var scopeKeys = map[string]string{
	calculator.AdderKey:      "CALCULATOR_ADDER_SCOPE",
	calculator.MultiplierKey: "CALCULATOR_MULTIPLIER_SCOPE",
	calculator.SquarerKey:    "CALCULATOR_SQUARER_SCOPE",
}

// Bootstrap creates the application and registers the calculator
// components. The returned application still has to be booted.
//
//	application, err := app.Bootstrap()
//	err = application.Boot()
func Bootstrap(envFiles ...string) (*foundation.Application, error) {
	application, err := foundation.New(envFiles...)
	if err != nil {
		return nil, err
	}
	if err := Configure(application); err != nil {
		return nil, err
	}
	return application, nil
}

// Configure registers the application providers on an existing application.
func Configure(application *foundation.Application) error {
	scopes, err := Scopes(application.Config)
	if err != nil {
		return err
	}
	return application.Register(&providers.CalculatorServiceProvider{
		Scopes: scopes,
		Logger: application.Logger.Named("calculator"),
	})
}

// Scopes reads the configured scope of every calculator component.
func Scopes(cfg *config.Config) (map[string]container.Scope, error) {
	scopes := make(map[string]container.Scope, len(scopeKeys))
	for abstract, key := range scopeKeys {
		s, err := container.ParseScope(cfg.Get(key, "shared"))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		scopes[abstract] = s
	}
	return scopes, nil
}
