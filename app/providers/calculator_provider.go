// Package providers holds the application's service providers.
package providers

import (
	"go.uber.org/zap"

	"github.com/km-arc/go-calculator/app/calculator"
	"github.com/km-arc/go-calculator/framework/container"
)

// CalculatorServiceProvider registers the calculator components.
//
// Bound abstracts:
//   - "adder"       → *calculator.Adder
//   - "multiplier"  → *calculator.Multiplier  (needs "adder")
//   - "squarer"     → *calculator.Squarer     (needs "multiplier")
//
// Every component is Shared unless Scopes says otherwise.
type CalculatorServiceProvider struct {
	Scopes map[string]container.Scope
	Logger *zap.Logger
}

func (p *CalculatorServiceProvider) Register(app *container.Container) error {
	definitions := []struct {
		abstract string
		deps     []string
		factory  container.Factory
	}{
		{calculator.AdderKey, nil, container.Factory0(calculator.NewAdder)},
		{calculator.MultiplierKey, []string{calculator.AdderKey}, container.Factory1(calculator.NewMultiplier)},
		{calculator.SquarerKey, []string{calculator.MultiplierKey}, container.Factory1(calculator.NewSquarer)},
	}

	for _, d := range definitions {
		if err := app.Register(d.abstract, d.deps, d.factory, p.scope(d.abstract)); err != nil {
			return err
		}
	}
	return nil
}

func (p *CalculatorServiceProvider) Boot(app *container.Container) error {
	if p.Logger == nil {
		return nil
	}
	for _, abstract := range []string{calculator.AdderKey, calculator.MultiplierKey, calculator.SquarerKey} {
		def, _ := app.Definition(abstract)
		p.Logger.Debug("component wired",
			zap.String("abstract", abstract),
			zap.Strings("dependencies", def.Dependencies),
			zap.Stringer("scope", def.Scope),
		)
	}
	return nil
}

func (p *CalculatorServiceProvider) scope(abstract string) container.Scope {
	if s, ok := p.Scopes[abstract]; ok {
		return s
	}
	return container.Shared
}
