package container

import "fmt"

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups the definitions of one area of the application.
//
// Register adds definitions and must not resolve anything. Boot runs after
// every provider has been registered (and, for eager registries, after the
// container has been built), so resolving inside Boot is safe.
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(app *container.Container) error {
//	    return app.Singleton("adder", nil, container.Factory0(calculator.NewAdder))
//	}
type ServiceProvider interface {
	// Register adds definitions to the container.
	Register(app *Container) error

	// Boot is called after all providers are registered.
	Boot(app *Container) error
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct with a no-op Boot.
//
//	type MyProvider struct{ container.BaseProvider }
//	func (p *MyProvider) Register(app *container.Container) error { ... }
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container) error { return nil }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry manages registration and booting of ServiceProviders.
type ProviderRegistry struct {
	app        *Container
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	booted     bool

	// Eager makes Boot build the container, constructing every shared
	// definition up front. When false, shared instances are built on first
	// Make. Defaults to true.
	Eager bool
}

// NewProviderRegistry creates a registry bound to app.
func NewProviderRegistry(app *Container) *ProviderRegistry {
	return &ProviderRegistry{
		app:        app,
		registered: make(map[ServiceProvider]bool),
		Eager:      true,
	}
}

// Register calls provider.Register once per provider value. A provider
// registered after Boot is booted immediately.
func (r *ProviderRegistry) Register(provider ServiceProvider) error {
	if r.registered[provider] {
		return nil
	}

	if err := provider.Register(r.app); err != nil {
		return fmt.Errorf("registering %T: %w", provider, err)
	}
	r.registered[provider] = true
	r.providers = append(r.providers, provider)

	if r.booted {
		if err := provider.Boot(r.app); err != nil {
			return fmt.Errorf("booting %T: %w", provider, err)
		}
	}
	return nil
}

// Boot builds the container (when Eager) and then calls Boot on every
// provider in registration order. It is a no-op after the first success.
func (r *ProviderRegistry) Boot() error {
	if r.booted {
		return nil
	}

	if r.Eager {
		if err := r.app.Build(); err != nil {
			return err
		}
	}

	for _, provider := range r.providers {
		if err := provider.Boot(r.app); err != nil {
			return fmt.Errorf("booting %T: %w", provider, err)
		}
	}
	r.booted = true
	return nil
}

// Booted returns true once Boot has succeeded.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns the registered providers in registration order.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }
