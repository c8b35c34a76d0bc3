// Package container provides the component registry and the service
// provider system the application is assembled with.
//
// # Overview
//
// A definition names an abstract (the type identifier), the abstracts it
// depends on, a factory and a Scope. The container resolves dependencies
// depth-first, calls the factory with the resolved instances in declaration
// order, and caches the result when the scope is Shared. Wiring is explicit:
// there is no reflection and no component scanning.
//
// # Container Lifecycle
//
//  1. Create: c := container.New(container.WithLogger(logger))
//  2. Register providers: registry.Register(&MyProvider{})
//  3. Boot: registry.Boot()  — builds the container, then boots providers
//  4. Resolve components
//
// # Definitions
//
//	// Shared — created once, reused
//	c.Singleton("adder", nil, container.Factory0(calculator.NewAdder))
//
//	// Per-request — new instance every Make()
//	c.Bind("multiplier", []string{"adder"}, container.Factory1(calculator.NewMultiplier))
//
//	// Pre-built value
//	c.Instance("config", cfg)
//
//	// Alias
//	c.Alias("config", "configuration")
//
// # Resolving
//
//	// Untyped
//	raw, err := c.Make("adder")
//
//	// Generic (preferred — no type assertion required)
//	sq, err := container.Resolve[*calculator.Squarer](c, "squarer")
//
// # Errors
//
// Registration and resolution fail with DuplicateDefinitionError,
// UnresolvedDependencyError, CyclicDependencyError or UnknownTypeError. Each
// matches its sentinel with errors.Is:
//
//	if errors.Is(err, container.ErrCyclicDependency) { ... }
//
// # Service Providers
//
//	type CalculatorServiceProvider struct{ container.BaseProvider }
//
//	func (p *CalculatorServiceProvider) Register(app *container.Container) error {
//	    return app.Singleton("adder", nil, container.Factory0(calculator.NewAdder))
//	}
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&CalculatorServiceProvider{})
//	registry.Boot()
package container
