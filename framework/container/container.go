package container

import (
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// ── Definitions ───────────────────────────────────────────────────────────────

// Definition describes how the container builds one abstract.
type Definition struct {
	// Abstract is the type identifier the definition is registered under.
	Abstract string

	// Dependencies are the abstracts passed to Factory, in order.
	Dependencies []string

	// Factory is the construction rule.
	Factory Factory

	// Scope is the sharing policy.
	Scope Scope
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the component registry. It owns every shared instance it
// constructs and hands out fresh instances for per-request definitions.
//
// Definitions are registered up front and are read-only once Build has run.
// Make may be called before Build, in which case shared instances are built
// lazily on first use.
type Container struct {
	mu sync.RWMutex

	// abstract → definition
	definitions map[string]*Definition

	// registration order, used by Build and Bindings
	order []string

	// abstract → constructed shared instance
	instances map[string]any

	// alias → abstract (canonical key)
	aliases map[string]string

	// shared abstracts in the order their instances were constructed
	constructed []string

	built  bool
	logger *zap.Logger
}

// Option configures a Container.
type Option func(*Container)

// WithLogger sets the logger used for registration and resolution events.
func WithLogger(l *zap.Logger) Option {
	return func(c *Container) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates an empty container.
func New(opts ...Option) *Container {
	c := &Container{
		definitions: make(map[string]*Definition),
		instances:   make(map[string]any),
		aliases:     make(map[string]string),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Register adds a definition. It fails with DuplicateDefinitionError when
// abstract is already taken by a definition or an alias. Dependencies are not
// checked here; Build and Make report missing or cyclic ones.
//
//	c.Register("multiplier", []string{"adder"}, container.Factory1(NewMultiplier), container.Shared)
func (c *Container) Register(abstract string, dependencies []string, factory Factory, scope Scope) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.register(abstract, dependencies, factory, scope)
}

// Singleton registers a Shared definition.
//
//	// Laravel: $app->singleton(Cache::class, fn($app) => new RedisCache)
func (c *Container) Singleton(abstract string, dependencies []string, factory Factory) error {
	return c.Register(abstract, dependencies, factory, Shared)
}

// Bind registers a PerRequest definition.
//
//	// Laravel: $app->bind(Foo::class, fn($app) => new Foo)
func (c *Container) Bind(abstract string, dependencies []string, factory Factory) error {
	return c.Register(abstract, dependencies, factory, PerRequest)
}

// Instance registers a pre-built value as a shared definition without
// dependencies.
//
//	// Laravel: $app->instance(Config::class, $config)
func (c *Container) Instance(abstract string, instance any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.register(abstract, nil, func(...any) (any, error) { return instance, nil }, Shared)
	if err != nil {
		return err
	}
	c.instances[abstract] = instance
	return nil
}

// register is the internal registration helper (must hold mu.Lock).
func (c *Container) register(abstract string, dependencies []string, factory Factory, scope Scope) error {
	if c.built {
		return fmt.Errorf("%w: cannot register [%s]", ErrAlreadyBuilt, abstract)
	}
	if abstract == "" {
		return ErrEmptyAbstract
	}
	if factory == nil {
		return fmt.Errorf("%w for [%s]", ErrNilFactory, abstract)
	}
	if c.taken(abstract) {
		return DuplicateDefinitionError{Abstract: abstract}
	}

	c.definitions[abstract] = &Definition{
		Abstract:     abstract,
		Dependencies: slices.Clone(dependencies),
		Factory:      factory,
		Scope:        scope,
	}
	c.order = append(c.order, abstract)

	c.logger.Debug("definition registered",
		zap.String("abstract", abstract),
		zap.Strings("dependencies", dependencies),
		zap.Stringer("scope", scope),
	)
	return nil
}

// Alias registers an alternative name for an abstract.
//
//	// Laravel: $app->alias(Cache::class, 'cache')
//	c.Alias("config", "configuration")
func (c *Container) Alias(abstract, alias string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.built {
		return fmt.Errorf("%w: cannot alias [%s]", ErrAlreadyBuilt, alias)
	}
	if abstract == "" || alias == "" {
		return ErrEmptyAbstract
	}
	if abstract == alias {
		return fmt.Errorf("container: [%s] is aliased to itself", abstract)
	}
	if c.taken(alias) {
		return DuplicateDefinitionError{Abstract: alias}
	}
	c.aliases[alias] = c.canonical(abstract)
	return nil
}

func (c *Container) taken(abstract string) bool {
	_, isDef := c.definitions[abstract]
	_, isAlias := c.aliases[abstract]
	return isDef || isAlias
}

// canonical resolves an alias to its canonical key.
func (c *Container) canonical(abstract string) string {
	if target, ok := c.aliases[abstract]; ok {
		return target
	}
	return abstract
}

// ── Build ─────────────────────────────────────────────────────────────────────

type visitState int

const (
	unvisited visitState = iota
	visiting
	visited
)

// Build validates the whole definition graph and eagerly constructs every
// shared definition in dependency order. It fails with
// UnresolvedDependencyError or CyclicDependencyError before any factory runs.
// Calling Build again is a no-op.
func (c *Container) Build() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.built {
		return nil
	}

	if err := c.validate(); err != nil {
		return err
	}

	for _, abstract := range c.order {
		if c.definitions[abstract].Scope != Shared {
			continue
		}
		if _, err := c.resolve(abstract, nil); err != nil {
			return err
		}
	}

	c.built = true
	c.logger.Debug("container built",
		zap.Int("definitions", len(c.definitions)),
		zap.Strings("instantiated", c.constructed),
	)
	return nil
}

// validate walks every definition depth-first, tracking the abstracts that
// are still in progress on the current path.
func (c *Container) validate() error {
	states := make(map[string]visitState, len(c.definitions))
	for _, abstract := range c.order {
		if err := c.visit(abstract, states, nil); err != nil {
			return err
		}
	}
	for alias, target := range c.aliases {
		if _, ok := c.definitions[target]; !ok {
			return UnresolvedDependencyError{Abstract: alias, Dependency: target}
		}
	}
	return nil
}

func (c *Container) visit(abstract string, states map[string]visitState, stack []string) error {
	switch states[abstract] {
	case visiting:
		return cycle(stack, abstract)
	case visited:
		return nil
	}

	states[abstract] = visiting
	stack = append(stack, abstract)

	for _, dep := range c.definitions[abstract].Dependencies {
		key := c.canonical(dep)
		if _, ok := c.definitions[key]; !ok {
			return UnresolvedDependencyError{Abstract: abstract, Dependency: dep}
		}
		if err := c.visit(key, states, stack); err != nil {
			return err
		}
	}

	states[abstract] = visited
	return nil
}

// cycle builds the error for abstract being reached again while stack is in
// progress. The reported chain starts at the first occurrence.
func cycle(stack []string, abstract string) error {
	start := slices.Index(stack, abstract)
	chain := append(slices.Clone(stack[start:]), abstract)
	return CyclicDependencyError{Chain: chain}
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Make resolves an abstract. Shared definitions return the cached instance,
// constructing and caching it on first use. PerRequest definitions return a
// new instance built from freshly resolved dependencies.
//
//	// Laravel: $app->make(UserRepository::class)
//	raw, err := c.Make("squarer")
func (c *Container) Make(abstract string) (any, error) {
	c.mu.RLock()
	if inst, ok := c.instances[c.canonical(abstract)]; ok {
		c.mu.RUnlock()
		return inst, nil
	}
	c.mu.RUnlock()

	// The write lock serializes construction; resolve re-checks the cache so
	// a shared abstract is never built twice.
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolve(abstract, nil)
}

// resolve is the depth-first resolver (must hold mu.Lock). chain holds the
// abstracts in progress on the current call path.
func (c *Container) resolve(abstract string, chain []string) (any, error) {
	key := c.canonical(abstract)

	if inst, ok := c.instances[key]; ok {
		return inst, nil
	}

	def, ok := c.definitions[key]
	if !ok {
		return nil, UnknownTypeError{Abstract: abstract}
	}
	if slices.Contains(chain, key) {
		return nil, cycle(chain, key)
	}
	chain = append(chain, key)

	deps := make([]any, len(def.Dependencies))
	for i, dep := range def.Dependencies {
		depKey := c.canonical(dep)
		if _, ok := c.definitions[depKey]; !ok {
			return nil, UnresolvedDependencyError{Abstract: key, Dependency: dep}
		}
		inst, err := c.resolve(depKey, chain)
		if err != nil {
			return nil, err
		}
		deps[i] = inst
	}

	instance, err := def.Factory(deps...)
	if err != nil {
		return nil, &ConstructionError{Abstract: key, Err: err}
	}

	if def.Scope == Shared {
		c.instances[key] = instance
		c.constructed = append(c.constructed, key)
	}

	c.logger.Debug("instance constructed",
		zap.String("abstract", key),
		zap.Stringer("scope", def.Scope),
	)
	return instance, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Bound reports whether an abstract or alias has been registered.
func (c *Container) Bound(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.definitions[c.canonical(abstract)]
	return ok
}

// Resolved reports whether a shared instance exists for the abstract.
func (c *Container) Resolved(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.instances[c.canonical(abstract)]
	return ok
}

// Built reports whether Build has completed successfully.
func (c *Container) Built() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.built
}

// Bindings returns the registered abstracts in registration order.
func (c *Container) Bindings() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.order)
}

// Definition returns a copy of the definition registered for abstract.
func (c *Container) Definition(abstract string) (Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.definitions[c.canonical(abstract)]
	if !ok {
		return Definition{}, false
	}
	cp := *def
	cp.Dependencies = slices.Clone(def.Dependencies)
	return cp, true
}

// InstantiationOrder returns the shared abstracts in the order the container
// constructed them. Pre-built instances are not included.
func (c *Container) InstantiationOrder() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.constructed)
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve is a generic helper that calls Make and type-asserts the result.
//
//	// Instead of: raw, err := c.Make("squarer"); sq := raw.(*calculator.Squarer)
//	// Write:      sq, err := container.Resolve[*calculator.Squarer](c, "squarer")
func Resolve[T any](c *Container, abstract string) (T, error) {
	var zero T
	instance, err := c.Make(abstract)
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, DependencyTypeError{
			Abstract: abstract,
			Want:     fmt.Sprintf("%T", &zero)[1:],
			Got:      fmt.Sprintf("%T", instance),
		}
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on error.
func MustResolve[T any](c *Container, abstract string) T {
	typed, err := Resolve[T](c, abstract)
	if err != nil {
		panic(err)
	}
	return typed
}
