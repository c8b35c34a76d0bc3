package container_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-calculator/framework/container"
)

// ── stub providers ────────────────────────────────────────────────────────────

type eagerProvider struct {
	container.BaseProvider
	registerCalls  int
	bootCalls      int
	resolvedAtBoot bool
}

func (p *eagerProvider) Register(app *container.Container) error {
	p.registerCalls++
	return app.Singleton("eager-svc", nil, func(...any) (any, error) { return &leaf{id: 1}, nil })
}

func (p *eagerProvider) Boot(app *container.Container) error {
	p.bootCalls++
	p.resolvedAtBoot = app.Resolved("eager-svc")
	return nil
}

// failingProvider fails in the configured phase.
type failingProvider struct {
	registerErr error
	bootErr     error
}

func (p *failingProvider) Register(_ *container.Container) error { return p.registerErr }
func (p *failingProvider) Boot(_ *container.Container) error     { return p.bootErr }

// brokenGraphProvider registers a definition with a missing dependency.
type brokenGraphProvider struct{ container.BaseProvider }

func (p *brokenGraphProvider) Register(app *container.Container) error {
	return app.Singleton("squarer", []string{"multiplier"}, func(...any) (any, error) { return nil, nil })
}

// ── ProviderRegistry ──────────────────────────────────────────────────────────

func TestRegistry_RegisterCallsRegister(t *testing.T) {
	t.Parallel()

	c := container.New()
	reg := container.NewProviderRegistry(c)
	p := &eagerProvider{}

	require.NoError(t, reg.Register(p))
	assert.Equal(t, 1, p.registerCalls)
	assert.Zero(t, p.bootCalls, "Boot must wait for registry.Boot")
	assert.True(t, c.Bound("eager-svc"))
}

func TestRegistry_DuplicateRegisterIgnored(t *testing.T) {
	t.Parallel()

	reg := container.NewProviderRegistry(container.New())
	p := &eagerProvider{}

	require.NoError(t, reg.Register(p))
	require.NoError(t, reg.Register(p))
	assert.Equal(t, 1, p.registerCalls)
	assert.Len(t, reg.Providers(), 1)
}

func TestRegistry_BootBuildsThenBoots(t *testing.T) {
	t.Parallel()

	c := container.New()
	reg := container.NewProviderRegistry(c)
	p := &eagerProvider{}
	require.NoError(t, reg.Register(p))

	assert.False(t, reg.Booted())
	require.NoError(t, reg.Boot())

	assert.True(t, reg.Booted())
	assert.True(t, c.Built())
	assert.Equal(t, 1, p.bootCalls)
	assert.True(t, p.resolvedAtBoot, "shared instances exist before Boot runs")
}

func TestRegistry_LazyBootDoesNotBuild(t *testing.T) {
	t.Parallel()

	c := container.New()
	reg := container.NewProviderRegistry(c)
	reg.Eager = false
	p := &eagerProvider{}
	require.NoError(t, reg.Register(p))
	require.NoError(t, reg.Boot())

	assert.False(t, c.Built())
	assert.False(t, p.resolvedAtBoot)
}

func TestRegistry_BootIdempotent(t *testing.T) {
	t.Parallel()

	reg := container.NewProviderRegistry(container.New())
	p := &eagerProvider{}
	require.NoError(t, reg.Register(p))

	require.NoError(t, reg.Boot())
	require.NoError(t, reg.Boot())
	assert.Equal(t, 1, p.bootCalls)
}

func TestRegistry_RegisterAfterBootBootsImmediately(t *testing.T) {
	t.Parallel()

	reg := container.NewProviderRegistry(container.New())
	reg.Eager = false
	require.NoError(t, reg.Boot())

	p := &eagerProvider{}
	require.NoError(t, reg.Register(p))
	assert.Equal(t, 1, p.bootCalls)
}

func TestRegistry_RegisterAfterEagerBootFails(t *testing.T) {
	t.Parallel()

	reg := container.NewProviderRegistry(container.New())
	require.NoError(t, reg.Boot())

	err := reg.Register(&eagerProvider{})
	assert.ErrorIs(t, err, container.ErrAlreadyBuilt)
}

func TestRegistry_Errors(t *testing.T) {
	t.Parallel()

	regErr := errors.New("register failed")
	bootErr := errors.New("boot failed")

	reg := container.NewProviderRegistry(container.New())
	err := reg.Register(&failingProvider{registerErr: regErr})
	assert.ErrorIs(t, err, regErr)
	assert.Contains(t, err.Error(), "failingProvider")
	assert.Empty(t, reg.Providers())

	reg = container.NewProviderRegistry(container.New())
	require.NoError(t, reg.Register(&failingProvider{bootErr: bootErr}))
	assert.ErrorIs(t, reg.Boot(), bootErr)
	assert.False(t, reg.Booted())
}

func TestRegistry_BootSurfacesGraphErrors(t *testing.T) {
	t.Parallel()

	reg := container.NewProviderRegistry(container.New())
	require.NoError(t, reg.Register(&brokenGraphProvider{}))

	err := reg.Boot()
	assert.ErrorIs(t, err, container.ErrUnresolvedDependency)
	assert.False(t, reg.Booted())
}

// ── BaseProvider defaults ─────────────────────────────────────────────────────

func TestBaseProvider_Defaults(t *testing.T) {
	t.Parallel()

	var p container.BaseProvider
	assert.NoError(t, p.Boot(container.New()))
}
