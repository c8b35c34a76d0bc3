package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-calculator/app/calculator"
	"github.com/km-arc/go-calculator/framework/container"
)

func TestRun_PrintsResults(t *testing.T) {
	t.Parallel()

	c := container.New()
	require.NoError(t, c.Singleton(calculator.AdderKey, nil, container.Factory0(calculator.NewAdder)))
	require.NoError(t, c.Singleton(calculator.MultiplierKey, []string{calculator.AdderKey}, container.Factory1(calculator.NewMultiplier)))
	require.NoError(t, c.Singleton(calculator.SquarerKey, []string{calculator.MultiplierKey}, container.Factory1(calculator.NewSquarer)))
	require.NoError(t, c.Build())

	var out bytes.Buffer
	require.NoError(t, run(c, &out))

	assert.Equal(t, "Got the adder bean. it says the result of 2+2=4\n"+
		"Got the multiplier bean. it says the result of 3*4=12\n"+
		"Now, if the squarer bean was properly set up, this should work ...\n"+
		"Got the squarer bean. it says the result of 4^2=16\n", out.String())
}

func TestRun_MissingSquarerNamesType(t *testing.T) {
	t.Parallel()

	c := container.New()
	require.NoError(t, c.Singleton(calculator.AdderKey, nil, container.Factory0(calculator.NewAdder)))
	require.NoError(t, c.Singleton(calculator.MultiplierKey, []string{calculator.AdderKey}, container.Factory1(calculator.NewMultiplier)))

	var out bytes.Buffer
	err := run(c, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, container.ErrUnknownType)
	assert.Contains(t, err.Error(), "[squarer]")
	assert.Contains(t, out.String(), "3*4=12")
}
