package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-calculator/framework/container"
)

func TestScope_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "shared", container.Shared.String())
	assert.Equal(t, "per-request", container.PerRequest.String())
	assert.Equal(t, "unknown", container.Scope(42).String())
}

func TestParseScope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want container.Scope
	}{
		{"shared", container.Shared},
		{"Singleton", container.Shared},
		{" shared ", container.Shared},
		{"per-request", container.PerRequest},
		{"prototype", container.PerRequest},
		{"TRANSIENT", container.PerRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := container.ParseScope(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseScope_Unknown(t *testing.T) {
	t.Parallel()

	_, err := container.ParseScope("session")
	assert.EqualError(t, err, `container: unknown scope "session"`)
}
