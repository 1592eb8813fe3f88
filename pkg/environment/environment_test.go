package environment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputcheck/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want environment.Environment
	}{
		{"", environment.Development},
		{"dev", environment.Development},
		{"Development", environment.Development},
		{"stage", environment.Staging},
		{"staging", environment.Staging},
		{" PROD ", environment.Production},
		{"production", environment.Production},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := environment.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := environment.Parse("qa")
	assert.ErrorIs(t, err, environment.ErrUnknownEnvironment)
}

func TestUnmarshalText(t *testing.T) {
	var env environment.Environment
	require.NoError(t, env.UnmarshalText([]byte("prod")))
	assert.Equal(t, environment.Production, env)
	assert.Equal(t, "production", env.String())

	assert.Error(t, env.UnmarshalText([]byte("qa")))
	assert.Equal(t, environment.Production, env)
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Empty(t, environment.FromContext(ctx))
	assert.False(t, environment.IsDevelopment(ctx))

	tests := []struct {
		env              environment.Environment
		dev, stage, prod bool
	}{
		{environment.Development, true, false, false},
		{environment.Staging, false, true, false},
		{environment.Production, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.env.String(), func(t *testing.T) {
			ctx := environment.WithContext(context.Background(), tt.env)
			assert.Equal(t, tt.env, environment.FromContext(ctx))
			assert.Equal(t, tt.dev, environment.IsDevelopment(ctx))
			assert.Equal(t, tt.stage, environment.IsStaging(ctx))
			assert.Equal(t, tt.prod, environment.IsProduction(ctx))
		})
	}
}

func TestMiddleware(t *testing.T) {
	var got environment.Environment
	handler := environment.Middleware(environment.Production)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = environment.FromContext(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, environment.Production, got)
}
