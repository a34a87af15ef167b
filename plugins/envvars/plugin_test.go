package envvars_test

import (
	"context"
	"testing"

	"github.com/World-Enterprise-Collision/MellowD/internal/compiler"
	"github.com/World-Enterprise-Collision/MellowD/internal/failure"
	"github.com/World-Enterprise-Collision/MellowD/internal/rtype"
	"github.com/World-Enterprise-Collision/MellowD/plugins/envvars"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Setenv("MELLOWD_TEST_TITLE", "Etude")
	t.Setenv("MELLOWD_TEST_EMPTY", "")
	t.Setenv("OTHER_TEST_VALUE", "ignored")

	u, err := compiler.New(context.Background(), compiler.DefaultOptions(), envvars.Plugin{Prefix: "MELLOWD_TEST_"})
	require.NoError(t, err)
	defer u.Close()

	ref, err := u.Root.Lookup("title")
	require.NoError(t, err)
	assert.Equal(t, "Etude", ref.Get())
	assert.Same(t, rtype.String, ref.Type())

	ref, err = u.Root.Lookup("empty")
	require.NoError(t, err)
	assert.Equal(t, "", ref.Get())

	_, err = u.Root.Lookup("value")
	require.ErrorIs(t, err, failure.ErrUnresolved)
}

func TestApply_CaseCollision(t *testing.T) {
	t.Setenv("MELLOWD_CASE_KEY", "a")
	t.Setenv("MELLOWD_CASE_key", "b")

	_, err := compiler.New(context.Background(), compiler.DefaultOptions(), envvars.Plugin{Prefix: "MELLOWD_CASE_"})
	require.ErrorIs(t, err, failure.ErrRedeclared)
}
