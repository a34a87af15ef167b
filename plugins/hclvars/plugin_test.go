package hclvars_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/World-Enterprise-Collision/MellowD/internal/beat"
	"github.com/World-Enterprise-Collision/MellowD/internal/compiler"
	"github.com/World-Enterprise-Collision/MellowD/internal/executable"
	"github.com/World-Enterprise-Collision/MellowD/internal/failure"
	"github.com/World-Enterprise-Collision/MellowD/internal/music"
	"github.com/World-Enterprise-Collision/MellowD/internal/rtype"
	"github.com/World-Enterprise-Collision/MellowD/plugins/hclvars"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeVariables(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "variables.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestApply(t *testing.T) {
	path := writeVariables(t, `
variable "verses" {
  type  = number
  value = 3
}

variable "swing" {
  type  = number
  value = 0.5
}

variable "title" {
  type        = string
  value       = "Etude"
  description = "shown in the tempo track"
}

variable "loud" {
  type  = bool
  value = true
}

variable "channels" {
  type  = list(number)
  value = [1, 2, 10]
}

variable "anything" {
  value = ["a", 1]
}
`)
	u, err := compiler.New(context.Background(), compiler.DefaultOptions(), hclvars.Plugin{Path: path})
	require.NoError(t, err)
	defer u.Close()

	tests := []struct {
		name string
		typ  *rtype.Type
		want any
	}{
		{name: "verses", typ: rtype.Number, want: 3},
		{name: "swing", typ: rtype.Number, want: 0.5},
		{name: "title", typ: rtype.String, want: "Etude"},
		{name: "loud", typ: rtype.Bool, want: true},
		{name: "channels", want: []any{1, 2, 10}},
		{name: "anything", typ: rtype.Any, want: []any{"a", 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ref, err := u.Root.Lookup(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ref.Get())
			if tc.typ != nil {
				assert.Same(t, tc.typ, ref.Type())
			}
		})
	}

	channels, err := u.Root.Lookup("channels")
	require.NoError(t, err)
	assert.True(t, channels.Type().IsCollection())
	assert.Same(t, rtype.Number, channels.Type().Elem())

	verses, err := u.Root.Lookup("verses")
	require.NoError(t, err)
	require.ErrorIs(t, verses.Set("many"), failure.ErrTypeMismatch)
}

func TestApply_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "syntax", content: `variable "x" {`, want: "failed to parse"},
		{name: "missing value", content: `variable "x" { type = number }`, want: "failed to decode"},
		{name: "value does not convert", content: `variable "x" {
  type  = number
  value = "three"
}`, want: "does not match type"},
		{name: "unknown type", content: `variable "x" {
  type  = tempo
  value = 1
}`, want: `unknown type "tempo"`},
		{name: "collection of any", content: `variable "x" {
  type  = list(any)
  value = [1]
}`, want: "cannot contain type 'any'"},
		{name: "map type", content: `variable "x" {
  type  = map(number)
  value = { a = 1 }
}`, want: "unknown type constructor"},
		{name: "unknown duration", content: `variable "x" {
  type  = beat
  value = "sixty-fourth"
}`, want: "unknown duration"},
		{name: "bad pitch", content: `variable "x" {
  type  = pitch
  value = "H2"
}`, want: "unknown pitch name"},
		{name: "melody literal", content: `variable "x" {
  type  = melody
  value = "C4"
}`, want: "cannot be written"},
		{name: "rhythm not a list", content: `variable "x" {
  type  = rhythm
  value = "quarter"
}`, want: "expected a list"},
		{name: "duplicate", content: `variable "x" { value = 1 }
variable "x" { value = 2 }`, want: "already declared"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := compiler.New(context.Background(), compiler.DefaultOptions(), hclvars.Plugin{Path: writeVariables(t, tc.content)})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestApply_MusicalTypes(t *testing.T) {
	path := writeVariables(t, `
variable "pulse" {
  type  = beat
  value = "eighth"
}

variable "root" {
  type  = pitch
  value = "F#3"
}

variable "groove" {
  type  = rhythm
  value = ["quarter", "eighth", "eighth"]
}

variable "roots" {
  type  = list(pitch)
  value = ["C4", "*"]
}
`)
	u, err := compiler.New(context.Background(), compiler.DefaultOptions(), hclvars.Plugin{Path: path})
	require.NoError(t, err)
	defer u.Close()

	fs, err := music.NewPitch("F#", 3)
	require.NoError(t, err)
	c4, err := music.ParsePitch("C4")
	require.NoError(t, err)

	tests := []struct {
		name string
		typ  *rtype.Type
		want any
	}{
		{name: "pulse", typ: executable.TypeBeat, want: beat.Eighth},
		{name: "root", typ: executable.TypePitch, want: fs},
		{name: "groove", typ: executable.TypeRhythm, want: beat.Rhythm{beat.Quarter, beat.Eighth, beat.Eighth}},
		{name: "roots", want: []any{c4, music.Rest}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ref, err := u.Root.Lookup(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ref.Get())
			if tc.typ != nil {
				assert.Same(t, tc.typ, ref.Type())
			}
		})
	}

	roots, err := u.Root.Lookup("roots")
	require.NoError(t, err)
	assert.Same(t, executable.TypePitch, roots.Type().Elem())
}

func TestApply_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte(`variable "first" { value = 1 }`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.hcl"), []byte(`variable "second" { value = "two" }`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte(`not hcl`), 0o644))

	u, err := compiler.New(context.Background(), compiler.DefaultOptions(), hclvars.Plugin{Path: dir})
	require.NoError(t, err)
	defer u.Close()
	assert.Equal(t, []string{"first", "second"}, u.Root.Names())
}

func TestApply_MissingPath(t *testing.T) {
	_, err := compiler.New(context.Background(), compiler.DefaultOptions(), hclvars.Plugin{Path: filepath.Join(t.TempDir(), "missing.hcl")})
	require.Error(t, err)
}
