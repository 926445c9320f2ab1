/*
File    : C-Like/config/config_test.go
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsZeroConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.clike.yml"))
	require.NoError(t, err)
	require.Nil(t, cfg.Debug)
	require.Nil(t, cfg.Scope)
	require.Nil(t, cfg.Stack)
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".clike.yml")
	require.NoError(t, os.WriteFile(path, []byte("debug: true\nscope: false\ninclude_dirs:\n  - lib\n  - vendor\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Debug)
	require.True(t, *cfg.Debug)
	require.NotNil(t, cfg.Scope)
	require.False(t, *cfg.Scope)
	require.Equal(t, []string{"lib", "vendor"}, cfg.IncludeDirs)
}

func TestResolveBoolPrefersExplicitFlag(t *testing.T) {
	tru := true
	require.True(t, ResolveBool(&tru, true, true))
	require.False(t, ResolveBool(&tru, true, false))
}

func TestResolveBoolFallsBackToConfig(t *testing.T) {
	tru := true
	require.True(t, ResolveBool(&tru, false, false))
	require.False(t, ResolveBool(nil, false, false))
}
