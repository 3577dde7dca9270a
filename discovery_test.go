// FILE: lixenwraith/smolconf/discovery_test.go
package smolconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverFile(t *testing.T) {
	dir := t.TempDir()
	xdgDir := filepath.Join(dir, "xdg")
	require.NoError(t, os.MkdirAll(filepath.Join(xdgDir, "myapp"), 0755))
	xdgFile := filepath.Join(xdgDir, "myapp", "myapp.cfg")
	require.NoError(t, os.WriteFile(xdgFile, []byte("from=xdg\n"), 0644))

	t.Setenv("XDG_CONFIG_HOME", xdgDir)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "none"))
	t.Setenv("MYAPP_CONFIG", "")

	opts := DefaultDiscoveryOptions("myapp")
	opts.UseCurrentDir = false

	t.Run("CLIFlag", func(t *testing.T) {
		path, ok := DiscoverFile(opts, []string{"--config", "/tmp/explicit.conf"})
		assert.True(t, ok)
		assert.Equal(t, "/tmp/explicit.conf", path)

		path, ok = DiscoverFile(opts, []string{"--config=/tmp/eq.conf"})
		assert.True(t, ok)
		assert.Equal(t, "/tmp/eq.conf", path)
	})

	t.Run("EnvVar", func(t *testing.T) {
		t.Setenv("MYAPP_CONFIG", "/tmp/env.conf")
		path, ok := DiscoverFile(opts, nil)
		assert.True(t, ok)
		assert.Equal(t, "/tmp/env.conf", path)
	})

	t.Run("SearchPathsBeforeXDG", func(t *testing.T) {
		custom := filepath.Join(dir, "custom")
		require.NoError(t, os.MkdirAll(custom, 0755))
		customFile := filepath.Join(custom, "myapp.conf")
		require.NoError(t, os.WriteFile(customFile, []byte("from=custom\n"), 0644))

		withPaths := opts
		withPaths.Paths = []string{custom}
		path, ok := DiscoverFile(withPaths, nil)
		assert.True(t, ok)
		assert.Equal(t, customFile, path)
	})

	t.Run("XDG", func(t *testing.T) {
		path, ok := DiscoverFile(opts, nil)
		assert.True(t, ok)
		assert.Equal(t, xdgFile, path)
	})

	t.Run("NotFound", func(t *testing.T) {
		missing := DefaultDiscoveryOptions("nothing_here")
		missing.UseCurrentDir = false
		_, ok := DiscoverFile(missing, nil)
		assert.False(t, ok)
	})
}

func TestBuilderWithFileDiscovery(t *testing.T) {
	path := writeFile(t, "found.conf", "host=discovered\n")

	opts := DefaultDiscoveryOptions("found")
	opts.UseXDG = false
	opts.UseCurrentDir = false

	cfg, err := NewBuilder().
		WithArgs([]string{"--config", path, "--port=1"}).
		WithEnvPrefix("DTEST_").
		WithFileDiscovery(opts).
		Build()
	require.NoError(t, err)

	host, _ := cfg.Find("host")
	assert.Equal(t, "discovered", host)
	assert.False(t, cfg.IsDefined("config"), "discovery flag is not a config key")
	assert.True(t, cfg.IsDefined("port"))
}

func TestGetXDGConfigPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/user")
	t.Setenv("XDG_CONFIG_DIRS", "")

	assert.Equal(t, []string{
		"/home/user/.config/app",
		"/etc/xdg/app",
		"/etc/app",
	}, getXDGConfigPaths("app"))
}
