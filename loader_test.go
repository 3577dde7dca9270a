// FILE: lixenwraith/smolconf/loader_test.go
package smolconf

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultsStore(pairs ...string) *Store {
	s := New(0)
	for i := 0; i+1 < len(pairs); i += 2 {
		s.Insert(pairs[i], pairs[i+1])
	}
	return s
}

// TestLoadPrecedence tests that sources are merged in precedence order
func TestLoadPrecedence(t *testing.T) {
	path := writeFile(t, "app.conf", "host=filehost\nport=7000\nfile_only=1\n")
	defaults := defaultsStore("host", "defhost", "port", "8080", "timeout", "30", "def_only", "x")
	args := []string{"--host=clihost", "--cli_only", "yes"}

	t.Setenv("TEST_PORT", "9000")
	t.Setenv("TEST_TIMEOUT", "60")
	t.Setenv("TEST_UNKNOWN", "ignored")

	opts := DefaultLoadOptions()
	opts.EnvPrefix = "TEST_"

	t.Run("Default", func(t *testing.T) {
		s, err := Load(path, args, defaults, opts)
		require.NoError(t, err)

		expect := map[string]string{
			"host":      "clihost",
			"port":      "9000",
			"timeout":   "60",
			"file_only": "1",
			"def_only":  "x",
			"cli_only":  "yes",
		}
		for k, want := range expect {
			got, ok := s.Find(k)
			require.True(t, ok, k)
			assert.Equal(t, want, got, k)
		}
		assert.Equal(t, len(expect), s.Len())
		assert.False(t, s.IsDefined("unknown"), "env vars are only read for known keys")
	})

	t.Run("CustomOrder", func(t *testing.T) {
		custom := opts
		custom.Sources = []Source{SourceFile, SourceDefault, SourceCLI}

		s, err := Load(path, args, defaults, custom)
		require.NoError(t, err)

		host, _ := s.Find("host")
		assert.Equal(t, "filehost", host)
		port, _ := s.Find("port")
		assert.Equal(t, "7000", port, "env source disabled")
		assert.Equal(t, []string{"host", "port", "file_only", "timeout", "def_only", "cli_only"}, s.Keys())
	})

	t.Run("Whitelist", func(t *testing.T) {
		wl := opts
		wl.EnvWhitelist = map[string]bool{"timeout": true}

		s, err := Load(path, nil, defaults, wl)
		require.NoError(t, err)
		port, _ := s.Find("port")
		assert.Equal(t, "7000", port)
		timeout, _ := s.Find("timeout")
		assert.Equal(t, "60", timeout)
	})

	t.Run("EnvTransform", func(t *testing.T) {
		t.Setenv("CUSTOM_host", "envhost")
		tr := opts
		tr.EnvTransform = func(key string) string { return "CUSTOM_" + key }

		s, err := Load("", nil, defaults, tr)
		require.NoError(t, err)
		host, _ := s.Find("host")
		assert.Equal(t, "envhost", host)
		assert.Equal(t, "CUSTOM_host", EnvName("host", tr))
		assert.Equal(t, "TEST_HOST", EnvName("host", opts))
	})
}

func TestLoadErrors(t *testing.T) {
	defaults := defaultsStore("host", "localhost")

	t.Run("MissingFile", func(t *testing.T) {
		s, err := Load(filepath.Join(t.TempDir(), "missing.conf"), nil, defaults, DefaultLoadOptions())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfigNotFound)
		require.NotNil(t, s)
		assert.True(t, s.IsDefined("host"))
	})

	t.Run("SyntaxErrorIsFatal", func(t *testing.T) {
		path := writeFile(t, "bad.conf", "ok=1\nbroken\n")
		s, err := Load(path, nil, defaults, DefaultLoadOptions())
		assert.Nil(t, s)
		assert.ErrorIs(t, err, ErrSyntax)
	})

	t.Run("BadArgs", func(t *testing.T) {
		s, err := Load("", []string{"--bad-key=1"}, defaults, DefaultLoadOptions())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCLIParse)
		require.NotNil(t, s)
		assert.True(t, s.IsDefined("host"))
	})

	t.Run("UnprintableEnv", func(t *testing.T) {
		t.Setenv("HOST", "bad\tvalue")
		s, err := Load("", nil, defaults, DefaultLoadOptions())
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "HOST"))
		host, _ := s.Find("host")
		assert.Equal(t, "localhost", host)
	})
}

func TestParseArgs(t *testing.T) {
	s, err := ParseArgs([]string{
		"positional",
		"--host=example.com",
		"--port", "8080",
		"--verbose",
		"--",
		"--dsn=a=b",
		"--host=ignored",
		"--last",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"host", "port", "verbose", "dsn", "last"}, s.Keys())
	host, _ := s.Find("host")
	assert.Equal(t, "example.com", host)
	verbose, err := s.Bool("verbose")
	require.NoError(t, err)
	assert.True(t, verbose)
	dsn, _ := s.Find("dsn")
	assert.Equal(t, "a=b", dsn)
	last, _ := s.Find("last")
	assert.Equal(t, "true", last)

	_, err = ParseArgs([]string{"--key=has#hash"})
	assert.Error(t, err)
	_, err = ParseArgs([]string{"--key="})
	assert.Error(t, err)
}
