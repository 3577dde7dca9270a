// FILE: lixenwraith/smolconf/writer_test.go
package smolconf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTo(t *testing.T) {
	s := New(0)
	s.Insert("b", "2")
	s.Insert("a", "hello world")

	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	require.NoError(t, err)

	want := "# Generated by smolconf v2.0.1\nb=2\na=hello world\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, int64(len(want)), n)
}

func TestWriteRoundTrip(t *testing.T) {
	s := New(0)
	s.AppendString("name", "demo")
	s.AppendBool("enabled", true)
	s.AppendBool("verbose", false)
	s.AppendInt64("offset", -12)
	s.AppendUint64("limit", 1000)
	s.AppendFloat64("ratio", 0.25)

	path := filepath.Join(t.TempDir(), "out.conf")
	require.NoError(t, s.Write(path))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, s.Entries(), got.Entries())

	ratio, _ := got.Find("ratio")
	assert.Equal(t, "0.250000", ratio)
	enabled, err := got.Bool("enabled")
	require.NoError(t, err)
	assert.True(t, enabled)
	off, _ := got.Find("verbose")
	assert.Equal(t, "0", off)
}

func TestWriteTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.conf")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("old=1\n"), 100), 0644))

	s := New(0)
	s.Insert("new", "2")
	require.NoError(t, s.Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Header()+"\nnew=2\n", string(data))
}

func TestWriteOpenFailure(t *testing.T) {
	s := New(0)
	err := s.Write(filepath.Join(t.TempDir(), "no", "such", "dir", "out.conf"))
	assert.ErrorIs(t, err, ErrFileOpen)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.conf")

	s := New(0)
	s.Insert("key", "value")
	require.NoError(t, s.Save(path))

	got, err := Read(path)
	require.NoError(t, err)
	v, _ := got.Find("key")
	assert.Equal(t, "value", v)

	// No temporary files are left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAppendStruct(t *testing.T) {
	type Limits struct {
		MaxConns int           `conf:"max_conns"`
		Timeout  time.Duration `conf:"timeout"`
	}
	type Config struct {
		Host    string   `conf:"host"`
		Port    int      `conf:"port"`
		Debug   bool     `conf:"debug"`
		Tags    []string `conf:"tags"`
		Empty   string   `conf:"empty"`
		Skipped string   `conf:"-"`
		Limits  Limits   `conf:"limits"`
		private string
	}

	cfg := Config{
		Host:    "localhost",
		Port:    8080,
		Debug:   true,
		Tags:    []string{"a", "b"},
		Skipped: "nope",
		Limits:  Limits{MaxConns: 10, Timeout: 30 * time.Second},
		private: "hidden",
	}

	s := New(0)
	s.Insert("app_port", "9090")
	require.NoError(t, s.AppendStruct("app_", &cfg))

	assert.Equal(t, []string{
		"app_port", "app_host", "app_debug", "app_tags", "app_limits_max_conns", "app_limits_timeout",
	}, s.Keys())

	port, _ := s.Find("app_port")
	assert.Equal(t, "9090", port, "existing keys keep their value")
	tags, _ := s.Find("app_tags")
	assert.Equal(t, "a,b", tags)
	timeout, _ := s.Find("app_limits_timeout")
	assert.Equal(t, "30s", timeout)
	debug, _ := s.Find("app_debug")
	assert.Equal(t, "1", debug)

	t.Run("Errors", func(t *testing.T) {
		assert.Error(t, New(0).AppendStruct("", 42))
		assert.Error(t, New(0).AppendStruct("", (*Config)(nil)))

		type Bad struct {
			Ch    chan int `conf:"ch"`
			Value string   `conf:"value"`
		}
		err := New(0).AppendStruct("", Bad{Value: "a#b"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "2 field(s)")
	})
}
