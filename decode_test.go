// FILE: lixenwraith/smolconf/decode_test.go
package smolconf

import (
	"net"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanWithComplexTypes tests scanning with various complex types
func TestScanWithComplexTypes(t *testing.T) {
	type Retry struct {
		Count    int           `conf:"count"`
		Interval time.Duration `conf:"interval"`
	}
	type NetworkConfig struct {
		IP       net.IP        `conf:"ip"`
		Endpoint *url.URL      `conf:"endpoint"`
		Timeout  time.Duration `conf:"timeout"`
		Retry    Retry         `conf:"retry"`
	}
	type AppConfig struct {
		Network NetworkConfig `conf:"network"`
		Tags    []string      `conf:"tags"`
		Ports   []int         `conf:"ports"`
		Enabled bool          `conf:"enabled"`
		Ratio   float64       `conf:"ratio"`
		Started time.Time     `conf:"started"`
	}

	s, err := ParseString(`network_ip=192.168.1.1
network_endpoint=https://api.example.com/v1
network_timeout=1m30s
network_retry_count=3
network_retry_interval=5s
tags=prod,api
ports=80,443
enabled=on
ratio=0.75
started=2024-01-02T03:04:05Z
`)
	require.NoError(t, err)

	var cfg AppConfig
	require.NoError(t, s.Scan(&cfg))

	assert.Equal(t, "192.168.1.1", cfg.Network.IP.String())
	require.NotNil(t, cfg.Network.Endpoint)
	assert.Equal(t, "api.example.com", cfg.Network.Endpoint.Host)
	assert.Equal(t, 90*time.Second, cfg.Network.Timeout)
	assert.Equal(t, 3, cfg.Network.Retry.Count)
	assert.Equal(t, 5*time.Second, cfg.Network.Retry.Interval)
	assert.Equal(t, []string{"prod", "api"}, cfg.Tags)
	assert.Equal(t, []int{80, 443}, cfg.Ports)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 0.75, cfg.Ratio)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), cfg.Started.UTC())
}

func TestScanRoundTripWithAppendStruct(t *testing.T) {
	type Server struct {
		Host    string        `conf:"host"`
		Port    int           `conf:"port"`
		Timeout time.Duration `conf:"timeout"`
	}
	type Config struct {
		Server Server `conf:"server"`
		Debug  bool   `conf:"debug"`
	}

	in := Config{Server: Server{Host: "example.com", Port: 443, Timeout: 2 * time.Second}, Debug: true}
	s := New(0)
	require.NoError(t, s.AppendStruct("", in))

	var out Config
	require.NoError(t, s.Scan(&out))
	assert.Equal(t, in, out)
}

func TestScanErrors(t *testing.T) {
	s, err := ParseString("port=eighty\nflag=maybe\nip=not_an_ip\n")
	require.NoError(t, err)

	t.Run("NonPointer", func(t *testing.T) {
		var cfg struct{}
		assert.Error(t, s.Scan(cfg))
		assert.Error(t, s.Scan((*struct{})(nil)))
	})

	t.Run("BadInt", func(t *testing.T) {
		var cfg struct {
			Port int `conf:"port"`
		}
		assert.Error(t, s.Scan(&cfg))
	})

	t.Run("BadBool", func(t *testing.T) {
		var cfg struct {
			Flag bool `conf:"flag"`
		}
		err := s.Scan(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot convert")
	})

	t.Run("BadIP", func(t *testing.T) {
		var cfg struct {
			IP net.IP `conf:"ip"`
		}
		assert.Error(t, s.Scan(&cfg))
	})
}

func TestScanIntoMap(t *testing.T) {
	s, err := ParseString("a=1\nb=two\n")
	require.NoError(t, err)

	m := make(map[string]string)
	require.NoError(t, s.Scan(&m))
	assert.Equal(t, map[string]string{"a": "1", "b": "two"}, m)
}

func TestScanAndValidate(t *testing.T) {
	type Config struct {
		Host string `conf:"host" validate:"required,hostname"`
		Port int    `conf:"port" validate:"min=1,max=65535"`
	}

	t.Run("Valid", func(t *testing.T) {
		s, err := ParseString("host=localhost\nport=8080\n")
		require.NoError(t, err)

		var cfg Config
		require.NoError(t, s.ScanAndValidate(&cfg))
		assert.Equal(t, Config{Host: "localhost", Port: 8080}, cfg)
	})

	t.Run("Invalid", func(t *testing.T) {
		s, err := ParseString("port=70000\n")
		require.NoError(t, err)

		var cfg Config
		err = s.ScanAndValidate(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}
