package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		input   string
		want    NetAddress
		wantStr string
		wantErr string
	}{
		{input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}, wantStr: "localhost:8080"},
		{input: "127.0.0.1:9090", want: NetAddress{Host: "127.0.0.1", Port: 9090}, wantStr: "127.0.0.1:9090"},
		{input: ":8080", want: NetAddress{Port: 8080}, wantStr: ":8080"},
		{input: "[::1]:8443", want: NetAddress{Host: "::1", Port: 8443}, wantStr: "[::1]:8443"},
		{input: "localhost8080", wantErr: "host:port"},
		{input: "", wantErr: "host:port"},
		{input: "localhost:abc", wantErr: "1..65535"},
		{input: "localhost:0", wantErr: "1..65535"},
		{input: "localhost:70000", wantErr: "1..65535"},
		{input: ":", wantErr: "1..65535"},
		{input: "pledge.example.com:8080", wantErr: "neither localhost nor an IP"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.wantErr != "" {
				require.ErrorIs(t, err, ErrInvalidNetAddress)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
			assert.Equal(t, tt.wantStr, addr.String())
		})
	}
}

func TestNetAddress_StringWhenUnset(t *testing.T) {
	assert.Empty(t, (&NetAddress{}).String())
}

func TestParseFlags(t *testing.T) {
	t.Run("all flags", func(t *testing.T) {
		cfg, err := parseFlags([]string{
			"-a", "127.0.0.1:9000",
			"-d", "postgres://u:p@localhost/green",
			"-c", "/etc/green.json",
			"-token-sign-key", "secret",
			"-token-issuer", "issuer",
			"-token-duration", "2h",
			"-request-timeout", "15s",
			"-bcrypt-cost", "12",
			"-auth-rate-limit", "2.5",
			"-auth-rate-burst", "4",
			"-log-level", "debug",
		})
		require.NoError(t, err)

		assert.Equal(t, StructuredConfig{
			App: App{
				TokenSignKey:  "secret",
				TokenIssuer:   "issuer",
				TokenDuration: 2 * time.Hour,
				BcryptCost:    12,
				LogLevel:      "debug",
			},
			Storage: Storage{DB: DB{DSN: "postgres://u:p@localhost/green"}},
			Server: Server{
				HTTPAddress:    "127.0.0.1:9000",
				RequestTimeout: 15 * time.Second,
				AuthRateLimit:  2.5,
				AuthRateBurst:  4,
			},
			JSONFilePath: "/etc/green.json",
		}, *cfg)
	})

	t.Run("config alias", func(t *testing.T) {
		cfg, err := parseFlags([]string{"-config", "cfg.json"})
		require.NoError(t, err)
		assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	})

	t.Run("no flags", func(t *testing.T) {
		cfg, err := parseFlags(nil)
		require.NoError(t, err)
		assert.Equal(t, &StructuredConfig{}, cfg)
	})

	t.Run("bad address", func(t *testing.T) {
		_, err := parseFlags([]string{"-a", "not-an-address"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "host:port")
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := parseFlags([]string{"-unknown"})
		assert.Error(t, err)
	})
}
