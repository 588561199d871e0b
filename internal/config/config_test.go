package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_ADDRESS", "GRPC_ADDRESS", "STATIC_DIR", "TEMPLATES_DIR", "ENABLE_HTTPS",
		"TLS_CERT_PATH", "TLS_KEY_PATH", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL", "CONFIG",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	old := envFile
	envFile = filepath.Join(t.TempDir(), ".env")
	t.Cleanup(func() { envFile = old })
}

func TestNewConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.ServerAddress)
	assert.Empty(t, cfg.GRPCAddress)
	assert.Empty(t, cfg.StaticDir)
	assert.False(t, cfg.EnableHTTPS)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, zapcore.InfoLevel, cfg.Level())
}

func TestNewConfig_Precedence(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{
		"server_address": "json:1",
		"grpc_address": "json:2",
		"static_dir": "/json/static",
		"log_level": "warn"
	}`), 0o644))
	require.NoError(t, os.WriteFile(envFile, []byte("GRPC_ADDRESS=dotenv:2\nSTATIC_DIR=/dotenv/static\n"), 0o644))

	t.Setenv("STATIC_DIR", "/env/static")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := NewConfig([]string{"-c", jsonPath, "-l", "debug"})
	require.NoError(t, err)

	assert.Equal(t, "json:1", cfg.ServerAddress)
	assert.Equal(t, "dotenv:2", cfg.GRPCAddress)
	assert.Equal(t, "/env/static", cfg.StaticDir)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, zapcore.DebugLevel, cfg.Level())
}

func TestNewConfig_Flags(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_ADDRESS", "env:8000")

	cfg, err := NewConfig([]string{"-a", "flag:9000", "-s", "-cert", "c.pem", "-key", "k.pem", "-g", ":9090"})
	require.NoError(t, err)

	assert.Equal(t, "flag:9000", cfg.ServerAddress)
	assert.Equal(t, ":9090", cfg.GRPCAddress)
	assert.True(t, cfg.EnableHTTPS)
	assert.Equal(t, "c.pem", cfg.TLSCertPath)
	assert.Equal(t, "k.pem", cfg.TLSKeyPath)
}

func TestNewConfig_MissingConfigFile(t *testing.T) {
	clearEnv(t)

	_, err := NewConfig([]string{"-config", filepath.Join(t.TempDir(), "nope.json")})
	assert.Error(t, err)
}

func TestNewConfig_InvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "loud")

	_, err := NewConfig(nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{ServerAddress: "", LogLevel: "info"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{ServerAddress: ":8000", LogLevel: "info", EnableHTTPS: true}
	assert.Error(t, cfg.Validate())

	cfg = &Config{ServerAddress: ":8000", LogLevel: "error", EnableHTTPS: true, TLSCertPath: "c", TLSKeyPath: "k"}
	assert.NoError(t, cfg.Validate())
}
