package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// envFile читается, если существует. Переменные окружения важнее него.
var envFile = ".env"

// Config хранит конфигурацию сервера
type Config struct {
	ServerAddress  string
	GRPCAddress    string
	StaticDir      string
	TemplatesDir   string
	EnableHTTPS    bool
	TLSCertPath    string
	TLSKeyPath     string
	AllowedOrigins []string
	LogLevel       string
}

// ключ viper -> флаг командной строки
var flagKeys = map[string]string{
	"a":         "server_address",
	"g":         "grpc_address",
	"static":    "static_dir",
	"templates": "templates_dir",
	"s":         "enable_https",
	"cert":      "tls_cert_path",
	"key":       "tls_key_path",
	"cors":      "cors_allowed_origins",
	"l":         "log_level",
}

// NewConfig собирает конфигурацию. Приоритет: флаги, окружение, .env,
// JSON-файл из -c/-config/CONFIG, значения по умолчанию.
func NewConfig(args []string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server_address", "0.0.0.0:8000") // Значения по умолчанию
	v.SetDefault("grpc_address", "")
	v.SetDefault("static_dir", "")
	v.SetDefault("templates_dir", "")
	v.SetDefault("enable_https", false)
	v.SetDefault("tls_cert_path", "cert.pem")
	v.SetDefault("tls_key_path", "key.pem")
	v.SetDefault("cors_allowed_origins", "*")
	v.SetDefault("log_level", "info")

	v.AutomaticEnv()

	fs := flag.NewFlagSet("mediaviewer", flag.ContinueOnError)
	fs.String("a", "", "server address")
	fs.String("g", "", "gRPC server address (disabled when empty)")
	fs.String("static", "", "directory with static files (embedded when empty)")
	fs.String("templates", "", "directory with templates (embedded when empty)")
	fs.Bool("s", false, "enable HTTPS")
	fs.String("cert", "", "path to TLS certificate")
	fs.String("key", "", "path to TLS key")
	fs.String("cors", "", "comma-separated list of allowed CORS origins")
	fs.String("l", "", "log level: debug, info, warn, error")
	configPath := fs.String("c", "", "path to JSON config file")
	fs.StringVar(configPath, "config", "", "path to JSON config file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Загружаем JSON-конфигурацию (если указана)
	if *configPath == "" {
		*configPath = os.Getenv("CONFIG")
	}
	if *configPath != "" {
		v.SetConfigFile(*configPath)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %q: %w", *configPath, err)
		}
	}

	// .env поверх JSON, но ниже окружения
	if _, err := os.Stat(envFile); err == nil {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	// Флаги, переданные явно, имеют высший приоритет
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			v.Set(key, f.Value.String())
		}
	})

	cfg := &Config{
		ServerAddress:  v.GetString("server_address"),
		GRPCAddress:    v.GetString("grpc_address"),
		StaticDir:      v.GetString("static_dir"),
		TemplatesDir:   v.GetString("templates_dir"),
		EnableHTTPS:    v.GetBool("enable_https"),
		TLSCertPath:    v.GetString("tls_cert_path"),
		TLSKeyPath:     v.GetString("tls_key_path"),
		AllowedOrigins: splitList(v.GetString("cors_allowed_origins")),
		LogLevel:       v.GetString("log_level"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	if cfg.ServerAddress == "" {
		return errors.New("server address must not be empty")
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if cfg.EnableHTTPS && (cfg.TLSCertPath == "" || cfg.TLSKeyPath == "") {
		return errors.New("HTTPS requires both TLS certificate and key paths")
	}
	return nil
}

// Level уровень логирования. Validate гарантирует, что он разбирается.
func (cfg *Config) Level() zapcore.Level {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
