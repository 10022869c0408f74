// config предоставляет структуру конфигурации dating-service
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Поддерживаемые реализации объектного хранилища.
const (
	ProviderMinio = "minio"
	ProviderAWS   = "aws"
)

// Config - корневая конфигурация сервиса.
type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Postgres PostgresConfig `yaml:"postgres"`
	S3       S3Config       `yaml:"s3"`
	Photo    PhotoConfig    `yaml:"photo"`
	Auth     AuthConfig     `yaml:"auth"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

// HTTPConfig - сетевые настройки REST-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50095"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

type PostgresConfig struct {
	URL string `yaml:"url" env:"POSTGRES" env-required:"true"`
}

// S3Config - параметры бакета с фотографиями.
// Provider: "minio" (по умолчанию, S3-совместимый endpoint) или "aws" (AWS SDK).
// PublicBaseURL - префикс публичных ссылок; пустой -> https://s3-<region>.amazonaws.com/<bucket>.
type S3Config struct {
	Provider      string `yaml:"provider" env:"S3_PROVIDER" env-default:"minio"`
	Endpoint      string `yaml:"endpoint" env:"S3_ENDPOINT"`
	Region        string `yaml:"region" env:"S3_REGION" env-default:"us-west-2"`
	AccessKey     string `yaml:"access_key" env:"S3_ACCESS_KEY" env-required:"true"`
	SecretKey     string `yaml:"secret_key" env:"S3_SECRET_KEY" env-required:"true"`
	Bucket        string `yaml:"bucket" env:"S3_BUCKET" env-required:"true"`
	PublicBaseURL string `yaml:"public_base_url" env:"S3_PUBLIC_BASE_URL"`
}

type PhotoConfig struct {
	MaxSizeBytes        int64    `yaml:"max_size_bytes" env:"PHOTO_MAX_SIZE_BYTES" env-default:"10485760"`
	AllowedContentTypes []string `yaml:"allowed_content_types" env:"PHOTO_ALLOWED_CONTENT_TYPES" env-separator:"," env-default:"image/jpeg,image/png,image/webp,image/gif"`
}

// AuthConfig - параметры проверки access-токенов, выпущенных identity-сервисом.
type AuthConfig struct {
	JWTSecret string   `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	Issuer    string   `yaml:"issuer" env:"JWT_ISSUER"`
	Audience  []string `yaml:"audience" env:"JWT_AUDIENCE" env-separator:","`
}

// TimeoutConfig - таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"15s"`
	// Upload - срок обработки загрузки фотографии (multipart + PutObject).
	Upload time.Duration `yaml:"upload" env:"UPLOAD_TIMEOUT" env-default:"60s"`
}

// MustLoad - обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// После чтения файла ENV-переменные накладываются поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	readFile := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		if err := cfg.validate(); err != nil {
			return nil, err
		}

		return &cfg, nil
	}

	// 1) --config.
	if path != "" {
		return readFile(path)
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return readFile(envPath)
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		return readFile("local.yaml")
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	c.S3.Provider = strings.ToLower(strings.TrimSpace(c.S3.Provider))
	if c.S3.Provider == "" {
		c.S3.Provider = ProviderMinio
	}

	if c.S3.Region == "" {
		c.S3.Region = "us-west-2"
	}

	if c.Photo.MaxSizeBytes == 0 {
		c.Photo.MaxSizeBytes = 10 * 1024 * 1024 // 10 MiB
	}

	if c.Postgres.URL == "" {
		return fmt.Errorf("postgres.url is required")
	}

	if c.HTTP.Host == "" {
		return fmt.Errorf("http.host is required")
	}

	if p, err := strconv.Atoi(c.HTTP.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("http.port must be a valid TCP port (1..65535)")
	}

	switch c.S3.Provider {
	case ProviderMinio:
		if c.S3.Endpoint == "" {
			return fmt.Errorf("s3.endpoint is required for provider %q", ProviderMinio)
		}
	case ProviderAWS:
	default:
		return fmt.Errorf("s3.provider must be %q or %q", ProviderMinio, ProviderAWS)
	}

	if c.S3.AccessKey == "" {
		return fmt.Errorf("s3.access_key is required")
	}

	if c.S3.SecretKey == "" {
		return fmt.Errorf("s3.secret_key is required")
	}

	if c.S3.Bucket == "" {
		return fmt.Errorf("s3.bucket is required")
	}

	if c.S3.PublicBaseURL == "" {
		c.S3.PublicBaseURL = fmt.Sprintf("https://s3-%s.amazonaws.com/%s", c.S3.Region, c.S3.Bucket)
	}
	c.S3.PublicBaseURL = strings.TrimRight(c.S3.PublicBaseURL, "/")

	if c.Photo.MaxSizeBytes < 0 {
		return fmt.Errorf("photo.max_size_bytes must be >= 0")
	}

	if len(c.Photo.AllowedContentTypes) == 0 {
		return fmt.Errorf("photo.allowed_content_types must not be empty")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}

	if c.Timeouts.Service < 0 {
		return fmt.Errorf("timeouts.service must be >= 0")
	}

	if c.Timeouts.Upload < 0 {
		return fmt.Errorf("timeouts.upload must be >= 0")
	}

	return nil
}
