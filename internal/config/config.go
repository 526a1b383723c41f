package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Upload providers
const (
	UploadProviderMinio      = "minio"
	UploadProviderCloudinary = "cloudinary"
)

type Config struct {
	Env        Env
	Server     ServerConfig
	Log        LogConfig
	Database   DatabaseConfig
	Auth       AuthConfig
	RateLimit  RateLimitConfig
	Upload     UploadConfig
	Minio      MinioConfig
	Cloudinary CloudinaryConfig
	Video      VideoConfig
	NATS       NATSConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

// IsProd reports whether the service runs in production mode
func (e Env) IsProd() bool {
	return e.Env == "prod" || e.Env == "PROD"
}

type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"localhost"`
	Port            string        `envconfig:"SERVER_PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	// TrustedProxies lists the CIDRs allowed to set X-Forwarded-For, comma separated
	TrustedProxies []netip.Prefix `envconfig:"SERVER_TRUSTED_PROXIES"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

// DSN returns the lib/pq keyword/value connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// URL returns the connection string in URL form (golang-migrate expects it)
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

type AuthConfig struct {
	Password      string        `envconfig:"FAMILY_PASSWORD"`
	PasswordHash  string        `envconfig:"FAMILY_PASSWORD_HASH"`
	SessionSecret string        `envconfig:"SESSION_SECRET" required:"true"`
	CookieName    string        `envconfig:"SESSION_COOKIE_NAME" default:"family_auth"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"720h"` // 30 days
}

type RateLimitConfig struct {
	RedisAddr        string        `envconfig:"REDIS_ADDR"`
	RedisPassword    string        `envconfig:"REDIS_PASSWORD"`
	RedisDB          int           `envconfig:"REDIS_DB" default:"0"`
	LoginMaxAttempts int           `envconfig:"LOGIN_MAX_ATTEMPTS" default:"10"`
	LoginWindow      time.Duration `envconfig:"LOGIN_WINDOW" default:"15m"`
}

type UploadConfig struct {
	Provider      string `envconfig:"UPLOAD_PROVIDER" default:"minio"`
	DefaultFolder string `envconfig:"UPLOAD_DEFAULT_FOLDER" default:"family"`
}

type MinioConfig struct {
	Endpoint        string        `envconfig:"MINIO_ENDPOINT"`
	BucketName      string        `envconfig:"MINIO_BUCKET_NAME" default:"family"`
	AccessKey       string        `envconfig:"MINIO_ACCESS_KEY"`
	SecretKey       string        `envconfig:"MINIO_SECRET_KEY"`
	PublicURL       string        `envconfig:"MINIO_PUBLIC_URL"`
	PresignDuration time.Duration `envconfig:"MINIO_PRESIGN_DURATION" default:"15m"`
	UseSSL          bool          `envconfig:"MINIO_USE_SSL" default:"false"`
}

type CloudinaryConfig struct {
	CloudName string `envconfig:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `envconfig:"CLOUDINARY_API_KEY"`
	APISecret string `envconfig:"CLOUDINARY_API_SECRET"`
}

type VideoConfig struct {
	FFmpegPath      string        `envconfig:"FFMPEG_PATH" default:"ffmpeg"`
	OutputDir       string        `envconfig:"VIDEO_OUTPUT_DIR" default:"data/outputs"`
	OutputURLPrefix string        `envconfig:"VIDEO_OUTPUT_URL_PREFIX" default:"/api/v1/videos/file"`
	RenderTimeout   time.Duration `envconfig:"VIDEO_RENDER_TIMEOUT" default:"10m"`
	SweepEvery      time.Duration `envconfig:"VIDEO_SWEEP_EVERY" default:"5m"`
	StderrTailBytes int           `envconfig:"VIDEO_STDERR_TAIL_BYTES" default:"8192"`
}

type NATSConfig struct {
	URL        string `envconfig:"NATS_URL"`
	StreamName string `envconfig:"NATS_STREAM_NAME" default:"VIDEO_JOBS"`
	Subject    string `envconfig:"NATS_SUBJECT" default:"video.jobs"`
	ClientName string `envconfig:"NATS_CLIENT_NAME" default:"family-timeline"`
}

// Load reads the configuration from the environment, after loading .env when present
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.Password == "" && c.Auth.PasswordHash == "" {
		return errors.New("one of FAMILY_PASSWORD or FAMILY_PASSWORD_HASH is required")
	}
	if c.Auth.SessionSecret == "" {
		return errors.New("SESSION_SECRET must not be empty")
	}

	switch c.Upload.Provider {
	case UploadProviderMinio:
		if c.Minio.Endpoint == "" || c.Minio.AccessKey == "" || c.Minio.SecretKey == "" {
			return errors.New("MINIO_ENDPOINT, MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required for the minio upload provider")
		}
	case UploadProviderCloudinary:
		if c.Cloudinary.CloudName == "" || c.Cloudinary.APIKey == "" || c.Cloudinary.APISecret == "" {
			return errors.New("CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET are required for the cloudinary upload provider")
		}
	default:
		return fmt.Errorf("unknown UPLOAD_PROVIDER %q", c.Upload.Provider)
	}

	if c.Video.RenderTimeout <= 0 {
		return errors.New("VIDEO_RENDER_TIMEOUT must be positive")
	}
	if c.Video.SweepEvery <= 0 {
		return errors.New("VIDEO_SWEEP_EVERY must be positive")
	}
	return nil
}
