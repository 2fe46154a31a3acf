package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StorageDriverS3     = "s3"
	StorageDriverMinIO  = "minio"
	StorageDriverMemory = "memory"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Storage   StorageConfig
	S3        S3Config
	MinIO     MinIOConfig
	Image     ImageConfig
	Log       LogConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"CORS_ALLOWED_ORIGINS"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" required:"true"`
	Password        string        `envconfig:"DB_PASSWORD" required:"true"`
	Name            string        `envconfig:"DB_NAME" required:"true"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	MigrationsPath  string        `envconfig:"DB_MIGRATIONS_PATH" default:"migrations"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type JWTConfig struct {
	SecretKey       string        `envconfig:"JWT_SECRET_KEY" required:"true"`
	AccessTokenTTL  time.Duration `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"15m"`
	RefreshTokenTTL time.Duration `envconfig:"JWT_REFRESH_TOKEN_TTL" default:"720h"`
	BcryptCost      int           `envconfig:"JWT_BCRYPT_COST" default:"12"`
	CleanupInterval time.Duration `envconfig:"JWT_TOKEN_CLEANUP_INTERVAL" default:"1h"`
}

type StorageConfig struct {
	Driver string `envconfig:"STORAGE_DRIVER" default:"s3"`
}

type S3Config struct {
	Endpoint        string        `envconfig:"S3_ENDPOINT"`
	Region          string        `envconfig:"S3_REGION" default:"us-east-1"`
	Bucket          string        `envconfig:"S3_BUCKET"`
	AccessKeyID     string        `envconfig:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string        `envconfig:"S3_SECRET_ACCESS_KEY"`
	UsePathStyle    bool          `envconfig:"S3_USE_PATH_STYLE" default:"false"`
	PublicURL       string        `envconfig:"S3_PUBLIC_URL"`
	Timeout         time.Duration `envconfig:"S3_TIMEOUT" default:"30s"`
	MaxRetries      int           `envconfig:"S3_MAX_RETRIES" default:"3"`
}

type MinIOConfig struct {
	Endpoint  string        `envconfig:"MINIO_ENDPOINT" default:"localhost:9000"`
	Region    string        `envconfig:"MINIO_REGION" default:"us-east-1"`
	Bucket    string        `envconfig:"MINIO_BUCKET" default:"images"`
	AccessKey string        `envconfig:"MINIO_ACCESS_KEY"`
	SecretKey string        `envconfig:"MINIO_SECRET_KEY"`
	UseSSL    bool          `envconfig:"MINIO_USE_SSL" default:"false"`
	PublicURL string        `envconfig:"MINIO_PUBLIC_URL"`
	Timeout   time.Duration `envconfig:"MINIO_TIMEOUT" default:"30s"`
}

type ImageConfig struct {
	JPEGQuality   int   `envconfig:"IMAGE_JPEG_QUALITY" default:"85"`
	MaxUploadSize int64 `envconfig:"IMAGE_MAX_UPLOAD_SIZE" default:"10485760"`
	CascadeDelete bool  `envconfig:"IMAGE_CASCADE_DELETE" default:"true"`
	MaxDimension  int   `envconfig:"IMAGE_MAX_DIMENSION" default:"8192"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RateLimitConfig struct {
	Enabled        bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerMin int           `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"30"`
	Window         time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings that depend on the selected storage driver.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverS3:
		if c.S3.Bucket == "" || c.S3.AccessKeyID == "" || c.S3.SecretAccessKey == "" {
			return errors.New("S3_BUCKET, S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY are required for the s3 driver")
		}
	case StorageDriverMinIO:
		if c.MinIO.AccessKey == "" || c.MinIO.SecretKey == "" {
			return errors.New("MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required for the minio driver")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.Image.JPEGQuality < 1 || c.Image.JPEGQuality > 100 {
		return fmt.Errorf("IMAGE_JPEG_QUALITY must be between 1 and 100, got %d", c.Image.JPEGQuality)
	}
	if c.Image.MaxDimension < 1 || c.Image.MaxDimension > 8192 {
		return fmt.Errorf("IMAGE_MAX_DIMENSION must be between 1 and 8192, got %d", c.Image.MaxDimension)
	}
	return nil
}
