package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - Optional integrations (postgres, redis, kafka, stripe) are disabled while their
//   connection settings are empty
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	DB        DBConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Admin     AdminConfig
	Booking   BookingConfig
	Video     VideoConfig
	Stripe    StripeConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"3001"`
}

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

type StorageConfig struct {
	Driver string `envconfig:"STORAGE_DRIVER" default:"memory"`
}

func (s StorageConfig) UsePostgres() bool {
	return s.Driver == StorageDriverPostgres
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"pro_video_services"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	SlotTTL  time.Duration `envconfig:"REDIS_SLOT_LOCK_TTL" default:"10s"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type KafkaConfig struct {
	Brokers      []string `envconfig:"KAFKA_BROKERS"`
	BillingTopic string   `envconfig:"KAFKA_BILLING_TOPIC" default:"video.billing"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Stripe-Signature,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" default:"change-me-in-production"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN"`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type AdminConfig struct {
	Email        string `envconfig:"ADMIN_EMAIL" default:"admin@provideoservices.com"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`
}

// Enabled reports whether admin-only routes require a token.
func (a AdminConfig) Enabled() bool {
	return a.PasswordHash != ""
}

type BookingConfig struct {
	TemplateFile        string `envconfig:"AVAILABILITY_TEMPLATE_FILE"`
	AllowDoubleBooking  bool   `envconfig:"BOOKING_ALLOW_DOUBLE_BOOKING" default:"false"`
	AutoCreateClient    bool   `envconfig:"BOOKING_AUTO_CREATE_CLIENT" default:"true"`
	ConfirmationCompany string `envconfig:"BOOKING_COMPANY_NAME" default:"Pro Video Services"`
}

type VideoConfig struct {
	DefaultProvider string        `envconfig:"VIDEO_DEFAULT_PROVIDER" default:"stabilityai"`
	RequestTimeout  time.Duration `envconfig:"VIDEO_REQUEST_TIMEOUT" default:"60s"`

	StabilityBaseURL string `envconfig:"STABILITY_BASE_URL" default:"https://api.stability.ai"`
	StabilityAPIKey  string `envconfig:"STABILITY_API_KEY"`
	PikaBaseURL      string `envconfig:"PIKA_BASE_URL" default:"https://api.pika.art"`
	PikaAPIKey       string `envconfig:"PIKA_API_KEY"`
	RunwayBaseURL    string `envconfig:"RUNWAY_BASE_URL" default:"https://api.runwayml.com"`
	RunwayAPIKey     string `envconfig:"RUNWAY_API_KEY"`
}

type StripeConfig struct {
	SecretKey     string `envconfig:"STRIPE_SECRET_KEY"`
	WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET"`
}

func (s StripeConfig) Enabled() bool {
	return s.SecretKey != ""
}

type RateLimitConfig struct {
	RequestsPerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"120"`
	Burst             int `envconfig:"RATE_LIMIT_BURST" default:"20"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Storage.Driver != StorageDriverMemory && cfg.Storage.Driver != StorageDriverPostgres {
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Storage: StorageConfig{
			Driver: StorageDriverMemory,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Redis: RedisConfig{
			SlotTTL: 10 * time.Second,
		},
		Kafka: KafkaConfig{
			BillingTopic: "video.billing",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Admin: AdminConfig{
			Email: "admin@example.com",
		},
		Booking: BookingConfig{
			AutoCreateClient:    true,
			ConfirmationCompany: "Pro Video Services",
		},
		Video: VideoConfig{
			DefaultProvider:  "stabilityai",
			RequestTimeout:   5 * time.Second,
			StabilityBaseURL: "https://api.stability.ai",
			PikaBaseURL:      "https://api.pika.art",
			RunwayBaseURL:    "https://api.runwayml.com",
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 6000,
			Burst:             1000,
		},
	}
}
