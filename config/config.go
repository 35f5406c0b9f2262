package config

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	RedisHost string
	RedisPort string
	CacheTTL  time.Duration

	KafkaBroker string
	OrderTopic  string

	JWTSecret     string
	AdminEmail    string
	AdminPassword string

	PayPalClientID string
	PayPalSecret   string
	PayPalAPIBase  string
	PayPalBrand    string

	StripeSecretKey string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SenderMail   string

	PublicBaseURL string
	UploadDir     string
}

// Load reads an optional .env file and then the process environment.
func Load(defaultPort string) Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	return Config{
		Port: getEnv("PORT", defaultPort),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "food_ordering"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),

		RedisHost: getEnv("REDIS_HOST", "localhost"),
		RedisPort: getEnv("REDIS_PORT", "6379"),
		CacheTTL:  getDuration("CACHE_TTL", 5*time.Minute),

		KafkaBroker: getEnv("KAFKA_BROKER", "localhost:9092"),
		OrderTopic:  getEnv("ORDER_TOPIC", "orders"),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		PayPalClientID: getEnv("PAYPAL_CLIENT_ID", ""),
		PayPalSecret:   getEnv("PAYPAL_SECRET", ""),
		PayPalAPIBase:  getEnv("PAYPAL_API_BASE", "https://api-m.sandbox.paypal.com"),
		PayPalBrand:    getEnv("PAYPAL_BRAND_NAME", "ZUM ECKSCHE"),

		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getInt("SMTP_PORT", 465),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SenderMail:   getEnv("SENDER_MAIL", ""),

		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
	}
}

// RequireJWTSecret returns the token signing secret, which has no default.
func (c Config) RequireJWTSecret() (string, error) {
	if c.JWTSecret == "" {
		return "", ErrMissingJWTSecret
	}
	return c.JWTSecret, nil
}

func MustJWTSecret(cfg Config) string {
	secret, err := cfg.RequireJWTSecret()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}
	return secret
}

func (c Config) PostgresDSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=disable"
}

func MustInitPostgres(cfg Config) *sql.DB {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisHost + ":" + cfg.RedisPort,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(cfg Config, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.OrderTopic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(cfg Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    cfg.OrderTopic,
		Balancer: &kafka.Hash{},
		// flush per request instead of waiting for a full batch
		BatchTimeout: 10 * time.Millisecond,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using %d", key, value, defaultValue)
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("invalid %s=%q, using %s", key, value, defaultValue)
	}
	return defaultValue
}
