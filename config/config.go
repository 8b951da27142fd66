package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	Port string `envconfig:"PORT" default:"5000"`

	// DB: either a full URL or discrete parameters
	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER" default:"postgres"`
	DBPassword  string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME" default:"ecommerce"`

	// Cache
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	// Auth
	AccessTokenSecret string `envconfig:"ACCESS_TOKEN_SECRET" required:"true"`

	// Payments
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY" required:"true"`

	// Frontend origin used for checkout redirect targets and CORS
	ClientURL string `envconfig:"CLIENT_URL" default:"http://localhost:5173"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
