package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB
	MongoURI string `envconfig:"MONGO_URI" required:"true"`
	DBName   string `envconfig:"DB_NAME" default:"Lifecare_DB"`
	// Session
	JWTSecret    string        `envconfig:"PRIVATEKEY" required:"true"`
	TokenTTL     time.Duration `envconfig:"TOKEN_TTL" default:"1h"`
	CookieSecure bool          `envconfig:"COOKIE_SECURE" default:"false"`
	// Payments
	StripeKey string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	// Network
	HTTPAddr       string   `envconfig:"HTTP_ADDR" default:":5000"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
