package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// DefaultJWTSecret is the signing-key fallback applied when JWT_SECRET is
// unset. It exists so the service still runs in local/dev setups; main
// logs a warning whenever it is in effect. Production deployments must
// override it.
const DefaultJWTSecret = "default_secret"

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs and verifies bearer tokens. Loaded once at startup
	// and immutable thereafter.
	JWTSecret       string `env:"JWT_SECRET,        default=default_secret"`
	TokenTTLSeconds int    `env:"TOKEN_TTL_SECONDS, default=3600"`
	// PasswordScheme selects the credential digest: "sha256" stays
	// compatible with digests written by the reference deployment;
	// "bcrypt" is the recommended setting for new installs.
	PasswordScheme string `env:"PASSWORD_SCHEME, default=sha256"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Weather WeatherConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=weather_api"`
}

// RedisConfig backs the token denylist. An empty Addr disables Redis and
// with it token revocation; everything else keeps working.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type WeatherConfig struct {
	APIKey  string `env:"OPENWEATHER_API_KEY,  default=demo"`
	BaseURL string `env:"OPENWEATHER_BASE_URL, default=https://api.openweathermap.org/data/2.5"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
