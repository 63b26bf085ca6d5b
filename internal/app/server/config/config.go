package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Auth   Auth
	Logger Logger
}

type DB struct {
	DatabaseURI string
	Migrations  string
}

type Server struct {
	RunAddress     string
	AllowedOrigins []string
}

type Auth struct {
	// JWTSecret signs session tokens. There is deliberately no default:
	// the server refuses to start without an explicit secret.
	JWTSecret string
	TokenTTL  time.Duration
}

type Logger struct {
	LogLevel string
}

// MustLoad reads configuration from the environment (and an optional .env
// file) and exits the process when a required value is missing.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("run_address", ":8080")
	viper.SetDefault("migrations_path", "migrations")
	viper.SetDefault("token_ttl", "168h")
	viper.SetDefault("app_env", EnvLocal)
	viper.SetDefault("log_level", "info")

	secret := viper.GetString("jwt_secret")
	if secret == "" {
		log.Fatalln("JWT_SECRET is not set")
	}

	ttl := viper.GetDuration("token_ttl")
	if ttl <= 0 {
		log.Fatalln("TOKEN_TTL must be a positive duration")
	}

	return &Config{
		Env: viper.GetString("app_env"),
		DB: DB{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: Server{
			RunAddress:     viper.GetString("run_address"),
			AllowedOrigins: splitOrigins(viper.GetString("allowed_origins")),
		},
		Auth: Auth{
			JWTSecret: secret,
			TokenTTL:  ttl,
		},
		Logger: Logger{LogLevel: viper.GetString("log_level")},
	}
}

func splitOrigins(s string) []string {
	var origins []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			origins = append(origins, part)
		}
	}
	return origins
}
