package config

import (
	"github.com/apex/log"
	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL    string `env:"API_BASE_URL,required"`
	ServerPort    string `env:"SERVER_PORT" envDefault:"8080"`
	SessionSecret string `env:"SESSION_SECRET,required"`

	// Either a postgres DSN or a local sqlite file. Empty disables auditing.
	AuditDBDSN string `env:"AUDIT_DB_DSN" envDefault:"store-console-audit.db"`
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	return cfg
}
