package server

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the HTTP server settings, read from FORMFIELD_* variables.
type Config struct {
	Addr              string        `env:"FORMFIELD_ADDR" envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"FORMFIELD_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"FORMFIELD_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// BasePath prefixes every route, e.g. "/admin".
	BasePath string `env:"FORMFIELD_BASE_PATH"`
}

// LoadConfig reads Config from the environment after loading a .env file
// from the working directory, if one exists.
func LoadConfig() (Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("server: parse config: %w", err)
	}
	return cfg, nil
}
