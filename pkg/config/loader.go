package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load parses environment variables into cfg based on its env field tags.
//
// A .env file in the working directory is loaded into the process
// environment first, once per process, if it exists. Additional dotenv files
// may be named explicitly; they must exist and their values override the
// environment.
//
// Example:
//
//	type HTTPConfig struct {
//		Addr         string        `env:"HTTP_ADDR" envDefault:":8080"`
//		ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg HTTPConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](cfg *T, dotenv ...string) error {
	if cfg == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})

	for _, file := range dotenv {
		if err := godotenv.Overload(file); err != nil {
			return errors.Join(ErrLoadingDotenv, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Intended for configuration the application cannot start without.
func MustLoad[T any](cfg *T, dotenv ...string) {
	if err := Load(cfg, dotenv...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
