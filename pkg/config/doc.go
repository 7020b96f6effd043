// Package config loads application configuration from environment variables
// into tagged Go structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// godotenv feeds the process environment from dotenv files, env parses the
// environment into any struct using field tags. Every call parses fresh from
// the environment; configuration is expected to be loaded once at startup
// and passed down explicitly.
//
// # Usage
//
// Describe the configuration as a struct with `env` tags:
//
//	type MongoConfig struct {
//	    URI      string `env:"MONGO_URI,required"`
//	    Database string `env:"MONGO_DB" envDefault:"plankit"`
//	}
//
// Then populate it:
//
//	var cfg MongoConfig
//	config.MustLoad(&cfg)
//
// A `.env` file in the working directory is picked up automatically when
// present. Additional files can be named explicitly, for example per
// environment:
//
//	config.MustLoad(&cfg, ".env.production")
//
// # Error Handling
//
// Load reports ErrNilPointer for a nil destination, ErrLoadingDotenv when a
// named dotenv file cannot be read, and ErrParsingConfig when the
// environment does not satisfy the struct's tags (missing required values,
// unparseable numbers and so on). MustLoad panics on any of these, which is
// the intended failure mode during process startup.
package config
