// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing) and caches each parsed
// (type, prefix) pair, so components can call Load wherever they need their
// settings without parsing the environment twice:
//
//	type HTTP struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg HTTP
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// MustLoad panics instead of returning an error, for configuration the
// process cannot start without. ResetCache is meant for tests.
package config
