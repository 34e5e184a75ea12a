package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option adjusts a single Load call.
type Option func(*loadConfig)

type loadConfig struct {
	prefix   string
	envFiles []string
}

// WithPrefix prepends prefix to every env tag of the loaded struct.
func WithPrefix(prefix string) Option {
	return func(c *loadConfig) { c.prefix = prefix }
}

// WithEnvFiles loads the given dotenv files instead of the default ".env".
// Variables already present in the environment take precedence.
func WithEnvFiles(files ...string) Option {
	return func(c *loadConfig) { c.envFiles = append(c.envFiles, files...) }
}

type configCache struct {
	mu     sync.Mutex
	values map[string]any
	files  map[string]struct{}
}

var globalCache = &configCache{
	values: make(map[string]any),
	files:  make(map[string]struct{}),
}

// Load parses environment variables into v based on its `env` struct tags.
// Each (type, prefix) pair is parsed once per process; later calls return
// the cached copy. Dotenv files are read at most once each and a missing file
// is not an error.
//
//	type Defaults struct {
//		Kind     string        `env:"TYPE" envDefault:"popup"`
//		Duration time.Duration `env:"AUTO_CLOSE_DURATION" envDefault:"3s"`
//	}
//
//	var d Defaults
//	err := config.Load(&d, config.WithPrefix("NOTUS_"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	cfg := &loadConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	files := cfg.envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}

	key := getTypeName[T]() + "|" + cfg.prefix

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	if cached, ok := globalCache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	for _, f := range files {
		if _, seen := globalCache.files[f]; seen {
			continue
		}
		globalCache.files[f] = struct{}{}
		// the file is optional
		_ = godotenv.Load(f)
	}

	var parsed T
	if err := env.ParseWithOptions(&parsed, env.Options{Prefix: cfg.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	globalCache.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ResetCache forgets every loaded configuration and dotenv file.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	clear(globalCache.values)
	clear(globalCache.files)
}

func getTypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
