package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrNilPointer is returned when Load receives a nil or non-pointer target.
	ErrNilPointer = errors.New("config target must be a non-nil pointer to struct")
	// ErrParseEnv is returned when environment parsing fails.
	ErrParseEnv = errors.New("failed to parse environment variables")
)

var (
	dotenvOnce sync.Once

	cacheMu sync.RWMutex
	cache   = make(map[reflect.Type]any)
)

// Load populates cfg from environment variables. The first call for a given
// struct type parses the environment; later calls for the same type return
// the cached value. A .env file in the working directory is loaded once,
// before the first parse; a missing file is not an error.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(*cfg)

	cacheMu.RLock()
	cached, ok := cache[typ]
	cacheMu.RUnlock()
	if ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrParseEnv, err)
	}

	cacheMu.Lock()
	// Another goroutine may have won the race; keep the first loaded value
	// so all callers observe identical configuration.
	if cached, ok := cache[typ]; ok {
		*cfg = cached.(T)
	} else {
		cache[typ] = *cfg
	}
	cacheMu.Unlock()

	return nil
}

// MustLoad is like Load but panics on failure. Useful during startup where
// missing required configuration should abort the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
