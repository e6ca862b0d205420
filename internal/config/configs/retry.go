package configs

import "time"

// Retry bounds the in-process retry of store contention errors.
type Retry struct {
	MaxTries        uint          `env:"MAX_TRIES" envDefault:"5"`
	InitialInterval time.Duration `env:"INITIAL_INTERVAL" envDefault:"20ms"`
	MaxInterval     time.Duration `env:"MAX_INTERVAL" envDefault:"1s"`
}
