package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the process configuration. Command-line flags override the
// environment values after Load.
type Config struct {
	DBPath string `env:"PHANTOM_DB"`
	Redis  Redis  `envPrefix:"PHANTOM_REDIS_"`

	// Player is the wallet address played when no --player flag is given.
	Player  string `env:"PHANTOM_PLAYER"`
	Network string `env:"PHANTOM_NETWORK" envDefault:"mainnet"`

	Mode          string        `env:"PHANTOM_MODE" envDefault:"cipher"`
	QuestionsFile string        `env:"PHANTOM_QUESTIONS_FILE"`
	QuestionTime  time.Duration `env:"PHANTOM_QUESTION_TIME" envDefault:"1200s"`
	ResyncDelay   time.Duration `env:"PHANTOM_RESYNC_DELAY" envDefault:"2s"`
	StartingLives int           `env:"PHANTOM_STARTING_LIVES" envDefault:"5"`

	LogMode string `env:"PHANTOM_LOG_MODE" envDefault:"prod"`
	LogFile string `env:"PHANTOM_LOG_FILE"`
}

// Redis configures the optional remote store and question collection.
type Redis struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// Enabled reports whether a Redis address is configured.
func (r Redis) Enabled() bool {
	return r.Addr != ""
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	switch c.Mode {
	case "cipher", "trivia":
	default:
		errs = append(errs, fmt.Errorf("mode %q: want cipher or trivia", c.Mode))
	}
	if c.QuestionTime <= 0 {
		errs = append(errs, fmt.Errorf("question time %s: must be positive", c.QuestionTime))
	}
	if c.ResyncDelay < 0 {
		errs = append(errs, fmt.Errorf("resync delay %s: must not be negative", c.ResyncDelay))
	}
	if c.StartingLives <= 0 {
		errs = append(errs, fmt.Errorf("starting lives %d: must be positive", c.StartingLives))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
