// Package config holds the bot's settings. Values come from the environment,
// optionally through a .env file.
package config

import (
	"io/fs"
	"os"

	"github.com/diamondburned/colorbot/internal/color"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

func newWorld() *registry {
	minContrast := float(color.DefaultThreshold)

	return &registry{
		configs: []config{
			{"Discord Token", "DISCORD_TOKEN", ""},
			{"Minimum Contrast", "MIN_CONTRAST", &minContrast},
			{"Log Requests", "LOG_REQUESTS", false},
		},
	}
}

// Config is a snapshot of the settings.
type Config struct {
	Token       string  `validate:"required"`
	MinContrast float64 `validate:"gte=0"`
	LogRequests bool
}

var validate = validator.New()

// Load reads .env if there is one, then reads the settings from the
// environment. DISCORD_TOKEN is required. MIN_CONTRAST defaults to 2 and may
// be any non-negative number; contrast ratios range from 1 to 21, so values
// below 1 accept every color and values of 21 or more reject every color.
// LOG_REQUESTS defaults to false.
func Load() (*Config, error) {
	if err := loadDotenv(); err != nil {
		return nil, err
	}

	return load(newWorld(), os.LookupEnv)
}

// loadDotenv loads the given files, or .env if none are given, into the
// environment. Missing files are skipped; malformed ones are an error.
func loadDotenv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "failed to load .env")
	}
	return nil
}

func load(reg *registry, lookup func(string) (string, bool)) (*Config, error) {
	cfgMap, err := reg.Environment(lookup)
	if err != nil {
		return nil, err
	}

	if err := reg.SetConfiguration(cfgMap); err != nil {
		return nil, errors.Wrap(err, "failed to apply configuration")
	}

	cfg := Config{
		Token:       reg.get(0).(string),
		MinContrast: float64(*reg.get(1).(*float)),
		LogRequests: reg.get(2).(bool),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}
