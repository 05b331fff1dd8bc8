package commands

import (
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

const (
	defaultDigits         = 20
	defaultFloatPrecision = 16
	defaultMaxCycle       = 100_000
)

type Config struct {
	Output struct {
		Digits         int   `toml:"digits"`
		Overline       bool  `toml:"overline"`
		FloatPrecision int32 `toml:"float-precision"`
	} `toml:"output"`
	Expand struct {
		MaxCycle int `toml:"max-cycle"`
	} `toml:"expand"`
}

func DefaultConfig() *Config {
	var config Config
	config.Output.Digits = defaultDigits
	config.Output.FloatPrecision = defaultFloatPrecision
	config.Expand.MaxCycle = defaultMaxCycle
	return &config
}

// LoadConfig reads a TOML file on top of the defaults.
// Keys missing from the file keep their default values.
func LoadConfig(file string) (*Config, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	config := DefaultConfig()
	err = toml.Unmarshal(f, config)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", file)
	}
	if err := config.validate(); err != nil {
		return nil, errors.Wrapf(err, "validating %s", file)
	}
	return config, nil
}

// validate reports every invalid key at once.
func (c *Config) validate() error {
	var err error
	if c.Output.Digits < 0 {
		err = multierror.Append(err, errors.Errorf("output.digits must not be negative, got %d", c.Output.Digits))
	}
	if c.Output.FloatPrecision < 0 {
		err = multierror.Append(err, errors.Errorf("output.float-precision must not be negative, got %d", c.Output.FloatPrecision))
	}
	if c.Expand.MaxCycle < 0 {
		err = multierror.Append(err, errors.Errorf("expand.max-cycle must not be negative, got %d", c.Expand.MaxCycle))
	}
	return err
}
