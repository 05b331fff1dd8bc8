package commands

import (
	"strconv"

	log "github.com/ipfs/go-log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/govalues/rational"
)

var logger = log.Logger("ratexp")

var (
	configFile string
	logLevel   string
	config     *Config
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ratexp",
		Short:        "Exact rational arithmetic and repeating decimal expansions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := log.SetLogLevel("ratexp", logLevel); err != nil {
				return errors.Wrapf(err, "setting log level %q", logLevel)
			}
			if configFile == "" {
				config = DefaultConfig()
				logger.Debugf("using default config")
				return nil
			}
			c, err := LoadConfig(configFile)
			if err != nil {
				return err
			}
			config = c
			logger.Debugf("loaded config from %s", configFile)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "TOML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level (debug, info, warn, error)")

	root.AddCommand(expandCmd(), digitsCmd(), floatCmd(), evalCmd())
	return root
}

// parseRational builds a rational from two integer arguments.
func parseRational(num, den string) (rational.Rational, error) {
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return rational.Rational{}, errors.Wrapf(err, "parsing numerator %q", num)
	}
	d, err := strconv.ParseInt(den, 10, 64)
	if err != nil {
		return rational.Rational{}, errors.Wrapf(err, "parsing denominator %q", den)
	}
	r, err := rational.New(n, d)
	if err != nil {
		return rational.Rational{}, err
	}
	logger.Debugf("built %v from %d/%d", r.RatString(), n, d)
	return r, nil
}
