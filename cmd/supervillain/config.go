// Configuration for the supervillain command.
//
// Every flag is also a configuration key: the flag name with dashes turned
// into underscores. Values resolve as flag > SUPERVILLAIN_* environment >
// config file > default.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileName = "supervillain"
	configFileType = "yaml"
	envPrefix      = "SUPERVILLAIN"

	cfgKeyConfig      = "config"
	cfgKeyStore       = "store"
	cfgKeyLogLevel    = "log_level"
	cfgKeyLogFormat   = "log_format"
	cfgKeyFormulation = "formulation"
	cfgKeyN           = "n"
	cfgKeyKappa       = "kappa"
	cfgKeyW           = "w"
	cfgKeySteps       = "steps"
	cfgKeyEvery       = "every"
	cfgKeySeed        = "seed"
	cfgKeyParallelism = "parallelism"
	cfgKeyRunID       = "run_id"
	cfgKeyMetrics     = "metrics"
	cfgKeyObservables = "observable"
	cfgKeyCut         = "cut"
	cfgKeyThin        = "thin"
	cfgKeyJSON        = "json"

	defaultStore       = ".supervillain"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultFormulation = "worldline"
	defaultN           = 8
	defaultKappa       = 0.5
	defaultW           = "1"
	defaultSteps       = 100
)

// defaultConfigYAML documents the keys a config file may set.
const defaultConfigYAML = `# supervillain configuration
store: .supervillain
log_level: info      # debug, info, warn, error
log_format: text     # text or json

formulation: worldline
n: 8
kappa: 0.5
w: 1                 # positive integer or inf
steps: 100
every: 1
seed: 0              # 0 draws a seed and records it
parallelism: 1
`

// loadConfig builds the configuration of one command invocation.
// An explicit --config file must exist; otherwise supervillain.yaml in the
// working directory is read when present.
func loadConfig(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyStore, defaultStore)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, defaultLogFormat)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}

	if path := v.GetString(cfgKeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		return v, nil
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var missing viper.ConfigFileNotFoundError
		if errors.As(err, &missing) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// bindFlags binds every flag of the command, inherited ones included,
// under its configuration key.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err == nil {
			err = v.BindPFlag(configKey(f.Name), f)
		}
	})
	return err
}

func configKey(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

// newLogger builds the command's logger from log_level and log_format.
func newLogger(v *viper.Viper, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(cfgKeyLogLevel))); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch format := strings.ToLower(v.GetString(cfgKeyLogFormat)); format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("log format %q: want text or json", format)
	}
}
