// Package config loads application settings from defaults, an optional
// config file, RECIPEBOOK_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hammamikhairi/recipebook/internal/domain"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "RECIPEBOOK"

// Keys.
const (
	KeyConfig       = "config"
	KeyCalorieLimit = "calorie-limit"
	KeyVerbose      = "verbose"
	KeyQuiet        = "quiet"
	KeyLogFile      = "log-file"
	KeyPlain        = "plain"
	KeyDemo         = "demo"
	KeyWrap         = "wrap"
)

// DefaultLogFile keeps logs off the terminal.
const DefaultLogFile = ".recipebook-logs/recipebook.log"

// Config holds the resolved settings.
type Config struct {
	CalorieLimit float64
	Verbose      bool
	Quiet        bool
	LogFile      string // "stderr" logs to the console
	Plain        bool   // force line mode even on a terminal
	Demo         bool   // start with the sample recipes
	Wrap         int    // word-wrap width for rendered recipes
	ConfigFile   string // file the settings were read from, if any
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyConfig, "", "config file (default: ./recipebook.yaml or $HOME/.config/recipebook/recipebook.yaml)")
	fs.Float64(KeyCalorieLimit, domain.DefaultCalorieLimit, "warn when a recipe's total calories exceed this value")
	fs.BoolP(KeyVerbose, "v", false, "enable verbose/debug logging")
	fs.BoolP(KeyQuiet, "q", false, "disable all logging")
	fs.String(KeyLogFile, DefaultLogFile, "file to write logs to (use \"stderr\" to log to console)")
	fs.Bool(KeyPlain, false, "use line mode instead of the full-screen prompt")
	fs.Bool(KeyDemo, false, "start with a couple of sample recipes")
	fs.Int(KeyWrap, 80, "word-wrap width for displayed recipes")
}

// New returns a viper instance with defaults and environment binding set
// up, and fs bound when non-nil.
func New(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyCalorieLimit, domain.DefaultCalorieLimit)
	v.SetDefault(KeyLogFile, DefaultLogFile)
	v.SetDefault(KeyWrap, 80)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}
	return v, nil
}

// Load reads the config file (if any) into v and returns the validated
// settings. An explicit --config path must exist; the default locations
// are optional.
func Load(v *viper.Viper) (Config, error) {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("recipebook")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "recipebook"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	// viper's typed getters turn unparseable values into zero; resolve
	// the numeric settings strictly instead.
	limit, err := cast.ToFloat64E(v.Get(KeyCalorieLimit))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %q is not a number", domain.ErrInvalidInput, KeyCalorieLimit, v.GetString(KeyCalorieLimit))
	}
	wrap, err := cast.ToIntE(v.Get(KeyWrap))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %q is not a whole number", domain.ErrInvalidInput, KeyWrap, v.GetString(KeyWrap))
	}

	cfg := Config{
		CalorieLimit: limit,
		Verbose:      v.GetBool(KeyVerbose),
		Quiet:        v.GetBool(KeyQuiet),
		LogFile:      v.GetString(KeyLogFile),
		Plain:        v.GetBool(KeyPlain),
		Demo:         v.GetBool(KeyDemo),
		Wrap:         wrap,
		ConfigFile:   v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings for values the program cannot use.
func (c Config) Validate() error {
	if math.IsNaN(c.CalorieLimit) || math.IsInf(c.CalorieLimit, 0) || c.CalorieLimit < 0 {
		return fmt.Errorf("%w: %s must be a finite number >= 0, got %v", domain.ErrInvalidInput, KeyCalorieLimit, c.CalorieLimit)
	}
	if c.Wrap < 20 {
		return fmt.Errorf("%w: %s must be at least 20, got %d", domain.ErrInvalidInput, KeyWrap, c.Wrap)
	}
	return nil
}
