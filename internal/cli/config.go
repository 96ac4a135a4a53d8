package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/squaresum/cycle"
	"github.com/katalvlaran/squaresum/driver"
)

// ErrInvalidConfig indicates an unusable configuration value.
var ErrInvalidConfig = errors.New("cli: invalid configuration")

// Output formats of the run command.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the knobs of a run. It is decoded from TOML; command-line
// flags override file values.
type Config struct {
	Seed            int64  `toml:"seed"`
	MaxAttempts     int    `toml:"max_attempts"`
	Ceiling         int    `toml:"ceiling"`
	MilestoneEvery  int    `toml:"milestone_every"`
	MilestoneOffset int    `toml:"milestone_offset"`
	Format          string `toml:"format"`
	Strict          bool   `toml:"strict"`
	MetricsAddr     string `toml:"metrics_addr"`
}

// DefaultConfig returns the defaults of the classic run.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:     cycle.DefaultMaxAttempts,
		Ceiling:         driver.DefaultCeiling,
		MilestoneEvery:  driver.DefaultMilestoneEvery,
		MilestoneOffset: driver.DefaultMilestoneOffset,
		Format:          FormatText,
	}
}

// LoadConfig decodes the TOML file at path over DefaultConfig.
// Unknown keys are rejected so typos do not pass silently.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("cli: load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.MaxAttempts < 1:
		return fmt.Errorf("%w: max_attempts must be ≥ 1, got %d", ErrInvalidConfig, c.MaxAttempts)
	case c.Ceiling < 1:
		return fmt.Errorf("%w: ceiling must be ≥ 1, got %d", ErrInvalidConfig, c.Ceiling)
	case c.MilestoneEvery < 0:
		return fmt.Errorf("%w: milestone_every must be ≥ 0, got %d", ErrInvalidConfig, c.MilestoneEvery)
	case c.MilestoneOffset < 0 || (c.MilestoneEvery > 0 && c.MilestoneOffset >= c.MilestoneEvery):
		return fmt.Errorf("%w: milestone_offset must be in [0, milestone_every), got %d", ErrInvalidConfig, c.MilestoneOffset)
	case c.Format != FormatText && c.Format != FormatJSON:
		return fmt.Errorf("%w: format must be %q or %q, got %q", ErrInvalidConfig, FormatText, FormatJSON, c.Format)
	}
	return nil
}

// bindFlags registers one flag per Config field, defaulting to c.
func (c *Config) bindFlags(fs *pflag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 selects the fixed default stream)")
	fs.IntVar(&c.MaxAttempts, "max-attempts", c.MaxAttempts, "perturbation steps allowed per extension")
	fs.IntVar(&c.Ceiling, "ceiling", c.Ceiling, "stop once the cycle has this many vertices")
	fs.IntVar(&c.MilestoneEvery, "every", c.MilestoneEvery, "report when size % every == offset (0 disables)")
	fs.IntVar(&c.MilestoneOffset, "offset", c.MilestoneOffset, "milestone offset")
	fs.StringVar(&c.Format, "format", c.Format, "checkpoint format: text or json")
	fs.BoolVar(&c.Strict, "strict", c.Strict, "fully validate every closed cycle")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "serve Prometheus metrics on this address")
}

// overrideFrom copies the values of flags the user set explicitly.
func (c *Config) overrideFrom(fs *pflag.FlagSet, flags Config) {
	if fs.Changed("seed") {
		c.Seed = flags.Seed
	}
	if fs.Changed("max-attempts") {
		c.MaxAttempts = flags.MaxAttempts
	}
	if fs.Changed("ceiling") {
		c.Ceiling = flags.Ceiling
	}
	if fs.Changed("every") {
		c.MilestoneEvery = flags.MilestoneEvery
	}
	if fs.Changed("offset") {
		c.MilestoneOffset = flags.MilestoneOffset
	}
	if fs.Changed("format") {
		c.Format = flags.Format
	}
	if fs.Changed("strict") {
		c.Strict = flags.Strict
	}
	if fs.Changed("metrics-addr") {
		c.MetricsAddr = flags.MetricsAddr
	}
}

// cycleOptions converts the config into perturber options.
func (c Config) cycleOptions() []cycle.Option {
	return []cycle.Option{
		cycle.WithSeed(c.Seed),
		cycle.WithMaxAttempts(c.MaxAttempts),
		cycle.WithStrict(c.Strict),
	}
}
