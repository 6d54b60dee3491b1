// Package config loads host settings from an optional .env file, BLOCKFALL_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/plus3/blockfall/engine"
)

// Randomizer names a piece source.
type Randomizer string

const (
	Uniform Randomizer = "uniform"
	Bag     Randomizer = "bag"
)

// Config holds the settings shared by every host.
type Config struct {
	// Seed for the piece source. Zero picks one from the clock.
	Seed         uint64
	Randomizer   Randomizer
	TickInterval time.Duration
	Ghost        bool
	Sound        bool
	Debug        bool
	Scale        int
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Randomizer:   Uniform,
		TickInterval: 16 * time.Millisecond,
		Ghost:        true,
		Sound:        true,
		Scale:        32,
	}
}

// EnvFile is the dotenv file Load reads from the working directory.
var EnvFile = ".env"

// Load builds a Config from EnvFile, the environment and args. args should
// not include the program name. A missing EnvFile is not an error.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", EnvFile, err)
	}

	cfg := Default()
	if err := cfg.fromEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	fset := flag.NewFlagSet("blockfall", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	cfg.register(fset)
	if err := fset.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) register(fset *flag.FlagSet) {
	fset.Uint64Var(&c.Seed, "seed", c.Seed, "piece source seed (0 = clock)")
	fset.Func("randomizer", "piece source: uniform or bag", func(s string) error {
		c.Randomizer = Randomizer(s)
		return nil
	})
	fset.DurationVar(&c.TickInterval, "tick", c.TickInterval, "frame interval")
	fset.BoolVar(&c.Ghost, "ghost", c.Ghost, "show the landing projection")
	fset.BoolVar(&c.Sound, "sound", c.Sound, "play sound effects")
	fset.BoolVar(&c.Debug, "debug", c.Debug, "show debug panels")
	fset.IntVar(&c.Scale, "scale", c.Scale, "cell size in pixels")
}

func (c *Config) fromEnv(lookup func(string) (string, bool)) error {
	var err error
	str := func(name string, set func(string) error) {
		v, ok := lookup("BLOCKFALL_" + name)
		if !ok || err != nil {
			return
		}
		if perr := set(v); perr != nil {
			err = fmt.Errorf("BLOCKFALL_%s: %w", name, perr)
		}
	}

	str("SEED", func(v string) (err error) {
		c.Seed, err = strconv.ParseUint(v, 10, 64)
		return err
	})
	str("RANDOMIZER", func(v string) error {
		c.Randomizer = Randomizer(v)
		return nil
	})
	str("TICK", func(v string) (err error) {
		c.TickInterval, err = time.ParseDuration(v)
		return err
	})
	str("GHOST", func(v string) (err error) {
		c.Ghost, err = strconv.ParseBool(v)
		return err
	})
	str("SOUND", func(v string) (err error) {
		c.Sound, err = strconv.ParseBool(v)
		return err
	})
	str("DEBUG", func(v string) (err error) {
		c.Debug, err = strconv.ParseBool(v)
		return err
	})
	str("SCALE", func(v string) (err error) {
		c.Scale, err = strconv.Atoi(v)
		return err
	})
	return err
}

// Validate reports the first setting out of range.
func (c Config) Validate() error {
	switch c.Randomizer {
	case Uniform, Bag:
	default:
		return fmt.Errorf("unknown randomizer %q", c.Randomizer)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	if c.Scale < 4 || c.Scale > 128 {
		return fmt.Errorf("scale %d out of range [4, 128]", c.Scale)
	}
	return nil
}

// PieceSource builds the configured piece source.
func (c Config) PieceSource() engine.PieceSource {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if c.Randomizer == Bag {
		return engine.NewBagSource(seed)
	}
	return engine.NewUniformSource(seed)
}
