package app

import (
	"flag"
	"strings"
	"time"

	"github.com/nagy135/convex-game-of-life/internal/core"
)

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	Store   string
	Addr    string
	Poll    time.Duration
	Scale   int
	ViewW   int
	ViewH   int
	Seed    int64
	Density float64
	Board   string
	Ahead   int

	// Set collects key=value overrides for the store and engine.
	Set KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Store:   "memory",
		Addr:    "127.0.0.1:8030",
		Poll:    DefaultPollInterval,
		Scale:   16,
		ViewW:   30,
		ViewH:   30,
		Seed:    42,
		Density: 0.25,
		Board:   "main",
		Ahead:   1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Store, "store", c.Store, "cell store backend ("+strings.Join(core.Stores(), ", ")+")")
	fs.StringVar(&c.Addr, "addr", c.Addr, "rpc listen or dial address")
	fs.DurationVar(&c.Poll, "poll", c.Poll, "interval between coordinator ticks")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.ViewW, "w", c.ViewW, "viewport width in cells")
	fs.IntVar(&c.ViewH, "h", c.ViewH, "viewport height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells alive after a random fill")
	fs.StringVar(&c.Board, "board", c.Board, "name of the board created when none exist")
	fs.IntVar(&c.Ahead, "ahead", c.Ahead, "generations to look ahead when previewing the viewport")
	fs.Var(&c.Set, "set", "store/engine option in key=value form (repeatable), e.g. throttle=150ms, path=boards.json")
}

// Options returns the -set overrides as a map. Later entries win.
func (c *Config) Options() map[string]string {
	out := make(map[string]string, len(c.Set))
	for _, kv := range c.Set {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

// KVList is a repeatable flag value.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
