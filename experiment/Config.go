package experiment

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/qgrid/agent/tabular/qlearning"
	"github.com/samuelfneumann/qgrid/environment/envconfig"
	"github.com/samuelfneumann/qgrid/experiment/tracker"
	"github.com/samuelfneumann/qgrid/initwfn"
)

// Config represents a configuration of an experiment.
type Config struct {
	MaxSteps uint
	Seed     uint64
	Env      envconfig.Config
	Agent    qlearning.Config
	Init     *initwfn.InitWFn `json:",omitempty"`
}

// DefaultConfig returns the configuration of a plain 5 x 5 grid with
// the default agent configuration
func DefaultConfig() Config {
	return Config{
		MaxSteps: 10000,
		Seed:     1,
		Env:      envconfig.NewConfig(envconfig.DefaultSize),
		Agent:    qlearning.DefaultConfig(),
		Init:     initwfn.NewTabulaRasa(),
	}
}

// LoadConfig reads a JSON experiment configuration from path. Fields
// missing from the file keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("loadConfig: %w", err)
	}

	c := DefaultConfig()
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not parse %v: %w",
			path, err)
	}
	if err := c.Agent.Validate(); err != nil {
		return Config{}, fmt.Errorf("loadConfig: %w", err)
	}
	return c, nil
}

// CreateExp creates the experiment described by the Config, tracking
// data with the trackers t
func (c Config) CreateExp(t ...tracker.Tracker) (*Online, error) {
	g, err := c.Env.Create()
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create grid: %w", err)
	}

	return NewOnline(g, c.Agent, c.Init, rand.NewSource(c.Seed), t...), nil
}
