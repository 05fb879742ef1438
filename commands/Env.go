package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/samuelfneumann/qgrid/experiment"
	"github.com/samuelfneumann/qgrid/initwfn"
)

// Environment variables which override the experiment configuration
const (
	EnvAlpha   = "QGRID_ALPHA"
	EnvGamma   = "QGRID_GAMMA"
	EnvEpsilon = "QGRID_EPSILON"
	EnvSize    = "QGRID_SIZE"
	EnvSeed    = "QGRID_SEED"
	EnvInit    = "QGRID_INIT"
	EnvSteps   = "QGRID_STEPS"
)

// lookupFunc looks up the value of an environment variable
type lookupFunc func(key string) (string, bool)

// envLookup returns a lookup over the process environment. Variables
// defined in the .env file at path fill in any that are unset.
func envLookup(path string) lookupFunc {
	fileEnv, err := godotenv.Read(path)
	if err != nil {
		logger.Printf("[INFO] %v not loaded: %v", path, err)
	}

	return func(key string) (string, bool) {
		if value, exists := os.LookupEnv(key); exists {
			return value, true
		}
		value, exists := fileEnv[key]
		return value, exists
	}
}

// applyEnv overrides the fields of c that have an environment variable
// set
func applyEnv(c *experiment.Config, lookup lookupFunc) error {
	floats := map[string]*float64{
		EnvAlpha:   &c.Agent.Alpha,
		EnvGamma:   &c.Agent.Gamma,
		EnvEpsilon: &c.Agent.Epsilon,
	}
	for key, field := range floats {
		if value, exists := lookup(key); exists {
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("applyEnv: %v must be a number: %w", key, err)
			}
			*field = f
		}
	}

	if value, exists := lookup(EnvSize); exists {
		size, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("applyEnv: %v must be an integer: %w", EnvSize, err)
		}
		c.Env.Size = size
	}

	if value, exists := lookup(EnvSeed); exists {
		s, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("applyEnv: %v must be an integer: %w", EnvSeed, err)
		}
		c.Seed = s
	}

	if value, exists := lookup(EnvSteps); exists {
		steps, err := strconv.ParseUint(value, 10, 0)
		if err != nil {
			return fmt.Errorf("applyEnv: %v must be an integer: %w", EnvSteps, err)
		}
		c.MaxSteps = uint(steps)
	}

	if value, exists := lookup(EnvInit); exists {
		init, err := parseInit(value)
		if err != nil {
			return fmt.Errorf("applyEnv: %w", err)
		}
		c.Init = init
	}

	return nil
}

// parseInit converts a command line or environment name of an
// initialisation into an InitWFn
func parseInit(name string) (*initwfn.InitWFn, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "")) {
	case "tabularasa", "zero", "zeroes":
		return initwfn.NewTabulaRasa(), nil
	case "heuristic":
		return initwfn.NewHeuristic(initwfn.DefaultScale), nil
	}
	return nil, fmt.Errorf("parseInit: unknown initialisation %q", name)
}
