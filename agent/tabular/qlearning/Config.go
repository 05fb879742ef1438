package qlearning

import "fmt"

// Config represents a configuration for the QLearning agent
type Config struct {
	Alpha   float64 // learning rate
	Gamma   float64 // discount factor
	Epsilon float64 // exploration probability of the behaviour policy
}

// DefaultConfig returns the configuration used when none is given
func DefaultConfig() Config {
	return Config{Alpha: 0.1, Gamma: 0.9, Epsilon: 0.1}
}

// Validate ensures that the Config is valid. The learning step itself
// accepts any values; Validate exists for configuration files and
// command line input.
func (c Config) Validate() error {
	if c.Alpha <= 0 || c.Alpha > 1 {
		return fmt.Errorf("validate: alpha must be in (0, 1], have %v",
			c.Alpha)
	}
	if c.Gamma < 0 || c.Gamma > 1 {
		return fmt.Errorf("validate: gamma must be in [0, 1], have %v",
			c.Gamma)
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("validate: epsilon must be in [0, 1], have %v",
			c.Epsilon)
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("QLearning | α: %v  |  γ: %v  |  ε: %v", c.Alpha,
		c.Gamma, c.Epsilon)
}
