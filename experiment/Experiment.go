// Package experiment implements functionality for running a Q-Learning
// agent in a gridworld
package experiment

import (
	"github.com/samuelfneumann/qgrid/experiment/tracker"
	ts "github.com/samuelfneumann/qgrid/timestep"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments will track TimeSteps, caching each TimeStep in RAM to be
// later saved to disk. The Save() function will then take all cached
// data and save it to disk. This is usually performed after an
// experiment has been run. The Run() method will run a number of
// steps, and the RunEpisode() function will run a single episode.
//
// In order to save data, Experiments use Trackers. Trackers determine
// which data generated during the experiment is saved. Experiments will
// send each TimeStep to Trackers using the Tracker's Track() method.
// New Trackers can be registered with an Experiment through the
// constructor or through an Experiment's Register() function.
type Experiment interface {
	Step() ts.TimeStep
	Run(steps int)
	RunEpisode() bool // Returns whether the episode reached the goal

	// Save all tracked data to disk
	Save() error

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t tracker.Tracker)
}

var _ Experiment = &Online{}
