// Package environment outlines the interfaces shared by environments and
// the experiments that run agents in them
package environment

import "github.com/samuelfneumann/qgrid/timestep"

// Ender determines when an episode should be cut off. If End returns
// true, it has marked the TimeStep as the last in its episode along with
// the reason the episode ended.
type Ender interface {
	End(t *timestep.TimeStep) bool
}
