package experiment

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/qgrid/agent/tabular/qlearning"
	"github.com/samuelfneumann/qgrid/environment"
	"github.com/samuelfneumann/qgrid/environment/gridworld"
	"github.com/samuelfneumann/qgrid/experiment/tracker"
	"github.com/samuelfneumann/qgrid/initwfn"
	ts "github.com/samuelfneumann/qgrid/timestep"
)

// Online is an Experiment that runs a Q-Learning agent online in a
// gridworld, one move per call to Step.
//
// Online owns the grid, the agent's action-value table, the run state
// and the hyperparameters. All changes to them go through its methods,
// and every Step reads their latest values. Online is not safe for
// concurrent use.
type Online struct {
	grid     *gridworld.Grid
	agent    *qlearning.QLearning
	hp       qlearning.Config
	init     *initwfn.InitWFn
	src      rand.Source
	ender    environment.Ender
	position gridworld.Position
	state    RunState
	current  ts.TimeStep
	trackers []tracker.Tracker
}

// NewOnline creates and returns a new online experiment on grid g. The
// agent's table is built by init, or is all zeros if init is nil, and
// every random choice is drawn from src. The t parameter is a list of
// tracker.Tracker which determine what data is tracked.
func NewOnline(g *gridworld.Grid, hp qlearning.Config, init *initwfn.InitWFn,
	src rand.Source, t ...tracker.Tracker) *Online {
	if init == nil {
		init = initwfn.NewTabulaRasa()
	}

	o := &Online{
		grid:     g.Clone(),
		hp:       hp,
		init:     init,
		src:      src,
		trackers: t,
	}
	o.resetLearning()
	return o
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// Step takes a single ε-greedy move, updates the action value of the
// move taken, and handles the end of the episode if the move reached
// the goal or exhausted the episode's move budget. The returned
// TimeStep observes the cell the agent moved to, before any reset to
// the start.
func (o *Online) Step() ts.TimeStep {
	o.state.Moves++
	o.agent.SetLearningRate(o.hp.Alpha)

	action := o.agent.SelectAction(o.current)
	outcome := gridworld.Transition(o.grid, o.position, action)

	step := ts.New(ts.Mid, outcome.Reward, o.hp.Gamma, outcome.Next.Vec(),
		o.state.Moves)
	if outcome.Terminal {
		step.SetEnd(ts.TerminalStateReached)
	} else {
		o.ender.End(&step)
	}

	o.agent.Observe(action, step)
	o.agent.Step()

	o.state.Return += outcome.Reward
	o.position = outcome.Next
	o.current = step
	o.track(step)

	switch step.EndType() {
	case ts.TerminalStateReached:
		o.state.Episode++
		o.state.decayEpsilon()
		o.agent.SetEpsilon(o.state.Epsilon)
		o.restartEpisode()

	case ts.Timeout:
		o.state.Episode++
		o.restartEpisode()
	}

	return step
}

// RunEpisode runs steps until the current episode ends and returns
// whether it ended by reaching the goal
func (o *Online) RunEpisode() bool {
	for {
		step := o.Step()
		if step.Last() {
			return step.EndType() == ts.TerminalStateReached
		}
	}
}

// Run runs the experiment for a number of steps
func (o *Online) Run(steps int) {
	for i := 0; i < steps; i++ {
		o.Step()
	}
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	return nil
}

// ResetGrid replaces the grid with a plain size x size grid, rebuilds
// the action-value table and resets the run state
func (o *Online) ResetGrid(size int) error {
	g, err := gridworld.New(size)
	if err != nil {
		return fmt.Errorf("resetGrid: %w", err)
	}
	o.grid = g
	o.resetLearning()
	return nil
}

// ResetLearning moves the start and goal, rebuilds the action-value
// table and resets the run state. Walls are kept.
func (o *Online) ResetLearning(start, goal gridworld.Position) error {
	if err := o.grid.Move(start, goal); err != nil {
		return fmt.Errorf("resetLearning: %w", err)
	}
	o.resetLearning()
	return nil
}

// SetCell sets the cell at p to Empty or Wall. Edits of the start, the
// goal or the border are ignored. If the cell changed, the run state is
// reset and the agent returns to the start; learned values are kept.
// SetCell returns whether the cell changed.
func (o *Online) SetCell(p gridworld.Position, c gridworld.Cell) bool {
	if !o.grid.SetCell(p, c) {
		return false
	}
	o.ResetAgent()
	return true
}

// ResetAgent returns the agent to the start and resets the run state
func (o *Online) ResetAgent() {
	o.state = newRunState(o.hp.Epsilon)
	o.agent.SetEpsilon(o.state.Epsilon)
	o.restartEpisode()
}

// SetHyperparameters replaces the hyperparameters. Alpha and gamma take
// effect on the next step, and the current epsilon is set to c.Epsilon.
func (o *Online) SetHyperparameters(c qlearning.Config) {
	o.hp = c
	o.state.Epsilon = c.Epsilon
	o.agent.SetEpsilon(c.Epsilon)
}

// SetInit switches the initialisation of the action-value table,
// rebuilding the table and resetting the run state
func (o *Online) SetInit(init *initwfn.InitWFn) {
	if init == nil {
		init = initwfn.NewTabulaRasa()
	}
	o.init = init
	o.resetLearning()
}

// AgentPosition returns the cell the agent occupies
func (o *Online) AgentPosition() gridworld.Position {
	return o.position
}

// MaxValue returns the largest action value of cell p
func (o *Online) MaxValue(p gridworld.Position) float64 {
	return o.agent.Table().MaxValue(p)
}

// BestAction returns the greedy action in cell p. Ties are broken with
// the experiment's random source.
func (o *Online) BestAction(p gridworld.Position) gridworld.Action {
	return o.agent.BestAction(p)
}

// ActionValues returns a copy of the action values of cell p
func (o *Online) ActionValues(p gridworld.Position) []float64 {
	return o.agent.Table().Row(p)
}

// StateValues returns a size x size matrix whose (y, x) element is the
// maximum action value of cell (x, y)
func (o *Online) StateValues() *mat.Dense {
	return o.agent.Table().StateValues()
}

// RunState returns the current run state
func (o *Online) RunState() RunState {
	return o.state
}

// Grid returns a copy of the grid
func (o *Online) Grid() *gridworld.Grid {
	return o.grid.Clone()
}

// Hyperparameters returns the current hyperparameters
func (o *Online) Hyperparameters() qlearning.Config {
	return o.hp
}

// Init returns the initialisation of the action-value table
func (o *Online) Init() *initwfn.InitWFn {
	return o.init
}

// EpisodeLimit returns the move count above which an episode times out
func (o *Online) EpisodeLimit() int {
	return 2 * o.grid.Size() * o.grid.Size()
}

func (o *Online) String() string {
	return fmt.Sprintf("Online | At: %v  |  %v\n%v", o.position, o.state,
		o.hp)
}

// resetLearning rebuilds the table and the agent for the current grid
// and resets the run state
func (o *Online) resetLearning() {
	size := o.grid.Size()
	table := o.init.Create(size, o.grid.Goal())

	o.agent = qlearning.New(table, o.hp, o.src)
	o.ender = environment.NewStepLimit(o.EpisodeLimit() + 1)
	o.ResetAgent()
}

// restartEpisode moves the agent to the start and begins a new episode
func (o *Online) restartEpisode() {
	o.state.startEpisode()
	o.position = o.grid.Start()

	o.current = ts.New(ts.First, 0, o.hp.Gamma, o.position.Vec(), 0)
	o.agent.ObserveFirst(o.current)
	o.track(o.current)
}

// track tracks the current timestep by caching its data in each tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tr := range o.trackers {
		tr.Track(t)
	}
}
