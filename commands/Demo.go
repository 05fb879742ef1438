package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/qgrid/agent/tabular/qlearning"
	"github.com/samuelfneumann/qgrid/environment/gridworld"
	"github.com/samuelfneumann/qgrid/experiment"
	"github.com/samuelfneumann/qgrid/visualize"
)

// Demo trains a greedy agent on a plain 5 x 5 grid, printing the first
// step and then the grid after each of a number of episodes
func Demo(episodes int) error {
	g, err := gridworld.New(5)
	if err != nil {
		return err
	}
	hp := qlearning.Config{Alpha: 0.5, Gamma: 0.9, Epsilon: 0}
	e := experiment.NewOnline(g, hp, nil, rand.NewSource(seed))
	term := visualize.NewTerminal(os.Stdout, !noColor)

	start := g.Start()
	step := e.Step()
	fmt.Printf("First step: reward %.0f, agent at %v\n", step.Reward,
		e.AgentPosition())
	fmt.Printf("Q%v = %v\n", start, e.ActionValues(start))
	fmt.Println(e.RunState())

	for i := 0; i < episodes; i++ {
		reached := e.RunEpisode()
		fmt.Printf("\nEpisode %d (goal reached: %v)\n", i+1, reached)
		if err := term.Render(e); err != nil {
			return err
		}
		fmt.Printf("V%v = %.2f\n", start, e.MaxValue(start))
	}
	return nil
}

// DemoCommand returns the command which runs the 5 x 5 demonstration
func DemoCommand() *cobra.Command {
	var episodes int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Watch a greedy agent learn a 5 x 5 grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Demo(episodes)
		},
	}
	cmd.Flags().IntVar(&episodes, "episodes", 10, "Number of episodes to run")
	return cmd
}
