package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/qgrid/experiment"
	"github.com/samuelfneumann/qgrid/experiment/trackers"
	"github.com/samuelfneumann/qgrid/utils/progressbar"
	"github.com/samuelfneumann/qgrid/visualize"
)

// trainFlags are the command line overrides of the train command
type trainFlags struct {
	steps   uint
	size    int
	alpha   float64
	gamma   float64
	epsilon float64
	init    string
	export  bool
	window  int
}

// buildConfig assembles the experiment configuration from, in
// increasing priority, the defaults or configuration file, environment
// overrides and command line flags
func buildConfig(cmd *cobra.Command, f trainFlags,
	lookup lookupFunc) (experiment.Config, error) {
	c := experiment.DefaultConfig()
	if configFile != "" {
		var err error
		if c, err = experiment.LoadConfig(configFile); err != nil {
			return c, err
		}
	}

	if err := applyEnv(&c, lookup); err != nil {
		return c, err
	}

	if changed(cmd, "seed") {
		c.Seed = seed
	}
	if changed(cmd, "steps") {
		c.MaxSteps = f.steps
	}
	if changed(cmd, "size") {
		c.Env.Size = f.size
	}
	if changed(cmd, "alpha") {
		c.Agent.Alpha = f.alpha
	}
	if changed(cmd, "gamma") {
		c.Agent.Gamma = f.gamma
	}
	if changed(cmd, "epsilon") {
		c.Agent.Epsilon = f.epsilon
	}
	if changed(cmd, "init") {
		init, err := parseInit(f.init)
		if err != nil {
			return c, err
		}
		c.Init = init
	}

	if err := c.Agent.Validate(); err != nil {
		return c, fmt.Errorf("buildConfig: %w", err)
	}
	return c, nil
}

// changed returns whether the flag name was set on the command line
func changed(cmd *cobra.Command, name string) bool {
	flag := cmd.Flag(name)
	return flag != nil && flag.Changed
}

// train runs the experiment described by c, saving tracked data and
// exports to saveDir under a fresh run identifier
func train(c experiment.Config, f trainFlags) error {
	if err := os.MkdirAll(saveDir, 0o755); err != nil {
		return fmt.Errorf("train: %w", err)
	}
	runID := uuid.NewString()
	path := func(name string) string {
		return filepath.Join(saveDir, runID+"_"+name)
	}

	configData, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return fmt.Errorf("train: %w", err)
	}
	if err := os.WriteFile(path("config.json"), configData, 0o644); err != nil {
		return fmt.Errorf("train: %w", err)
	}

	returns := trackers.NewReturn(path("returns.bin"))
	lengths := trackers.NewEpisodeLength(path("lengths.bin"))
	e, err := c.CreateExp(returns, lengths)
	if err != nil {
		return err
	}
	visits := trackers.NewVisits(e.Grid().Size(), path("visits.bin"))
	e.Register(visits)

	logger.Printf("run %v: %v", runID, e.Hyperparameters())
	logger.Printf("initialisation: %v", c.Init)

	steps := int(c.MaxSteps)
	bar := progressbar.NewManualProgressBar(40, steps)
	every := steps/100 + 1
	for i := 0; i < steps; i++ {
		e.Step()
		bar.Increment()
		if i%every == 0 || i == steps-1 {
			bar.Display(fmt.Sprintf("episode %d", e.RunState().Episode))
		}
	}
	bar.Close()

	if err := visualize.NewTerminal(os.Stdout, !noColor).Render(e); err != nil {
		return err
	}
	fmt.Println(e.RunState())
	fmt.Println("Return      |", trackers.Summarize(returns.Data(), f.window))
	fmt.Println("Length      |", trackers.Summarize(lengths.Data(), f.window))
	fmt.Printf("Timeouts    | %d\n", lengths.Timeouts())

	if err := e.Save(); err != nil {
		return fmt.Errorf("train: %w", err)
	}

	if f.export {
		g := e.Grid()
		if err := visualize.SaveHeatMap(path("values.png"), g,
			e.StateValues()); err != nil {
			return err
		}
		if err := visualize.SaveHeatMap(path("visits.png"), g,
			visits.Matrix()); err != nil {
			return err
		}
		if err := visualize.SaveGrid(path("policy.png"), e, 40); err != nil {
			return err
		}
		if err := visualize.SaveLearningCurve(path("curve.html"),
			"Learning curve",
			visualize.Series{Name: "Return", Values: returns.Data()},
			visualize.Series{Name: "Length", Values: lengths.Data()},
		); err != nil {
			return err
		}
	}

	logger.Printf("saved run %v to %v", runID, saveDir)
	return nil
}

// TrainCommand returns the command which trains an agent for a number
// of steps
func TrainCommand() *cobra.Command {
	var f trainFlags

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train an agent and save its learning data",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildConfig(cmd, f, envLookup(envFile))
			if err != nil {
				return err
			}
			return train(c, f)
		},
	}
	cmd.Flags().UintVarP(&f.steps, "steps", "n", 10000, "Number of learning steps")
	cmd.Flags().IntVar(&f.size, "size", 5, "Side length of the grid")
	cmd.Flags().Float64Var(&f.alpha, "alpha", 0.1, "Learning rate")
	cmd.Flags().Float64Var(&f.gamma, "gamma", 0.9, "Discount factor")
	cmd.Flags().Float64Var(&f.epsilon, "epsilon", 0.1, "Initial exploration probability")
	cmd.Flags().StringVar(&f.init, "init", "tabula-rasa", "Initialisation: tabula-rasa or heuristic")
	cmd.Flags().BoolVar(&f.export, "export", true, "Export images and charts of the run")
	cmd.Flags().IntVar(&f.window, "window", 100, "Number of final episodes summarised")
	return cmd
}
