// Package commands implements the qgrid command line interface
package commands

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	envFile    string
	saveDir    string
	seed       uint64
	noColor    bool
)

// logger is used for all diagnostic output of the command line tools
var logger = log.New(os.Stderr, "qgrid: ", log.LstdFlags)

// GetRootCommand returns the qgrid command with all of its subcommands
func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "qgrid",
		Short:         "Tabular Q-Learning in a gridworld",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.PersistentFlags().StringVarP(&configFile, "config", "c", "", "JSON experiment configuration file")
	rootCommand.PersistentFlags().StringVar(&envFile, "env", ".env", "File of QGRID_* environment overrides")
	rootCommand.PersistentFlags().StringVarP(&saveDir, "save", "s", "results", "Save the result data in the specified folder")
	rootCommand.PersistentFlags().Uint64Var(&seed, "seed", 1, "Seed of the random source")
	rootCommand.PersistentFlags().BoolVar(&noColor, "no-color", false, "Print the grid without colours")

	rootCommand.AddCommand(TrainCommand())
	rootCommand.AddCommand(DemoCommand())
	return rootCommand
}
