package main

import (
	"log"

	"github.com/samuelfneumann/qgrid/commands"
)

// main entry point to all the commands
func main() {
	rootCommand := commands.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		log.Fatalf("qgrid: %v", err)
	}
}
