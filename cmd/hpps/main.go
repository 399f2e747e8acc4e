// main is the entry point for the hpps CLI.
package main

import (
	"os"

	"github.com/huangsam/hpps/cmd"
	"github.com/huangsam/hpps/internal/contract"
	"github.com/huangsam/hpps/internal/scorestore"
)

func main() {
	// Wire the global persistence manager into the command layer. Commands
	// initialize it lazily during their PreRunE setup.
	cmd.SetStoreManager(scorestore.Manager)

	err := cmd.Execute()

	// Flush profiles and close store connections before deciding the exit code.
	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Failed to stop profiling", perr)
	}
	scorestore.CloseStore()

	if err != nil {
		os.Exit(1)
	}
}
