package main

import (
	"fmt"
	"os"

	"github.com/mmynk/investcalc/internal/cli"
	"github.com/mmynk/investcalc/internal/config"
	"github.com/mmynk/investcalc/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCommandError)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	os.Exit(cli.Execute(cli.NewRootCommand(cfg)))
}
