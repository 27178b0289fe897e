package main

import (
	"fmt"
	"os"

	"task-manager/internal/cli"
	"task-manager/internal/config"
	"task-manager/internal/logging"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logging.Debugf("environment=%s api=%s db=%s\n", cfg.Application.Environment, cfg.API.BaseURL, cfg.GetDatabasePath())

	app := cli.NewApp(nil, cfg)
	root := cli.NewRootCommand(app, newBoardFactory().create)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
