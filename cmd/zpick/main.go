package main

import (
	"os"

	"github.com/hbjs97/zpick/internal/cli"
	"github.com/hbjs97/zpick/internal/cmdexec"
	"github.com/hbjs97/zpick/internal/config"
	"github.com/hbjs97/zpick/internal/logging"
)

func main() {
	logging.Init()
	defer logging.Close()

	app := &cli.App{
		Commander: &cmdexec.RealCommander{},
		CfgPath:   config.DefaultPath(),
	}

	cmd := app.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		logging.Close()
		os.Exit(int(cli.MapExitCode(err)))
	}
}
