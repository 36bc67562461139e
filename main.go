package main

import (
	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/paw-lu/charter/internal/commands"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("charter"),
		kong.Description("Draw unicode charts in the terminal."),
	)
	log := logrus.New()
	if cli.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	err := ctx.Run(&commands.Context{Log: log})
	ctx.FatalIfErrorf(err)
}
