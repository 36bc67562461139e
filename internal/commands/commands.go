package commands

import "github.com/sirupsen/logrus"

// Context carries shared dependencies into each command.
type Context struct {
	Log *logrus.Logger
}

// CLI is the top-level command tree parsed by kong.
type CLI struct {
	Verbose bool `help:"Enable debug logging." short:"v"`

	Chart ChartCmd `cmd:"" help:"Render a chart from a data file."`
	Ticks TicksCmd `cmd:"" help:"Compute axis ticks for a numeric range."`
}
