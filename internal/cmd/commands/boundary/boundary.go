package boundary

import (
	"flag"
	"fmt"
	"time"

	"github.com/araddon/dateparse"

	"github.com/hashicorp-forge/objectid/internal/cmd/base"
	"github.com/hashicorp-forge/objectid/pkg/objectid"
)

type Command struct {
	*base.Command

	flagTime string
}

func (c *Command) Synopsis() string {
	return "Print the lowest ObjectID for a point in time"
}

func (c *Command) Help() string {
	return `Usage: objectid boundary -time=<time>

  This command prints the smallest ObjectID whose timestamp is the given
  time, for use as a lower bound in range queries over ObjectID keys.
  Times without a zone are read as UTC. Most common formats are accepted,
  for example "2024-03-13", "2024-03-13 10:00:00" or "1710324000".` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("boundary", flag.ContinueOnError))

	f.StringVar(
		&c.flagTime, "time", "", "(Required) Time to compute the boundary for.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	logger, ui := c.Log, c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagTime == "" {
		ui.Error("time flag is required")
		return 1
	}

	t, err := dateparse.ParseIn(c.flagTime, time.UTC)
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing time: %v", err))
		return 1
	}
	if t.Unix() < 0 || t.Unix() > 1<<32-1 {
		ui.Error(fmt.Sprintf("time %s is outside the ObjectID range", t.Format(time.RFC3339)))
		return 1
	}

	id := objectid.FromTime(t)
	logger.Debug("computed boundary", "time", t, "id", id.Hex())
	ui.Output(id.Hex())

	return 0
}
