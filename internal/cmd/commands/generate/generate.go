package generate

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/objectid/internal/cmd/base"
	"github.com/hashicorp-forge/objectid/pkg/objectid"
)

type Command struct {
	*base.Command

	flagCount  int
	flagFormat string
}

func (c *Command) Synopsis() string {
	return "Generate new ObjectIDs"
}

func (c *Command) Help() string {
	return `Usage: objectid generate [options]

  This command prints newly generated ObjectIDs, one per line.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("generate", flag.ContinueOnError))

	f.IntVar(
		&c.flagCount, "n", 1, "Number of ObjectIDs to generate.",
	)
	f.StringVar(
		&c.flagFormat, "format", "text", "Output format: text or json.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagCount < 1 {
		ui.Error("n must be at least 1")
		return 1
	}

	ids := make([]string, c.flagCount)
	for i := range ids {
		ids[i] = objectid.NewString()
	}

	switch c.flagFormat {
	case "text":
		for _, id := range ids {
			ui.Output(id)
		}
	case "json":
		out, err := json.Marshal(ids)
		if err != nil {
			ui.Error(fmt.Sprintf("error encoding output: %v", err))
			return 1
		}
		ui.Output(string(out))
	default:
		ui.Error(fmt.Sprintf("unsupported format: %q (must be text or json)", c.flagFormat))
		return 1
	}

	return 0
}
