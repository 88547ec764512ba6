package validate

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/objectid/internal/cmd/base"
	"github.com/hashicorp-forge/objectid/pkg/objectid"
)

type Command struct {
	*base.Command

	flagQuiet bool
}

func (c *Command) Synopsis() string {
	return "Check whether values are well-formed ObjectIDs"
}

func (c *Command) Help() string {
	return `Usage: objectid validate [options] ID...

  This command checks each argument against the ObjectID format (24
  hexadecimal characters). It exits 1 if any argument is invalid.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("validate", flag.ContinueOnError))

	f.BoolVar(
		&c.flagQuiet, "quiet", false, "Only report invalid values.",
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

	ids := flags.Args()
	if len(ids) == 0 {
		ui.Error("at least one ID is required")
		return 1
	}

	invalid := 0
	for _, id := range ids {
		if objectid.IsValid(id) {
			if !c.flagQuiet {
				ui.Output(fmt.Sprintf("%s: valid", id))
			}
			continue
		}
		invalid++
		ui.Error(fmt.Sprintf("%q: invalid", id))
	}

	if invalid > 0 {
		return 1
	}
	return 0
}
