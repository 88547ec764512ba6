package inspect

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hashicorp-forge/objectid/internal/cmd/base"
	"github.com/hashicorp-forge/objectid/pkg/objectid"
)

type Command struct {
	*base.Command

	flagFormat string
}

// Details is the decoded form of an ObjectID.
type Details struct {
	ID          string    `json:"id" yaml:"id"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
	Fingerprint string    `json:"fingerprint" yaml:"fingerprint"`
	Counter     uint32    `json:"counter" yaml:"counter"`
}

// NewDetails decodes id.
func NewDetails(id objectid.ID) Details {
	fp := id.Fingerprint()
	return Details{
		ID:          id.Hex(),
		Timestamp:   id.Timestamp(),
		Fingerprint: hex.EncodeToString(fp[:]),
		Counter:     id.Counter(),
	}
}

func (c *Command) Synopsis() string {
	return "Decode the fields of an ObjectID"
}

func (c *Command) Help() string {
	return `Usage: objectid inspect [options] ID

  This command prints the timestamp, process fingerprint and counter
  encoded in an ObjectID.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("inspect", flag.ContinueOnError))

	f.StringVar(
		&c.flagFormat, "format", "text", "Output format: text, json or yaml.",
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

	if flags.NArg() != 1 {
		ui.Error("exactly one ID is required")
		return 1
	}

	id, err := objectid.Parse(flags.Arg(0))
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	d := NewDetails(id)

	switch c.flagFormat {
	case "text":
		ui.Output(fmt.Sprintf("ID:          %s", d.ID))
		ui.Output(fmt.Sprintf("Timestamp:   %s", d.Timestamp.Format(time.RFC3339)))
		ui.Output(fmt.Sprintf("Fingerprint: %s", d.Fingerprint))
		ui.Output(fmt.Sprintf("Counter:     %d", d.Counter))
	case "json":
		out, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			ui.Error(fmt.Sprintf("error encoding output: %v", err))
			return 1
		}
		ui.Output(string(out))
	case "yaml":
		out, err := yaml.Marshal(d)
		if err != nil {
			ui.Error(fmt.Sprintf("error encoding output: %v", err))
			return 1
		}
		ui.Output(string(out))
	default:
		ui.Error(fmt.Sprintf("unsupported format: %q (must be text, json or yaml)", c.flagFormat))
		return 1
	}

	return 0
}
