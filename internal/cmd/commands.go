package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/objectid/internal/cmd/base"
	"github.com/hashicorp-forge/objectid/internal/cmd/commands/boundary"
	"github.com/hashicorp-forge/objectid/internal/cmd/commands/generate"
	"github.com/hashicorp-forge/objectid/internal/cmd/commands/inspect"
	"github.com/hashicorp-forge/objectid/internal/cmd/commands/operator"
	"github.com/hashicorp-forge/objectid/internal/cmd/commands/validate"
	"github.com/hashicorp-forge/objectid/internal/cmd/commands/version"
)

func newCommands(log hclog.Logger, ui cli.Ui) map[string]cli.CommandFactory {
	b := base.NewCommand(log, ui)

	return map[string]cli.CommandFactory{
		"boundary": func() (cli.Command, error) {
			return &boundary.Command{Command: b}, nil
		},
		"generate": func() (cli.Command, error) {
			return &generate.Command{Command: b}, nil
		},
		"inspect": func() (cli.Command, error) {
			return &inspect.Command{Command: b}, nil
		},
		"operator": func() (cli.Command, error) {
			return &operator.Command{Command: b}, nil
		},
		"operator seed": func() (cli.Command, error) {
			return &operator.SeedCommand{Command: b}, nil
		},
		"validate": func() (cli.Command, error) {
			return &validate.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
