package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hashicorp-forge/objectid/internal/cmd/commands/inspect"
	"github.com/hashicorp-forge/objectid/internal/version"
	"github.com/hashicorp-forge/objectid/pkg/objectid"
)

func runCLI(t *testing.T, args ...string) (int, *cli.MockUi) {
	t.Helper()
	ui := cli.NewMockUi()
	code := run("objectid", args, hclog.NewNullLogger(), ui)
	return code, ui
}

func lines(s string) []string {
	return strings.Fields(strings.TrimSpace(s))
}

func TestGenerate(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		code, ui := runCLI(t, "generate")
		require.Equal(t, 0, code, ui.ErrorWriter.String())
		out := lines(ui.OutputWriter.String())
		require.Len(t, out, 1)
		assert.True(t, objectid.IsValid(out[0]))
	})

	t.Run("many distinct", func(t *testing.T) {
		code, ui := runCLI(t, "generate", "-n", "50")
		require.Equal(t, 0, code)
		out := lines(ui.OutputWriter.String())
		require.Len(t, out, 50)

		seen := map[string]bool{}
		for _, id := range out {
			assert.True(t, objectid.IsValid(id))
			seen[id] = true
		}
		assert.Len(t, seen, 50)
	})

	t.Run("json", func(t *testing.T) {
		code, ui := runCLI(t, "generate", "-n", "3", "-format", "json")
		require.Equal(t, 0, code)

		var ids []string
		require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &ids))
		assert.Len(t, ids, 3)
	})

	t.Run("rejects bad count", func(t *testing.T) {
		code, ui := runCLI(t, "generate", "-n", "0")
		assert.Equal(t, 1, code)
		assert.Contains(t, ui.ErrorWriter.String(), "at least 1")
	})

	t.Run("rejects bad format", func(t *testing.T) {
		code, _ := runCLI(t, "generate", "-format", "xml")
		assert.Equal(t, 1, code)
	})
}

func TestValidate(t *testing.T) {
	t.Run("all valid", func(t *testing.T) {
		code, ui := runCLI(t, "validate", objectid.NewString(), "ABCDEF0123456789ABCDEF01")
		assert.Equal(t, 0, code)
		assert.Equal(t, 2, strings.Count(ui.OutputWriter.String(), ": valid"))
	})

	t.Run("some invalid", func(t *testing.T) {
		code, ui := runCLI(t, "validate", "-quiet", objectid.NewString(), "nope")
		assert.Equal(t, 1, code)
		assert.Empty(t, ui.OutputWriter.String())
		assert.Contains(t, ui.ErrorWriter.String(), `"nope": invalid`)
	})

	t.Run("requires arguments", func(t *testing.T) {
		code, _ := runCLI(t, "validate")
		assert.Equal(t, 1, code)
	})
}

func TestInspect(t *testing.T) {
	const id = "65f1c2a00a0b0c0d0e123456"

	t.Run("text", func(t *testing.T) {
		code, ui := runCLI(t, "inspect", id)
		require.Equal(t, 0, code, ui.ErrorWriter.String())
		out := ui.OutputWriter.String()
		assert.Contains(t, out, "2024-03-13T15:13:36Z")
		assert.Contains(t, out, "0a0b0c0d0e")
		assert.Contains(t, out, "1193046")
	})

	t.Run("json", func(t *testing.T) {
		code, ui := runCLI(t, "inspect", "-format", "json", id)
		require.Equal(t, 0, code)

		var d inspect.Details
		require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &d))
		assert.Equal(t, inspect.NewDetails(objectid.MustParse(id)), d)
	})

	t.Run("yaml", func(t *testing.T) {
		code, ui := runCLI(t, "inspect", "-format", "yaml", id)
		require.Equal(t, 0, code)

		var d inspect.Details
		require.NoError(t, yaml.Unmarshal([]byte(ui.OutputWriter.String()), &d))
		assert.Equal(t, id, d.ID)
		assert.Equal(t, uint32(0x123456), d.Counter)
		assert.Equal(t, "0a0b0c0d0e", d.Fingerprint)
	})

	t.Run("invalid", func(t *testing.T) {
		code, ui := runCLI(t, "inspect", "xyz")
		assert.Equal(t, 1, code)
		assert.Contains(t, ui.ErrorWriter.String(), "invalid ObjectID")
	})
}

func TestBoundary(t *testing.T) {
	t.Run("date", func(t *testing.T) {
		code, ui := runCLI(t, "boundary", "-time", "2024-03-13 15:13:36")
		require.Equal(t, 0, code, ui.ErrorWriter.String())
		assert.Equal(t, "65f1c2a00000000000000000", strings.TrimSpace(ui.OutputWriter.String()))
	})

	t.Run("unix seconds", func(t *testing.T) {
		code, ui := runCLI(t, "boundary", "-time", "1710342816")
		require.Equal(t, 0, code, ui.ErrorWriter.String())
		assert.Equal(t, "65f1c2a00000000000000000", strings.TrimSpace(ui.OutputWriter.String()))
	})

	t.Run("requires time", func(t *testing.T) {
		code, _ := runCLI(t, "boundary")
		assert.Equal(t, 1, code)
	})

	t.Run("unparseable", func(t *testing.T) {
		code, _ := runCLI(t, "boundary", "-time", "not a time")
		assert.Equal(t, 1, code)
	})

	t.Run("before epoch", func(t *testing.T) {
		code, ui := runCLI(t, "boundary", "-time", "1960-01-01")
		assert.Equal(t, 1, code)
		assert.Contains(t, ui.ErrorWriter.String(), "outside the ObjectID range")
	})
}

func TestOperatorSeed(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.hcl")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
log_level = "off"

database {
  driver = "sqlite"
  path   = "`+filepath.Join(dir, "seed.db")+`"
}
`), 0o600))

	t.Run("creates widgets", func(t *testing.T) {
		code, ui := runCLI(t, "operator", "seed", "-config", cfgPath, "-count", "5", "-batch-size", "2")
		require.Equal(t, 0, code, ui.ErrorWriter.String())

		out := lines(ui.OutputWriter.String())
		require.Len(t, out, 5)
		seen := map[string]bool{}
		for _, id := range out {
			assert.True(t, objectid.IsValid(id))
			seen[id] = true
		}
		assert.Len(t, seen, 5)
	})

	t.Run("dry run", func(t *testing.T) {
		code, ui := runCLI(t, "operator", "seed", "-config", cfgPath, "-dry-run")
		require.Equal(t, 0, code)
		assert.Empty(t, ui.OutputWriter.String())
		assert.Contains(t, ui.ErrorWriter.String(), "DRY RUN")
	})

	t.Run("requires config", func(t *testing.T) {
		code, ui := runCLI(t, "operator", "seed")
		assert.Equal(t, 1, code)
		assert.Contains(t, ui.ErrorWriter.String(), "config flag is required")
	})

	t.Run("bad config", func(t *testing.T) {
		code, _ := runCLI(t, "operator", "seed", "-config", filepath.Join(dir, "missing.hcl"))
		assert.Equal(t, 1, code)
	})
}

func TestVersion(t *testing.T) {
	code, ui := runCLI(t, "version")
	assert.Equal(t, 0, code)
	assert.Equal(t, version.Version, strings.TrimSpace(ui.OutputWriter.String()))
}
