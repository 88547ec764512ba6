package operator

import (
	"flag"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp-forge/objectid/internal/cmd/base"
	"github.com/hashicorp-forge/objectid/internal/config"
	"github.com/hashicorp-forge/objectid/pkg/database"
	"github.com/hashicorp-forge/objectid/pkg/entity"
	"github.com/hashicorp-forge/objectid/pkg/models"
)

type SeedCommand struct {
	*base.Command

	flagConfig    string
	flagCount     int
	flagBatchSize int
	flagDryRun    bool
	flagVerbose   bool
}

func (c *SeedCommand) Synopsis() string {
	return "Create example widgets with ObjectID keys"
}

func (c *SeedCommand) Help() string {
	return `Usage: objectid operator seed -config=<file>

  This command migrates the example models and creates widgets without
  setting their IDs, printing the ObjectID each one was assigned on insert.` +
		c.Flags().Help()
}

func (c *SeedCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("seed", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "(Required) Path to objectid config file",
	)
	f.IntVar(
		&c.flagCount, "count", 3, "Number of widgets to create.",
	)
	f.IntVar(
		&c.flagBatchSize, "batch-size", 100,
		"Number of widgets to insert per statement.",
	)
	f.BoolVar(
		&c.flagDryRun, "dry-run", false,
		"Only migrate and report what would be created.",
	)
	f.BoolVar(
		&c.flagVerbose, "verbose", false,
		"Log every SQL statement.",
	)

	return f
}

func (c *SeedCommand) Run(args []string) int {
	logger, ui := c.Log, c.UI

	// Parse flags.
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	// Validate flags.
	if c.flagConfig == "" {
		ui.Error("config flag is required")
		return 1
	}
	if c.flagCount < 1 {
		ui.Error("count must be at least 1")
		return 1
	}
	if c.flagBatchSize < 1 {
		ui.Error("batch-size must be at least 1")
		return 1
	}

	// Parse configuration.
	cfg, err := config.NewConfig(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing config file: %v", err))
		return 1
	}
	logger.SetLevel(hclog.LevelFromString(cfg.LogLevel))

	// Initialize database with the key assignment plugin.
	var dbLogger hclog.Logger
	if c.flagVerbose {
		dbLogger = logger
	}
	reg := entity.NewRegistry()
	db, err := database.Connect(
		cfg.Database.DatabaseConfig(), dbLogger, entity.NewPlugin(reg, logger.Named("objectid")))
	if err != nil {
		ui.Error(fmt.Sprintf("error initializing database: %v", err))
		return 1
	}
	if err := models.Setup(db, reg); err != nil {
		ui.Error(fmt.Sprintf("error setting up models: %v", err))
		return 1
	}

	if c.flagDryRun {
		ui.Warn(fmt.Sprintf("DRY RUN: would create %d widgets", c.flagCount))
		return 0
	}

	created := 0
	for created < c.flagCount {
		n := c.flagBatchSize
		if remaining := c.flagCount - created; remaining < n {
			n = remaining
		}

		batch := make([]models.Widget, n)
		for i := range batch {
			batch[i].Name = fmt.Sprintf("widget-%d", created+i+1)
		}

		if err := db.Create(&batch).Error; err != nil {
			if entity.IsDuplicateKey(err) {
				ui.Error(fmt.Sprintf("duplicate key creating widgets %d-%d: %v", created+1, created+n, err))
			} else {
				ui.Error(fmt.Sprintf("error creating widgets %d-%d: %v", created+1, created+n, err))
			}
			return 1
		}

		for _, w := range batch {
			ui.Output(w.ID)
		}
		created += n
		logger.Debug("created batch", "size", n, "total", created)
	}

	logger.Info("seed completed", "widgets", created)
	return 0
}
