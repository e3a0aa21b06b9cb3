package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"shotname/internal/config"
	"shotname/internal/fileops"
	"shotname/internal/logging"
	"shotname/internal/metadata"
	"shotname/internal/organizer"
	"shotname/internal/snapshot"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

func (c *commandContext) logger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

// withStore opens the run snapshot database for the duration of fn.
func (c *commandContext) withStore(fn func(*snapshot.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := snapshot.Open(cfg.SnapshotPath())
	if err != nil {
		return fmt.Errorf("open run snapshots: %w", err)
	}
	defer store.Close()
	return fn(store)
}

// withService builds an organizer wired to the configured reader, the run
// snapshot store and a terminal progress bar.
func (c *commandContext) withService(cmd *cobra.Command, fn func(*organizer.Service) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.logger()
	if err != nil {
		return err
	}
	return c.withStore(func(store *snapshot.Store) error {
		opts := []organizer.Option{
			organizer.WithStore(store),
			organizer.WithProgress(newProgress(cmd.ErrOrStderr())),
		}
		var reader metadata.Reader
		if cfg.Exiftool.Enabled {
			et := metadata.NewExiftool(cfg.Exiftool.Binary, logger)
			reader = et
			opts = append(opts, organizer.WithTagWriter(et))
		} else {
			reader = metadata.NewExifReader(logger)
		}
		svc := organizer.New(cfg, reader, fileops.New(logger), logger, opts...)
		return fn(svc)
	})
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func dirArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
