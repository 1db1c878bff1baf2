package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"lyrickana/config"
	"lyrickana/convert"
	"lyrickana/logger"
	"lyrickana/reading"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	cfg       *config.Config
	cfgPath   string
	cfgExists bool
	log       *slog.Logger
	converter *convert.Converter
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag, logLevelFlag: logLevelFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, path, exists, err := config.Load(*c.configFlag)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.cfg, c.cfgPath, c.cfgExists = cfg, path, exists
	return cfg, nil
}

func (c *commandContext) ensureLogger(cmd *cobra.Command) (*slog.Logger, error) {
	if c.log != nil {
		return c.log, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	level := cfg.Logging.Level
	if *c.logLevelFlag != "" {
		level = *c.logLevelFlag
	}

	var log *slog.Logger
	if cfg.Logging.File != "" {
		log, err = logger.New(logger.Options{
			Level:       level,
			Format:      cfg.Logging.Format,
			OutputPaths: []string{cfg.Logging.File},
		})
	} else {
		log, err = logger.NewWithWriter(cmd.ErrOrStderr(), level, cfg.Logging.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	c.log = log
	return log, nil
}

func (c *commandContext) ensureConverter(cmd *cobra.Command) (*convert.Converter, error) {
	if c.converter != nil {
		return c.converter, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	log, err := c.ensureLogger(cmd)
	if err != nil {
		return nil, err
	}
	provider := &reading.Kagome{
		KanjidicPath: cfg.Reading.KanjidicPath,
		Logger:       log.With(slog.String("component", "reading")),
	}
	c.converter = convert.New(reading.NewHandle(provider, cfg.Reading.Dictionary), log)
	return c.converter, nil
}
