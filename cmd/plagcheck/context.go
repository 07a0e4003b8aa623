package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"plagcheck/internal/checker"
	"plagcheck/internal/config"
	"plagcheck/internal/logging"
	"plagcheck/internal/similarity"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil {
			if level := strings.ToLower(strings.TrimSpace(*c.logLevelFlag)); level != "" {
				cfg.Logging.Level = level
				if err := cfg.Validate(); err != nil {
					c.configErr = err
					return
				}
			}
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

// logger builds the CLI logger. Logs go to stderr so stdout carries only
// command output.
func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg, cmd.ErrOrStderr())
}

// checker builds a checker from the loaded config. A non-empty weights value
// ("f,c,e") overrides the configured fusion weights.
func (c *commandContext) checker(ctx context.Context, cmd *cobra.Command, weights string) (*checker.Checker, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(weights) != "" {
		w, err := similarity.ParseWeights(weights)
		if err != nil {
			return nil, err
		}
		override := *cfg
		override.Engine = config.Engine{
			FrequencyWeight:    w.Frequency,
			CosineWeight:       w.Cosine,
			EditDistanceWeight: w.EditDistance,
		}
		cfg = &override
	}
	logger, err := c.logger(cmd)
	if err != nil {
		return nil, err
	}
	return checker.FromConfig(ctx, cfg, logger)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
