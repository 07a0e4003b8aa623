package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateEngine(); err != nil {
		return err
	}
	if err := c.validateSegmenter(); err != nil {
		return err
	}
	if err := c.validateInput(); err != nil {
		return err
	}
	if c.Batch.Workers < 1 {
		return errors.New("batch.workers must be at least 1")
	}
	return c.validateLogging()
}

func (c *Config) validateEngine() error {
	weights := []struct {
		key   string
		value float64
	}{
		{"engine.frequency_weight", c.Engine.FrequencyWeight},
		{"engine.cosine_weight", c.Engine.CosineWeight},
		{"engine.edit_distance_weight", c.Engine.EditDistanceWeight},
	}
	total := 0.0
	for _, w := range weights {
		if math.IsNaN(w.value) || math.IsInf(w.value, 0) || w.value < 0 {
			return fmt.Errorf("%s must be a finite non-negative number", w.key)
		}
		total += w.value
	}
	if total == 0 {
		return errors.New("engine weights must not all be zero")
	}
	return nil
}

func (c *Config) validateSegmenter() error {
	switch c.Segmenter.Backend {
	case "gse", "runes":
	default:
		return fmt.Errorf("segmenter.backend: unsupported value %q (want gse or runes)", c.Segmenter.Backend)
	}
	if c.Segmenter.Backend == "runes" && len(c.Segmenter.Dictionaries) > 0 {
		return errors.New("segmenter.dictionaries requires the gse backend")
	}
	return nil
}

func (c *Config) validateInput() error {
	if c.Input.MaxFileMiB <= 0 {
		return errors.New("input.max_file_mib must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
