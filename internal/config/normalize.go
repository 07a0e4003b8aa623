package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

const (
	envLogLevel  = "PLAGCHECK_LOG_LEVEL"
	envThesaurus = "PLAGCHECK_THESAURUS"
)

func defaultWorkers() int {
	return max(1, runtime.NumCPU())
}

func (c *Config) normalize() error {
	c.normalizeSegmenter()
	if err := c.normalizeSegmenterPaths(); err != nil {
		return err
	}
	if err := c.normalizeThesaurus(); err != nil {
		return err
	}
	if c.Batch.Workers <= 0 {
		c.Batch.Workers = defaultWorkers()
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeSegmenter() {
	c.Segmenter.Backend = strings.ToLower(strings.TrimSpace(c.Segmenter.Backend))
	if c.Segmenter.Backend == "" {
		c.Segmenter.Backend = defaultSegmenterBackend
	}
}

func (c *Config) normalizeSegmenterPaths() error {
	dicts := make([]string, 0, len(c.Segmenter.Dictionaries))
	for _, dict := range c.Segmenter.Dictionaries {
		if strings.TrimSpace(dict) == "" {
			continue
		}
		expanded, err := expandPath(strings.TrimSpace(dict))
		if err != nil {
			return fmt.Errorf("segmenter.dictionaries: %w", err)
		}
		dicts = append(dicts, expanded)
	}
	c.Segmenter.Dictionaries = dicts
	return nil
}

func (c *Config) normalizeThesaurus() error {
	if strings.TrimSpace(c.Thesaurus.Path) == "" {
		if value, ok := os.LookupEnv(envThesaurus); ok {
			c.Thesaurus.Path = value
		}
	}
	var err error
	if c.Thesaurus.Path, err = expandPath(strings.TrimSpace(c.Thesaurus.Path)); err != nil {
		return fmt.Errorf("thesaurus.path: %w", err)
	}
	if c.Thesaurus.SQLitePath, err = expandPath(strings.TrimSpace(c.Thesaurus.SQLitePath)); err != nil {
		return fmt.Errorf("thesaurus.sqlite_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv(envLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
