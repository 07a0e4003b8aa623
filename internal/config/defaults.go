package config

const (
	defaultConfigPath         = "~/.config/plagcheck/config.toml"
	projectConfigName         = "plagcheck.toml"
	defaultSegmenterBackend   = "gse"
	defaultMaxFileMiB         = 100
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultLogRetentionDays   = 30
	defaultFrequencyWeight    = 1.0
	defaultCosineWeight       = 1.0
	defaultEditDistanceWeight = 1.0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Engine: Engine{
			FrequencyWeight:    defaultFrequencyWeight,
			CosineWeight:       defaultCosineWeight,
			EditDistanceWeight: defaultEditDistanceWeight,
		},
		Segmenter: Segmenter{
			Backend: defaultSegmenterBackend,
		},
		Input: Input{
			MaxFileMiB: defaultMaxFileMiB,
		},
		Batch: Batch{
			Workers: defaultWorkers(),
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
