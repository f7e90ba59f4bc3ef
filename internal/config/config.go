package config

import "time"

type Config struct {
	Rotation  RotationConfig  `yaml:"rotation"`
	Retention RetentionConfig `yaml:"retention"`
	Logging   LoggingConfig   `yaml:"logging"`
	DryRun    bool            `yaml:"dryRun"`
}

type RotationConfig struct {
	Pattern         string `yaml:"pattern"`         // glob for live log files
	MaxSizeBytes    int64  `yaml:"maxSizeBytes"`    // rotate at or above this size
	Compression     string `yaml:"compression"`     // "none", "gzip", "bzip2", "zstd"
	TimestampFormat string `yaml:"timestampFormat"` // Go reference layout
	OnCollision     string `yaml:"onCollision"`     // "overwrite", "sequence"
}

type RetentionConfig struct {
	Directory   string   `yaml:"directory"`   // archive directory to sweep
	MaxAge      Duration `yaml:"maxAge"`      // e.g. 720h
	BackupCount int      `yaml:"backupCount"` // archives to keep per source, 0 = unlimited
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // "info", "debug", etc.
	Format string `yaml:"format"` // "json", "text"
}

// Duration wraps time.Duration so YAML values like "720h" parse.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }
