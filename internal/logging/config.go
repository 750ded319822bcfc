package logging

import (
	"fmt"
	"os"
	"strings"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Sink string

const (
	SinkStderr Sink = "stderr"
	SinkFile   Sink = "file"
	SinkNone   Sink = "none"
)

const (
	EnvLogLevel  = "LINECLIP_LOG_LEVEL"
	EnvLogFormat = "LINECLIP_LOG_FORMAT"
	EnvLogSink   = "LINECLIP_LOG_SINK"
	EnvLogFile   = "LINECLIP_LOG_FILE"
)

// Config describes where and how log records are written
type Config struct {
	Level  string `yaml:"level"`
	Format Format `yaml:"format"`
	Sink   Sink   `yaml:"sink"`
	File   string `yaml:"file,omitempty"`

	MaxSizeMB  int  `yaml:"max_size_mb,omitempty"`
	MaxBackups int  `yaml:"max_backups,omitempty"`
	MaxAgeDays int  `yaml:"max_age_days,omitempty"`
	Compress   bool `yaml:"compress,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     FormatText,
		Sink:       SinkStderr,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
	}
}

// WithEnv overrides fields from LINECLIP_LOG_* variables
func (c Config) WithEnv() Config {
	apply := func(dst *string, env string) {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*dst = v
		}
	}
	apply(&c.Level, EnvLogLevel)
	apply((*string)(&c.Format), EnvLogFormat)
	apply((*string)(&c.Sink), EnvLogSink)
	apply(&c.File, EnvLogFile)
	return c
}

func (c Config) Normalize() (Config, error) {
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	c.Format = Format(strings.ToLower(strings.TrimSpace(string(c.Format))))
	c.Sink = Sink(strings.ToLower(strings.TrimSpace(string(c.Sink))))
	c.File = strings.TrimSpace(c.File)

	switch c.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return c, fmt.Errorf("invalid log level %q", c.Level)
	}
	switch c.Format {
	case "":
		c.Format = FormatText
	case FormatText, FormatJSON:
	default:
		return c, fmt.Errorf("invalid log format %q", c.Format)
	}
	switch c.Sink {
	case "":
		c.Sink = SinkStderr
	case SinkStderr, SinkNone:
	case SinkFile:
		if c.File == "" {
			return c, fmt.Errorf("log sink %q requires a file path", c.Sink)
		}
	default:
		return c, fmt.Errorf("invalid log sink %q", c.Sink)
	}
	c.MaxSizeMB = max(c.MaxSizeMB, 0)
	c.MaxBackups = max(c.MaxBackups, 0)
	c.MaxAgeDays = max(c.MaxAgeDays, 0)
	return c, nil
}
