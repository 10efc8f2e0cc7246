package logging

import (
	"fmt"
	"os"
	"strconv"
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
	EnvLogLevel      = "RECTLAB_LOG_LEVEL"
	EnvLogFormat     = "RECTLAB_LOG_FORMAT"
	EnvLogSink       = "RECTLAB_LOG_SINK"
	EnvLogFile       = "RECTLAB_LOG_FILE"
	EnvLogMaxSizeMB  = "RECTLAB_LOG_MAX_SIZE_MB"
	EnvLogMaxBackups = "RECTLAB_LOG_MAX_BACKUPS"
)

// Config holds optional overrides; nil fields fall back to DefaultConfig.
type Config struct {
	Level  *string `yaml:"level,omitempty"`
	Format *string `yaml:"format,omitempty"`
	Sink   *string `yaml:"sink,omitempty"`
	File   *string `yaml:"file,omitempty"`

	MaxSizeMB  *int `yaml:"max_size_mb,omitempty"`
	MaxBackups *int `yaml:"max_backups,omitempty"`
}

// DefaultConfig is silent: the terminal UI owns stdout and stderr.
func DefaultConfig() Config {
	level := "info"
	sink := string(SinkNone)
	format := string(FormatText)
	maxSizeMB := 10
	maxBackups := 3
	return Config{
		Level:      &level,
		Format:     &format,
		Sink:       &sink,
		MaxSizeMB:  &maxSizeMB,
		MaxBackups: &maxBackups,
	}
}

func (c Config) WithEnv() Config {
	applyString := func(dst **string, env string) {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*dst = &v
		}
	}
	applyInt := func(dst **int, env string) {
		raw := strings.TrimSpace(os.Getenv(env))
		if raw == "" {
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return
		}
		*dst = &n
	}

	applyString(&c.Level, EnvLogLevel)
	applyString(&c.Format, EnvLogFormat)
	applyString(&c.Sink, EnvLogSink)
	applyString(&c.File, EnvLogFile)
	applyInt(&c.MaxSizeMB, EnvLogMaxSizeMB)
	applyInt(&c.MaxBackups, EnvLogMaxBackups)
	return c
}

func (c Config) Normalize() (Config, error) {
	normalizeString := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.ToLower(strings.TrimSpace(*s))
		if v == "" {
			return nil
		}
		return &v
	}
	c.Level = normalizeString(c.Level)
	c.Format = normalizeString(c.Format)
	c.Sink = normalizeString(c.Sink)
	if c.File != nil {
		v := strings.TrimSpace(*c.File)
		if v == "" {
			c.File = nil
		} else {
			c.File = &v
		}
	}
	if c.MaxSizeMB != nil && *c.MaxSizeMB < 0 {
		zero := 0
		c.MaxSizeMB = &zero
	}
	if c.MaxBackups != nil && *c.MaxBackups < 0 {
		zero := 0
		c.MaxBackups = &zero
	}

	if c.Format != nil {
		switch Format(*c.Format) {
		case FormatText, FormatJSON:
		default:
			return c, fmt.Errorf("logging: unknown format %q", *c.Format)
		}
	}
	if c.Sink != nil {
		switch Sink(*c.Sink) {
		case SinkStderr, SinkFile, SinkNone:
		default:
			return c, fmt.Errorf("logging: unknown sink %q", *c.Sink)
		}
	}
	if c.Sink != nil && Sink(*c.Sink) == SinkFile && c.File == nil {
		return c, fmt.Errorf("logging: sink %q needs a file path", SinkFile)
	}
	return c, nil
}
