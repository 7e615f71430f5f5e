// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package logconfig manages the configuration of the logging sink.
//
// The configuration is a YAML document, for example:
//
//	level: WARNING
//	format: console
//	verbosity: 1
//	redactable: true
package logconfig

import (
	"bytes"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config is the logging configuration.
type Config struct {
	// Level is the minimum severity of emitted entries: INFO, WARNING or
	// ERROR.
	Level string `yaml:"level"`
	// Format is the output encoding, json or console.
	Format string `yaml:"format"`
	// Verbosity enables log.V(n) and log.VEventf for every n up to and
	// including this value.
	Verbosity int `yaml:"verbosity"`
	// Redactable keeps redaction markers around unsafe values in the
	// output.
	Redactable bool `yaml:"redactable"`
}

const (
	// DefaultLevel is used when no level is configured.
	DefaultLevel = "INFO"
	// DefaultFormat is used when no format is configured.
	DefaultFormat = "json"
)

// knownLevels maps the accepted spellings to the canonical level names.
var knownLevels = map[string]string{
	"INFO":    "INFO",
	"WARN":    "WARNING",
	"WARNING": "WARNING",
	"ERROR":   "ERROR",
}

var knownFormats = map[string]struct{}{
	"json":    {},
	"console": {},
}

// DefaultConfig returns a suitable default configuration.
func DefaultConfig() Config {
	return Config{
		Level:  DefaultLevel,
		Format: DefaultFormat,
	}
}

// Parse decodes a YAML configuration on top of DefaultConfig and validates
// the result. Unknown fields are rejected.
func Parse(data []byte) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "parsing log configuration")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the configuration and normalizes it in place: empty
// fields are replaced by their defaults and the level is canonicalized.
func (c *Config) Validate() error {
	if c.Level == "" {
		c.Level = DefaultLevel
	}
	level, ok := knownLevels[strings.ToUpper(c.Level)]
	if !ok {
		return errors.Newf("unknown log level %q", c.Level)
	}
	c.Level = level

	if c.Format == "" {
		c.Format = DefaultFormat
	}
	c.Format = strings.ToLower(c.Format)
	if _, ok := knownFormats[c.Format]; !ok {
		return errors.Newf("unknown log format %q", c.Format)
	}

	if c.Verbosity < 0 {
		return errors.Newf("verbosity must be non-negative, got %d", c.Verbosity)
	}
	return nil
}

// String renders the configuration as YAML.
func (c Config) String() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return string(b)
}
