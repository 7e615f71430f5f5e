// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package log implements context-aware logging on top of a zap logger.
//
// Messages are formatted with redact so that values which are not marked
// safe can be told apart from the rest of the message, and the log tags
// attached to the context (see github.com/cockroachdb/logtags) are
// prepended to every message.
package log

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geoline/pkg/util/log/logconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Severity is the severity of a log entry.
type Severity int

const (
	// SeverityInfo is used for informational messages.
	SeverityInfo Severity = iota + 1
	// SeverityWarning is used for anomalies which do not prevent progress.
	SeverityWarning
	// SeverityError is used for failures.
	SeverityError
)

var severityNames = map[string]Severity{
	"INFO":    SeverityInfo,
	"WARNING": SeverityWarning,
	"ERROR":   SeverityError,
}

// SeverityByName returns the Severity with the given canonical name.
func SeverityByName(name string) (Severity, bool) {
	s, ok := severityNames[name]
	return s, ok
}

func (s Severity) String() string {
	for name, sev := range severityNames {
		if sev == s {
			return name
		}
	}
	return "UNKNOWN"
}

func (s Severity) zapLevel() zapcore.Level {
	switch s {
	case SeverityWarning:
		return zapcore.WarnLevel
	case SeverityError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

var logging struct {
	// verbosity is read on every V() call and kept outside of mu.
	verbosity atomic.Int32

	mu struct {
		sync.RWMutex
		logger     *zap.Logger
		redactable bool
	}
}

func init() {
	if _, err := ApplyConfig(logconfig.DefaultConfig()); err != nil {
		panic(err)
	}
}

// ApplyConfig validates cfg and makes it the active configuration. The
// returned function flushes the new logger and restores the previous
// configuration.
func ApplyConfig(cfg logconfig.Config) (cleanup func(), err error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sev, ok := SeverityByName(cfg.Level)
	if !ok {
		return nil, errors.AssertionFailedf("validated level %q has no severity", cfg.Level)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = cfg.Format
	zcfg.Level = zap.NewAtomicLevelAt(sev.zapLevel())
	zcfg.Sampling = nil
	zcfg.DisableStacktrace = true
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := zcfg.Build(zap.AddCallerSkip(2))
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	restore := swap(logger, cfg.Redactable, int32(cfg.Verbosity))
	return func() {
		_ = logger.Sync()
		restore()
	}, nil
}

// TestingSetLogger replaces the active logger, typically with one backed
// by a zaptest/observer core, and sets the verbosity. The returned function
// restores the previous logger.
func TestingSetLogger(logger *zap.Logger, verbosity int32) (restore func()) {
	return swap(logger, false /* redactable */, verbosity)
}

func swap(logger *zap.Logger, redactable bool, verbosity int32) func() {
	logging.mu.Lock()
	prevLogger, prevRedactable := logging.mu.logger, logging.mu.redactable
	logging.mu.logger, logging.mu.redactable = logger, redactable
	logging.mu.Unlock()
	prevVerbosity := logging.verbosity.Swap(verbosity)

	return func() {
		logging.mu.Lock()
		logging.mu.logger, logging.mu.redactable = prevLogger, prevRedactable
		logging.mu.Unlock()
		logging.verbosity.Store(prevVerbosity)
	}
}

// V returns true if the configured verbosity is at least level.
func V(level int32) bool {
	return logging.verbosity.Load() >= level
}

// Infof logs to the INFO severity.
func Infof(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, SeverityInfo, format, args)
}

// Warningf logs to the WARNING severity.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, SeverityWarning, format, args)
}

// Errorf logs to the ERROR severity.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, SeverityError, format, args)
}

// VEventf logs to the INFO severity if the verbosity is at least level.
func VEventf(ctx context.Context, level int32, format string, args ...interface{}) {
	if V(level) {
		addStructured(ctx, SeverityInfo, format, args)
	}
}
