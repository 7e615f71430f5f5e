// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"context"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
)

// FormatWithContextTags formats the string and prepends the context
// tags.
//
// Redaction markers are *not* inserted. The resulting
// string is generally unsafe for reporting.
func FormatWithContextTags(ctx context.Context, format string, args ...interface{}) string {
	return formatEntry(ctx, format, args).StripMarkers()
}

// addStructured renders a log entry and hands it to the active logger.
func addStructured(ctx context.Context, sev Severity, format string, args []interface{}) {
	logging.mu.RLock()
	logger, redactable := logging.mu.logger, logging.mu.redactable
	logging.mu.RUnlock()

	ce := logger.Check(sev.zapLevel(), "")
	if ce == nil {
		return
	}
	msg := formatEntry(ctx, format, args)
	if redactable {
		ce.Message = string(msg)
	} else {
		ce.Message = msg.StripMarkers()
	}
	ce.Write()
}

func formatEntry(ctx context.Context, format string, args []interface{}) redact.RedactableString {
	var buf redact.StringBuilder
	formatTags(ctx, true /* brackets */, &buf)
	buf.Printf(format, args...)
	return buf.RedactableString()
}

// formatTags appends the context tags to the given buffer. Returns
// true if any tags were written.
func formatTags(ctx context.Context, brackets bool, buf *redact.StringBuilder) bool {
	tags := logtags.FromContext(ctx)
	if tags == nil {
		return false
	}
	if brackets {
		buf.SafeRune('[')
	}
	for i, t := range tags.Get() {
		if i > 0 {
			buf.SafeRune(',')
		}
		buf.Print(redact.SafeString(t.Key()))
		if v := t.Value(); v != nil && v != "" {
			// Single-letter keys are rendered without a separator, e.g. n1.
			if len(t.Key()) > 1 {
				buf.SafeRune('=')
			}
			buf.Print(v)
		}
	}
	if brackets {
		buf.SafeString("] ")
	}
	return true
}
