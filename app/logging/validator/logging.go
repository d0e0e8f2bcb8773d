// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package logging configures logrus for the validator binary and hands out
// check-scoped log entries. Text output is one line per event in the form
// "<timestamp> - <op> - <message>" so a run reads as a plain check log.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	// OpField scopes a log entry to the check or operation that produced it.
	OpField = "op"

	// LogSequence numbers emitted lines so interleaved sinks can be reordered.
	LogSequence = "seq"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// sequenceHook stamps every entry with a monotonically increasing sequence
// number. One instance is installed per SetUpLogging call.
type sequenceHook struct {
	mu sync.Mutex
	n  uint64
}

func (h *sequenceHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *sequenceHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	h.n++
	entry.Data[LogSequence] = strconv.FormatUint(h.n, 10)
	h.mu.Unlock()
	return nil
}

// lineFormatter renders "<timestamp> - <op> - <message>" with any remaining
// fields appended as key=value pairs.
type lineFormatter struct{}

func (f *lineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	op, _ := entry.Data[OpField].(string)
	if op == "" {
		op = entry.Level.String()
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s - %s - %s", entry.Time.UTC().Format("2006-01-02T15:04:05Z07:00"), op, entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k == OpField {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&buf, " %s=%v", k, entry.Data[k])
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// SetUpLogging configures the standard logger with the given level and
// format. Unknown levels fall back to info.
func SetUpLogging(level, format string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	switch format {
	case LogFormatJSON:
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&lineFormatter{})
	}

	logrus.StandardLogger().ReplaceHooks(logrus.LevelHooks{})
	logrus.AddHook(&sequenceHook{})
}

// LogToFile mirrors the standard logger output into the given file in
// addition to stdout, creating parent directories as needed.
func LogToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	logrus.SetOutput(io.MultiWriter(os.Stdout, f))
	return nil
}

// NewLogger returns an entry bound to the standard logger, ready to be
// scoped with OpField.
func NewLogger() *logrus.Entry {
	return logrus.NewEntry(logrus.StandardLogger())
}
