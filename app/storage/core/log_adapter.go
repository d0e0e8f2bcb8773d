// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ZeroLogAdapter bridges GORM's logger interface to zerolog. The target
// logger is taken from the operation's context (zerolog.Ctx), so the same
// adapter instance serves every connection; level filtering is left to
// zerolog itself.
type ZeroLogAdapter struct{}

var _ gormlogger.Interface = ZeroLogAdapter{}

// LogMode is a no-op: the context logger's level decides what is emitted.
func (a ZeroLogAdapter) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return a
}

func (a ZeroLogAdapter) Info(ctx context.Context, msg string, args ...interface{}) {
	zerolog.Ctx(ctx).Info().Msgf(msg, args...)
}

func (a ZeroLogAdapter) Warn(ctx context.Context, msg string, args ...interface{}) {
	zerolog.Ctx(ctx).Warn().Msgf(msg, args...)
}

func (a ZeroLogAdapter) Error(ctx context.Context, msg string, args ...interface{}) {
	zerolog.Ctx(ctx).Error().Msgf(msg, args...)
}

// Trace logs one entry per executed statement with the rendered SQL, the
// elapsed time, and the affected row count. ErrRecordNotFound is expected
// query outcome and logged at debug like any other statement.
func (a ZeroLogAdapter) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()

	event := zerolog.Ctx(ctx).Debug()
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		event = zerolog.Ctx(ctx).Error().Err(err)
	}

	event.
		Str("sql", sql).
		Int64("rows", rows).
		Dur("elapsed", time.Since(begin)).
		Msg("gorm query")
}
