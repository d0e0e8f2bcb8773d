// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core provides GORM driver initialization and the repository base
// types used by the validator's run-history storage.
//
// Every database opened through this package shares the same behavior:
//
//   - Singular table names regardless of model struct names
//   - UTC timestamps truncated to millisecond precision
//   - Query logging through the zerolog adapter
//   - GORM errors translated to application error types
package core

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// NewDriver opens a GORM database with the validator's standard settings
// applied. The dialector selects the backend; behavior is identical across
// backends.
func NewDriver(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
		NowFunc:        DatabaseNow, // UTC, truncated to milliseconds
		Logger:         &ZeroLogAdapter{},
		TranslateError: true,
	})
}

// DatabaseNow returns the current time in UTC truncated to millisecond
// precision. GORM uses it for created_at and updated_at fields so stored
// timestamps sort consistently regardless of platform or time zone.
func DatabaseNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// DatabaseNowPointer is DatabaseNow for optional timestamp fields.
func DatabaseNowPointer() *time.Time {
	now := DatabaseNow()
	return &now
}
