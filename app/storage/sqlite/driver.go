// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package sqlite opens SQLite databases with the validator's standard GORM
// configuration. The run-history store uses a file-backed database; tests
// use the in-memory DSNs.
package sqlite

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/storage/core"
)

const (
	// InMemoryDSN is a private in-memory database, one per connection.
	InMemoryDSN = ":memory:"

	// MemorySharedCached is an in-memory database shared across connections
	// through SQLite's shared cache. Useful for tests needing concurrent
	// access to the same data.
	MemorySharedCached = "file:memory?mode=memory&cache=shared"
)

// NewSQLiteDriver opens the database at dsn through core.NewDriver, so the
// standard naming, timestamp, logging, and error-translation settings apply.
func NewSQLiteDriver(dsn string) (*gorm.DB, error) {
	db, err := core.NewDriver(sqlite.Open(dsn))
	if err != nil {
		return nil, err
	}
	return db, nil
}
