// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package types defines the small set of shared interfaces and error values
// used across the validator: generic repository contracts for the run-history
// storage layer and the application-level error sentinels the storage core
// translates database errors into.
package types

import "context"

// StorageCommon defines operations available on every repository regardless
// of the model type it stores.
type StorageCommon interface {
	// Tx executes block inside a database transaction. If block returns an
	// error the transaction is rolled back, otherwise it is committed.
	Tx(ctx context.Context, block func(ctxTx context.Context) error) error
}

// Creator persists new model instances.
type Creator[Model any] interface {
	Create(ctx context.Context, it *Model) error
}

// Reader retrieves model instances by ID.
type Reader[Model any, ID comparable] interface {
	Get(ctx context.Context, id ID) (*Model, error)
}

// Deleter removes model instances by ID.
type Deleter[ID comparable] interface {
	Delete(ctx context.Context, id ID) error
}

// Storage composes the full set of type-safe repository operations for a
// model type with identifier type ID.
type Storage[Model any, ID comparable] interface {
	StorageCommon
	Creator[Model]
	Reader[Model, ID]
	Deleter[ID]
}
