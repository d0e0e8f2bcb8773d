// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"context"

	"gorm.io/gorm"
)

// RawBaseRepoImpl is the foundational database layer for repository
// implementations. It carries the connection and resolves the effective
// *gorm.DB per call: the transaction from the context when one is active,
// the default connection otherwise.
//
// Embed it in repositories without a single primary model; table-based
// repositories should embed BaseRepoImpl instead.
type RawBaseRepoImpl struct {
	db *gorm.DB
}

func NewRawBaseRepoImpl(db *gorm.DB) RawBaseRepoImpl {
	return RawBaseRepoImpl{
		db: db,
	}
}

// DB returns the database handle to use for this operation. If ctx carries
// a transaction started by Tx, the transaction is returned; either way the
// context is attached for cancellation and timeout handling.
func (b *RawBaseRepoImpl) DB(ctx context.Context) *gorm.DB {
	if tx, found := FromContext(ctx); found {
		return tx.WithContext(ctx)
	}

	return b.db.WithContext(ctx)
}

// Tx runs block inside a transaction. Repository calls made with the context
// passed to block participate in the same transaction; a nil return commits,
// an error rolls back.
func (b *RawBaseRepoImpl) Tx(ctx context.Context, block func(ctxTx context.Context) error) error {
	db := b.DB(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		return block(NewContext(ctx, tx))
	})
}

// BaseRepoImpl extends RawBaseRepoImpl with operations bound to a single
// model type: counting and bulk deletion. Concrete repositories embed it and
// add their own queries through DB(ctx).
type BaseRepoImpl struct {
	RawBaseRepoImpl
	model interface{}
}

// NewBaseRepoImpl builds a repository base for the given model. The model
// argument is an example instance used by GORM to resolve the table.
func NewBaseRepoImpl(db *gorm.DB, model interface{}) BaseRepoImpl {
	return BaseRepoImpl{
		RawBaseRepoImpl: NewRawBaseRepoImpl(db),
		model:           model,
	}
}

func (b *BaseRepoImpl) Count(ctx context.Context) (int, error) {
	var count int64
	err := b.DB(ctx).Model(b.model).Count(&count).Error
	return int(count), TranslateError(err)
}

// DeleteAll removes every record in the table. Intended for tests.
func (b *BaseRepoImpl) DeleteAll(ctx context.Context) error {
	return TranslateError(b.DB(ctx).Where("1 = 1").Delete(b.model).Error)
}

// key is an unexported context key type, preventing collisions with keys
// defined in other packages.
type key int

var dbKey key

// NewContext returns a context carrying the given transaction. Used by Tx;
// application code rarely needs it directly.
func NewContext(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey, db)
}

// FromContext retrieves the transaction carried by ctx, if any.
func FromContext(ctx context.Context) (*gorm.DB, bool) {
	db, ok := ctx.Value(dbKey).(*gorm.DB)
	return db, ok
}
