// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package types

import "errors"

// Application-level storage errors. The storage core translates ORM-specific
// errors into these so callers never depend on gorm error values.
var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidData        = errors.New("invalid data")
	ErrInvalidDB          = errors.New("invalid database")
)
