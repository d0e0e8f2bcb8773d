// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"errors"

	"gorm.io/gorm"

	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/types"
)

// TranslateError maps GORM errors to the application error types defined in
// the types package, so callers never depend on ORM-specific sentinels.
// Errors without a mapping are returned unchanged; nil stays nil.
//
// Usage:
//
//	err := r.DB(ctx).First(&record, id).Error
//	return core.TranslateError(err)
func TranslateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return types.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return types.ErrDuplicateKey
	case errors.Is(err, gorm.ErrInvalidTransaction):
		return types.ErrInvalidTransaction
	case errors.Is(err, gorm.ErrInvalidData):
		return types.ErrInvalidData
	case errors.Is(err, gorm.ErrInvalidDB):
		return types.ErrInvalidDB
	}
	return err
}
