// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup whose target does not exist. An empty listing
// is not ErrNotFound; it is an empty slice and a valid result.
var ErrNotFound = errors.New("resource not found")

// TransientFetchError wraps a network or auth failure reaching the remote
// inventory. The client never retries; callers decide whether to re-run.
type TransientFetchError struct {
	Op  string
	Err error
}

func (e *TransientFetchError) Error() string {
	return fmt.Sprintf("inventory fetch %s: %v", e.Op, e.Err)
}

func (e *TransientFetchError) Unwrap() error { return e.Err }

// NewTransientFetchError wraps err for the named fetch operation. A nil err
// returns nil.
func NewTransientFetchError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &TransientFetchError{Op: op, Err: err}
}

// IsTransient reports whether err is (or wraps) a TransientFetchError.
func IsTransient(err error) bool {
	var t *TransientFetchError
	return errors.As(err, &t)
}
