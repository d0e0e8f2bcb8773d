// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package diagnostic defines the contract every validation check implements.
//
// A check is a pure function of inventory state: it queries the read-only
// inventory client, decides Pass or Fail, and records exactly one result
// through the status accessor. Checks hold no mutable state, do not depend
// on each other, and may therefore run in any order or in parallel.
//
// Error handling is split in two:
//   - a deficiency in the estate (missing resource, missing diagnostic
//     binding, unavailable host) is a Fail outcome recorded via the
//     accessor, and the check returns nil;
//   - a failure of the check itself (inventory fetch error, unexpected
//     fault) is returned as an error, and the runner's fault boundary
//     converts it into an Error outcome without aborting the run.
//
// Either way every registered check contributes exactly one entry to the
// final report.
package diagnostic

import (
	"context"

	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/inventory"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/types/status"
)

// Provider is a single named validation check.
type Provider interface {
	// Name returns the check's stable identifier used in reports.
	Name() string

	// Check evaluates the inventory and records one StatusCheck on the
	// accessor. It must honor ctx cancellation on every inventory call.
	Check(ctx context.Context, inv inventory.Client, accessor status.Accessor) error
}
