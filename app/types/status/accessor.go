// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package status

import "sync"

// Accessor serializes access to a RunReport so checks running on separate
// goroutines can record results without interleaving partial writes.
type Accessor interface {
	// AddCheck appends check results to the report.
	AddCheck(...*StatusCheck)

	// WriteToReport runs the mutator while holding the report lock.
	WriteToReport(func(*RunReport))

	// ReadFromReport runs the reader while holding the report lock.
	ReadFromReport(func(*RunReport))
}

type accessor struct {
	mu     sync.Mutex
	report *RunReport
}

// NewAccessor wraps the given report in a mutex-guarded Accessor.
func NewAccessor(r *RunReport) Accessor {
	return &accessor{report: r}
}

func (a *accessor) AddCheck(checks ...*StatusCheck) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.report.Checks = append(a.report.Checks, checks...)
}

func (a *accessor) WriteToReport(fn func(*RunReport)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn(a.report)
}

func (a *accessor) ReadFromReport(fn func(*RunReport)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn(a.report)
}
