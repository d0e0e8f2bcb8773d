// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package status contains the report types produced by a validation run and a
// thread-safe accessor used by checks to record their results.
//
// A RunReport is created once per run, populated while the run executes, and
// read-only afterwards. Individual checks never touch the report directly;
// they record results through an Accessor, which serializes writes so checks
// may execute concurrently.
package status

import (
	"time"

	"github.com/google/uuid"
)

// Outcome classifies the result of a single check.
type Outcome string

const (
	// OutcomePass means the check's condition held for every evaluated resource.
	OutcomePass Outcome = "pass"
	// OutcomeFail means the check ran to completion and found a deficiency.
	OutcomeFail Outcome = "fail"
	// OutcomeError means the check itself could not complete (fetch failure,
	// panic, timeout). It says nothing about the state of the estate.
	OutcomeError Outcome = "error"
)

// StatusCheck is the immutable result of one check. It is created once by the
// check (or by the runner's fault boundary) and never modified afterwards.
type StatusCheck struct {
	Name               string  `json:"name"`
	Outcome            Outcome `json:"outcome"`
	Detail             string  `json:"detail,omitempty"`
	ResourcesEvaluated int     `json:"resources_evaluated"`
}

// RunReport is the ordered result of a full validation run. Its Checks slice
// always has one entry per executed check, in catalog registration order,
// regardless of how many checks faulted.
type RunReport struct {
	RunID       string         `json:"run_id"`
	StartedAt   time.Time      `json:"started_at"`
	CompletedAt time.Time      `json:"completed_at"`
	Checks      []*StatusCheck `json:"checks"`
}

// NewRunReport creates an empty report stamped with a fresh run ID.
func NewRunReport() *RunReport {
	return &RunReport{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
}

// Summary holds the outcome tallies for a finished run.
type Summary struct {
	Pass  int `json:"pass"`
	Fail  int `json:"fail"`
	Error int `json:"error"`
	Total int `json:"total"`
}

// Summarize counts the outcomes in the report. It never alters the report.
func (r *RunReport) Summarize() Summary {
	s := Summary{Total: len(r.Checks)}
	for _, c := range r.Checks {
		switch c.Outcome {
		case OutcomePass:
			s.Pass++
		case OutcomeFail:
			s.Fail++
		case OutcomeError:
			s.Error++
		}
	}
	return s
}

// Healthy reports whether the run contained no Fail or Error outcomes.
func (s Summary) Healthy() bool {
	return s.Fail == 0 && s.Error == 0
}
