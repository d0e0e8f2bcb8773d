// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"

	"github.com/pkg/errors"
)

// Names of the available diagnostic checks. The catalog registers providers
// under these names and the report keys results by them.
const (
	DiagnosticHostPoolExistence     = "host_pool_existence"
	DiagnosticSessionHostExistence  = "session_host_existence"
	DiagnosticDiagnosticsCoverage   = "diagnostics_coverage"
	DiagnosticScalingPlanExistence  = "scaling_plan_existence"
	DiagnosticWorkspaceExistence    = "workspace_existence"
	DiagnosticImagePackageExistence = "image_package_existence"
	DiagnosticHostAvailability      = "host_availability"
	DiagnosticHostDrainMode         = "host_drain_mode"
)

// KnownChecks lists every check name in catalog registration order.
var KnownChecks = []string{
	DiagnosticHostPoolExistence,
	DiagnosticSessionHostExistence,
	DiagnosticDiagnosticsCoverage,
	DiagnosticScalingPlanExistence,
	DiagnosticWorkspaceExistence,
	DiagnosticImagePackageExistence,
	DiagnosticHostAvailability,
	DiagnosticHostDrainMode,
}

const (
	defaultTimeoutSeconds = 60
	defaultMaxWorkers     = 4
)

type Diagnostics struct {
	// Checks restricts the run to the named checks. Empty means all.
	Checks []string `yaml:"checks" env:"DIAG_CHECKS" env-separator:","`

	// AdvisoryChecks never affect the process exit code. Their Fail outcomes
	// are still reported as data.
	AdvisoryChecks []string `yaml:"advisory_checks" env:"DIAG_ADVISORY_CHECKS" env-separator:","`

	// TimeoutSeconds bounds the whole run; a check still blocked on a fetch
	// past the deadline is recorded as an Error outcome.
	TimeoutSeconds int `yaml:"timeout_seconds" env:"DIAG_TIMEOUT_SECONDS"`

	// Parallel runs checks on a bounded worker pool instead of sequentially.
	Parallel   bool `yaml:"parallel" env:"DIAG_PARALLEL"`
	MaxWorkers int  `yaml:"max_workers" env:"DIAG_MAX_WORKERS"`
}

func (d *Diagnostics) Validate() error {
	if d.TimeoutSeconds <= 0 {
		d.TimeoutSeconds = defaultTimeoutSeconds
	}
	if d.MaxWorkers <= 0 {
		d.MaxWorkers = defaultMaxWorkers
	}
	if d.AdvisoryChecks == nil {
		d.AdvisoryChecks = []string{DiagnosticImagePackageExistence}
	}

	known := make(map[string]bool, len(KnownChecks))
	for _, name := range KnownChecks {
		known[name] = true
	}
	for _, name := range d.Checks {
		if !known[name] {
			return errors.Errorf("unknown diagnostic check %q", name)
		}
	}
	for _, name := range d.AdvisoryChecks {
		if !known[name] {
			return errors.Errorf("unknown advisory check %q", name)
		}
	}
	return nil
}

// Timeout returns the run deadline as a duration.
func (d *Diagnostics) Timeout() time.Duration {
	return time.Duration(d.TimeoutSeconds) * time.Second
}

// IsAdvisory reports whether the named check is excluded from exit-code
// computation.
func (d *Diagnostics) IsAdvisory(name string) bool {
	for _, a := range d.AdvisoryChecks {
		if a == name {
			return true
		}
	}
	return false
}
