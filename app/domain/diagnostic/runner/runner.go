// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package runner executes the check catalog against an inventory snapshot
// and assembles the run report.
//
// The runner is the fault boundary of the system: a panic, returned error,
// or blown deadline inside one check becomes an Error outcome for that check
// and nothing else. The remaining checks always execute, and the report
// always contains one result per catalog entry in registration order,
// whether checks ran sequentially or on the worker pool.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	config "github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/config/validator"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/diagnostic"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/diagnostic/catalog"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/inventory"
	logging "github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/logging/validator"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/types/status"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/utils/parallel"
)

type Runner struct {
	cfg     *config.Settings
	catalog *catalog.Catalog
	inv     inventory.Client
	logger  *logrus.Entry
}

// NewRunner builds an engine that runs the catalog's checks against inv.
func NewRunner(cfg *config.Settings, cat *catalog.Catalog, inv inventory.Client) *Runner {
	return &Runner{
		cfg:     cfg,
		catalog: cat,
		inv:     inv,
		logger:  logging.NewLogger().WithField(logging.OpField, "runner"),
	}
}

// Run executes every selected check and returns the completed report. The
// returned error covers pre-flight failures only; check faults are recorded
// in the report, never propagated.
func (r *Runner) Run(ctx context.Context) (*status.RunReport, error) {
	if r.inv == nil {
		return nil, errors.New("no inventory client")
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.Diagnostics.Timeout())
	defer cancel()

	report := status.NewRunReport()
	providers := r.catalog.Providers()
	results := make([]*status.StatusCheck, len(providers))

	if r.cfg.Diagnostics.Parallel {
		pool := parallel.New(r.cfg.Diagnostics.MaxWorkers)
		waiter := parallel.NewWaiter()
		for i, p := range providers {
			i, p := i, p
			pool.Run(func() error {
				results[i] = r.evaluate(ctx, p)
				return nil
			}, waiter)
		}
		waiter.Wait()
		pool.Close()
	} else {
		for i, p := range providers {
			results[i] = r.evaluate(ctx, p)
		}
	}

	report.Checks = results
	report.CompletedAt = time.Now().UTC()
	return report, nil
}

// evaluate runs a single check inside the fault boundary and always yields
// exactly one result.
func (r *Runner) evaluate(ctx context.Context, p diagnostic.Provider) (result *status.StatusCheck) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warnf("check %s panicked: %v", p.Name(), rec)
			result = &status.StatusCheck{
				Name:    p.Name(),
				Outcome: status.OutcomeError,
				Detail:  fmt.Sprintf("check panicked: %v", rec),
			}
		}
	}()

	scratch := status.NewAccessor(&status.RunReport{})
	err := p.Check(ctx, r.inv, scratch)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return &status.StatusCheck{
				Name:    p.Name(),
				Outcome: status.OutcomeError,
				Detail:  fmt.Sprintf("timed out after %s", r.cfg.Diagnostics.Timeout()),
			}
		}
		return &status.StatusCheck{
			Name:    p.Name(),
			Outcome: status.OutcomeError,
			Detail:  err.Error(),
		}
	}

	scratch.ReadFromReport(func(rep *status.RunReport) {
		if len(rep.Checks) > 0 {
			result = rep.Checks[0]
		}
	})
	if result == nil {
		// a well-behaved check adds exactly one result; keep the report
		// length invariant even for one that does not
		result = &status.StatusCheck{
			Name:    p.Name(),
			Outcome: status.OutcomeError,
			Detail:  "check produced no result",
		}
	}
	return result
}
