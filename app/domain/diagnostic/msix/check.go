// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package msix contains the check for MSIX image package existence.
//
// Estates that do not use app attach legitimately have zero packages, so the
// catalog registers this check as advisory by default: a Fail outcome is
// reported as data but excluded from exit-code computation.
package msix

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	config "github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/config/validator"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/diagnostic"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/inventory"
	logging "github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/logging/validator"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/types/status"
)

const DiagnosticImagePackageExistence = config.DiagnosticImagePackageExistence

type checker struct {
	cfg    *config.Settings
	logger *logrus.Entry
}

func NewProvider(ctx context.Context, cfg *config.Settings) diagnostic.Provider {
	return &checker{
		cfg:    cfg,
		logger: logging.NewLogger().WithContext(ctx).WithField(logging.OpField, DiagnosticImagePackageExistence),
	}
}

func (c *checker) Name() string { return DiagnosticImagePackageExistence }

func (c *checker) Check(ctx context.Context, inv inventory.Client, accessor status.Accessor) error {
	pools, err := inv.ListHostPools(ctx)
	if err != nil {
		return err
	}

	total := 0
	for _, pool := range pools {
		packages, err := inv.ListImagePackages(ctx, pool)
		if err != nil {
			return err
		}
		total += len(packages)
	}

	if total == 0 {
		accessor.AddCheck(&status.StatusCheck{
			Name:    DiagnosticImagePackageExistence,
			Outcome: status.OutcomeFail,
			Detail:  "no image packages (advisory: estates without app attach are valid)",
		})
		return nil
	}

	accessor.AddCheck(&status.StatusCheck{
		Name:               DiagnosticImagePackageExistence,
		Outcome:            status.OutcomePass,
		Detail:             fmt.Sprintf("%d image packages found", total),
		ResourcesEvaluated: total,
	})
	return nil
}
