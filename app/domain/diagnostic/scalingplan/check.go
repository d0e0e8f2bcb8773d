// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package scalingplan contains the check for scaling plan existence.
package scalingplan

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

const DiagnosticScalingPlanExistence = config.DiagnosticScalingPlanExistence

type checker struct {
	cfg    *config.Settings
	logger *logrus.Entry
}

func NewProvider(ctx context.Context, cfg *config.Settings) diagnostic.Provider {
	return &checker{
		cfg:    cfg,
		logger: logging.NewLogger().WithContext(ctx).WithField(logging.OpField, DiagnosticScalingPlanExistence),
	}
}

func (c *checker) Name() string { return DiagnosticScalingPlanExistence }

func (c *checker) Check(ctx context.Context, inv inventory.Client, accessor status.Accessor) error {
	plans, err := inv.ListScalingPlans(ctx)
	if err != nil {
		return err
	}

	if len(plans) == 0 {
		accessor.AddCheck(&status.StatusCheck{
			Name:    DiagnosticScalingPlanExistence,
			Outcome: status.OutcomeFail,
			Detail:  "no scaling plans",
		})
		return nil
	}

	accessor.AddCheck(&status.StatusCheck{
		Name:               DiagnosticScalingPlanExistence,
		Outcome:            status.OutcomePass,
		Detail:             fmt.Sprintf("%d scaling plans found", len(plans)),
		ResourcesEvaluated: len(plans),
	})
	return nil
}
