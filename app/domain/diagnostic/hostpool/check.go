// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package hostpool contains the check for host pool existence.
package hostpool

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

const DiagnosticHostPoolExistence = config.DiagnosticHostPoolExistence

type checker struct {
	cfg    *config.Settings
	logger *logrus.Entry
}

func NewProvider(ctx context.Context, cfg *config.Settings) diagnostic.Provider {
	return &checker{
		cfg:    cfg,
		logger: logging.NewLogger().WithContext(ctx).WithField(logging.OpField, DiagnosticHostPoolExistence),
	}
}

func (c *checker) Name() string { return DiagnosticHostPoolExistence }

func (c *checker) Check(ctx context.Context, inv inventory.Client, accessor status.Accessor) error {
	pools, err := inv.ListHostPools(ctx)
	if err != nil {
		return err
	}

	if len(pools) == 0 {
		accessor.AddCheck(&status.StatusCheck{
			Name:    DiagnosticHostPoolExistence,
			Outcome: status.OutcomeFail,
			Detail:  "no host pools",
		})
		return nil
	}

	c.logger.Debugf("found %d host pools", len(pools))
	accessor.AddCheck(&status.StatusCheck{
		Name:               DiagnosticHostPoolExistence,
		Outcome:            status.OutcomePass,
		Detail:             fmt.Sprintf("%d host pools found", len(pools)),
		ResourcesEvaluated: len(pools),
	})
	return nil
}
