// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package sessionhost contains the check that every host pool has at least
// one session host registered.
package sessionhost

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	config "github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/config/validator"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/diagnostic"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/inventory"
	logging "github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/logging/validator"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/types/status"
)

const DiagnosticSessionHostExistence = config.DiagnosticSessionHostExistence

type checker struct {
	cfg    *config.Settings
	logger *logrus.Entry
}

func NewProvider(ctx context.Context, cfg *config.Settings) diagnostic.Provider {
	return &checker{
		cfg:    cfg,
		logger: logging.NewLogger().WithContext(ctx).WithField(logging.OpField, DiagnosticSessionHostExistence),
	}
}

func (c *checker) Name() string { return DiagnosticSessionHostExistence }

func (c *checker) Check(ctx context.Context, inv inventory.Client, accessor status.Accessor) error {
	pools, err := inv.ListHostPools(ctx)
	if err != nil {
		return err
	}

	if len(pools) == 0 {
		accessor.AddCheck(&status.StatusCheck{
			Name:    DiagnosticSessionHostExistence,
			Outcome: status.OutcomePass,
			Detail:  "no host pools to evaluate",
		})
		return nil
	}

	var empty []string
	for _, pool := range pools {
		hosts, err := inv.ListSessionHosts(ctx, pool)
		if err != nil {
			return err
		}
		c.logger.Debugf("host pool %s has %d session hosts", pool.Name, len(hosts))
		if len(hosts) == 0 {
			empty = append(empty, pool.Name)
		}
	}

	if len(empty) > 0 {
		accessor.AddCheck(&status.StatusCheck{
			Name:               DiagnosticSessionHostExistence,
			Outcome:            status.OutcomeFail,
			Detail:             fmt.Sprintf("host pools without session hosts: %s", strings.Join(empty, ", ")),
			ResourcesEvaluated: len(pools),
		})
		return nil
	}

	accessor.AddCheck(&status.StatusCheck{
		Name:               DiagnosticSessionHostExistence,
		Outcome:            status.OutcomePass,
		Detail:             fmt.Sprintf("all %d host pools have session hosts", len(pools)),
		ResourcesEvaluated: len(pools),
	})
	return nil
}
