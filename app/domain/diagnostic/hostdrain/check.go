// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package hostdrain contains the drain-mode report for session hosts. Drain
// mode is an operational state, not a defect, so this check always passes
// and enumerates the per-host state in its detail.
package hostdrain

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

const DiagnosticHostDrainMode = config.DiagnosticHostDrainMode

type checker struct {
	cfg    *config.Settings
	logger *logrus.Entry
}

func NewProvider(ctx context.Context, cfg *config.Settings) diagnostic.Provider {
	return &checker{
		cfg:    cfg,
		logger: logging.NewLogger().WithContext(ctx).WithField(logging.OpField, DiagnosticHostDrainMode),
	}
}

func (c *checker) Name() string { return DiagnosticHostDrainMode }

func (c *checker) Check(ctx context.Context, inv inventory.Client, accessor status.Accessor) error {
	pools, err := inv.ListHostPools(ctx)
	if err != nil {
		return err
	}

	var states []string
	for _, pool := range pools {
		hosts, err := inv.ListSessionHosts(ctx, pool)
		if err != nil {
			return err
		}
		for _, host := range hosts {
			mode := "drain mode OFF"
			if !host.AllowNewSession {
				mode = "drain mode ON"
			}
			states = append(states, fmt.Sprintf("%s: %s", host.Name, mode))
		}
	}

	if len(states) == 0 {
		accessor.AddCheck(&status.StatusCheck{
			Name:    DiagnosticHostDrainMode,
			Outcome: status.OutcomePass,
			Detail:  "no session hosts to evaluate",
		})
		return nil
	}

	accessor.AddCheck(&status.StatusCheck{
		Name:               DiagnosticHostDrainMode,
		Outcome:            status.OutcomePass,
		Detail:             strings.Join(states, "; "),
		ResourcesEvaluated: len(states),
	})
	return nil
}
