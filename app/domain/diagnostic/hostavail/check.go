// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package hostavail contains the check that every session host reports an
// Available status.
package hostavail

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

const DiagnosticHostAvailability = config.DiagnosticHostAvailability

type checker struct {
	cfg    *config.Settings
	logger *logrus.Entry
}

func NewProvider(ctx context.Context, cfg *config.Settings) diagnostic.Provider {
	return &checker{
		cfg:    cfg,
		logger: logging.NewLogger().WithContext(ctx).WithField(logging.OpField, DiagnosticHostAvailability),
	}
}

func (c *checker) Name() string { return DiagnosticHostAvailability }

func (c *checker) Check(ctx context.Context, inv inventory.Client, accessor status.Accessor) error {
	pools, err := inv.ListHostPools(ctx)
	if err != nil {
		return err
	}

	var (
		evaluated   int
		unavailable []string
	)
	for _, pool := range pools {
		hosts, err := inv.ListSessionHosts(ctx, pool)
		if err != nil {
			return err
		}
		for _, host := range hosts {
			evaluated++
			if host.Status != inventory.StatusAvailable {
				detail := string(host.Status)
				if host.RawStatus != "" {
					detail = host.RawStatus
				}
				unavailable = append(unavailable, fmt.Sprintf("%s (%s)", host.Name, detail))
			}
		}
	}

	if evaluated == 0 {
		accessor.AddCheck(&status.StatusCheck{
			Name:    DiagnosticHostAvailability,
			Outcome: status.OutcomePass,
			Detail:  "no session hosts to evaluate",
		})
		return nil
	}

	if len(unavailable) > 0 {
		accessor.AddCheck(&status.StatusCheck{
			Name:               DiagnosticHostAvailability,
			Outcome:            status.OutcomeFail,
			Detail:             fmt.Sprintf("unavailable session hosts: %s", strings.Join(unavailable, ", ")),
			ResourcesEvaluated: evaluated,
		})
		return nil
	}

	accessor.AddCheck(&status.StatusCheck{
		Name:               DiagnosticHostAvailability,
		Outcome:            status.OutcomePass,
		Detail:             fmt.Sprintf("all %d session hosts available", evaluated),
		ResourcesEvaluated: evaluated,
	})
	return nil
}
