// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package workspace contains the check for workspace existence.
package workspace

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

const DiagnosticWorkspaceExistence = config.DiagnosticWorkspaceExistence

type checker struct {
	cfg    *config.Settings
	logger *logrus.Entry
}

func NewProvider(ctx context.Context, cfg *config.Settings) diagnostic.Provider {
	return &checker{
		cfg:    cfg,
		logger: logging.NewLogger().WithContext(ctx).WithField(logging.OpField, DiagnosticWorkspaceExistence),
	}
}

func (c *checker) Name() string { return DiagnosticWorkspaceExistence }

func (c *checker) Check(ctx context.Context, inv inventory.Client, accessor status.Accessor) error {
	workspaces, err := inv.ListWorkspaces(ctx)
	if err != nil {
		return err
	}

	if len(workspaces) == 0 {
		accessor.AddCheck(&status.StatusCheck{
			Name:    DiagnosticWorkspaceExistence,
			Outcome: status.OutcomeFail,
			Detail:  "no workspaces",
		})
		return nil
	}

	accessor.AddCheck(&status.StatusCheck{
		Name:               DiagnosticWorkspaceExistence,
		Outcome:            status.OutcomePass,
		Detail:             fmt.Sprintf("%d workspaces found", len(workspaces)),
		ResourcesEvaluated: len(workspaces),
	})
	return nil
}
