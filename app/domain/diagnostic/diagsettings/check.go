// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package diagsettings contains the check that diagnostic settings are
// attached to every host pool, session host, and workspace. A resource with
// no attachment is a finding, not an inventory error.
package diagsettings

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

const DiagnosticDiagnosticsCoverage = config.DiagnosticDiagnosticsCoverage

// coveredTypes are the resource types that must carry a diagnostic setting.
var coveredTypes = []inventory.ResourceType{
	inventory.ResourceHostPool,
	inventory.ResourceSessionHost,
	inventory.ResourceWorkspace,
}

type checker struct {
	cfg    *config.Settings
	logger *logrus.Entry
}

func NewProvider(ctx context.Context, cfg *config.Settings) diagnostic.Provider {
	return &checker{
		cfg:    cfg,
		logger: logging.NewLogger().WithContext(ctx).WithField(logging.OpField, DiagnosticDiagnosticsCoverage),
	}
}

func (c *checker) Name() string { return DiagnosticDiagnosticsCoverage }

func (c *checker) Check(ctx context.Context, inv inventory.Client, accessor status.Accessor) error {
	var (
		evaluated int
		uncovered []string
	)

	for _, t := range coveredTypes {
		refs, err := inv.ListResourcesByType(ctx, t)
		if err != nil {
			return err
		}
		for _, ref := range refs {
			evaluated++
			attachment, err := inv.GetDiagnosticAttachment(ctx, ref)
			if err != nil {
				return err
			}
			if attachment.Empty() {
				uncovered = append(uncovered, ref.Name)
			}
		}
	}

	if evaluated == 0 {
		accessor.AddCheck(&status.StatusCheck{
			Name:    DiagnosticDiagnosticsCoverage,
			Outcome: status.OutcomePass,
			Detail:  "no resources to evaluate",
		})
		return nil
	}

	if len(uncovered) > 0 {
		accessor.AddCheck(&status.StatusCheck{
			Name:               DiagnosticDiagnosticsCoverage,
			Outcome:            status.OutcomeFail,
			Detail:             fmt.Sprintf("resources without diagnostic settings: %s", strings.Join(uncovered, ", ")),
			ResourcesEvaluated: evaluated,
		})
		return nil
	}

	c.logger.Debugf("all %d resources carry diagnostic settings", evaluated)
	accessor.AddCheck(&status.StatusCheck{
		Name:               DiagnosticDiagnosticsCoverage,
		Outcome:            status.OutcomePass,
		Detail:             fmt.Sprintf("all %d resources carry diagnostic settings", evaluated),
		ResourcesEvaluated: evaluated,
	})
	return nil
}
