// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package runner_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	config "github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/config/validator"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/diagnostic/catalog"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/diagnostic/runner"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/inventory"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/inventory/mocks"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/types/status"
)

// newEstate wires a mock inventory describing a small mixed-health estate:
// pool1 with three healthy session hosts and diagnostics attached, pool2
// empty and uncovered, one scaling plan, no workspaces, no image packages.
func newEstate(t *testing.T) *mocks.MockClient {
	t.Helper()
	ctrl := gomock.NewController(t)
	inv := mocks.NewMockClient(ctrl)

	pool1 := inventory.HostPool{ID: "/subscriptions/s/resourceGroups/rg/providers/Microsoft.DesktopVirtualization/hostPools/pool1", Name: "pool1", ResourceGroup: "rg"}
	pool2 := inventory.HostPool{ID: "/subscriptions/s/resourceGroups/rg/providers/Microsoft.DesktopVirtualization/hostPools/pool2", Name: "pool2", ResourceGroup: "rg"}

	hosts := []inventory.SessionHost{
		{ID: pool1.ID + "/sessionHosts/host-0", Name: "host-0", HostPool: "pool1", Status: inventory.StatusAvailable, RawStatus: "Available", AllowNewSession: true},
		{ID: pool1.ID + "/sessionHosts/host-1", Name: "host-1", HostPool: "pool1", Status: inventory.StatusAvailable, RawStatus: "Available", AllowNewSession: true},
		{ID: pool1.ID + "/sessionHosts/host-2", Name: "host-2", HostPool: "pool1", Status: inventory.StatusAvailable, RawStatus: "Available", AllowNewSession: true},
	}

	inv.EXPECT().ListHostPools(gomock.Any()).Return([]inventory.HostPool{pool1, pool2}, nil).AnyTimes()
	inv.EXPECT().ListSessionHosts(gomock.Any(), pool1).Return(hosts, nil).AnyTimes()
	inv.EXPECT().ListSessionHosts(gomock.Any(), pool2).Return(nil, nil).AnyTimes()
	inv.EXPECT().ListWorkspaces(gomock.Any()).Return(nil, nil).AnyTimes()
	inv.EXPECT().ListScalingPlans(gomock.Any()).Return([]inventory.ScalingPlan{{Name: "plan1"}}, nil).AnyTimes()
	inv.EXPECT().ListImagePackages(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	inv.EXPECT().ListResourcesByType(gomock.Any(), inventory.ResourceHostPool).Return([]inventory.ResourceRef{
		{ID: pool1.ID, Name: "pool1", Type: inventory.ResourceHostPool},
		{ID: pool2.ID, Name: "pool2", Type: inventory.ResourceHostPool},
	}, nil).AnyTimes()
	inv.EXPECT().ListResourcesByType(gomock.Any(), inventory.ResourceSessionHost).DoAndReturn(
		func(context.Context, inventory.ResourceType) ([]inventory.ResourceRef, error) {
			refs := make([]inventory.ResourceRef, 0, len(hosts))
			for _, h := range hosts {
				refs = append(refs, inventory.ResourceRef{ID: h.ID, Name: h.Name, Type: inventory.ResourceSessionHost, HostPool: "pool1"})
			}
			return refs, nil
		}).AnyTimes()
	inv.EXPECT().ListResourcesByType(gomock.Any(), inventory.ResourceWorkspace).Return(nil, nil).AnyTimes()

	inv.EXPECT().GetDiagnosticAttachment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ref inventory.ResourceRef) (*inventory.DiagnosticAttachment, error) {
			if ref.Name == "pool2" {
				return &inventory.DiagnosticAttachment{}, nil
			}
			return &inventory.DiagnosticAttachment{Destinations: []string{"/workspaces/law"}}, nil
		}).AnyTimes()

	return inv
}

func TestUnit_Runner_EndToEndMixedEstate(t *testing.T) {
	cfg := &config.Settings{}
	require.NoError(t, cfg.Diagnostics.Validate())

	ctx := context.Background()
	report, err := runner.NewRunner(cfg, catalog.NewCatalog(ctx, cfg), newEstate(t)).Run(ctx)
	require.NoError(t, err)
	require.Len(t, report.Checks, len(config.KnownChecks))

	byName := map[string]*status.StatusCheck{}
	for _, c := range report.Checks {
		byName[c.Name] = c
	}

	hp := byName[config.DiagnosticHostPoolExistence]
	assert.Equal(t, status.OutcomePass, hp.Outcome)
	assert.Equal(t, 2, hp.ResourcesEvaluated)

	sh := byName[config.DiagnosticSessionHostExistence]
	assert.Equal(t, status.OutcomeFail, sh.Outcome)
	assert.Contains(t, sh.Detail, "pool2")
	assert.Equal(t, 2, sh.ResourcesEvaluated)

	dc := byName[config.DiagnosticDiagnosticsCoverage]
	assert.Equal(t, status.OutcomeFail, dc.Outcome)
	assert.Contains(t, dc.Detail, "pool2")
	assert.NotContains(t, dc.Detail, "pool1")
	assert.Equal(t, 5, dc.ResourcesEvaluated)

	assert.Equal(t, status.OutcomePass, byName[config.DiagnosticScalingPlanExistence].Outcome)
	assert.Equal(t, 1, byName[config.DiagnosticScalingPlanExistence].ResourcesEvaluated)

	assert.Equal(t, status.OutcomeFail, byName[config.DiagnosticWorkspaceExistence].Outcome)
	assert.Equal(t, status.OutcomeFail, byName[config.DiagnosticImagePackageExistence].Outcome)

	ha := byName[config.DiagnosticHostAvailability]
	assert.Equal(t, status.OutcomePass, ha.Outcome)
	assert.Equal(t, 3, ha.ResourcesEvaluated)

	hd := byName[config.DiagnosticHostDrainMode]
	assert.Equal(t, status.OutcomePass, hd.Outcome)
	assert.Equal(t, 3, hd.ResourcesEvaluated)
	for _, name := range []string{"host-0", "host-1", "host-2"} {
		assert.Contains(t, hd.Detail, name+": drain mode OFF")
	}

	summary := report.Summarize()
	assert.Equal(t, status.Summary{Pass: 4, Fail: 4, Error: 0, Total: 8}, summary)
}

func TestUnit_Runner_IdempotentAgainstStableInventory(t *testing.T) {
	cfg := &config.Settings{}
	require.NoError(t, cfg.Diagnostics.Validate())

	ctx := context.Background()
	inv := newEstate(t)
	engine := runner.NewRunner(cfg, catalog.NewCatalog(ctx, cfg), inv)

	first, err := engine.Run(ctx)
	require.NoError(t, err)
	second, err := engine.Run(ctx)
	require.NoError(t, err)

	if diff := cmp.Diff(first.Checks, second.Checks); diff != "" {
		t.Fatalf("reports differ between identical runs (-first +second):\n%s", diff)
	}
}

func TestUnit_Runner_DrainModeNeverFails(t *testing.T) {
	cfg := &config.Settings{}
	require.NoError(t, cfg.Diagnostics.Validate())
	cfg.Diagnostics.Checks = []string{config.DiagnosticHostDrainMode}

	ctrl := gomock.NewController(t)
	inv := mocks.NewMockClient(ctrl)
	pool := inventory.HostPool{Name: "pool1", ResourceGroup: "rg"}
	inv.EXPECT().ListHostPools(gomock.Any()).Return([]inventory.HostPool{pool}, nil)
	inv.EXPECT().ListSessionHosts(gomock.Any(), pool).Return([]inventory.SessionHost{
		{Name: "host-0", AllowNewSession: false},
		{Name: "host-1", AllowNewSession: true},
	}, nil)

	ctx := context.Background()
	report, err := runner.NewRunner(cfg, catalog.NewCatalog(ctx, cfg), inv).Run(ctx)
	require.NoError(t, err)
	require.Len(t, report.Checks, 1)

	check := report.Checks[0]
	assert.Equal(t, status.OutcomePass, check.Outcome)
	assert.Contains(t, check.Detail, "host-0: drain mode ON")
	assert.Contains(t, check.Detail, "host-1: drain mode OFF")
}
