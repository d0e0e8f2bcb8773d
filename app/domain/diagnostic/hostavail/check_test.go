// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package hostavail_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	config "github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/config/validator"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/diagnostic/hostavail"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/inventory"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/inventory/mocks"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/types/status"
)

func runCheck(t *testing.T, inv inventory.Client) *status.StatusCheck {
	t.Helper()
	provider := hostavail.NewProvider(context.Background(), &config.Settings{})
	accessor := status.NewAccessor(status.NewRunReport())
	require.NoError(t, provider.Check(context.Background(), inv, accessor))

	var check *status.StatusCheck
	accessor.ReadFromReport(func(r *status.RunReport) {
		require.Len(t, r.Checks, 1)
		check = r.Checks[0]
	})
	return check
}

func TestUnit_Diagnostic_HostAvail_UnavailableHostsEnumerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	inv := mocks.NewMockClient(ctrl)

	pool := inventory.HostPool{Name: "pool1"}
	inv.EXPECT().ListHostPools(gomock.Any()).Return([]inventory.HostPool{pool}, nil)
	inv.EXPECT().ListSessionHosts(gomock.Any(), pool).Return([]inventory.SessionHost{
		{Name: "host-0", Status: inventory.StatusAvailable},
		{Name: "host-1", Status: inventory.StatusUnavailable, RawStatus: "Upgrading"},
		{Name: "host-2", Status: inventory.StatusUnknown, RawStatus: "NoHeartbeat"},
	}, nil)

	check := runCheck(t, inv)
	assert.Equal(t, status.OutcomeFail, check.Outcome)
	assert.Contains(t, check.Detail, "host-1 (Upgrading)")
	assert.Contains(t, check.Detail, "host-2 (NoHeartbeat)")
	assert.NotContains(t, check.Detail, "host-0")
	assert.Equal(t, 3, check.ResourcesEvaluated)
}

func TestUnit_Diagnostic_HostAvail_AllAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	inv := mocks.NewMockClient(ctrl)

	pool := inventory.HostPool{Name: "pool1"}
	inv.EXPECT().ListHostPools(gomock.Any()).Return([]inventory.HostPool{pool}, nil)
	inv.EXPECT().ListSessionHosts(gomock.Any(), pool).Return([]inventory.SessionHost{
		{Name: "host-0", Status: inventory.StatusAvailable},
	}, nil)

	check := runCheck(t, inv)
	assert.Equal(t, status.OutcomePass, check.Outcome)
	assert.Equal(t, 1, check.ResourcesEvaluated)
}

func TestUnit_Diagnostic_HostAvail_NoHosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	inv := mocks.NewMockClient(ctrl)
	inv.EXPECT().ListHostPools(gomock.Any()).Return(nil, nil)

	check := runCheck(t, inv)
	assert.Equal(t, status.OutcomePass, check.Outcome)
	assert.Equal(t, 0, check.ResourcesEvaluated)
}
