// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package telemetry_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/config/validator"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/types/status"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/utils/telemetry"
)

func sampleReport() *status.RunReport {
	rep := status.NewRunReport()
	rep.Checks = []*status.StatusCheck{
		{Name: "host_pool_existence", Outcome: status.OutcomePass, Detail: "1 host pool found", ResourcesEvaluated: 1},
	}
	return rep
}

func TestUnit_Telemetry_PostsReportWithAuth(t *testing.T) {
	var (
		gotAuth  string
		gotRunID string
		gotBody  []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRunID = r.URL.Query().Get("run_id")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := &config.Settings{}
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Endpoint = srv.URL
	cfg.Telemetry.APIKey = "key-123"

	rep := sampleReport()
	require.NoError(t, telemetry.Post(context.Background(), srv.Client(), cfg, rep))

	assert.Equal(t, "Bearer key-123", gotAuth)
	assert.Equal(t, rep.RunID, gotRunID)

	var decoded status.RunReport
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	require.Len(t, decoded.Checks, 1)
	assert.Equal(t, "host_pool_existence", decoded.Checks[0].Name)
}

func TestUnit_Telemetry_DisabledIsNoop(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	cfg := &config.Settings{}
	cfg.Telemetry.Endpoint = srv.URL

	require.NoError(t, telemetry.Post(context.Background(), srv.Client(), cfg, sampleReport()))
	assert.False(t, called)
}

func TestUnit_Telemetry_ServerErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	cfg := &config.Settings{}
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Endpoint = srv.URL

	assert.Error(t, telemetry.Post(context.Background(), srv.Client(), cfg, sampleReport()))
}
