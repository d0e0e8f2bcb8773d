// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/config/validator"
)

const testConfig = `
azure:
  tenant_id: 00000000-0000-0000-0000-000000000001
  client_id: 00000000-0000-0000-0000-000000000002
  client_secret: not-a-real-secret
  subscription_id: 00000000-0000-0000-0000-000000000003
logging:
  level: debug
diagnostics:
  timeout_seconds: 30
  parallel: true
  max_workers: 2
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "avd-validator.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestUnit_Config_LoadAndValidate(t *testing.T) {
	cfg, err := config.NewSettings(writeConfig(t, testConfig))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 30, cfg.Diagnostics.TimeoutSeconds)
	assert.True(t, cfg.Diagnostics.Parallel)
	assert.Equal(t, 2, cfg.Diagnostics.MaxWorkers)

	// defaults applied during validation
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.True(t, cfg.Diagnostics.IsAdvisory(config.DiagnosticImagePackageExistence))
	assert.False(t, cfg.Diagnostics.IsAdvisory(config.DiagnosticHostPoolExistence))
}

func TestUnit_Config_NilFiles(t *testing.T) {
	_, err := config.NewSettings(nil...)
	assert.Error(t, err)
}

func TestUnit_Config_MissingFile(t *testing.T) {
	_, err := config.NewSettings("/does/not/exist.yml")
	assert.Error(t, err)
}

func TestUnit_Config_MissingCredentialFails(t *testing.T) {
	body := `
azure:
  tenant_id: t
  client_id: c
  subscription_id: s
`
	cfg, err := config.NewSettings(writeConfig(t, body))
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.Validate(), "client_secret")
}

func TestUnit_Config_UnknownCheckRejected(t *testing.T) {
	cfg := &config.Settings{}
	cfg.Diagnostics.Checks = []string{"definitely_not_a_check"}
	assert.ErrorContains(t, cfg.Diagnostics.Validate(), "unknown diagnostic check")
}

func TestUnit_Config_HistoryRequiresLocation(t *testing.T) {
	h := &config.History{Enabled: true}
	assert.Error(t, h.Validate())

	h.Location = filepath.Join(t.TempDir(), "runs.db")
	assert.NoError(t, h.Validate())
}
