// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"net/url"

	"github.com/pkg/errors"
)

// Telemetry controls the optional upload of finished reports to an external
// collector. Disabled by default; failures to post never fail a run.
type Telemetry struct {
	Enabled  bool   `yaml:"enabled" env:"TELEMETRY_ENABLED"`
	Endpoint string `yaml:"endpoint" env:"TELEMETRY_ENDPOINT"`
	APIKey   string `yaml:"api_key" env:"TELEMETRY_API_KEY"`
}

func (t *Telemetry) Validate() error {
	if !t.Enabled {
		return nil
	}
	if t.Endpoint == "" {
		return errors.New("telemetry.endpoint is required when telemetry is enabled")
	}
	if _, err := url.ParseRequestURI(t.Endpoint); err != nil {
		return errors.Wrap(err, "telemetry.endpoint is not a valid URL")
	}
	return nil
}
