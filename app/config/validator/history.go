// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import "github.com/pkg/errors"

// History controls local persistence of finished run reports.
type History struct {
	Enabled  bool   `yaml:"enabled" env:"HISTORY_ENABLED"`
	Location string `yaml:"location" env:"HISTORY_LOCATION" env-description:"sqlite database path"`
}

func (h *History) Validate() error {
	if h.Enabled && h.Location == "" {
		return errors.New("history.location is required when history is enabled")
	}
	return nil
}
