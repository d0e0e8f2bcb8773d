// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package catalog assembles the fixed set of validation checks for a run.
// Registration order is stable and defines the order of results in the
// final report.
package catalog

import (
	"context"

	config "github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/config/validator"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/diagnostic"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/diagnostic/diagsettings"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/diagnostic/hostavail"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/diagnostic/hostdrain"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/diagnostic/hostpool"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/diagnostic/msix"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/diagnostic/scalingplan"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/diagnostic/sessionhost"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/diagnostic/workspace"
)

// Catalog is the ordered set of checks selected for a run.
type Catalog struct {
	providers []diagnostic.Provider
}

// New builds a catalog from an explicit provider list, preserving order.
func New(providers ...diagnostic.Provider) *Catalog {
	return &Catalog{providers: providers}
}

// NewCatalog builds every known check and applies the configured name
// filter. An empty filter selects all checks.
func NewCatalog(ctx context.Context, cfg *config.Settings) *Catalog {
	all := []diagnostic.Provider{
		hostpool.NewProvider(ctx, cfg),
		sessionhost.NewProvider(ctx, cfg),
		diagsettings.NewProvider(ctx, cfg),
		scalingplan.NewProvider(ctx, cfg),
		workspace.NewProvider(ctx, cfg),
		msix.NewProvider(ctx, cfg),
		hostavail.NewProvider(ctx, cfg),
		hostdrain.NewProvider(ctx, cfg),
	}

	if len(cfg.Diagnostics.Checks) == 0 {
		return &Catalog{providers: all}
	}

	wanted := make(map[string]bool, len(cfg.Diagnostics.Checks))
	for _, name := range cfg.Diagnostics.Checks {
		wanted[name] = true
	}

	selected := make([]diagnostic.Provider, 0, len(all))
	for _, p := range all {
		if wanted[p.Name()] {
			selected = append(selected, p)
		}
	}
	return &Catalog{providers: selected}
}

// Providers returns the selected checks in registration order.
func (c *Catalog) Providers() []diagnostic.Provider {
	return c.providers
}

// List returns the names of the selected checks in registration order.
func (c *Catalog) List() []string {
	names := make([]string, 0, len(c.providers))
	for _, p := range c.providers {
		names = append(names, p.Name())
	}
	return names
}
