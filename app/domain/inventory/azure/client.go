// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/desktopvirtualization/armdesktopvirtualization/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/monitor/armmonitor"
	"github.com/pkg/errors"

	config "github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/config/validator"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/inventory"
)

// client is the ARM implementation of inventory.Client. Every call drains
// the relevant pager; nothing is cached, and no retries happen here beyond
// whatever the SDK pipeline does by default.
type client struct {
	resourceGroup string

	hostPools    *armdesktopvirtualization.HostPoolsClient
	sessionHosts *armdesktopvirtualization.SessionHostsClient
	workspaces   *armdesktopvirtualization.WorkspacesClient
	scalingPlans *armdesktopvirtualization.ScalingPlansClient
	msixPackages *armdesktopvirtualization.MSIXPackagesClient
	diagnostics  *armmonitor.DiagnosticSettingsClient
}

// NewClient builds the inventory client for the configured subscription.
// When azure.resource_group is set, subscription-wide listings narrow to
// that group.
func NewClient(cfg *config.Settings, cred azcore.TokenCredential) (inventory.Client, error) {
	factory, err := armdesktopvirtualization.NewClientFactory(cfg.Azure.SubscriptionID, cred, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build desktop virtualization clients")
	}

	diag, err := armmonitor.NewDiagnosticSettingsClient(cred, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build diagnostic settings client")
	}

	return &client{
		resourceGroup: cfg.Azure.ResourceGroup,
		hostPools:     factory.NewHostPoolsClient(),
		sessionHosts:  factory.NewSessionHostsClient(),
		workspaces:    factory.NewWorkspacesClient(),
		scalingPlans:  factory.NewScalingPlansClient(),
		msixPackages:  factory.NewMSIXPackagesClient(),
		diagnostics:   diag,
	}, nil
}

func (c *client) ListHostPools(ctx context.Context) ([]inventory.HostPool, error) {
	var pools []inventory.HostPool
	if c.resourceGroup != "" {
		pager := c.hostPools.NewListByResourceGroupPager(c.resourceGroup, nil)
		for pager.More() {
			page, err := pager.NextPage(ctx)
			if err != nil {
				return nil, inventory.NewTransientFetchError("list host pools", err)
			}
			for _, hp := range page.Value {
				pools = append(pools, mapHostPool(hp))
			}
		}
		return pools, nil
	}

	pager := c.hostPools.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, inventory.NewTransientFetchError("list host pools", err)
		}
		for _, hp := range page.Value {
			pools = append(pools, mapHostPool(hp))
		}
	}
	return pools, nil
}

func (c *client) ListSessionHosts(ctx context.Context, pool inventory.HostPool) ([]inventory.SessionHost, error) {
	var hosts []inventory.SessionHost
	pager := c.sessionHosts.NewListPager(pool.ResourceGroup, pool.Name, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, inventory.NewTransientFetchError("list session hosts", err)
		}
		for _, sh := range page.Value {
			hosts = append(hosts, mapSessionHost(sh, pool.Name))
		}
	}
	return hosts, nil
}

func (c *client) ListWorkspaces(ctx context.Context) ([]inventory.Workspace, error) {
	var workspaces []inventory.Workspace
	if c.resourceGroup != "" {
		pager := c.workspaces.NewListByResourceGroupPager(c.resourceGroup, nil)
		for pager.More() {
			page, err := pager.NextPage(ctx)
			if err != nil {
				return nil, inventory.NewTransientFetchError("list workspaces", err)
			}
			for _, ws := range page.Value {
				workspaces = append(workspaces, inventory.Workspace{
					ID:   deref(ws.ID),
					Name: deref(ws.Name),
				})
			}
		}
		return workspaces, nil
	}

	pager := c.workspaces.NewListBySubscriptionPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, inventory.NewTransientFetchError("list workspaces", err)
		}
		for _, ws := range page.Value {
			workspaces = append(workspaces, inventory.Workspace{
				ID:   deref(ws.ID),
				Name: deref(ws.Name),
			})
		}
	}
	return workspaces, nil
}

func (c *client) ListScalingPlans(ctx context.Context) ([]inventory.ScalingPlan, error) {
	var plans []inventory.ScalingPlan
	if c.resourceGroup != "" {
		pager := c.scalingPlans.NewListByResourceGroupPager(c.resourceGroup, nil)
		for pager.More() {
			page, err := pager.NextPage(ctx)
			if err != nil {
				return nil, inventory.NewTransientFetchError("list scaling plans", err)
			}
			for _, sp := range page.Value {
				plans = append(plans, inventory.ScalingPlan{
					ID:   deref(sp.ID),
					Name: deref(sp.Name),
				})
			}
		}
		return plans, nil
	}

	pager := c.scalingPlans.NewListBySubscriptionPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, inventory.NewTransientFetchError("list scaling plans", err)
		}
		for _, sp := range page.Value {
			plans = append(plans, inventory.ScalingPlan{
				ID:   deref(sp.ID),
				Name: deref(sp.Name),
			})
		}
	}
	return plans, nil
}

func (c *client) ListImagePackages(ctx context.Context, pool inventory.HostPool) ([]inventory.MsixPackage, error) {
	var packages []inventory.MsixPackage
	pager := c.msixPackages.NewListPager(pool.ResourceGroup, pool.Name, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, inventory.NewTransientFetchError("list msix packages", err)
		}
		for _, pkg := range page.Value {
			packages = append(packages, inventory.MsixPackage{
				ID:       deref(pkg.ID),
				Name:     deref(pkg.Name),
				HostPool: pool.Name,
			})
		}
	}
	return packages, nil
}

func (c *client) ListResourcesByType(ctx context.Context, t inventory.ResourceType) ([]inventory.ResourceRef, error) {
	switch t {
	case inventory.ResourceHostPool:
		pools, err := c.ListHostPools(ctx)
		if err != nil {
			return nil, err
		}
		refs := make([]inventory.ResourceRef, 0, len(pools))
		for _, p := range pools {
			refs = append(refs, inventory.ResourceRef{ID: p.ID, Name: p.Name, Type: t})
		}
		return refs, nil

	case inventory.ResourceSessionHost:
		pools, err := c.ListHostPools(ctx)
		if err != nil {
			return nil, err
		}
		var refs []inventory.ResourceRef
		for _, p := range pools {
			hosts, err := c.ListSessionHosts(ctx, p)
			if err != nil {
				return nil, err
			}
			for _, h := range hosts {
				refs = append(refs, inventory.ResourceRef{ID: h.ID, Name: h.Name, Type: t, HostPool: p.Name})
			}
		}
		return refs, nil

	case inventory.ResourceWorkspace:
		workspaces, err := c.ListWorkspaces(ctx)
		if err != nil {
			return nil, err
		}
		refs := make([]inventory.ResourceRef, 0, len(workspaces))
		for _, ws := range workspaces {
			refs = append(refs, inventory.ResourceRef{ID: ws.ID, Name: ws.Name, Type: t})
		}
		return refs, nil

	case inventory.ResourceScalingPlan:
		plans, err := c.ListScalingPlans(ctx)
		if err != nil {
			return nil, err
		}
		refs := make([]inventory.ResourceRef, 0, len(plans))
		for _, sp := range plans {
			refs = append(refs, inventory.ResourceRef{ID: sp.ID, Name: sp.Name, Type: t})
		}
		return refs, nil

	case inventory.ResourceMsixPackage:
		pools, err := c.ListHostPools(ctx)
		if err != nil {
			return nil, err
		}
		var refs []inventory.ResourceRef
		for _, p := range pools {
			packages, err := c.ListImagePackages(ctx, p)
			if err != nil {
				return nil, err
			}
			for _, pkg := range packages {
				refs = append(refs, inventory.ResourceRef{ID: pkg.ID, Name: pkg.Name, Type: t, HostPool: p.Name})
			}
		}
		return refs, nil

	default:
		return nil, errors.Errorf("unknown resource type %q", t)
	}
}

func (c *client) GetDiagnosticAttachment(ctx context.Context, ref inventory.ResourceRef) (*inventory.DiagnosticAttachment, error) {
	attachment := &inventory.DiagnosticAttachment{}
	pager := c.diagnostics.NewListPager(ref.ID, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, inventory.NewTransientFetchError("list diagnostic settings", err)
		}
		for _, ds := range page.Value {
			attachment.Destinations = append(attachment.Destinations, mapDiagnosticDestinations(ds)...)
		}
	}
	return attachment, nil
}
