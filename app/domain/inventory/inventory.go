// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package inventory defines the read-only query surface over the virtual
// desktop control plane and the typed records the checks evaluate.
//
// The client is a snapshot view: every run re-fetches from the remote
// provider and nothing is cached between runs. The client performs no
// retries; a failed fetch surfaces as a TransientFetchError and retry policy
// belongs to the caller.
package inventory

import "context"

// ResourceType tags a ResourceRef with the kind of control-plane object it
// identifies.
type ResourceType string

const (
	ResourceHostPool    ResourceType = "HostPool"
	ResourceSessionHost ResourceType = "SessionHost"
	ResourceWorkspace   ResourceType = "Workspace"
	ResourceScalingPlan ResourceType = "ScalingPlan"
	ResourceMsixPackage ResourceType = "MsixPackage"
)

// ResourceRef identifies a single control-plane object.
type ResourceRef struct {
	// ID is the full provider resource identifier.
	ID string
	// Name is the short display name used in check details.
	Name string
	Type ResourceType
	// HostPool names the owning pool for resources scoped under one
	// (session hosts, MSIX packages). Empty otherwise.
	HostPool string
}

// SessionHostStatus is the availability of a session host, collapsed to the
// three states the checks care about. Finer provider states (upgrading, no
// heartbeat, domain trust lost, ...) map to Unavailable.
type SessionHostStatus string

const (
	StatusAvailable   SessionHostStatus = "Available"
	StatusUnavailable SessionHostStatus = "Unavailable"
	StatusUnknown     SessionHostStatus = "Unknown"
)

// HostPool is a logical grouping of session hosts serving a workload.
type HostPool struct {
	ID   string
	Name string
	// ResourceGroup is the group the pool lives in; child listings need it.
	ResourceGroup string
}

// SessionHost is a compute instance hosting user sessions within a pool.
type SessionHost struct {
	ID       string
	Name     string
	HostPool string
	Status   SessionHostStatus
	// RawStatus preserves the provider's exact state string for reporting.
	RawStatus string
	// AllowNewSession is false when the host is in drain mode.
	AllowNewSession bool
}

// Workspace groups application groups for end-user discovery.
type Workspace struct {
	ID   string
	Name string
}

// ScalingPlan is a schedule-driven capacity policy for host pools.
type ScalingPlan struct {
	ID   string
	Name string
}

// MsixPackage is an app-attach image package associated with a host pool.
type MsixPackage struct {
	ID       string
	Name     string
	HostPool string
}

// DiagnosticAttachment is the binding of a resource to one or more telemetry
// destinations. Presence is the fact under test; the checks never interpret
// the destination contents.
type DiagnosticAttachment struct {
	Destinations []string
}

// Empty reports whether the attachment binds no destinations.
func (d *DiagnosticAttachment) Empty() bool {
	return d == nil || len(d.Destinations) == 0
}

// Client is the read-only inventory surface the checks evaluate against.
//
// Empty listings are valid results, not errors. Single-resource lookups
// return ErrNotFound when the resource has no such attachment, and any
// network or auth failure is wrapped in a TransientFetchError.
type Client interface {
	ListHostPools(ctx context.Context) ([]HostPool, error)
	ListSessionHosts(ctx context.Context, pool HostPool) ([]SessionHost, error)
	ListWorkspaces(ctx context.Context) ([]Workspace, error)
	ListScalingPlans(ctx context.Context) ([]ScalingPlan, error)
	ListImagePackages(ctx context.Context, pool HostPool) ([]MsixPackage, error)

	// ListResourcesByType flattens the inventory to refs of a single type.
	ListResourcesByType(ctx context.Context, t ResourceType) ([]ResourceRef, error)

	// GetDiagnosticAttachment fetches the diagnostic-setting binding for the
	// referenced resource. A resource with no binding yields an attachment
	// with no destinations, not an error.
	GetDiagnosticAttachment(ctx context.Context, ref ResourceRef) (*DiagnosticAttachment, error)
}
