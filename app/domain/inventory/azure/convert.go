// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package azure

import (
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/desktopvirtualization/armdesktopvirtualization/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/monitor/armmonitor"

	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/domain/inventory"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func mapHostPool(hp *armdesktopvirtualization.HostPool) inventory.HostPool {
	pool := inventory.HostPool{
		ID:   deref(hp.ID),
		Name: deref(hp.Name),
	}
	if rid, err := arm.ParseResourceID(pool.ID); err == nil {
		pool.ResourceGroup = rid.ResourceGroupName
	}
	return pool
}

func mapSessionHost(sh *armdesktopvirtualization.SessionHost, poolName string) inventory.SessionHost {
	host := inventory.SessionHost{
		ID:       deref(sh.ID),
		Name:     shortHostName(deref(sh.Name)),
		HostPool: poolName,
		Status:   inventory.StatusUnknown,
	}
	if sh.Properties == nil {
		return host
	}
	if sh.Properties.AllowNewSession != nil {
		host.AllowNewSession = *sh.Properties.AllowNewSession
	}
	if sh.Properties.Status != nil {
		host.RawStatus = string(*sh.Properties.Status)
		host.Status = mapStatus(*sh.Properties.Status)
	}
	return host
}

// mapStatus collapses the provider's session host states onto the three the
// checks evaluate. Anything that is not plainly available or unknown counts
// as unavailable.
func mapStatus(s armdesktopvirtualization.Status) inventory.SessionHostStatus {
	switch s {
	case armdesktopvirtualization.StatusAvailable:
		return inventory.StatusAvailable
	case armdesktopvirtualization.StatusNoHeartbeat:
		return inventory.StatusUnknown
	default:
		return inventory.StatusUnavailable
	}
}

// shortHostName strips the host pool prefix ARM puts in front of session
// host names ("pool1/host-0.contoso.com" -> "host-0.contoso.com").
func shortHostName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// mapDiagnosticDestinations extracts the configured destinations from one
// diagnostic setting. The checks only care that at least one exists.
func mapDiagnosticDestinations(ds *armmonitor.DiagnosticSettingsResource) []string {
	if ds == nil || ds.Properties == nil {
		return nil
	}
	var dests []string
	if p := ds.Properties; p != nil {
		if deref(p.WorkspaceID) != "" {
			dests = append(dests, deref(p.WorkspaceID))
		}
		if deref(p.StorageAccountID) != "" {
			dests = append(dests, deref(p.StorageAccountID))
		}
		if deref(p.EventHubAuthorizationRuleID) != "" {
			dests = append(dests, deref(p.EventHubAuthorizationRuleID))
		}
		if deref(p.MarketplacePartnerID) != "" {
			dests = append(dests, deref(p.MarketplacePartnerID))
		}
	}
	return dests
}
