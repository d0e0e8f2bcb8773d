// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"

	"github.com/pkg/errors"
)

// Azure holds the service principal and scope used to reach the control
// plane. The secret is normally supplied through the environment; the core
// never reads these fields, they flow straight into the credential provider.
type Azure struct {
	TenantID       string `yaml:"tenant_id" env:"AZURE_TENANT_ID" env-description:"Entra tenant ID"`
	ClientID       string `yaml:"client_id" env:"AZURE_CLIENT_ID" env-description:"service principal application ID"`
	ClientSecret   string `yaml:"client_secret" env:"AZURE_CLIENT_SECRET" env-description:"service principal secret"`
	SubscriptionID string `yaml:"subscription_id" env:"AZURE_SUBSCRIPTION_ID" env-description:"subscription under validation"`

	// ResourceGroup optionally narrows validation to one resource group.
	// Empty means the whole subscription.
	ResourceGroup string `yaml:"resource_group" env:"AZURE_RESOURCE_GROUP" env-description:"optional resource group scope"`
}

func (a *Azure) Validate() error {
	a.TenantID = strings.TrimSpace(a.TenantID)
	a.ClientID = strings.TrimSpace(a.ClientID)
	a.ClientSecret = strings.TrimSpace(a.ClientSecret)
	a.SubscriptionID = strings.TrimSpace(a.SubscriptionID)
	a.ResourceGroup = strings.TrimSpace(a.ResourceGroup)

	switch {
	case a.TenantID == "":
		return errors.New("azure.tenant_id is required")
	case a.ClientID == "":
		return errors.New("azure.client_id is required")
	case a.ClientSecret == "":
		return errors.New("azure.client_secret is required (set AZURE_CLIENT_SECRET)")
	case a.SubscriptionID == "":
		return errors.New("azure.subscription_id is required")
	}
	return nil
}
