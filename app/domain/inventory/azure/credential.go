// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package azure implements the inventory client on top of the Azure resource
// manager APIs for desktop virtualization and monitor diagnostic settings.
package azure

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/pkg/errors"

	config "github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/config/validator"
)

// NewCredential builds a client-secret credential from the configured
// service principal. The credential material is consumed here and nowhere
// else; the checks only ever see the authenticated client.
func NewCredential(cfg *config.Settings) (azcore.TokenCredential, error) {
	cred, err := azidentity.NewClientSecretCredential(
		cfg.Azure.TenantID,
		cfg.Azure.ClientID,
		cfg.Azure.ClientSecret,
		nil,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build client secret credential")
	}
	return cred, nil
}
