// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package telemetry uploads finished run reports to an operator-configured
// collection endpoint. Uploads are best effort: callers log failures and
// continue, and the whole path is skipped when telemetry is disabled.
package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	net "net/http"
	"time"

	"github.com/pkg/errors"

	config "github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/config/validator"
	http "github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/http/client"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/types/status"
)

// Timeout caps the whole upload. Matches common API gateway limits so a
// slow collector fails here with a clear error instead of at the gateway.
const Timeout = 15 * time.Second

// Post uploads the report as JSON to cfg.Telemetry.Endpoint. Returns nil
// without sending anything when telemetry is disabled. A nil client falls
// back to net.DefaultClient.
func Post(ctx context.Context, client *net.Client, cfg *config.Settings, rep *status.RunReport) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if rep == nil {
		return errors.New("nil report")
	}
	if !cfg.Telemetry.Enabled {
		return nil
	}
	if cfg.Telemetry.Endpoint == "" {
		return errors.New("missing telemetry endpoint")
	}

	data, err := json.Marshal(rep)
	if err != nil {
		return errors.Wrap(err, "encoding run report")
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	headers := map[string]string{
		http.HeaderContentType: http.ContentTypeJSON,
	}
	if cfg.Telemetry.APIKey != "" {
		headers[http.HeaderAuthorization] = "Bearer " + cfg.Telemetry.APIKey
	}

	_, err = http.Do(ctx, client, net.MethodPost,
		headers,
		map[string]string{
			http.QueryParamRunID:        rep.RunID,
			http.QueryParamSubscription: cfg.Azure.SubscriptionID,
		},
		cfg.Telemetry.Endpoint,
		bytes.NewReader(data),
	)
	return err
}
