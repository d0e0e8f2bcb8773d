// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package http is a thin wrapper over net/http for one-shot API requests:
// build the request, attach headers and query parameters, execute, and
// surface non-2xx responses as errors.
package http

import (
	"context"
	"io"
	net "net/http"
	"net/url"

	"github.com/pkg/errors"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"

	ContentTypeJSON = "application/json"

	QueryParamRunID        = "run_id"
	QueryParamSubscription = "subscription_id"
)

// Do executes a single HTTP request and returns the response status code.
// The response body is drained and discarded so the underlying connection
// can be reused. Status codes outside 2xx are returned as errors alongside
// the code.
func Do(
	ctx context.Context,
	client *net.Client,
	method string,
	headers map[string]string,
	queryParams map[string]string,
	endpoint string,
	body io.Reader,
) (int, error) {
	if client == nil {
		client = net.DefaultClient
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return 0, errors.Wrap(err, "parsing endpoint")
	}
	if len(queryParams) > 0 {
		q := parsed.Query()
		for k, v := range queryParams {
			q.Set(k, v)
		}
		parsed.RawQuery = q.Encode()
	}

	req, err := net.NewRequestWithContext(ctx, method, parsed.String(), body)
	if err != nil {
		return 0, errors.Wrap(err, "building request")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "executing request")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < net.StatusOK || resp.StatusCode >= net.StatusMultipleChoices {
		return resp.StatusCode, errors.Errorf("unexpected status %d from %s", resp.StatusCode, parsed.Host)
	}
	return resp.StatusCode, nil
}
