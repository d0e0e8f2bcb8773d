// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package build carries version metadata stamped at link time.
package build

var (
	// Rev is set via ldflags to the VCS revision.
	Rev = "unknown"
	// Tag is set via ldflags to the release tag.
	Tag = "dev"
)

const (
	AuthorName  = "avd-unit-test authors"
	AuthorEmail = "support@avd-unit-test.io"
	Copyright   = "(c) 2024-2026 the avd-unit-test authors"
)

// GetVersion returns the human-readable version string.
func GetVersion() string {
	if Tag == "dev" {
		return Tag + "-" + Rev
	}
	return Tag
}
