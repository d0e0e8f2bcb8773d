// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

//go:build tools

// tools.go pins the Go tools used by the install-tools Makefile target.
// The target greps the import paths from this file and runs 'go install'
// on each of them, placing the binaries in .tools/bin/.
package tools

import (
	_ "github.com/itchyny/gojq/cmd/gojq"
	_ "go.uber.org/mock/mockgen"
	_ "honnef.co/go/tools/cmd/staticcheck"
	_ "mvdan.cc/gofumpt"
)
