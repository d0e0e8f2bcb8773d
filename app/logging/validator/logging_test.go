// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0
package logging_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logging "github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/logging/validator"
)

func TestUnit_Logging_SequenceNumbersLines(t *testing.T) {
	logging.SetUpLogging("info", logging.LogFormatText)

	var buf bytes.Buffer
	logger := logrus.StandardLogger()
	logger.SetOutput(&buf)
	defer logger.SetOutput(os.Stderr)

	logger.Info("line1")
	logger.Info("line2")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "seq=1")
	assert.Contains(t, lines[1], "seq=2")
}

func TestUnit_Logging_LineFormat(t *testing.T) {
	logging.SetUpLogging("info", logging.LogFormatText)

	var buf bytes.Buffer
	logger := logrus.StandardLogger()
	logger.SetOutput(&buf)
	defer logger.SetOutput(os.Stderr)

	logging.NewLogger().WithField(logging.OpField, "host_pool_existence").Info("2 host pools found")

	line := strings.TrimSpace(buf.String())
	parts := strings.SplitN(line, " - ", 3)
	require.Len(t, parts, 3)
	assert.Equal(t, "host_pool_existence", parts[1])
	assert.True(t, strings.HasPrefix(parts[2], "2 host pools found"))
}

func TestUnit_Logging_UnknownLevelFallsBack(t *testing.T) {
	logging.SetUpLogging("definitely-not-a-level", logging.LogFormatText)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
