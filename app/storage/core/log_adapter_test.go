// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/storage/core"
)

type captureWriter struct {
	entries []map[string]interface{}
}

func (w *captureWriter) Write(p []byte) (int, error) {
	entry := map[string]interface{}{}
	if err := json.Unmarshal(p, &entry); err != nil {
		return 0, err
	}
	w.entries = append(w.entries, entry)
	return len(p), nil
}

func TestUnit_ZeroLogAdapter_TracesStatements(t *testing.T) {
	writer := &captureWriter{}
	z := zerolog.New(writer)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: core.ZeroLogAdapter{}})
	require.NoError(t, err)
	db = db.WithContext(z.WithContext(context.Background()))

	type Note struct {
		Title string
	}
	require.NoError(t, db.AutoMigrate(&Note{}))

	writer.entries = nil
	require.NoError(t, db.Create(&Note{Title: "first"}).Error)

	require.Len(t, writer.entries, 1)
	sql, ok := writer.entries[0]["sql"].(string)
	require.True(t, ok)
	assert.Regexp(t, regexp.MustCompile("INSERT INTO `notes`"), sql)
	assert.Equal(t, "debug", writer.entries[0]["level"])
}

func TestUnit_ZeroLogAdapter_ErrorsAtErrorLevel(t *testing.T) {
	writer := &captureWriter{}
	z := zerolog.New(writer)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: core.ZeroLogAdapter{}})
	require.NoError(t, err)
	db = db.WithContext(z.WithContext(context.Background()))

	type row struct{}
	assert.Error(t, db.Raw("THIS is not SQL").Scan(&row{}).Error)

	require.NotEmpty(t, writer.entries)
	last := writer.entries[len(writer.entries)-1]
	assert.Equal(t, "error", last["level"])
}
