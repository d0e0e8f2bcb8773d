// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package history persists completed validation runs so operators can
// review how estate health evolved across deployments.
package history

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/storage/core"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/types"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/types/status"
)

// RunRecord is one persisted validation run. The per-check results are kept
// as serialized JSON in Report; the outcome tallies are denormalized into
// columns so recent runs can be summarized without decoding.
type RunRecord struct {
	RunID       string    `gorm:"primaryKey"`
	StartedAt   time.Time `gorm:"index"`
	CompletedAt time.Time
	Passing     int
	Failing     int
	Erroring    int
	Report      string
}

// Store is the run-history repository backed by GORM.
type Store struct {
	core.BaseRepoImpl
}

var _ types.Storage[RunRecord, string] = (*Store)(nil)

// NewStore builds the repository and ensures the run_record table exists.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&RunRecord{}); err != nil {
		return nil, errors.Wrap(err, "migrating run history schema")
	}
	return &Store{
		BaseRepoImpl: core.NewBaseRepoImpl(db, &RunRecord{}),
	}, nil
}

// Create persists a record. Creating the same run twice is an error; run
// IDs are unique per report.
func (s *Store) Create(ctx context.Context, record *RunRecord) error {
	return core.TranslateError(s.DB(ctx).Create(record).Error)
}

// Save encodes a finished run into a RunRecord and persists it.
func (s *Store) Save(ctx context.Context, rep *status.RunReport) error {
	raw, err := json.Marshal(rep)
	if err != nil {
		return errors.Wrap(err, "encoding run report")
	}

	sum := rep.Summarize()
	return s.Create(ctx, &RunRecord{
		RunID:       rep.RunID,
		StartedAt:   rep.StartedAt,
		CompletedAt: rep.CompletedAt,
		Passing:     sum.Pass,
		Failing:     sum.Fail,
		Erroring:    sum.Error,
		Report:      string(raw),
	})
}

// Recent returns up to n runs, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]RunRecord, error) {
	var records []RunRecord
	err := s.DB(ctx).Order("started_at DESC").Limit(n).Find(&records).Error
	return records, core.TranslateError(err)
}

// Get loads one record by run ID.
func (s *Store) Get(ctx context.Context, runID string) (*RunRecord, error) {
	var record RunRecord
	if err := s.DB(ctx).First(&record, "run_id = ?", runID).Error; err != nil {
		return nil, core.TranslateError(err)
	}
	return &record, nil
}

// Delete removes one record by run ID.
func (s *Store) Delete(ctx context.Context, runID string) error {
	return core.TranslateError(s.DB(ctx).Delete(&RunRecord{}, "run_id = ?", runID).Error)
}

// GetReport loads a run and decodes its stored report.
func (s *Store) GetReport(ctx context.Context, runID string) (*status.RunReport, error) {
	record, err := s.Get(ctx, runID)
	if err != nil {
		return nil, err
	}

	var rep status.RunReport
	if err := json.Unmarshal([]byte(record.Report), &rep); err != nil {
		return nil, errors.Wrap(err, "decoding stored run report")
	}
	return &rep, nil
}
