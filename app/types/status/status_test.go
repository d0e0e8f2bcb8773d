// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package status_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/types/status"
)

func TestUnit_Status_Summarize(t *testing.T) {
	report := status.NewRunReport()
	report.Checks = []*status.StatusCheck{
		{Name: "a", Outcome: status.OutcomePass},
		{Name: "b", Outcome: status.OutcomeFail},
		{Name: "c", Outcome: status.OutcomePass},
		{Name: "d", Outcome: status.OutcomeError},
	}

	s := report.Summarize()
	assert.Equal(t, 2, s.Pass)
	assert.Equal(t, 1, s.Fail)
	assert.Equal(t, 1, s.Error)
	assert.Equal(t, 4, s.Total)
	assert.False(t, s.Healthy())
}

func TestUnit_Status_SummarizeEmpty(t *testing.T) {
	report := status.NewRunReport()
	s := report.Summarize()
	assert.Equal(t, status.Summary{}, s)
	assert.True(t, s.Healthy())
}

func TestUnit_Status_AccessorConcurrentWrites(t *testing.T) {
	const writers = 32

	accessor := status.NewAccessor(status.NewRunReport())

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			accessor.AddCheck(&status.StatusCheck{
				Name:    fmt.Sprintf("check-%d", i),
				Outcome: status.OutcomePass,
			})
		}()
	}
	wg.Wait()

	accessor.ReadFromReport(func(r *status.RunReport) {
		assert.Len(t, r.Checks, writers)
	})
}
