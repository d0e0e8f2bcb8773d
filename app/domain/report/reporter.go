// SPDX-FileCopyrightText: Copyright (c) 2024-2026, the avd-unit-test authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package report renders a finished run through an injected logger: one
// line per check result, then a summary line with the outcome tallies. It
// never alters outcomes.
package report

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	logging "github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/logging/validator"
	"github.com/MAHANTESH-DESAI-BTK/avd-unit-test/app/types/status"
)

type Reporter struct {
	logger *logrus.Entry
}

// NewReporter builds a reporter writing through the given logger. There is
// no package-level default; callers always inject the sink.
func NewReporter(logger *logrus.Entry) *Reporter {
	return &Reporter{logger: logger}
}

// Render emits one line per check result and a trailing summary line.
func (r *Reporter) Render(rep *status.RunReport) {
	for _, check := range rep.Checks {
		entry := r.logger.WithField(logging.OpField, check.Name)
		msg := formatResult(check)
		switch check.Outcome {
		case status.OutcomeFail:
			entry.Warn(msg)
		case status.OutcomeError:
			entry.Error(msg)
		default:
			entry.Info(msg)
		}
	}

	s := rep.Summarize()
	r.logger.WithField(logging.OpField, "summary").
		Infof("pass=%d fail=%d error=%d total=%d", s.Pass, s.Fail, s.Error, s.Total)
}

// Summarize returns the outcome tallies without rendering anything.
func (r *Reporter) Summarize(rep *status.RunReport) status.Summary {
	return rep.Summarize()
}

func formatResult(check *status.StatusCheck) string {
	msg := strings.ToUpper(string(check.Outcome))
	if check.Detail != "" {
		msg = fmt.Sprintf("%s - %s", msg, check.Detail)
	}
	if check.ResourcesEvaluated > 0 {
		msg = fmt.Sprintf("%s (resources evaluated: %d)", msg, check.ResourcesEvaluated)
	}
	return msg
}
