// Copyright 2023
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package quarter

import (
	"github.com/Jimmy9507/foundaments-data-recal/fiscal"
)

// PruneAction is one mutation the late-announcement scan wants applied to
// prepare_quarter
type PruneAction struct {
	EndDate int
	// Delete removes the row; otherwise AnnounceTo is rewritten
	Delete     bool
	AnnounceTo int
}

// PruneLate scans one stock's reports in end_date descending order and
// removes late-announced rows: a report whose announce date is not earlier
// than that of a newer fiscal period is superseded by the newer filing.
// When a row is deleted the next surviving (older) row's announce_to is
// extended to cover the gap. After applying the returned actions,
// announce_date is strictly decreasing over end_date descending.
func PruneLate(reports []*Report) []PruneAction {
	actions := make([]PruneAction, 0)
	latestAnn := fiscal.MaxAnnounceTo
	lastDeleted := false
	for _, report := range reports {
		if report.AnnounceDate >= latestAnn {
			actions = append(actions, PruneAction{EndDate: report.EndDate, Delete: true})
			lastDeleted = true
			continue
		}
		if lastDeleted {
			actions = append(actions, PruneAction{EndDate: report.EndDate, AnnounceTo: latestAnn})
			lastDeleted = false
		}
		latestAnn = report.AnnounceDate
	}
	return actions
}
