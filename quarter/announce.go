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
	"fmt"

	"github.com/Jimmy9507/foundaments-data-recal/fiscal"
)

// AdjustAnnounceDates synthesizes missing announce dates and chains
// announce_to over one stock's reports. The reports must be ordered by
// end_date descending; they are mutated in place.
//
// Regulated announcement windows: Q1 Apr 1-30, H1 Jul 1-Aug 31, Q3
// Oct 1-31, annual Jan 1-Apr 30 of the next year. A missing announce date
// is filled with the window's last legal day, except for an annual report:
// if it is the stock's newest row and today falls inside its window the
// filing simply has not happened yet, so today is used; otherwise, if the
// next newer report is Q1 of the following year, the annual and the Q1 were
// filed together and the Q1's announce date is reused.
func AdjustAnnounceDates(reports []*Report, today int) error {
	var previous *Report
	for _, report := range reports {
		if err := checkIdentity(report); err != nil {
			return err
		}

		if !report.Announced() {
			report.AnnounceDate = synthesizeAnnounceDate(report, previous, today)
		}

		if previous == nil {
			report.AnnounceTo = fiscal.MaxAnnounceTo
		} else {
			report.AnnounceTo = previous.AnnounceDate
		}

		if report.AnnounceDate == 0 {
			return fmt.Errorf("missing announce date for %s end_date %d", report.Stockcode, report.EndDate)
		}
		if report.AnnounceTo == 0 {
			return fmt.Errorf("missing announce to for %s end_date %d", report.Stockcode, report.EndDate)
		}
		previous = report
	}
	return nil
}

func synthesizeAnnounceDate(report *Report, previous *Report, today int) int {
	year := report.RptYear
	switch report.RptQuarter {
	case 1:
		return year*10000 + 430
	case 2:
		return year*10000 + 831
	case 3:
		return year*10000 + 1031
	case 4:
		annDate := (year+1)*10000 + 430
		if previous == nil {
			// newest row of the stock: the annual may still be inside its
			// legal window and simply unannounced
			if (year+1)*10000+101 < today && today < annDate {
				annDate = today
			}
		} else if previous.RptQuarter == 1 && previous.RptYear == year+1 {
			annDate = previous.AnnounceDate
		}
		return annDate
	}
	return 0
}

func checkIdentity(report *Report) error {
	if report.Stockcode == "" {
		return fmt.Errorf("missing stockcode in report with end_date %d", report.EndDate)
	}
	if report.Comcode == 0 {
		return fmt.Errorf("missing comcode for %s end_date %d", report.Stockcode, report.EndDate)
	}
	if report.EndDate == 0 {
		return fmt.Errorf("missing end_date for %s", report.Stockcode)
	}
	if report.RptYear == 0 {
		return fmt.Errorf("missing rpt_year for %s end_date %d", report.Stockcode, report.EndDate)
	}
	if report.RptQuarter == 0 {
		return fmt.Errorf("missing rpt_quarter for %s end_date %d", report.Stockcode, report.EndDate)
	}
	return nil
}
