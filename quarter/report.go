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

// Package quarter consolidates the four Genius statement tables into one
// canonical per-quarter table and derives the prepare and strategy copies
// used for as-of lookups.
package quarter

import (
	"github.com/Jimmy9507/foundaments-data-recal/genius"
)

// Report is one quarter row keyed by (stockcode, end_date). A zero
// AnnounceDate means the filing date is unknown; QuarterMetrics placeholder
// rows are built this way and carry no metrics.
type Report struct {
	Stockcode    string
	Comcode      int64
	EndDate      int
	AnnounceDate int
	AnnounceTo   int
	RptYear      int
	RptQuarter   int
	RptSrc       string
	Metrics      map[string]float64
}

// Announced reports whether the row carries a real or synthesized filing
// date; rows without one never contribute to recalculation
func (r *Report) Announced() bool {
	return r.AnnounceDate != 0
}

// Metric returns the named business metric; absent metrics are unknown, not
// zero
func (r *Report) Metric(name string) (float64, bool) {
	if r.Metrics == nil {
		return 0, false
	}
	val, ok := r.Metrics[name]
	return val, ok
}

// ReportFromRecord converts a scanned quarter-table row to a Report.
// Identity columns keep their types; everything else is coerced to float64.
func ReportFromRecord(record genius.Record) *Report {
	report := &Report{Metrics: make(map[string]float64)}
	for key, val := range record {
		switch key {
		case "stockcode":
			if s, ok := val.(string); ok {
				report.Stockcode = s
			}
		case "comcode":
			if c, ok := genius.Int(val); ok {
				report.Comcode = int64(c)
			}
		case "end_date":
			if d, ok := genius.DateInt(val); ok {
				report.EndDate = d
			}
		case "announce_date":
			if d, ok := genius.DateInt(val); ok {
				report.AnnounceDate = d
			}
		case "announce_to":
			if d, ok := genius.DateInt(val); ok {
				report.AnnounceTo = d
			}
		case "rpt_year":
			if y, ok := genius.Int(val); ok {
				report.RptYear = y
			}
		case "rpt_quarter":
			if q, ok := genius.Int(val); ok {
				report.RptQuarter = q
			}
		case "rpt_src":
			if s, ok := val.(string); ok {
				report.RptSrc = s
			}
		default:
			if f, ok := genius.Float(val); ok {
				report.Metrics[key] = f
			}
		}
	}
	return report
}
