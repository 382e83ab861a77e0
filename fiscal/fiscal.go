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

// Package fiscal maps A-share fiscal periods to calendar dates. All dates
// are 8-digit YYYYMMDD integers.
package fiscal

// MaxAnnounceTo marks a quarter report that has not been superseded by a
// newer filing yet
const MaxAnnounceTo = 29991231

// quarterEnds holds the MMDD portion of each fiscal period end, indexed by
// quarter-1
var quarterEnds = [4]int{331, 630, 930, 1231}

// PeriodEnd returns the period end date of the given fiscal year and
// quarter (1-4)
func PeriodEnd(year int, quarter int) int {
	return year*10000 + quarterEnds[quarter-1]
}

// YearQuarter is the inverse of PeriodEnd. The divisor 300 maps the four
// canonical MMDD values 0331/0630/0930/1231 to quarters 1/2/3/4.
func YearQuarter(endDate int) (int, int) {
	return endDate / 10000, (endDate % 10000) / 300
}

// LatestEnds returns the fiscal period ends that could be the most recent
// publicly announced report on tradingDate, most recent first. The windows
// follow the regulated announcement deadlines: Q1 by Apr 30, H1 by Aug 31,
// Q3 by Oct 31, and the annual report by Apr 30 of the next year. In an
// overlap window more than one period may still be unannounced; the caller
// resolves the ambiguity with actual announce dates.
func LatestEnds(tradingDate int) []int {
	year := tradingDate / 10000
	mmdd := tradingDate % 10000
	switch {
	case mmdd < 431:
		return []int{PeriodEnd(year, 1), PeriodEnd(year-1, 4), PeriodEnd(year-1, 3)}
	case mmdd < 701:
		return []int{PeriodEnd(year, 1)}
	case mmdd < 901:
		return []int{PeriodEnd(year, 2), PeriodEnd(year, 1)}
	case mmdd < 1001:
		return []int{PeriodEnd(year, 2)}
	case mmdd < 1101:
		return []int{PeriodEnd(year, 3), PeriodEnd(year, 2)}
	default:
		return []int{PeriodEnd(year, 3)}
	}
}
