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

package genius

import (
	"fmt"
	"strings"
)

// CreateQuarterTableSQL generates DDL for research_quarter and its two
// downstream copies. Metric columns come from the catalogue; dates are
// 8-digit integers.
func CreateQuarterTableSQL(table string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CREATE TABLE IF NOT EXISTS %s (\n", table)
	sb.WriteString("\tstockcode text NOT NULL,\n")
	sb.WriteString("\tcomcode bigint,\n")
	sb.WriteString("\tend_date integer NOT NULL,\n")
	sb.WriteString("\tannounce_date integer,\n")
	sb.WriteString("\tannounce_to integer,\n")
	sb.WriteString("\trpt_year integer,\n")
	sb.WriteString("\trpt_quarter integer,\n")
	sb.WriteString("\trpt_src text,\n")
	for _, name := range QuarterMetricNames() {
		fmt.Fprintf(&sb, "\t%s double precision,\n", name)
	}
	fmt.Fprintf(&sb, "\tPRIMARY KEY (stockcode, end_date)\n)")
	return sb.String()
}

// CreateDayTableSQL generates DDL for orig_day and recal_day; the
// recomputed ratios reuse the raw columns' canonical names so both tables
// share one shape
func CreateDayTableSQL(table string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CREATE TABLE IF NOT EXISTS %s (\n", table)
	sb.WriteString("\tstockcode text NOT NULL,\n")
	sb.WriteString("\ttradedate integer NOT NULL,\n")
	for _, name := range DayMetricNames() {
		fmt.Fprintf(&sb, "\t%s double precision,\n", name)
	}
	fmt.Fprintf(&sb, "\tPRIMARY KEY (stockcode, tradedate)\n)")
	return sb.String()
}
