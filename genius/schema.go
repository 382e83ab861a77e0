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

// Package genius is the declarative catalogue of the upstream Genius
// database: source tables, the mapping from physical column codes (P110100,
// B310101, EPSP, ...) to canonical business names, and the per-table
// consolidation filters. The catalogue drives extraction SQL, row
// normalization and DDL for the derived tables; the mapping is data, not
// logic.
package genius

import (
	"fmt"
	"strings"
)

// Column pairs a physical Genius column with the canonical name used in the
// derived tables
type Column struct {
	Physical  string
	Canonical string
}

// Table describes one Genius source table
type Table struct {
	Name      string
	Columns   []Column
	Filter    string // consolidation filter, SQL fragment without WHERE
	HasRptSrc bool
}

// Consolidated statement filters. rpt_type 合并 selects consolidated (vs
// parent-only) statements; rpt_src restricts to the four canonical fiscal
// periods; rpt_date=enddate drops restated snapshots filed under a
// different report date.
const (
	rptSrcIn        = `rpt_src IN ('第一季度报','中报','第三季度报','年报')`
	statementFilter = `isvalid=1 AND rpt_type='合并' AND ` + rptSrcIn + ` AND rpt_date=enddate`
)

func (t *Table) selectList() string {
	parts := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		if col.Physical == col.Canonical {
			parts = append(parts, col.Physical)
		} else {
			parts = append(parts, fmt.Sprintf("%s AS %s", col.Physical, col.Canonical))
		}
	}
	return strings.Join(parts, ", ")
}

// SelectByComcodeSQL builds the full-build extraction query; $1 is the
// comcode
func (t *Table) SelectByComcodeSQL() string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE comcode=$1 AND %s", t.selectList(), t.Name, t.Filter)
}

// SelectByInnerCodeSQL builds the day-level extraction query; $1 is the
// inner_code. When since is true $2 bounds trd_date from below so only rows
// newer than the last recalculated day are pulled.
func (t *Table) SelectByInnerCodeSQL(since bool) string {
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE inner_code=$1 AND %s", t.selectList(), t.Name, t.Filter)
	if since {
		sql += " AND trd_date > $2"
	}
	return sql + " ORDER BY trd_date DESC"
}

// SelectByMtimeSQL builds the incremental extraction query; $1 is a single
// calendar day of mtime values
func (t *Table) SelectByMtimeSQL() string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s AND mtime::date=$1", t.selectList(), t.Name, t.Filter)
}

// DistinctMtimeSQL enumerates the distinct calendar days on which rows of
// this table were modified; when withStart is true $1 bounds the scan from
// below
func (t *Table) DistinctMtimeSQL(withStart bool) string {
	if withStart {
		return fmt.Sprintf("SELECT DISTINCT mtime::date AS modified_time FROM %s WHERE mtime >= $1 ORDER BY modified_time", t.Name)
	}
	return fmt.Sprintf("SELECT DISTINCT mtime::date AS modified_time FROM %s ORDER BY modified_time", t.Name)
}

// MetricColumns returns the catalogue entries that carry business metrics,
// skipping identity columns
func (t *Table) MetricColumns() []Column {
	metrics := make([]Column, 0, len(t.Columns))
	for _, col := range t.Columns {
		switch col.Canonical {
		case "stockcode", "comcode", "end_date", "announce_date", "rpt_src", "tradedate", "inner_code":
			continue
		}
		metrics = append(metrics, col)
	}
	return metrics
}

// QuarterMetricNames returns the union of canonical metric names across the
// four quarter source tables, in catalogue order, deduplicated
func QuarterMetricNames() []string {
	seen := make(map[string]bool)
	names := make([]string, 0, 350)
	for _, t := range QuarterTables {
		for _, col := range t.MetricColumns() {
			if seen[col.Canonical] {
				continue
			}
			seen[col.Canonical] = true
			names = append(names, col.Canonical)
		}
	}
	return names
}

// DayMetricNames returns the canonical names of the 19 day-level valuation
// metrics
func DayMetricNames() []string {
	names := make([]string, 0, len(Day.Columns))
	for _, col := range Day.MetricColumns() {
		names = append(names, col.Canonical)
	}
	return names
}
