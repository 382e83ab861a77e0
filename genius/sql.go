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
	"sort"
	"strings"
)

// UpsertSQL builds an INSERT ... ON CONFLICT DO UPDATE over the record's
// columns keyed by keyCols. Every non-key column is refreshed from EXCLUDED
// so reruns are idempotent.
func UpsertSQL(table string, keyCols []string, record Record) (string, []interface{}) {
	cols, args := sortedColumns(record)
	placeholders := make([]string, len(cols))
	for idx := range cols {
		placeholders[idx] = fmt.Sprintf("$%d", idx+1)
	}

	keys := make(map[string]bool, len(keyCols))
	for _, k := range keyCols {
		keys[k] = true
	}
	updates := make([]string, 0, len(cols))
	for _, col := range cols {
		if keys[col] {
			continue
		}
		updates = append(updates, fmt.Sprintf("%s=EXCLUDED.%s", col, col))
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "),
		strings.Join(keyCols, ", "), strings.Join(updates, ", "))
	if len(updates) == 0 {
		sql = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO NOTHING",
			table, strings.Join(cols, ", "), strings.Join(placeholders, ", "),
			strings.Join(keyCols, ", "))
	}
	return sql, args
}

func sortedColumns(record Record) ([]string, []interface{}) {
	cols := make([]string, 0, len(record))
	for col := range record {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	args := make([]interface{}, len(cols))
	for idx, col := range cols {
		args[idx] = record[col]
	}
	return cols, args
}
