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
	"time"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

// Record is one source row keyed by canonical column name. NULL columns are
// never present.
type Record map[string]interface{}

// RowsToRecords drains rows into records, dropping NULL values. The rows
// are closed on return.
func RowsToRecords(rows pgx.Rows) ([]Record, error) {
	defer rows.Close()

	fields := rows.FieldDescriptions()
	names := make([]string, len(fields))
	for idx, fd := range fields {
		names[idx] = string(fd.Name)
	}

	records := make([]Record, 0, 64)
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, err
		}
		record := make(Record, len(names))
		for idx, val := range vals {
			if val == nil {
				continue
			}
			record[names[idx]] = val
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Float coerces a scanned database value to float64
func Float(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case int16:
		return float64(v), true
	case int:
		return float64(v), true
	case pgtype.Numeric:
		var f float64
		if err := v.AssignTo(&f); err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// DateInt converts a scanned date or timestamp to an 8-digit YYYYMMDD
// integer. Integer values are assumed to be already encoded.
func DateInt(val interface{}) (int, bool) {
	switch v := val.(type) {
	case time.Time:
		return v.Year()*10000 + int(v.Month())*100 + v.Day(), true
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	}
	return 0, false
}

// Int coerces a scanned integral value
func Int(val interface{}) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}
