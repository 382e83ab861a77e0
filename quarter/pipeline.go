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
	"context"

	"github.com/Jimmy9507/foundaments-data-recal/codemap"
	"github.com/Jimmy9507/foundaments-data-recal/database"
	"github.com/Jimmy9507/foundaments-data-recal/genius"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	ResearchTable = "research_quarter"
	PrepareTable  = "prepare_quarter"
	StrategyTable = "strategy_quarter"
)

// quarterKey is the upsert key of all three quarter tables
var quarterKey = []string{"stockcode", "end_date"}

// UpdateQuarter runs the three pipeline stages in order: research (merge
// and filter), prepare (late-announcement pruning), strategy (announce_to
// propagation)
func UpdateQuarter(ctx context.Context, maps *codemap.Maps, first bool) error {
	if err := NewResearch(maps).Update(ctx, first); err != nil {
		return err
	}
	if err := NewPrepare(maps).Update(ctx); err != nil {
		return err
	}
	return NewStrategy(maps).Update(ctx)
}

// importQuarter copies srcTable into destTable per stock. On a full
// rebuild every row is copied; otherwise only the newest end_date row per
// stock is carried over -- quarter-level data changes one period at a time,
// so the latest record is enough.
func importQuarter(ctx context.Context, maps *codemap.Maps, srcTable string, destTable string) error {
	dest, err := database.Dest()
	if err != nil {
		return err
	}

	fullUpdate := viper.GetInt("update.timeslot") < 0
	orderBookIDs := maps.OrderBookIDs()
	for idx, orderBookID := range orderBookIDs {
		log.Debug().Str("OrderBookID", orderBookID).Int("Num", idx+1).Int("Total", len(orderBookIDs)).Str("Table", destTable).Msg("importing quarter rows")

		sql := "SELECT * FROM " + srcTable + " WHERE stockcode=$1"
		if !fullUpdate {
			sql += " ORDER BY end_date DESC LIMIT 1"
		}
		rows, err := dest.Query(ctx, sql, orderBookID)
		if err != nil {
			log.Error().Stack().Err(err).Str("Table", srcTable).Str("OrderBookID", orderBookID).Msg("could not query quarter rows for import")
			return err
		}
		records, err := genius.RowsToRecords(rows)
		if err != nil {
			return err
		}
		for _, record := range records {
			sql, args := genius.UpsertSQL(destTable, quarterKey, record)
			if _, err := dest.Exec(ctx, sql, args...); err != nil {
				log.Error().Stack().Err(err).Str("Table", destTable).Str("OrderBookID", orderBookID).Msg("could not upsert imported quarter row")
				return err
			}
		}
	}
	return nil
}
