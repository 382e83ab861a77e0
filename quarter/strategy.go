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
)

// Strategy copies prepare_quarter into strategy_quarter and re-propagates
// announce_to. The newest quarter of a stock gains a real announce_to only
// once its successor shows up in prepare_quarter, so the copy refreshes the
// column on every run. strategy_quarter is the single table the day
// recomputation consumes.
type Strategy struct {
	maps *codemap.Maps
}

func NewStrategy(maps *codemap.Maps) *Strategy {
	return &Strategy{maps: maps}
}

func (strategy *Strategy) Update(ctx context.Context) error {
	dest, err := database.Dest()
	if err != nil {
		return err
	}
	if _, err := dest.Exec(ctx, genius.CreateQuarterTableSQL(StrategyTable)); err != nil {
		log.Error().Stack().Err(err).Msg("could not create strategy_quarter")
		return err
	}

	if err := importQuarter(ctx, strategy.maps, PrepareTable, StrategyTable); err != nil {
		return err
	}
	return strategy.updateAnnounceTo(ctx)
}

func (strategy *Strategy) updateAnnounceTo(ctx context.Context) error {
	dest, err := database.Dest()
	if err != nil {
		return err
	}

	for _, orderBookID := range strategy.maps.OrderBookIDs() {
		rows, err := dest.Query(ctx,
			"SELECT stockcode, end_date, announce_to, comcode FROM "+PrepareTable+
				" WHERE stockcode=$1 ORDER BY end_date DESC", orderBookID)
		if err != nil {
			log.Error().Stack().Err(err).Str("OrderBookID", orderBookID).Msg("could not query prepare_quarter announce_to tuples")
			return err
		}
		records, err := genius.RowsToRecords(rows)
		if err != nil {
			return err
		}

		for _, record := range records {
			report := ReportFromRecord(record)
			_, err := dest.Exec(ctx,
				"INSERT INTO "+StrategyTable+" (stockcode, end_date, announce_to, comcode) VALUES ($1, $2, $3, $4)"+
					" ON CONFLICT (stockcode, end_date) DO UPDATE SET announce_to=EXCLUDED.announce_to",
				report.Stockcode, report.EndDate, report.AnnounceTo, report.Comcode)
			if err != nil {
				log.Error().Stack().Err(err).Str("OrderBookID", orderBookID).Int("EndDate", report.EndDate).Msg("could not refresh announce_to")
				return err
			}
		}
	}
	return nil
}
