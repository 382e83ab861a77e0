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

// Prepare copies research_quarter into prepare_quarter and deletes
// late-announced rows so that announce_date is strictly monotone per stock
type Prepare struct {
	maps *codemap.Maps
}

func NewPrepare(maps *codemap.Maps) *Prepare {
	return &Prepare{maps: maps}
}

func (prepare *Prepare) Update(ctx context.Context) error {
	dest, err := database.Dest()
	if err != nil {
		return err
	}
	if _, err := dest.Exec(ctx, genius.CreateQuarterTableSQL(PrepareTable)); err != nil {
		log.Error().Stack().Err(err).Msg("could not create prepare_quarter")
		return err
	}

	if err := importQuarter(ctx, prepare.maps, ResearchTable, PrepareTable); err != nil {
		return err
	}
	return prepare.removeLateAnnounced(ctx)
}

func (prepare *Prepare) removeLateAnnounced(ctx context.Context) error {
	dest, err := database.Dest()
	if err != nil {
		return err
	}

	for _, orderBookID := range prepare.maps.OrderBookIDs() {
		subLog := log.With().Str("OrderBookID", orderBookID).Logger()

		rows, err := dest.Query(ctx,
			"SELECT stockcode, end_date, announce_date, comcode FROM "+PrepareTable+
				" WHERE stockcode=$1 ORDER BY end_date DESC", orderBookID)
		if err != nil {
			subLog.Error().Stack().Err(err).Msg("could not query prepare_quarter rows")
			return err
		}
		records, err := genius.RowsToRecords(rows)
		if err != nil {
			return err
		}
		reports := make([]*Report, 0, len(records))
		for _, record := range records {
			reports = append(reports, ReportFromRecord(record))
		}

		for _, action := range PruneLate(reports) {
			if action.Delete {
				_, err := dest.Exec(ctx, "DELETE FROM "+PrepareTable+" WHERE stockcode=$1 AND end_date=$2",
					orderBookID, action.EndDate)
				if err != nil {
					subLog.Error().Stack().Err(err).Int("EndDate", action.EndDate).Msg("could not delete late-announced row")
					return err
				}
				subLog.Info().Int("EndDate", action.EndDate).Msg("deleted late-announced quarter row")
				continue
			}
			_, err := dest.Exec(ctx, "UPDATE "+PrepareTable+" SET announce_to=$1 WHERE stockcode=$2 AND end_date=$3",
				action.AnnounceTo, orderBookID, action.EndDate)
			if err != nil {
				subLog.Error().Stack().Err(err).Int("EndDate", action.EndDate).Msg("could not extend announce_to over pruned gap")
				return err
			}
		}
	}
	return nil
}
