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
	"time"

	"github.com/Jimmy9507/foundaments-data-recal/codemap"
	"github.com/Jimmy9507/foundaments-data-recal/database"
	"github.com/Jimmy9507/foundaments-data-recal/genius"

	"github.com/jackc/pgx/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Research merges the four Genius source tables into research_quarter.
// research_quarter cannot be used for backtests directly: announce dates of
// late-announced rows are not corrected until the prepare stage.
type Research struct {
	maps *codemap.Maps
	now  func() time.Time
}

func NewResearch(maps *codemap.Maps) *Research {
	return &Research{maps: maps, now: time.Now}
}

// Update rebuilds research_quarter. A first/full build merges the sources
// per comcode; otherwise rows modified within the update.timeslot lookback
// are re-extracted by mtime day and upserted.
func (research *Research) Update(ctx context.Context, first bool) error {
	dest, err := database.Dest()
	if err != nil {
		return err
	}
	if _, err := dest.Exec(ctx, genius.CreateQuarterTableSQL(ResearchTable)); err != nil {
		log.Error().Stack().Err(err).Msg("could not create research_quarter")
		return err
	}

	if first {
		err = research.fullBuild(ctx)
	} else {
		err = research.updateByMtime(ctx)
	}
	if err != nil {
		return err
	}
	log.Info().Msg("research_quarter update done")

	if err := research.removeNullRptSrc(ctx); err != nil {
		return err
	}
	return research.fillAnnounceDates(ctx)
}

func (research *Research) fullBuild(ctx context.Context) error {
	src, err := database.Source()
	if err != nil {
		return err
	}
	dest, err := database.Dest()
	if err != nil {
		return err
	}

	comcodes := research.maps.Comcodes()
	for idx, comcode := range comcodes {
		log.Debug().Int64("Comcode", comcode).Int("Num", idx+1).Int("Total", len(comcodes)).Msg("merging quarter sources")
		merged := make(map[int]genius.Record)
		endDates := make([]int, 0, 64)
		for _, table := range genius.QuarterTables {
			rows, err := src.Query(ctx, table.SelectByComcodeSQL(), comcode)
			if err != nil {
				log.Error().Stack().Err(err).Str("Table", table.Name).Int64("Comcode", comcode).Msg("could not query quarter source table")
				return err
			}
			records, err := genius.RowsToRecords(rows)
			if err != nil {
				log.Error().Stack().Err(err).Str("Table", table.Name).Msg("could not scan quarter source rows")
				return err
			}
			for _, record := range records {
				endDate, ok := genius.DateInt(record["end_date"])
				if !ok {
					continue
				}
				kept, found := merged[endDate]
				if !found {
					merged[endDate] = record
					endDates = append(endDates, endDate)
					continue
				}
				// union of field assignments, later sources win
				for key, val := range record {
					kept[key] = val
				}
			}
		}

		for _, endDate := range endDates {
			record := research.normalizeRecord(merged[endDate])
			if record == nil {
				continue
			}
			sql, args := genius.UpsertSQL(ResearchTable, quarterKey, record)
			if _, err := dest.Exec(ctx, sql, args...); err != nil {
				log.Error().Stack().Err(err).Int64("Comcode", comcode).Int("EndDate", endDate).Msg("could not upsert research_quarter row")
				return err
			}
		}
	}
	return nil
}

func (research *Research) updateByMtime(ctx context.Context) error {
	src, err := database.Source()
	if err != nil {
		return err
	}
	dest, err := database.Dest()
	if err != nil {
		return err
	}

	timeslot := viper.GetInt("update.timeslot")
	var startDate time.Time
	withStart := timeslot >= 0
	if withStart {
		startDate = research.now().AddDate(0, 0, -timeslot).Truncate(24 * time.Hour)
	}

	for _, table := range genius.QuarterTables {
		var rows pgx.Rows
		if withStart {
			rows, err = src.Query(ctx, table.DistinctMtimeSQL(true), startDate)
		} else {
			rows, err = src.Query(ctx, table.DistinctMtimeSQL(false))
		}
		if err != nil {
			log.Error().Stack().Err(err).Str("Table", table.Name).Msg("could not enumerate mtime days")
			return err
		}
		days := make([]time.Time, 0, 32)
		for rows.Next() {
			var day time.Time
			if err := rows.Scan(&day); err != nil {
				rows.Close()
				log.Error().Stack().Err(err).Str("Table", table.Name).Msg("could not scan mtime day")
				return err
			}
			days = append(days, day)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		for _, day := range days {
			log.Debug().Str("Table", table.Name).Time("MtimeDay", day).Msg("re-extracting modified rows")
			dayRows, err := src.Query(ctx, table.SelectByMtimeSQL(), day)
			if err != nil {
				log.Error().Stack().Err(err).Str("Table", table.Name).Msg("could not query modified rows")
				return err
			}
			records, err := genius.RowsToRecords(dayRows)
			if err != nil {
				return err
			}
			for _, raw := range records {
				record := research.normalizeRecord(raw)
				if record == nil {
					continue
				}
				sql, args := genius.UpsertSQL(ResearchTable, quarterKey, record)
				if _, err := dest.Exec(ctx, sql, args...); err != nil {
					log.Error().Stack().Err(err).Str("Table", table.Name).Msg("could not upsert research_quarter row")
					return err
				}
			}
		}
	}
	return nil
}

// normalizeRecord converts a raw merged source row into its canonical
// research_quarter form. Rows of companies outside the configured universe
// are dropped.
func (research *Research) normalizeRecord(record genius.Record) genius.Record {
	comVal, ok := record["comcode"]
	if !ok {
		return nil
	}
	comInt, ok := genius.Int(comVal)
	if !ok {
		return nil
	}
	comcode := int64(comInt)
	bareCode, ok := research.maps.Comcode[comcode]
	if !ok {
		return nil
	}
	orderBookID, ok := research.maps.Stockcode[bareCode]
	if !ok {
		return nil
	}

	out := genius.Record{
		"comcode":   comcode,
		"stockcode": orderBookID,
	}
	for key, val := range record {
		switch key {
		case "comcode", "stockcode":
			// stockcode comes from the code map, never from the source row
		case "rpt_src":
			if s, ok := val.(string); ok {
				out[key] = s
			}
		case "announce_date":
			if d, ok := genius.DateInt(val); ok {
				out[key] = d
			}
		case "end_date":
			if d, ok := genius.DateInt(val); ok {
				out[key] = d
				out["rpt_year"] = d / 10000
				out["rpt_quarter"] = (d % 10000) / 300
			}
		default:
			if f, ok := genius.Float(val); ok {
				out[key] = f
			}
		}
	}

	// old filings store a zero revenue to mean "not reported"
	if rev, ok := out["revenue"].(float64); ok && rev == 0 {
		if _, ok := out["operating_revenue"]; ok {
			delete(out, "revenue")
		}
	}

	if _, ok := out["end_date"]; !ok {
		return nil
	}
	return out
}

// removeNullRptSrc deletes rows matched only by the indicator table: Genius
// records no rpt_src there, so a row without one never matched any of the
// three statement tables and is structurally incomplete
func (research *Research) removeNullRptSrc(ctx context.Context) error {
	dest, err := database.Dest()
	if err != nil {
		return err
	}
	tag, err := dest.Exec(ctx, "DELETE FROM "+ResearchTable+" WHERE rpt_src IS NULL")
	if err != nil {
		log.Error().Stack().Err(err).Msg("could not delete rpt_src-only rows")
		return err
	}
	log.Info().Int64("NumDeleted", tag.RowsAffected()).Msg("removed indicator-only quarter rows")
	return nil
}

func (research *Research) fillAnnounceDates(ctx context.Context) error {
	dest, err := database.Dest()
	if err != nil {
		return err
	}

	today, _ := genius.DateInt(research.now())
	var firstErr error
	for _, orderBookID := range research.maps.OrderBookIDs() {
		subLog := log.With().Str("OrderBookID", orderBookID).Logger()
		subLog.Debug().Msg("adjust announce dates")

		rows, err := dest.Query(ctx,
			"SELECT stockcode, comcode, end_date, announce_date, rpt_quarter, rpt_year FROM "+ResearchTable+
				" WHERE stockcode=$1 ORDER BY end_date DESC", orderBookID)
		if err != nil {
			subLog.Error().Stack().Err(err).Msg("could not query reports for announce adjustment")
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

		if err := AdjustAnnounceDates(reports, today); err != nil {
			// fatal for this stock's pass only
			subLog.Error().Stack().Err(err).Msg("could not adjust announce dates")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		for _, report := range reports {
			_, err := dest.Exec(ctx,
				"INSERT INTO "+ResearchTable+" (stockcode, comcode, end_date, announce_date, announce_to) VALUES ($1, $2, $3, $4, $5)"+
					" ON CONFLICT (stockcode, end_date) DO UPDATE SET announce_date=EXCLUDED.announce_date, announce_to=EXCLUDED.announce_to",
				report.Stockcode, report.Comcode, report.EndDate, report.AnnounceDate, report.AnnounceTo)
			if err != nil {
				subLog.Error().Stack().Err(err).Int("EndDate", report.EndDate).Msg("could not persist adjusted announce dates")
				return err
			}
		}
	}
	return firstErr
}
