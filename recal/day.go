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

package recal

import (
	"context"
	"time"

	"github.com/Jimmy9507/foundaments-data-recal/codemap"
	"github.com/Jimmy9507/foundaments-data-recal/database"
	"github.com/Jimmy9507/foundaments-data-recal/genius"

	"github.com/rs/zerolog/log"
)

const (
	// OrigDayTable keeps the vendor's day rows untouched for comparison
	OrigDayTable = "orig_day"
	// RecalDayTable carries the recomputed, announce-date-aware ratios
	RecalDayTable = "recal_day"
)

// dayKey is the upsert key of both day tables
var dayKey = []string{"stockcode", "tradedate"}

// Recalculator rebuilds one stock's day-level valuation ratios from the
// vendor day rows and the finalized quarter reports
type Recalculator struct {
	orderBookID string
	innerCode   int64
	qm          *QuarterMetrics
}

// NewRecalculator resolves the stock's inner_code and loads its quarter
// history. A missing inner_code is fatal for the stock's job.
func NewRecalculator(ctx context.Context, maps *codemap.Maps, orderBookID string) (*Recalculator, error) {
	innerCode, err := maps.InnerCode(orderBookID)
	if err != nil {
		return nil, err
	}
	reports, err := LoadQuarterReports(ctx, orderBookID)
	if err != nil {
		return nil, err
	}
	return &Recalculator{
		orderBookID: orderBookID,
		innerCode:   innerCode,
		qm:          NewQuarterMetrics(orderBookID, reports),
	}, nil
}

// Run walks the stock's day rows oldest first, writes the vendor values to
// orig_day and the recomputed ratios to recal_day. When first is false only
// days newer than the last recalculated day are processed.
func (recalc *Recalculator) Run(ctx context.Context, first bool) error {
	subLog := log.With().Str("OrderBookID", recalc.orderBookID).Logger()

	dest, err := database.Dest()
	if err != nil {
		return err
	}

	prices, err := recalc.closingPrices(ctx)
	if err != nil {
		return err
	}

	var since time.Time
	haveSince := false
	if !first {
		since, haveSince, err = recalc.latestDate(ctx)
		if err != nil {
			return err
		}
	}
	records, err := recalc.dayRows(ctx, since, haveSince)
	if err != nil {
		return err
	}
	subLog.Debug().Int("Rows", len(records)).Msg("recalculating day rows")

	// rows arrive newest first; walk oldest first so each day sees only
	// reports announced up to that point
	for idx := len(records) - 1; idx >= 0; idx-- {
		record := records[idx]
		tradingDate, ok := genius.DateInt(record["tradedate"])
		if !ok {
			continue
		}
		record["tradedate"] = tradingDate
		record["stockcode"] = recalc.orderBookID

		sql, args := genius.UpsertSQL(OrigDayTable, dayKey, record)
		if _, err := dest.Exec(ctx, sql, args...); err != nil {
			subLog.Error().Stack().Err(err).Int("TradeDate", tradingDate).Msg("could not upsert orig_day row")
			return err
		}

		bundle := recalc.qm.Get(tradingDate)
		closingPrice, haveClose := prices[tradingDate]
		applyRatios(record, bundle, recalc.qm, tradingDate, closingPrice, haveClose)

		sql, args = genius.UpsertSQL(RecalDayTable, dayKey, record)
		if _, err := dest.Exec(ctx, sql, args...); err != nil {
			subLog.Error().Stack().Err(err).Int("TradeDate", tradingDate).Msg("could not upsert recal_day row")
			return err
		}
	}
	return nil
}

// latestDate returns the newest already-recalculated trading day of this
// stock as a date for comparison against the source's trd_date column
func (recalc *Recalculator) latestDate(ctx context.Context) (time.Time, bool, error) {
	dest, err := database.Dest()
	if err != nil {
		return time.Time{}, false, err
	}
	rows, err := dest.Query(ctx,
		"SELECT MAX(tradedate) AS tradedate FROM "+OrigDayTable+" WHERE stockcode=$1",
		recalc.orderBookID)
	if err != nil {
		return time.Time{}, false, err
	}
	records, err := genius.RowsToRecords(rows)
	if err != nil {
		return time.Time{}, false, err
	}
	if len(records) == 0 {
		return time.Time{}, false, nil
	}
	latest, ok := genius.DateInt(records[0]["tradedate"])
	if !ok {
		// MAX over an empty set is NULL
		return time.Time{}, false, nil
	}
	return time.Date(latest/10000, time.Month(latest/100%100), latest%100, 0, 0, 0, 0, time.UTC), true, nil
}

func (recalc *Recalculator) dayRows(ctx context.Context, since time.Time, haveSince bool) ([]genius.Record, error) {
	source, err := database.Source()
	if err != nil {
		return nil, err
	}
	sql := genius.Day.SelectByInnerCodeSQL(haveSince)
	args := []interface{}{recalc.innerCode}
	if haveSince {
		args = append(args, since)
	}
	rows, err := source.Query(ctx, sql, args...)
	if err != nil {
		log.Error().Stack().Err(err).Str("OrderBookID", recalc.orderBookID).Msg("could not query day rows")
		return nil, err
	}
	return genius.RowsToRecords(rows)
}

// closingPrices loads the stock's full close-price history keyed by trading
// day
func (recalc *Recalculator) closingPrices(ctx context.Context) (map[int]float64, error) {
	source, err := database.Source()
	if err != nil {
		return nil, err
	}
	rows, err := source.Query(ctx,
		"SELECT tradedate, tclose FROM stk_mkt WHERE inner_code=$1 AND isvalid=1",
		recalc.innerCode)
	if err != nil {
		log.Error().Stack().Err(err).Str("OrderBookID", recalc.orderBookID).Msg("could not query closing prices")
		return nil, err
	}
	records, err := genius.RowsToRecords(rows)
	if err != nil {
		return nil, err
	}
	prices := make(map[int]float64, len(records))
	for _, record := range records {
		tradedate, dateOK := genius.DateInt(record["tradedate"])
		tclose, closeOK := genius.Float(record["tclose"])
		if !dateOK || !closeOK {
			continue
		}
		prices[tradedate] = tclose
	}
	return prices, nil
}
