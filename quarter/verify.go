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
	"fmt"

	"github.com/Jimmy9507/foundaments-data-recal/database"
	"github.com/Jimmy9507/foundaments-data-recal/genius"

	"github.com/rs/zerolog/log"
)

// VerifyUniverse checks every stock and logs each violation so one broken
// stock cannot hide the others; any violation makes the audit return an
// error.
func VerifyUniverse(ctx context.Context, orderBookIDs []string) error {
	failed := 0
	for _, orderBookID := range orderBookIDs {
		if err := VerifyDeclare(ctx, orderBookID); err != nil {
			log.Error().Stack().Err(err).Str("OrderBookID", orderBookID).Msg("announce-date invariant violated")
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("announce-date invariants violated for %d of %d stocks", failed, len(orderBookIDs))
	}
	return nil
}

// VerifyDeclare asserts the announce-date invariants of strategy_quarter
// for one stock: scanning by end_date descending, announce_date strictly
// decreases, each row's announce_to equals the next newer row's
// announce_date, and every end_date precedes its announce_date. A failure
// indicates upstream data corruption and is fatal.
func VerifyDeclare(ctx context.Context, orderBookID string) error {
	dest, err := database.Dest()
	if err != nil {
		return err
	}

	rows, err := dest.Query(ctx,
		"SELECT announce_date, announce_to, end_date FROM "+StrategyTable+
			" WHERE stockcode=$1 ORDER BY end_date DESC", orderBookID)
	if err != nil {
		return err
	}
	records, err := genius.RowsToRecords(rows)
	if err != nil {
		return err
	}

	return verifyReports(orderBookID, records)
}

func verifyReports(orderBookID string, records []genius.Record) error {
	preAnnDate := 0
	for _, record := range records {
		annDate, annOK := genius.DateInt(record["announce_date"])
		annTo, toOK := genius.DateInt(record["announce_to"])
		endDate, endOK := genius.DateInt(record["end_date"])
		if !annOK || !toOK || !endOK {
			return fmt.Errorf("%s: missing announce_date, announce_to or end_date in row with end_date %d", orderBookID, endDate)
		}
		if endDate >= annDate {
			return fmt.Errorf("%s: announce_date %d not after end_date %d", orderBookID, annDate, endDate)
		}
		if preAnnDate == 0 {
			preAnnDate = annDate
			continue
		}
		if annDate >= preAnnDate {
			return fmt.Errorf("%s: announce_date %d of end_date %d is not before the newer filing's %d", orderBookID, annDate, endDate, preAnnDate)
		}
		if annTo != preAnnDate {
			return fmt.Errorf("%s: announce_to %d of end_date %d does not match the newer filing's announce_date %d", orderBookID, annTo, endDate, preAnnDate)
		}
		preAnnDate = annDate
	}
	return nil
}
