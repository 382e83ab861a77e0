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
	"fmt"
	"sync/atomic"

	"github.com/Jimmy9507/foundaments-data-recal/codemap"
	"github.com/Jimmy9507/foundaments-data-recal/database"
	"github.com/Jimmy9507/foundaments-data-recal/genius"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 5

// UpdateDay recomputes the day-level ratios for every stock in the
// universe. Stocks are fanned out over a worker pool; a failing stock is
// logged and skipped so it cannot poison the rest, but any failure makes
// the whole run return an error.
func UpdateDay(ctx context.Context, maps *codemap.Maps, first bool) error {
	dest, err := database.Dest()
	if err != nil {
		return err
	}
	if _, err := dest.Exec(ctx, genius.CreateDayTableSQL(OrigDayTable)); err != nil {
		log.Error().Stack().Err(err).Msg("could not create orig_day")
		return err
	}
	if _, err := dest.Exec(ctx, genius.CreateDayTableSQL(RecalDayTable)); err != nil {
		log.Error().Stack().Err(err).Msg("could not create recal_day")
		return err
	}

	workers := viper.GetInt("update.workers")
	if workers <= 0 {
		workers = defaultWorkers
	}

	orderBookIDs := make(chan string)
	var failed int64

	group, ctx := errgroup.WithContext(ctx)
	for idx := 0; idx < workers; idx++ {
		group.Go(func() error {
			for orderBookID := range orderBookIDs {
				if err := recalStock(ctx, maps, orderBookID, first); err != nil {
					log.Error().Stack().Err(err).Str("OrderBookID", orderBookID).Msg("day recalculation failed for stock")
					atomic.AddInt64(&failed, 1)
				}
			}
			return nil
		})
	}

	total := 0
	for _, orderBookID := range maps.OrderBookIDs() {
		orderBookIDs <- orderBookID
		total++
	}
	close(orderBookIDs)

	if err := group.Wait(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("day recalculation failed for %d of %d stocks", failed, total)
	}
	log.Info().Int("Stocks", total).Msg("day recalculation finished")
	return nil
}

func recalStock(ctx context.Context, maps *codemap.Maps, orderBookID string, first bool) error {
	log.Info().Str("OrderBookID", orderBookID).Msg("recalculating stock")
	recalc, err := NewRecalculator(ctx, maps, orderBookID)
	if err != nil {
		return err
	}
	return recalc.Run(ctx, first)
}
