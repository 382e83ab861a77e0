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

// Package codemap resolves the three identifier spaces the pipeline deals
// with: exchange-qualified order book ids (000001.XSHE), bare stock codes
// (000001) and the Genius-internal comcode / inner_code identifiers.
package codemap

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/Jimmy9507/foundaments-data-recal/database"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	ErrEmptyUniverse  = errors.New("instrument files define an empty stock universe")
	ErrNoOrderBookCol = errors.New("instrument file has no OrderBookID column")
)

// Maps holds the identifier bijections. It is built once at startup and
// passed to jobs as an immutable context; workers only read it.
type Maps struct {
	// Stockcode maps a bare stock code to its order book id
	Stockcode map[string]string
	// Comcode maps a Genius comcode to a bare stock code
	Comcode map[int64]string
	// Innercode maps a Genius inner_code to a bare stock code
	Innercode map[int64]string
	// OrderBookID maps an order book id to its inner_code
	OrderBookID map[string]int64
}

// Load reads the stock universe from the configured instrument CSVs and
// resolves comcode / inner_code through the stk_code lookup table on the
// source database
func Load(ctx context.Context) (*Maps, error) {
	maps := &Maps{
		Stockcode:   make(map[string]string),
		Comcode:     make(map[int64]string),
		Innercode:   make(map[int64]string),
		OrderBookID: make(map[string]int64),
	}

	for _, fn := range viper.GetStringSlice("instruments") {
		if err := readInstrumentFile(fn, maps.Stockcode); err != nil {
			log.Error().Stack().Err(err).Str("FileName", fn).Msg("could not read instrument file")
			return nil, err
		}
	}
	if len(maps.Stockcode) == 0 {
		log.Error().Stack().Msg("no instruments found in configured files")
		return nil, ErrEmptyUniverse
	}

	if err := maps.loadStkCode(ctx); err != nil {
		return nil, err
	}

	// compose orderbookid -> inner_code
	for innerCode, stockcode := range maps.Innercode {
		orderBookID, ok := maps.Stockcode[stockcode]
		if !ok {
			continue
		}
		maps.OrderBookID[orderBookID] = innerCode
	}

	log.Info().Int("NumInstruments", len(maps.Stockcode)).Int("NumComcodes", len(maps.Comcode)).Msg("loaded code maps")
	return maps, nil
}

func readInstrumentFile(fn string, stockcodes map[string]string) error {
	fh, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer fh.Close()

	reader := csv.NewReader(fh)
	header, err := reader.Read()
	if err != nil {
		return err
	}
	obCol := -1
	for idx, name := range header {
		if name == "OrderBookID" {
			obCol = idx
			break
		}
	}
	if obCol == -1 {
		return ErrNoOrderBookCol
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// a malformed row must not silently shrink the universe
			return err
		}
		orderBookID := strings.TrimSpace(row[obCol])
		if orderBookID == "" {
			continue
		}
		bare := strings.SplitN(orderBookID, ".", 2)[0]
		stockcodes[bare] = orderBookID
	}
	return nil
}

func (maps *Maps) loadStkCode(ctx context.Context) error {
	conn, err := database.Source()
	if err != nil {
		return err
	}

	bareCodes := make([]string, 0, len(maps.Stockcode))
	for code := range maps.Stockcode {
		bareCodes = append(bareCodes, code)
	}
	sort.Strings(bareCodes)

	rows, err := conn.Query(ctx, "SELECT inner_code, comcode, stockcode FROM stk_code WHERE stockcode = ANY($1)", bareCodes)
	if err != nil {
		log.Error().Stack().Err(err).Msg("could not query stk_code from source database")
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var innerCode, comcode int64
		var stockcode string
		if err := rows.Scan(&innerCode, &comcode, &stockcode); err != nil {
			log.Error().Stack().Err(err).Msg("could not scan stk_code row")
			return err
		}
		maps.Innercode[innerCode] = stockcode
		maps.Comcode[comcode] = stockcode
	}
	return rows.Err()
}

// OrderBookIDFor maps a bare stock code to its order book id
func (maps *Maps) OrderBookIDFor(bareCode string) (string, bool) {
	orderBookID, ok := maps.Stockcode[bareCode]
	return orderBookID, ok
}

// InnerCode resolves an order book id to the Genius inner_code; absence is
// fatal for any job working on that stock
func (maps *Maps) InnerCode(orderBookID string) (int64, error) {
	innerCode, ok := maps.OrderBookID[orderBookID]
	if !ok {
		return 0, fmt.Errorf("order book id %s has no inner_code in the genius database", orderBookID)
	}
	return innerCode, nil
}

// Comcodes returns every known comcode in ascending order; per-stock loops
// iterate this so runs are deterministic
func (maps *Maps) Comcodes() []int64 {
	comcodes := make([]int64, 0, len(maps.Comcode))
	for comcode := range maps.Comcode {
		comcodes = append(comcodes, comcode)
	}
	sort.Slice(comcodes, func(i, j int) bool { return comcodes[i] < comcodes[j] })
	return comcodes
}

// OrderBookIDs returns the universe's order book ids in ascending order
func (maps *Maps) OrderBookIDs() []string {
	ids := make([]string, 0, len(maps.Stockcode))
	for _, orderBookID := range maps.Stockcode {
		ids = append(ids, orderBookID)
	}
	sort.Strings(ids)
	return ids
}
