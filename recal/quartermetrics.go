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

// Package recal rebuilds the day-level valuation ratios from the finalized
// quarter reports so every value reflects only filings publicly announced
// on or before its trading day.
package recal

import (
	"context"

	"github.com/Jimmy9507/foundaments-data-recal/database"
	"github.com/Jimmy9507/foundaments-data-recal/fiscal"
	"github.com/Jimmy9507/foundaments-data-recal/genius"
	"github.com/Jimmy9507/foundaments-data-recal/quarter"

	lru "github.com/hashicorp/golang-lru"
	"github.com/rs/zerolog/log"
)

// quarterMetricColumns are the strategy_quarter columns the recomputation
// formulas consume
const quarterMetricColumns = "announce_date, rpt_year, rpt_quarter, end_date, " +
	"net_profit_parent_company, net_profit, operating_revenue, cash_flow_from_operating_activities, " +
	"current_assets, cash, cash_equivalent, interest_bearing_debt, ebitda, revenue, " +
	"cash_equivalent_inc_net, book_value_per_share"

var straightMetricNames = []string{
	"net_profit", "cash_flow_from_operating_activities", "cash",
	"cash_equivalent", "cash_equivalent_inc_net",
}

var latestMetricNames = []string{
	"cash_flow_from_operating_activities", "cash", "cash_equivalent",
	"revenue", "operating_revenue", "net_profit_parent_company",
	"cash_equivalent_inc_net",
}

// bundleCacheSize bounds the memoized bundles; a sequential day walk keeps
// one report live at a time, so a handful of entries is plenty
const bundleCacheSize = 8

// Bundle is the as-of aggregate QuarterMetrics.Get returns for one trading
// day. Absent metrics are omitted, not zero.
type Bundle struct {
	EndDate int
	values  map[string]float64
}

func newBundle() *Bundle {
	return &Bundle{values: make(map[string]float64)}
}

// Value returns the named aggregate (straight_*, latest_*, cash_total or a
// pass-through metric)
func (bundle *Bundle) Value(name string) (float64, bool) {
	if bundle.values == nil {
		return 0, false
	}
	val, ok := bundle.values[name]
	return val, ok
}

// Empty reports whether no as-of report was available for the trading day
func (bundle *Bundle) Empty() bool {
	return len(bundle.values) == 0
}

func (bundle *Bundle) set(name string, val float64) {
	bundle.values[name] = val
}

var emptyBundle = &Bundle{}

// QuarterMetrics is a per-stock as-of view over finalized quarter reports.
// It is immutable after construction apart from the bundle cache, so one
// instance can serve any sequence of trading dates.
type QuarterMetrics struct {
	orderBookID    string
	reports        []*quarter.Report
	indexByEndDate map[int]int
	bundles        *lru.Cache
}

// LoadQuarterReports reads one stock's rows from strategy_quarter in
// end_date descending order. strategy_quarter is used because it has filled
// announce dates and no late-announced rows.
func LoadQuarterReports(ctx context.Context, orderBookID string) ([]*quarter.Report, error) {
	dest, err := database.Dest()
	if err != nil {
		return nil, err
	}
	rows, err := dest.Query(ctx,
		"SELECT "+quarterMetricColumns+" FROM "+quarter.StrategyTable+
			" WHERE stockcode=$1 ORDER BY end_date DESC", orderBookID)
	if err != nil {
		log.Error().Stack().Err(err).Str("OrderBookID", orderBookID).Msg("could not query strategy_quarter")
		return nil, err
	}
	records, err := genius.RowsToRecords(rows)
	if err != nil {
		return nil, err
	}
	reports := make([]*quarter.Report, 0, len(records))
	for _, record := range records {
		reports = append(reports, quarter.ReportFromRecord(record))
	}
	return reports, nil
}

// NewQuarterMetrics builds the lookup over reports ordered by end_date
// descending. Gaps in the (year, quarter) sequence are filled with
// placeholder reports so fixed-offset indexing (current+4 for the same
// quarter one year back, current+quarter for the prior annual) stays valid.
func NewQuarterMetrics(orderBookID string, reports []*quarter.Report) *QuarterMetrics {
	cache, _ := lru.New(bundleCacheSize)
	qm := &QuarterMetrics{
		orderBookID: orderBookID,
		reports:     fillGaps(reports),
		bundles:     cache,
	}
	qm.indexByEndDate = make(map[int]int, len(qm.reports))
	for idx, report := range qm.reports {
		qm.indexByEndDate[report.EndDate] = idx
	}
	if len(qm.reports) == 0 {
		log.Info().Str("OrderBookID", orderBookID).Msg("empty quarter metrics for stock")
	}
	return qm
}

func fillGaps(raw []*quarter.Report) []*quarter.Report {
	if len(raw) == 0 {
		return nil
	}
	latest := raw[0]
	first := raw[len(raw)-1]

	filled := make([]*quarter.Report, 0, len(raw))
	rawIndex := 0
	for year := latest.RptYear; year >= first.RptYear; year-- {
		for q := 4; q >= 1; q-- {
			if beforeYQ(year, q, first.RptYear, first.RptQuarter) ||
				beforeYQ(latest.RptYear, latest.RptQuarter, year, q) {
				continue
			}
			cur := raw[rawIndex]
			if cur.RptYear == year && cur.RptQuarter == q {
				filled = append(filled, cur)
				rawIndex++
				continue
			}
			filled = append(filled, &quarter.Report{
				RptYear:    year,
				RptQuarter: q,
				EndDate:    fiscal.PeriodEnd(year, q),
			})
		}
	}
	return filled
}

// beforeYQ reports whether (y1, q1) is an older fiscal period than (y2, q2)
func beforeYQ(y1, q1, y2, q2 int) bool {
	return y1 < y2 || (y1 == y2 && q1 < q2)
}

// Get returns the aggregate bundle for tradingDate: the metrics of the
// newest report announced on or before that day, restricted to the fiscal
// periods that could legally be the latest at that date. The empty bundle
// is returned when no candidate period has an announced report yet. The
// selection is recomputed per call, so callers may walk trading days in any
// order; repeated hits on the same report reuse the memoized bundle.
func (qm *QuarterMetrics) Get(tradingDate int) *Bundle {
	for _, endDate := range fiscal.LatestEnds(tradingDate) {
		idx, ok := qm.indexByEndDate[endDate]
		if !ok {
			continue
		}
		report := qm.reports[idx]
		if !report.Announced() {
			continue // placeholder
		}
		if report.AnnounceDate <= tradingDate {
			return qm.bundleAt(idx)
		}
	}
	return emptyBundle
}

func (qm *QuarterMetrics) bundleAt(index int) *Bundle {
	if cached, ok := qm.bundles.Get(index); ok {
		return cached.(*Bundle)
	}

	cur := qm.reports[index]
	bundle := newBundle()
	bundle.EndDate = cur.EndDate

	qm.fourStraight(index, bundle)
	qm.fourLatest(index, bundle)

	if debt, ok := cur.Metric("interest_bearing_debt"); ok {
		bundle.set("interest_bearing_debt", debt)
	}

	cashTotal := 0.0
	if cash, ok := cur.Metric("cash"); ok {
		cashTotal += cash
	}
	if cashEqui, ok := cur.Metric("cash_equivalent"); ok {
		cashTotal += cashEqui
	}
	bundle.set("cash_total", cashTotal)

	if ebitda, ok := cur.Metric("ebitda"); ok {
		bundle.set("ebitda", ebitda)
	}
	if nppc, ok := cur.Metric("net_profit_parent_company"); ok {
		bundle.set("net_profit_parent_company", nppc)
	}
	if bookValue, ok := cur.Metric("book_value_per_share"); ok {
		bundle.set("book_value_per_share", bookValue)
	}

	qm.bundles.Add(index, bundle)
	return bundle
}

// fourStraight computes the rolling trailing-four-quarter sums:
// current + prior annual - same quarter one year earlier. An annual report
// is the sum already. Placeholder neighbors disqualify the whole set.
func (qm *QuarterMetrics) fourStraight(index int, bundle *Bundle) {
	cur := qm.reports[index]
	if cur.RptQuarter == 4 {
		for _, name := range straightMetricNames {
			if val, ok := cur.Metric(name); ok {
				bundle.set("straight_"+name, val)
			}
		}
		return
	}

	annualIndex := index + cur.RptQuarter
	sameIndex := index + 4
	if annualIndex >= len(qm.reports) || sameIndex >= len(qm.reports) {
		return
	}
	annual := qm.reports[annualIndex]
	same := qm.reports[sameIndex]
	if !annual.Announced() || !same.Announced() {
		return
	}
	for _, name := range straightMetricNames {
		curVal, curOK := cur.Metric(name)
		annualVal, annualOK := annual.Metric(name)
		sameVal, sameOK := same.Metric(name)
		if !curOK || !annualOK || !sameOK {
			continue
		}
		bundle.set("straight_"+name, curVal+annualVal-sameVal)
	}
}

// fourLatest annualizes a partial-year accumulation by quarter count:
// Q1 x4, H1 x2, Q3 x4/3, annual as-is
func (qm *QuarterMetrics) fourLatest(index int, bundle *Bundle) {
	cur := qm.reports[index]
	for _, name := range latestMetricNames {
		val, ok := cur.Metric(name)
		if !ok {
			continue
		}
		switch cur.RptQuarter {
		case 4:
			bundle.set("latest_"+name, val)
		case 3:
			bundle.set("latest_"+name, val*4/3)
		case 2:
			bundle.set("latest_"+name, val*2)
		default:
			bundle.set("latest_"+name, val*4)
		}
	}
}

// LatestAnnualReport returns the annual report of the calendar year before
// tradingDate's, or nil. The result may be a placeholder; callers must
// check the metric they need.
func (qm *QuarterMetrics) LatestAnnualReport(tradingDate int) *quarter.Report {
	lastYear := tradingDate/10000 - 1
	idx, ok := qm.indexByEndDate[fiscal.PeriodEnd(lastYear, 4)]
	if !ok {
		return nil
	}
	return qm.reports[idx]
}
