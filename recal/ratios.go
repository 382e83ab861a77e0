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
	"math"

	"github.com/Jimmy9507/foundaments-data-recal/genius"
)

// applyRatios replaces the vendor's valuation ratios in record with values
// recomputed from the as-of quarter bundle. A ratio whose inputs are absent
// or whose denominator is zero is removed from the record, never written as
// zero. ev is the exception: it is always written, missing terms counting
// as zero.
func applyRatios(record genius.Record, bundle *Bundle, qm *QuarterMetrics, tradingDate int, closingPrice float64, haveClose bool) {
	marketCapRatio(record, bundle, "straight_net_profit", "pe_ratio")
	marketCapRatio(record, bundle, "straight_cash_flow_from_operating_activities", "pcf_ratio")
	marketCapRatio(record, bundle, "latest_cash_flow_from_operating_activities", "pcf_ratio_1")
	psRatio(record, bundle)
	marketCapRatio(record, bundle, "latest_net_profit_parent_company", "pe_ratio_2")
	ev(record, bundle)
	ev2(record, bundle)
	evToEBIT(record, bundle)
	marketCapRatio(record, bundle, "net_profit_parent_company", "pe_ratio_1")
	pegRatio(record, bundle, qm, tradingDate)
	marketCapRatio(record, bundle, "straight_cash_equivalent_inc_net", "pcf_ratio_3")
	marketCapRatio(record, bundle, "latest_cash_equivalent_inc_net", "pcf_ratio_2")
	pbRatio(record, bundle, closingPrice, haveClose)
}

// round4 rounds half away from zero to four decimals, matching the vendor's
// published precision
func round4(val float64) float64 {
	return math.Round(val*10000) / 10000
}

// marketCapRatio sets name to market_cap divided by the named bundle
// aggregate
func marketCapRatio(record genius.Record, bundle *Bundle, bundleName string, name string) {
	marketCap, capOK := genius.Float(record["market_cap"])
	val, valOK := bundle.Value(bundleName)
	if !capOK || !valOK || val == 0 {
		delete(record, name)
		return
	}
	record[name] = round4(marketCap / val)
}

// psRatio divides market_cap by annualized revenue, falling back to
// operating_revenue when revenue is absent or zero
func psRatio(record genius.Record, bundle *Bundle) {
	marketCap, capOK := genius.Float(record["market_cap"])
	revenue, revOK := bundle.Value("latest_revenue")
	if !revOK || revenue == 0 {
		revenue, revOK = bundle.Value("latest_operating_revenue")
	}
	if !capOK || !revOK || revenue == 0 {
		delete(record, "ps_ratio")
		return
	}
	record["ps_ratio"] = round4(marketCap / revenue)
}

func ev(record genius.Record, bundle *Bundle) {
	evValue := 0.0
	if valStkRight, ok := genius.Float(record["val_of_stk_right"]); ok {
		evValue += valStkRight
	}
	if debt, ok := bundle.Value("interest_bearing_debt"); ok {
		evValue += debt
	}
	record["ev"] = evValue
}

// ev2 subtracts cash from the enterprise value computed just before it
func ev2(record genius.Record, bundle *Bundle) {
	evValue, _ := genius.Float(record["ev"])
	cashTotal, _ := bundle.Value("cash_total")
	record["ev_2"] = evValue - cashTotal
}

// evToEBIT keeps the vendor's column name; the denominator is ebitda
func evToEBIT(record genius.Record, bundle *Bundle) {
	ebitda, ok := bundle.Value("ebitda")
	if !ok || ebitda == 0 {
		delete(record, "ev_to_ebit")
		return
	}
	evValue, _ := genius.Float(record["ev"])
	record["ev_to_ebit"] = round4(evValue / ebitda)
}

// pegRatio divides the recomputed pe_ratio_2 by the year-over-year growth
// percentage of annualized net profit against the previous calendar year's
// annual report
func pegRatio(record genius.Record, bundle *Bundle, qm *QuarterMetrics, tradingDate int) {
	peRatio2, peOK := genius.Float(record["pe_ratio_2"])
	latestFour, fourOK := bundle.Value("latest_net_profit_parent_company")
	annualOK := false
	annualNppc := 0.0
	if annual := qm.LatestAnnualReport(tradingDate); annual != nil {
		annualNppc, annualOK = annual.Metric("net_profit_parent_company")
	}
	if !peOK || !fourOK || !annualOK || annualNppc == 0 {
		delete(record, "peg_ratio")
		return
	}
	growth := (latestFour - annualNppc) / annualNppc * 100
	if growth == 0 {
		delete(record, "peg_ratio")
		return
	}
	record["peg_ratio"] = round4(peRatio2 / growth)
}

// pbRatio divides the closing price by book value per share
func pbRatio(record genius.Record, bundle *Bundle, closingPrice float64, haveClose bool) {
	bookValue, ok := bundle.Value("book_value_per_share")
	if !ok || bookValue == 0 || !haveClose {
		delete(record, "pb_ratio")
		return
	}
	record["pb_ratio"] = round4(closingPrice / bookValue)
}
