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

package recal_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Jimmy9507/foundaments-data-recal/fiscal"
	"github.com/Jimmy9507/foundaments-data-recal/quarter"
	"github.com/Jimmy9507/foundaments-data-recal/recal"
)

func quarterReport(year int, q int, announceDate int, metrics map[string]float64) *quarter.Report {
	return &quarter.Report{
		Stockcode:    "000001.XSHE",
		Comcode:      100231,
		EndDate:      fiscal.PeriodEnd(year, q),
		AnnounceDate: announceDate,
		RptYear:      year,
		RptQuarter:   q,
		Metrics:      metrics,
	}
}

var _ = Describe("QuarterMetrics", func() {
	Context("with an empty history", func() {
		It("always returns the empty bundle", func() {
			qm := recal.NewQuarterMetrics("000001.XSHE", nil)
			Expect(qm.Get(20220505).Empty()).To(BeTrue())
		})
	})

	Context("as-of selection", func() {
		var qm *recal.QuarterMetrics

		BeforeEach(func() {
			// end_date descending, the newest quarter announced 2022-04-26
			qm = recal.NewQuarterMetrics("000001.XSHE", []*quarter.Report{
				quarterReport(2022, 1, 20220426, map[string]float64{"revenue": 50, "net_profit": 10}),
				quarterReport(2021, 4, 20220320, map[string]float64{"revenue": 200, "net_profit": 45}),
				quarterReport(2021, 3, 20211028, map[string]float64{"revenue": 150, "net_profit": 32}),
			})
		})

		It("returns empty before the first announcement", func() {
			Expect(qm.Get(20211010).Empty()).To(BeTrue())
		})

		It("never selects a report announced after the trading day", func() {
			// 2022-03-10: the Q1 and annual filings are still pending, the
			// Q3 report remains the as-of view
			bundle := qm.Get(20220310)
			Expect(bundle.Empty()).To(BeFalse())
			Expect(bundle.EndDate).To(Equal(20210930))
		})

		It("selects the newest announced candidate", func() {
			bundle := qm.Get(20220427)
			Expect(bundle.EndDate).To(Equal(20220331))
		})

		It("returns empty when the only candidate period is unannounced", func() {
			// May: only Q1 2022 may be the latest; it was announced in
			// April, so it is selected
			Expect(qm.Get(20220505).EndDate).To(Equal(20220331))

			// a year later nothing newer exists, so no candidate matches
			Expect(qm.Get(20230505).Empty()).To(BeTrue())
		})

		It("serves any date order", func() {
			Expect(qm.Get(20220427).EndDate).To(Equal(20220331))
			Expect(qm.Get(20211101).EndDate).To(Equal(20210930))
			Expect(qm.Get(20220427).EndDate).To(Equal(20220331))
		})
	})

	Context("four-straight aggregation", func() {
		It("short-circuits on an annual report", func() {
			qm := recal.NewQuarterMetrics("000001.XSHE", []*quarter.Report{
				quarterReport(2021, 4, 20220320, map[string]float64{"net_profit": 100}),
			})
			bundle := qm.Get(20220321)
			val, ok := bundle.Value("straight_net_profit")
			Expect(ok).To(BeTrue())
			Expect(val).To(Equal(100.0))
		})

		It("computes current plus prior annual minus same quarter prior year", func() {
			qm := recal.NewQuarterMetrics("000001.XSHE", []*quarter.Report{
				quarterReport(2022, 2, 20220830, map[string]float64{"net_profit": 30}),
				quarterReport(2022, 1, 20220426, map[string]float64{"net_profit": 12}),
				quarterReport(2021, 4, 20220320, map[string]float64{"net_profit": 80}),
				quarterReport(2021, 3, 20211028, map[string]float64{"net_profit": 60}),
				quarterReport(2021, 2, 20210830, map[string]float64{"net_profit": 20}),
			})
			bundle := qm.Get(20220901)
			Expect(bundle.EndDate).To(Equal(20220630))
			val, ok := bundle.Value("straight_net_profit")
			Expect(ok).To(BeTrue())
			Expect(val).To(Equal(90.0))
		})

		It("skips the aggregate when a required neighbor is a gap placeholder", func() {
			// 2021 Q2 is missing; the same-quarter-prior-year slot is a
			// placeholder and disqualifies the rolling sum
			qm := recal.NewQuarterMetrics("000001.XSHE", []*quarter.Report{
				quarterReport(2022, 2, 20220830, map[string]float64{"net_profit": 30}),
				quarterReport(2022, 1, 20220426, map[string]float64{"net_profit": 12}),
				quarterReport(2021, 4, 20220320, map[string]float64{"net_profit": 80}),
				quarterReport(2021, 3, 20211028, map[string]float64{"net_profit": 60}),
				quarterReport(2021, 1, 20210428, map[string]float64{"net_profit": 8}),
			})
			bundle := qm.Get(20220901)
			Expect(bundle.EndDate).To(Equal(20220630))
			_, ok := bundle.Value("straight_net_profit")
			Expect(ok).To(BeFalse())
		})

		It("skips the aggregate when history is too short", func() {
			qm := recal.NewQuarterMetrics("000001.XSHE", []*quarter.Report{
				quarterReport(2022, 2, 20220830, map[string]float64{"net_profit": 30}),
				quarterReport(2022, 1, 20220426, map[string]float64{"net_profit": 12}),
			})
			bundle := qm.Get(20220901)
			_, ok := bundle.Value("straight_net_profit")
			Expect(ok).To(BeFalse())
		})
	})

	Context("four-latest annualization", func() {
		DescribeTable("scales the accumulation by quarter",
			func(q int, announceDate int, tradingDate int, expected float64) {
				qm := recal.NewQuarterMetrics("000001.XSHE", []*quarter.Report{
					quarterReport(2022, q, announceDate, map[string]float64{"revenue": 75}),
				})
				bundle := qm.Get(tradingDate)
				val, ok := bundle.Value("latest_revenue")
				Expect(ok).To(BeTrue())
				Expect(val).To(BeNumerically("~", expected, 1e-9))
			},
			Entry("Q1 times four", 1, 20220426, 20220505, 300.0),
			Entry("H1 times two", 2, 20220830, 20220901, 150.0),
			Entry("Q3 times four thirds", 3, 20221028, 20221101, 100.0),
			Entry("annual as-is", 4, 20230320, 20230321, 75.0),
		)
	})

	Context("pass-through metrics", func() {
		It("always sets cash_total and copies balance metrics", func() {
			qm := recal.NewQuarterMetrics("000001.XSHE", []*quarter.Report{
				quarterReport(2021, 4, 20220320, map[string]float64{
					"cash":                  40,
					"cash_equivalent":       10,
					"interest_bearing_debt": 500,
					"ebitda":                77,
					"book_value_per_share":  3.5,
				}),
			})
			bundle := qm.Get(20220325)

			cashTotal, ok := bundle.Value("cash_total")
			Expect(ok).To(BeTrue())
			Expect(cashTotal).To(Equal(50.0))

			debt, ok := bundle.Value("interest_bearing_debt")
			Expect(ok).To(BeTrue())
			Expect(debt).To(Equal(500.0))

			_, ok = bundle.Value("net_profit_parent_company")
			Expect(ok).To(BeFalse())
		})

		It("sets cash_total to zero when both cash metrics are absent", func() {
			qm := recal.NewQuarterMetrics("000001.XSHE", []*quarter.Report{
				quarterReport(2021, 4, 20220320, map[string]float64{"net_profit": 5}),
			})
			cashTotal, ok := qm.Get(20220325).Value("cash_total")
			Expect(ok).To(BeTrue())
			Expect(cashTotal).To(Equal(0.0))
		})
	})

	Context("latest annual report", func() {
		It("returns the prior calendar year's annual report", func() {
			qm := recal.NewQuarterMetrics("000001.XSHE", []*quarter.Report{
				quarterReport(2022, 1, 20220426, map[string]float64{"net_profit_parent_company": 12}),
				quarterReport(2021, 4, 20220320, map[string]float64{"net_profit_parent_company": 45}),
				quarterReport(2021, 3, 20211028, nil),
			})
			annual := qm.LatestAnnualReport(20220601)
			Expect(annual).ToNot(BeNil())
			Expect(annual.EndDate).To(Equal(20211231))

			Expect(qm.LatestAnnualReport(20210601)).To(BeNil())
		})
	})
})
