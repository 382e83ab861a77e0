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

package fiscal_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Jimmy9507/foundaments-data-recal/fiscal"
)

var _ = Describe("Fiscal calendar", func() {
	DescribeTable("period end dates",
		func(year int, quarter int, expected int) {
			Expect(fiscal.PeriodEnd(year, quarter)).To(Equal(expected))
		},
		Entry("Q1", 2022, 1, 20220331),
		Entry("Q2", 2022, 2, 20220630),
		Entry("Q3", 2022, 3, 20220930),
		Entry("Q4", 2022, 4, 20221231),
	)

	DescribeTable("year and quarter from end date",
		func(endDate int, expectedYear int, expectedQuarter int) {
			year, quarter := fiscal.YearQuarter(endDate)
			Expect(year).To(Equal(expectedYear))
			Expect(quarter).To(Equal(expectedQuarter))
		},
		Entry("Q1", 20210331, 2021, 1),
		Entry("Q2", 20210630, 2021, 2),
		Entry("Q3", 20210930, 2021, 3),
		Entry("Q4", 20211231, 2021, 4),
	)

	DescribeTable("candidate period ends per trading date",
		func(tradingDate int, expected []int) {
			Expect(fiscal.LatestEnds(tradingDate)).To(Equal(expected))
		},
		Entry("early January, annual season not over",
			20230110, []int{20230331, 20221231, 20220930}),
		Entry("late April, still inside the annual window",
			20230428, []int{20230331, 20221231, 20220930}),
		Entry("May, only Q1 can be latest",
			20230505, []int{20230331}),
		Entry("June boundary",
			20230630, []int{20230331}),
		Entry("July, H1 window open",
			20230715, []int{20230630, 20230331}),
		Entry("September, H1 window closed",
			20230905, []int{20230630}),
		Entry("October, Q3 window open",
			20231012, []int{20230930, 20230630}),
		Entry("December, only Q3 can be latest",
			20231201, []int{20230930}),
		Entry("mid October boundary",
			20161020, []int{20160930, 20160630}),
		Entry("first of November boundary",
			20161101, []int{20160930}),
		Entry("February, three candidates",
			20160210, []int{20160331, 20151231, 20150930}),
	)

	It("orders candidates most recent first", func() {
		for _, tradingDate := range []int{20230110, 20230715, 20231012} {
			ends := fiscal.LatestEnds(tradingDate)
			for idx := 1; idx < len(ends); idx++ {
				Expect(ends[idx]).To(BeNumerically("<", ends[idx-1]))
			}
		}
	})
})
