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

package quarter_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Jimmy9507/foundaments-data-recal/fiscal"
	"github.com/Jimmy9507/foundaments-data-recal/quarter"
)

func report(year int, q int, announceDate int) *quarter.Report {
	return &quarter.Report{
		Stockcode:    "000001.XSHE",
		Comcode:      100231,
		EndDate:      fiscal.PeriodEnd(year, q),
		AnnounceDate: announceDate,
		RptYear:      year,
		RptQuarter:   q,
	}
}

var _ = Describe("AdjustAnnounceDates", func() {
	Context("with reports missing announce dates", func() {
		DescribeTable("synthesizes the window's last legal day",
			func(year int, q int, expected int) {
				reports := []*quarter.Report{report(year, q, 0)}
				Expect(quarter.AdjustAnnounceDates(reports, 20231115)).To(Succeed())
				Expect(reports[0].AnnounceDate).To(Equal(expected))
			},
			Entry("Q1 by April 30", 2022, 1, 20220430),
			Entry("H1 by August 31", 2022, 2, 20220831),
			Entry("Q3 by October 31", 2022, 3, 20221031),
			Entry("annual by April 30 next year", 2022, 4, 20230430),
		)

		It("uses today for the newest annual still inside its window", func() {
			reports := []*quarter.Report{report(2022, 4, 0)}
			Expect(quarter.AdjustAnnounceDates(reports, 20230310)).To(Succeed())
			Expect(reports[0].AnnounceDate).To(Equal(20230310))
		})

		It("does not use today once the annual window has closed", func() {
			reports := []*quarter.Report{report(2022, 4, 0)}
			Expect(quarter.AdjustAnnounceDates(reports, 20230601)).To(Succeed())
			Expect(reports[0].AnnounceDate).To(Equal(20230430))
		})

		It("reuses the Q1 filing date for an annual filed together with Q1", func() {
			reports := []*quarter.Report{
				report(2023, 1, 20230426),
				report(2022, 4, 0),
			}
			Expect(quarter.AdjustAnnounceDates(reports, 20230601)).To(Succeed())
			Expect(reports[1].AnnounceDate).To(Equal(20230426))
		})

		It("keeps the default annual date when the newer report is not Q1", func() {
			reports := []*quarter.Report{
				report(2023, 2, 20230815),
				report(2022, 4, 0),
			}
			// newest row is announced, so the annual is not the newest row
			// and today cannot apply either
			Expect(quarter.AdjustAnnounceDates(reports, 20230901)).To(Succeed())
			Expect(reports[1].AnnounceDate).To(Equal(20230430))
		})
	})

	Context("chaining announce_to", func() {
		It("links each row to the next newer filing", func() {
			reports := []*quarter.Report{
				report(2023, 1, 20230426),
				report(2022, 4, 20230426),
				report(2022, 3, 20221028),
			}
			Expect(quarter.AdjustAnnounceDates(reports, 20230601)).To(Succeed())
			Expect(reports[0].AnnounceTo).To(Equal(fiscal.MaxAnnounceTo))
			Expect(reports[1].AnnounceTo).To(Equal(20230426))
			Expect(reports[2].AnnounceTo).To(Equal(20230426))
		})
	})

	Context("with broken identity columns", func() {
		It("rejects a report without a stockcode", func() {
			broken := report(2022, 1, 20220420)
			broken.Stockcode = ""
			Expect(quarter.AdjustAnnounceDates([]*quarter.Report{broken}, 20230101)).ToNot(Succeed())
		})

		It("rejects a report without a comcode", func() {
			broken := report(2022, 1, 20220420)
			broken.Comcode = 0
			Expect(quarter.AdjustAnnounceDates([]*quarter.Report{broken}, 20230101)).ToNot(Succeed())
		})

		It("rejects a report without rpt_quarter", func() {
			broken := report(2022, 1, 20220420)
			broken.RptQuarter = 0
			Expect(quarter.AdjustAnnounceDates([]*quarter.Report{broken}, 20230101)).ToNot(Succeed())
		})
	})
})
