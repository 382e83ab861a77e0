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

	"github.com/Jimmy9507/foundaments-data-recal/quarter"
)

var _ = Describe("PruneLate", func() {
	It("keeps a history with strictly decreasing announce dates", func() {
		reports := []*quarter.Report{
			report(2023, 1, 20230426),
			report(2022, 4, 20230320),
			report(2022, 3, 20221028),
		}
		Expect(quarter.PruneLate(reports)).To(BeEmpty())
	})

	It("deletes a row announced after its newer neighbor", func() {
		reports := []*quarter.Report{
			report(2023, 1, 20230426),
			report(2022, 4, 20230505), // restated after the Q1 filing
			report(2022, 3, 20221028),
		}
		actions := quarter.PruneLate(reports)
		Expect(actions).To(HaveLen(2))

		Expect(actions[0].Delete).To(BeTrue())
		Expect(actions[0].EndDate).To(Equal(20221231))

		// the survivor below the gap covers the deleted row's window
		Expect(actions[1].Delete).To(BeFalse())
		Expect(actions[1].EndDate).To(Equal(20220930))
		Expect(actions[1].AnnounceTo).To(Equal(20230426))
	})

	It("deletes a row announced the same day as its newer neighbor", func() {
		reports := []*quarter.Report{
			report(2023, 1, 20230426),
			report(2022, 4, 20230426),
		}
		actions := quarter.PruneLate(reports)
		Expect(actions).To(HaveLen(1))
		Expect(actions[0].Delete).To(BeTrue())
		Expect(actions[0].EndDate).To(Equal(20221231))
	})

	It("collapses consecutive late rows onto one survivor", func() {
		reports := []*quarter.Report{
			report(2023, 1, 20230426),
			report(2022, 4, 20230505),
			report(2022, 3, 20230610),
			report(2022, 2, 20220830),
		}
		actions := quarter.PruneLate(reports)
		Expect(actions).To(HaveLen(3))
		Expect(actions[0].Delete).To(BeTrue())
		Expect(actions[1].Delete).To(BeTrue())
		Expect(actions[2].Delete).To(BeFalse())
		Expect(actions[2].EndDate).To(Equal(20220630))
		Expect(actions[2].AnnounceTo).To(Equal(20230426))
	})

	It("returns no actions for an empty history", func() {
		Expect(quarter.PruneLate(nil)).To(BeEmpty())
	})
})
