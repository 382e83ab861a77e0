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
	"context"
	"regexp"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pashagolub/pgxmock"

	"github.com/Jimmy9507/foundaments-data-recal/database"
	"github.com/Jimmy9507/foundaments-data-recal/quarter"
)

var _ = Describe("VerifyDeclare", func() {
	var dbConn pgxmock.PgxConnIface

	verifySQL := regexp.QuoteMeta(
		"SELECT announce_date, announce_to, end_date FROM strategy_quarter WHERE stockcode=$1 ORDER BY end_date DESC")

	BeforeEach(func() {
		var err error
		dbConn, err = pgxmock.NewConn()
		Expect(err).To(BeNil())
		database.SetPools(dbConn, dbConn)
	})

	It("accepts a valid strictly decreasing history", func() {
		dbConn.ExpectQuery(verifySQL).WithArgs("000001.XSHE").WillReturnRows(
			pgxmock.NewRows([]string{"announce_date", "announce_to", "end_date"}).
				AddRow(20230426, 29991231, 20230331).
				AddRow(20230320, 20230426, 20221231).
				AddRow(20221028, 20230320, 20220930))
		Expect(quarter.VerifyDeclare(context.Background(), "000001.XSHE")).To(Succeed())
	})

	It("rejects a non-decreasing announce date", func() {
		dbConn.ExpectQuery(verifySQL).WithArgs("000001.XSHE").WillReturnRows(
			pgxmock.NewRows([]string{"announce_date", "announce_to", "end_date"}).
				AddRow(20230426, 29991231, 20230331).
				AddRow(20230505, 20230426, 20221231))
		Expect(quarter.VerifyDeclare(context.Background(), "000001.XSHE")).ToNot(Succeed())
	})

	It("rejects a broken announce_to chain", func() {
		dbConn.ExpectQuery(verifySQL).WithArgs("000001.XSHE").WillReturnRows(
			pgxmock.NewRows([]string{"announce_date", "announce_to", "end_date"}).
				AddRow(20230426, 29991231, 20230331).
				AddRow(20230320, 20230425, 20221231))
		Expect(quarter.VerifyDeclare(context.Background(), "000001.XSHE")).ToNot(Succeed())
	})

	It("rejects an announce date on or before its end date", func() {
		dbConn.ExpectQuery(verifySQL).WithArgs("000001.XSHE").WillReturnRows(
			pgxmock.NewRows([]string{"announce_date", "announce_to", "end_date"}).
				AddRow(20230331, 29991231, 20230331))
		Expect(quarter.VerifyDeclare(context.Background(), "000001.XSHE")).ToNot(Succeed())
	})

	It("accepts a stock with no rows", func() {
		dbConn.ExpectQuery(verifySQL).WithArgs("000001.XSHE").WillReturnRows(
			pgxmock.NewRows([]string{"announce_date", "announce_to", "end_date"}))
		Expect(quarter.VerifyDeclare(context.Background(), "000001.XSHE")).To(Succeed())
	})
})

var _ = Describe("VerifyUniverse", func() {
	var dbConn pgxmock.PgxConnIface

	verifySQL := regexp.QuoteMeta(
		"SELECT announce_date, announce_to, end_date FROM strategy_quarter WHERE stockcode=$1 ORDER BY end_date DESC")

	BeforeEach(func() {
		var err error
		dbConn, err = pgxmock.NewConn()
		Expect(err).To(BeNil())
		database.SetPools(dbConn, dbConn)
	})

	It("checks every stock before failing", func() {
		// the first stock is broken; the second must still be audited
		dbConn.ExpectQuery(verifySQL).WithArgs("000001.XSHE").WillReturnRows(
			pgxmock.NewRows([]string{"announce_date", "announce_to", "end_date"}).
				AddRow(20230426, 29991231, 20230331).
				AddRow(20230505, 20230426, 20221231))
		dbConn.ExpectQuery(verifySQL).WithArgs("600000.XSHG").WillReturnRows(
			pgxmock.NewRows([]string{"announce_date", "announce_to", "end_date"}).
				AddRow(20230426, 29991231, 20230331))

		err := quarter.VerifyUniverse(context.Background(), []string{"000001.XSHE", "600000.XSHG"})
		Expect(err).To(MatchError(ContainSubstring("1 of 2")))
		Expect(dbConn.ExpectationsWereMet()).To(Succeed())
	})

	It("passes a clean universe", func() {
		dbConn.ExpectQuery(verifySQL).WithArgs("000001.XSHE").WillReturnRows(
			pgxmock.NewRows([]string{"announce_date", "announce_to", "end_date"}))
		Expect(quarter.VerifyUniverse(context.Background(), []string{"000001.XSHE"})).To(Succeed())
	})
})
