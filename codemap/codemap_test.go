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

package codemap_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pashagolub/pgxmock"
	"github.com/spf13/viper"

	"github.com/Jimmy9507/foundaments-data-recal/codemap"
	"github.com/Jimmy9507/foundaments-data-recal/database"
)

func writeInstrumentFile(dir string, name string, content string) string {
	fn := filepath.Join(dir, name)
	Expect(os.WriteFile(fn, []byte(content), 0o600)).To(Succeed())
	return fn
}

var _ = Describe("Load", func() {
	var dbConn pgxmock.PgxConnIface

	BeforeEach(func() {
		var err error
		dbConn, err = pgxmock.NewConn()
		Expect(err).To(BeNil())
		database.SetPools(dbConn, dbConn)
	})

	AfterEach(func() {
		viper.Set("instruments", []string{})
	})

	It("builds the identifier maps from CSV and stk_code", func() {
		dir := GinkgoT().TempDir()
		fn := writeInstrumentFile(dir, "instruments.csv",
			"OrderBookID,SymbolName\n000001.XSHE,PingAn\n600000.XSHG,PuFa\n")
		viper.Set("instruments", []string{fn})

		dbConn.ExpectQuery("SELECT inner_code, comcode, stockcode FROM stk_code").
			WillReturnRows(pgxmock.NewRows([]string{"inner_code", "comcode", "stockcode"}).
				AddRow(int64(11), int64(100231), "000001").
				AddRow(int64(12), int64(100413), "600000"))

		maps, err := codemap.Load(context.Background())
		Expect(err).To(BeNil())

		Expect(maps.Stockcode).To(HaveKeyWithValue("000001", "000001.XSHE"))
		Expect(maps.Comcode).To(HaveKeyWithValue(int64(100231), "000001"))
		Expect(maps.Innercode).To(HaveKeyWithValue(int64(12), "600000"))

		innerCode, err := maps.InnerCode("600000.XSHG")
		Expect(err).To(BeNil())
		Expect(innerCode).To(Equal(int64(12)))

		Expect(maps.OrderBookIDs()).To(Equal([]string{"000001.XSHE", "600000.XSHG"}))
		Expect(maps.Comcodes()).To(Equal([]int64{100231, 100413}))
	})

	It("fails on a malformed instrument row instead of truncating the universe", func() {
		dir := GinkgoT().TempDir()
		fn := writeInstrumentFile(dir, "corrupt.csv",
			"OrderBookID,SymbolName\n000001.XSHE,PingAn\n\"600000.XSHG,broken\n000002.XSHE,Wanke\n")
		viper.Set("instruments", []string{fn})

		_, err := codemap.Load(context.Background())
		Expect(err).ToNot(BeNil())
	})

	It("fails on an instrument file without an OrderBookID column", func() {
		dir := GinkgoT().TempDir()
		fn := writeInstrumentFile(dir, "broken.csv", "Symbol,Name\n000001,PingAn\n")
		viper.Set("instruments", []string{fn})

		_, err := codemap.Load(context.Background())
		Expect(err).To(MatchError(codemap.ErrNoOrderBookCol))
	})

	It("fails on an empty universe", func() {
		viper.Set("instruments", []string{})
		_, err := codemap.Load(context.Background())
		Expect(err).To(MatchError(codemap.ErrEmptyUniverse))
	})

	It("reports a missing inner_code as an error", func() {
		dir := GinkgoT().TempDir()
		fn := writeInstrumentFile(dir, "instruments.csv", "OrderBookID\n000001.XSHE\n")
		viper.Set("instruments", []string{fn})

		dbConn.ExpectQuery("SELECT inner_code, comcode, stockcode FROM stk_code").
			WillReturnRows(pgxmock.NewRows([]string{"inner_code", "comcode", "stockcode"}))

		maps, err := codemap.Load(context.Background())
		Expect(err).To(BeNil())

		_, err = maps.InnerCode("000001.XSHE")
		Expect(err).ToNot(BeNil())
	})
})
