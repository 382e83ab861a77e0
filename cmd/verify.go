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

package cmd

import (
	"context"

	"github.com/Jimmy9507/foundaments-data-recal/codemap"
	"github.com/Jimmy9507/foundaments-data-recal/common"
	"github.com/Jimmy9507/foundaments-data-recal/database"
	"github.com/Jimmy9507/foundaments-data-recal/quarter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the announce-date invariants of strategy_quarter",
	Run: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()
		ctx := context.Background()

		if err := database.Connect(ctx); err != nil {
			log.Fatal().Err(err).Msg("database connection failed")
		}

		maps, err := codemap.Load(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("could not load instrument code maps")
		}

		if err := quarter.VerifyUniverse(ctx, maps.OrderBookIDs()); err != nil {
			log.Fatal().Err(err).Msg("verification failed")
		}
		log.Info().Msg("all stocks verified")
	},
}
