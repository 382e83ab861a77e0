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
	"fmt"
	"os"

	"github.com/Jimmy9507/foundaments-data-recal/common"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Databases
	viper.BindEnv("data.source.url", "FDRECAL_SOURCE_URL")
	rootCmd.PersistentFlags().String("source-url", "", "Genius source database connection string")
	viper.BindPFlag("data.source.url", rootCmd.PersistentFlags().Lookup("source-url"))

	viper.BindEnv("data.dest.url", "FDRECAL_DEST_URL")
	rootCmd.PersistentFlags().String("dest-url", "", "Destination database connection string")
	viper.BindPFlag("data.dest.url", rootCmd.PersistentFlags().Lookup("dest-url"))

	// Universe
	viper.BindEnv("instruments", "FDRECAL_INSTRUMENTS")
	rootCmd.PersistentFlags().StringSlice("instruments", []string{}, "Instrument CSV files defining the stock universe")
	viper.BindPFlag("instruments", rootCmd.PersistentFlags().Lookup("instruments"))

	// Incremental window
	rootCmd.PersistentFlags().Int("timeslot", 1, "Days to look back for modified source rows; negative forces a full rebuild")
	viper.BindPFlag("update.timeslot", rootCmd.PersistentFlags().Lookup("timeslot"))

	// Logging configuration
	viper.BindEnv("log.level", "FDRECAL_LOG_LEVEL")
	rootCmd.PersistentFlags().String("log-level", "info", "Logging level")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.BindEnv("log.report_caller", "FDRECAL_LOG_REPORT_CALLER")
	rootCmd.PersistentFlags().Bool("log-report-caller", false, "Log function name that called log statement")
	viper.BindPFlag("log.report_caller", rootCmd.PersistentFlags().Lookup("log-report-caller"))

	viper.BindEnv("log.output", "FDRECAL_LOG_OUTPUT")
	rootCmd.PersistentFlags().String("log-output", "stdout", "Write logs to specified output one of: file path, `stdout`, or `stderr`")
	viper.BindPFlag("log.output", rootCmd.PersistentFlags().Lookup("log-output"))

	rootCmd.PersistentFlags().Bool("log-pretty", false, "Print logs in human readable form")
	viper.BindPFlag("log.pretty", rootCmd.PersistentFlags().Lookup("log-pretty"))
}

var rootCmd = &cobra.Command{
	Use:     "fdrecal",
	Version: common.CurrentVersion.String(),
	Short:   "fdrecal rebuilds fundamental data without look-ahead bias",
	Long: `fdrecal consolidates quarterly financial statements from the Genius
database and recomputes day-level valuation ratios so that every value
reflects only reports publicly announced on or before its trading day.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
