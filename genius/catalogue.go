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

package genius

// Income is the consolidated income statement table
var Income = &Table{
	Name:      "stk_income_gen",
	Filter:    statementFilter + ` AND startdate LIKE '%-01-01%'`,
	HasRptSrc: true,
	Columns: []Column{
		{Physical: "comcode", Canonical: "comcode"},
		{Physical: "rpt_src", Canonical: "rpt_src"},
		{Physical: "a_stockcode", Canonical: "stockcode"},
		{Physical: "declaredate", Canonical: "announce_date"},
		{Physical: "enddate", Canonical: "end_date"},
		{Physical: "P110100", Canonical: "revenue"},
		{Physical: "P110101", Canonical: "operating_revenue"},
		{Physical: "P110112", Canonical: "sales_discount"},
		{Physical: "P110200", Canonical: "total_expense"},
		{Physical: "P110202", Canonical: "cost_of_goods_sold"},
		{Physical: "P110302", Canonical: "sales_tax"},
		{Physical: "P120101", Canonical: "gross_profit"},
		{Physical: "P120201", Canonical: "other_operating_income"},
		{Physical: "P120302", Canonical: "inventory_shrinkage"},
		{Physical: "P120442", Canonical: "selling_expense"},
		{Physical: "P120412", Canonical: "operating_expense"},
		{Physical: "P120422", Canonical: "ga_expense"},
		{Physical: "P120432", Canonical: "financing_expense"},
		{Physical: "P120402", Canonical: "period_cost"},
		{Physical: "P120502", Canonical: "order_cost"},
		{Physical: "P120702", Canonical: "prospecting_cost"},
		{Physical: "P120601", Canonical: "exchange_gains_or_losses"},
		{Physical: "P131102", Canonical: "asset_depreciation"},
		{Physical: "P130101", Canonical: "profit_from_operation"},
		{Physical: "P130201", Canonical: "investment_income"},
		{Physical: "P130401", Canonical: "subsidy_income"},
		{Physical: "P130501", Canonical: "non_operating_revenue"},
		{Physical: "P130601", Canonical: "pnl_adjustment"},
		{Physical: "P130702", Canonical: "non_operating_expense"},
		{Physical: "P130712", Canonical: "disposal_loss_on_asset"},
		{Physical: "P130801", Canonical: "non_operating_net_profit"},
		{Physical: "P140101", Canonical: "profit_before_tax"},
		{Physical: "P140202", Canonical: "income_tax"},
		{Physical: "P140702", Canonical: "profit_from_ma"},
		{Physical: "P140801", Canonical: "unrealised_investment_losses"},
		{Physical: "P140901", Canonical: "income_tax_refund"},
		{Physical: "P150101", Canonical: "net_profit"},
		{Physical: "P160101", Canonical: "net_profit_parent_company"},
		{Physical: "P180101", Canonical: "net_profit_before_ma"},
		{Physical: "P210101", Canonical: "retained_profit_at_beginning"},
		{Physical: "P220101", Canonical: "profit_available_for_distribution"},
		{Physical: "P220302", Canonical: "statutory_welfare_reserve"},
		{Physical: "P220402", Canonical: "staff_incentive_welfare_reserve"},
		{Physical: "P220602", Canonical: "enterprise_expansion_reserve"},
		{Physical: "P230101", Canonical: "profit_available_for_owner_distribution"},
		{Physical: "P230202", Canonical: "preferred_stock_dividends"},
		{Physical: "P230302", Canonical: "other_surplus_reserve"},
		{Physical: "P230402", Canonical: "ordinary_stock_dividends"},
		{Physical: "P240602", Canonical: "loss_on_debt_restructuring"},
		{Physical: "P240801", Canonical: "basic_earnings_per_share"},
		{Physical: "P250100", Canonical: "other_income"},
		{Physical: "P260100", Canonical: "total_income"},
		{Physical: "P260101", Canonical: "total_income_parent_company"},
		{Physical: "P260102", Canonical: "total_income_minority"},
	},
}

// Balance is the consolidated balance sheet table
var Balance = &Table{
	Name:      "stk_bala_gen",
	Filter:    statementFilter,
	HasRptSrc: true,
	Columns: []Column{
		{Physical: "comcode", Canonical: "comcode"},
		{Physical: "rpt_src", Canonical: "rpt_src"},
		{Physical: "a_stockcode", Canonical: "stockcode"},
		{Physical: "declaredate", Canonical: "announce_date"},
		{Physical: "enddate", Canonical: "end_date"},
		{Physical: "B110101", Canonical: "cash"},
		{Physical: "B112201", Canonical: "financial_asset_held_for_trading"},
		{Physical: "B110201", Canonical: "cash_equivalent"},
		{Physical: "B110311", Canonical: "current_investment"},
		{Physical: "B110322", Canonical: "current_investment_reserve"},
		{Physical: "B110301", Canonical: "net_current_investment"},
		{Physical: "B110401", Canonical: "bill_receivable"},
		{Physical: "B110501", Canonical: "devidend_receivable"},
		{Physical: "B110601", Canonical: "interest_receivable"},
		{Physical: "B110711", Canonical: "accts_receivable"},
		{Physical: "B110721", Canonical: "other_accts_receivable"},
		{Physical: "B110732", Canonical: "bad_debt_reserve"},
		{Physical: "B110701", Canonical: "net_accts_receivable"},
		{Physical: "B110801", Canonical: "other_receivables"},
		{Physical: "B110901", Canonical: "prepayment"},
		{Physical: "B111001", Canonical: "subsidy_receivable"},
		{Physical: "B111101", Canonical: "prepaid_tax"},
		{Physical: "B111511", Canonical: "inventory"},
		{Physical: "B111522", Canonical: "inventory_depreciation_reserve"},
		{Physical: "B111501", Canonical: "net_inventory"},
		{Physical: "B111601", Canonical: "deferred_expense"},
		{Physical: "B111801", Canonical: "contract_work"},
		{Physical: "B112001", Canonical: "long_term_debt_due_one_year"},
		{Physical: "B112301", Canonical: "non_current_debt_due_one_year"},
		{Physical: "B112101", Canonical: "other_current_assets"},
		{Physical: "B110001", Canonical: "current_assets"},
		{Physical: "B120801", Canonical: "financial_asset_available_for_sale"},
		{Physical: "B120901", Canonical: "financial_asset_hold_to_maturity"},
		{Physical: "B121001", Canonical: "real_estate_investment"},
		{Physical: "B120111", Canonical: "long_term_equity_investment"},
		{Physical: "B121101", Canonical: "long_term_receivables"},
		{Physical: "B120121", Canonical: "long_term_debt_investment"},
		{Physical: "B120131", Canonical: "other_long_term_investment"},
		{Physical: "B120101", Canonical: "long_term_investment"},
		{Physical: "B120202", Canonical: "provision_long_term_investment"},
		{Physical: "B120301", Canonical: "net_long_term_equity_investment"},
		{Physical: "B120401", Canonical: "net_long_term_debt_investment"},
		{Physical: "B120001", Canonical: "net_long_term_investment"},
		{Physical: "B130111", Canonical: "cost_fixed_assets"},
		{Physical: "B130122", Canonical: "accumulated_depreciation"},
		{Physical: "B130131", Canonical: "net_val_fixed_assets"},
		{Physical: "B130142", Canonical: "depreciation_reserve"},
		{Physical: "B130101", Canonical: "net_fixed_assets"},
		{Physical: "B130201", Canonical: "engineer_material"},
		{Physical: "B130301", Canonical: "construction_in_progress"},
		{Physical: "B130401", Canonical: "fixed_asset_to_be_disposed"},
		{Physical: "B130601", Canonical: "capitalized_biological_assets"},
		{Physical: "B130701", Canonical: "oil_and_gas_assets"},
		{Physical: "B130001", Canonical: "total_fixed_assets"},
		{Physical: "B140101", Canonical: "intangible_assets"},
		{Physical: "B140601", Canonical: "impairment_intangible_assets"},
		{Physical: "B140701", Canonical: "goodwill"},
		{Physical: "B140301", Canonical: "deferred_charges"},
		{Physical: "B140401", Canonical: "long_term_deferred_expenses"},
		{Physical: "B140501", Canonical: "other_long_term_assets"},
		{Physical: "B140001", Canonical: "total_intangible_and_other_assets"},
		{Physical: "B150001", Canonical: "deferred_income_tax_assets"},
		{Physical: "B160101", Canonical: "other_non_current_assets"},
		{Physical: "B160000", Canonical: "non_current_assets"},
		{Physical: "B100000", Canonical: "total_assets"},
		{Physical: "B210101", Canonical: "short_term_loans"},
		{Physical: "B212301", Canonical: "financial_liabilities"},
		{Physical: "B210201", Canonical: "notes_payable"},
		{Physical: "B210301", Canonical: "accts_payable"},
		{Physical: "B210401", Canonical: "advance_from_customers"},
		{Physical: "B210501", Canonical: "proxy_sale_revenue"},
		{Physical: "B210601", Canonical: "payroll_payable"},
		{Physical: "B210701", Canonical: "walfare_payable"},
		{Physical: "B210801", Canonical: "dividend_payable"},
		{Physical: "B210901", Canonical: "tax_payable"},
		{Physical: "B212401", Canonical: "interest_payable"},
		{Physical: "B211101", Canonical: "other_fees_payable"},
		{Physical: "B211201", Canonical: "internal_accts_payable"},
		{Physical: "B211301", Canonical: "other_payable"},
		{Physical: "B211401", Canonical: "short_term_debt"},
		{Physical: "B211501", Canonical: "accrued_expense"},
		{Physical: "B211901", Canonical: "estimated_liabilities"},
		{Physical: "B212701", Canonical: "deferred_income"},
		{Physical: "B212001", Canonical: "long_term_liabilities_due_one_year"},
		{Physical: "B212101", Canonical: "other_current_liabilities"},
		{Physical: "B210001", Canonical: "current_liabilities"},
		{Physical: "B220101", Canonical: "long_term_loans"},
		{Physical: "B220201", Canonical: "bond_payable"},
		{Physical: "B220301", Canonical: "long_term_payable"},
		{Physical: "B220401", Canonical: "grants_received"},
		{Physical: "B220501", Canonical: "housing_revolving_funds"},
		{Physical: "B220601", Canonical: "other_long_term_liabilities"},
		{Physical: "B220001", Canonical: "long_term_liabilities"},
		{Physical: "B240001", Canonical: "deferred_income_tax_liabilities"},
		{Physical: "B250001", Canonical: "other_non_current_liabilities"},
		{Physical: "B270001", Canonical: "non_current_liabilities"},
		{Physical: "B200000", Canonical: "total_liabilities"},
		{Physical: "B310101", Canonical: "paid_in_capital"},
		{Physical: "B311202", Canonical: "invesment_refund"},
		{Physical: "B310201", Canonical: "capital_reserve"},
		{Physical: "B310301", Canonical: "surplus_reserve"},
		{Physical: "B310401", Canonical: "statutory_reserve"},
		{Physical: "B310501", Canonical: "welfare_reserve"},
		{Physical: "B310601", Canonical: "unrealised_investment_loss"},
		{Physical: "B310701", Canonical: "undistributed_profit"},
		{Physical: "B311101", Canonical: "equity_parent_company"},
		{Physical: "B300000", Canonical: "total_equity"},
		{Physical: "B400000", Canonical: "minority_interest"},
		{Physical: "B500000", Canonical: "total_equity_and_liabilities"},
		{Physical: "B290003", Canonical: "provision"},
		{Physical: "B221001", Canonical: "deferred_revenue"},
	},
}

// CashFlow is the consolidated cash flow statement table
var CashFlow = &Table{
	Name:      "stk_cash_gen",
	Filter:    statementFilter + ` AND startdate LIKE '%-01-01%'`,
	HasRptSrc: true,
	Columns: []Column{
		{Physical: "comcode", Canonical: "comcode"},
		{Physical: "rpt_src", Canonical: "rpt_src"},
		{Physical: "a_stockcode", Canonical: "stockcode"},
		{Physical: "declaredate", Canonical: "announce_date"},
		{Physical: "enddate", Canonical: "end_date"},
		{Physical: "C110101", Canonical: "cash_received_from_sales_of_goods"},
		{Physical: "C110201", Canonical: "rental_cash"},
		{Physical: "C110311", Canonical: "refunds_of_vat"},
		{Physical: "C110321", Canonical: "refunds_of_other_taxes"},
		{Physical: "C110301", Canonical: "refunds_of_taxes"},
		{Physical: "C110401", Canonical: "cash_from_other_operating_activities"},
		{Physical: "C110000", Canonical: "cash_from_operating_activities"},
		{Physical: "C120101", Canonical: "cash_paid_for_goods_and_services"},
		{Physical: "C120201", Canonical: "cash_paid_for_rental"},
		{Physical: "C120301", Canonical: "cash_paid_for_employee"},
		{Physical: "C120401", Canonical: "cash_paid_for_taxes"},
		{Physical: "C120501", Canonical: "cash_paid_for_other_operation_activities"},
		{Physical: "C120000", Canonical: "cash_paid_for_operation_activities"},
		{Physical: "C100000", Canonical: "cash_flow_from_operating_activities"},
		{Physical: "C210101", Canonical: "cash_received_from_disposal_of_investment"},
		{Physical: "C210211", Canonical: "cash_received_from_dividend"},
		{Physical: "C210221", Canonical: "cash_received_from_interest"},
		{Physical: "C210301", Canonical: "cash_received_from_disposal_of_asset"},
		{Physical: "C210401", Canonical: "cash_received_from_other_investment_activities"},
		{Physical: "C210000", Canonical: "cash_received_from_investment_activities"},
		{Physical: "C220101", Canonical: "cash_paid_for_asset"},
		{Physical: "C220201", Canonical: "cash_paid_to_acquire_investment"},
		{Physical: "C220301", Canonical: "cash_paid_for_other_investment_activities"},
		{Physical: "C220000", Canonical: "cash_paid_for_investment_activities"},
		{Physical: "C200000", Canonical: "cash_flow_from_investing_activities"},
		{Physical: "C310101", Canonical: "cash_received_from_equity_investors"},
		{Physical: "C310201", Canonical: "cash_received_from_debt_investors"},
		{Physical: "C310301", Canonical: "cash_received_from_investors"},
		{Physical: "C310401", Canonical: "cash_received_from_financial_institution_borrows"},
		{Physical: "C310501", Canonical: "cash_received_from_other_financing_activities"},
		{Physical: "C310000", Canonical: "cash_received_from_financing_activities"},
		{Physical: "C320101", Canonical: "cash_paid_for_debt"},
		{Physical: "C320301", Canonical: "cash_paid_for_dividend_and_interest"},
		{Physical: "C320701", Canonical: "cash_paid_for_other_financing_activities"},
		{Physical: "C320000", Canonical: "cash_paid_to_financing_activities"},
		{Physical: "C300000", Canonical: "cash_flow_from_financing_activities"},
		{Physical: "C410201", Canonical: "cash_equivalent_inc_net"},
	},
}

// Indicator holds pre-computed financial indicators. Genius does not
// record rpt_src on this table; research rows matched only by the indicator
// table are deleted by the pipeline.
var Indicator = &Table{
	Name:   "ana_stk_fin_idx",
	Filter: "isvalid=1",
	Columns: []Column{
		{Physical: "comcode", Canonical: "comcode"},
		{Physical: "a_stockcode", Canonical: "stockcode"},
		{Physical: "enddate", Canonical: "end_date"},
		{Physical: "EPSP", Canonical: "earnings_per_share"},
		{Physical: "EPSFD", Canonical: "fully_diluted_earnings_per_share"},
		{Physical: "EPSEED", Canonical: "diluted_earnings_per_share"},
		{Physical: "EPSNED", Canonical: "new_diluted_earnings_per_share"},
		{Physical: "EPSP_DED", Canonical: "adjusted_earnings_per_share"},
		{Physical: "EPSFD_DED", Canonical: "adjusted_fully_diluted_earnings_per_share"},
		{Physical: "EPSEED_DED", Canonical: "adjusted_diluted_earnings_per_share"},
		{Physical: "BPS", Canonical: "book_value_per_share"},
		{Physical: "BPSNED", Canonical: "new_diluted_book_value_per_share"},
		{Physical: "PS_NET_VAL", Canonical: "operating_cash_flow_per_share"},
		{Physical: "PS_OTR", Canonical: "operating_total_revenue_per_share"},
		{Physical: "PS_OR", Canonical: "operating_revenue_per_share"},
		{Physical: "PS_CR", Canonical: "capital_reserve_per_share"},
		{Physical: "PS_LR", Canonical: "earned_reserve_per_share"},
		{Physical: "PS_UP", Canonical: "undistributed_profit_per_share"},
		{Physical: "PS_RE", Canonical: "retained_earnings_per_share"},
		{Physical: "PS_CN", Canonical: "cash_flow_from_operations_per_share"},
		{Physical: "PS_EBIT", Canonical: "ebit_per_share"},
		{Physical: "PS_COM_CF", Canonical: "free_cash_flow_company_per_share"},
		{Physical: "PS_SH_CF", Canonical: "free_cash_flow_equity_per_share"},
		{Physical: "PS_CASH_BT", Canonical: "dividend_per_share"},
		{Physical: "ROEA", Canonical: "return_on_equity"},
		{Physical: "ROER", Canonical: "return_on_equity_weighted_average"},
		{Physical: "ROED", Canonical: "return_on_equity_diluted"},
		{Physical: "ROEA_DED", Canonical: "adjusted_return_on_equity_average"},
		{Physical: "ROER_DED", Canonical: "adjusted_return_on_equity_weighted_average"},
		{Physical: "ROED_DED", Canonical: "adjusted_return_on_equity_diluted"},
		{Physical: "ROA", Canonical: "return_on_asset"},
		{Physical: "ROA_NP", Canonical: "return_on_asset_net_profit"},
		{Physical: "ROIC", Canonical: "return_on_invested_capital"},
		{Physical: "ROE_YEAR", Canonical: "annual_return_on_equity"},
		{Physical: "ROA_YEAR", Canonical: "annual_return_on_asset"},
		{Physical: "ROA_NYEAR", Canonical: "annual_return_on_asset_net_profit"},
		{Physical: "SEL_NINT", Canonical: "net_profit_margin"},
		{Physical: "SEL_RINT", Canonical: "gross_profit_margin"},
		{Physical: "SEL_COST", Canonical: "cost_to_sales"},
		{Physical: "TR_NP", Canonical: "net_profit_to_revenue"},
		{Physical: "TR_TP", Canonical: "profit_from_operation_to_revenue"},
		{Physical: "TR_EBIT", Canonical: "ebit_to_revenue"},
		{Physical: "TR_TC", Canonical: "expense_to_revenue"},
		{Physical: "TP_ONI", Canonical: "operating_profit_to_profit_before_tax"},
		{Physical: "TP_VNI", Canonical: "invesment_profit_to_profit_before_tax"},
		{Physical: "TP_OON", Canonical: "non_operating_profit_to_profit_before_tax"},
		{Physical: "TP_TAX", Canonical: "income_tax_to_profit_before_tax"},
		{Physical: "TP_DNP", Canonical: "adjusted_profit_to_total_profit"},
		{Physical: "CAP_LAB", Canonical: "debt_to_asset_ratio"},
		{Physical: "CAP_RIG", Canonical: "equity_multiplier"},
		{Physical: "CAP_FLO", Canonical: "current_asset_to_total_asset"},
		{Physical: "CAP_NFL", Canonical: "non_current_asset_to_total_asset"},
		{Physical: "CAP_SA", Canonical: "tangible_asset_to_total_asset"},
		{Physical: "CAP_ILAB", Canonical: "interest_bearing_debt_to_capital"},
		{Physical: "CAP_FLO_F", Canonical: "current_debt_to_total_debt"},
		{Physical: "CAP_FLO_N", Canonical: "non_current_debt_to_total_debt"},
		{Physical: "LAB_FLO", Canonical: "current_ratio"},
		{Physical: "LAB_SLO", Canonical: "quick_ratio"},
		{Physical: "LAB_NSO", Canonical: "super_quick_ratio"},
		{Physical: "LAB_PR", Canonical: "debt_to_equity_ratio"},
		{Physical: "LAB_OPR", Canonical: "equity_to_debt_ratio"},
		{Physical: "LAB_APR", Canonical: "equity_to_interest_bearing_debt"},
		{Physical: "LAB_TAN", Canonical: "tangible_asset_to_debt"},
		{Physical: "LAB_ITAN", Canonical: "tangible_asset_to_interest_bearing_debt"},
		{Physical: "LAB_NIAN", Canonical: "tangible_asset_to_net_debt"},
		{Physical: "LAB_EBIT", Canonical: "ebit_to_debt"},
		{Physical: "LAB_OC", Canonical: "ocf_to_debt"},
		{Physical: "LAB_IOC", Canonical: "ocf_to_interest_bearing_debt"},
		{Physical: "LAB_FOC", Canonical: "ocf_to_current_ratio"},
		{Physical: "LAB_LOC", Canonical: "ocf_to_net_debt"},
		{Physical: "LAB_IEBIT", Canonical: "time_interest_earned_ratio"},
		{Physical: "LAB_LO", Canonical: "long_term_debt_to_working_capital"},
		{Physical: "LAB_SRV", Canonical: "net_debt_to_stock_right"},
		{Physical: "LAB_ISRV", Canonical: "interest_bearing_debt_to_stock_right"},
		{Physical: "OPE_APR", Canonical: "account_payable_turnover_rate"},
		{Physical: "OPE_APC", Canonical: "account_payable_turnover_days"},
		{Physical: "OPE_ARC", Canonical: "account_receivable_turnover_days"},
		{Physical: "OPE_STCI", Canonical: "inventory_turnover"},
		{Physical: "OPE_ACI", Canonical: "account_receivable_turnover_rate"},
		{Physical: "OPE_FAI", Canonical: "current_asset_turnover"},
		{Physical: "OPE_FCI", Canonical: "fixed_asset_turnover"},
		{Physical: "OPE_TAI", Canonical: "total_asset_turnover"},
		{Physical: "RIS_EPS", Canonical: "inc_earnings_per_share"},
		{Physical: "RIS_EPSD", Canonical: "inc_diluted_earnings_per_share"},
		{Physical: "RIS_TR", Canonical: "inc_revenue"},
		{Physical: "RIS_OR", Canonical: "inc_operating_revenue"},
		{Physical: "RIS_OP", Canonical: "inc_gross_profit"},
		{Physical: "RIS_TP", Canonical: "inc_profit_before_tax"},
		{Physical: "RIS_NC", Canonical: "inc_cash_from_operations"},
		{Physical: "RIS_ROE", Canonical: "inc_return_on_equity"},
		{Physical: "RIS_NA", Canonical: "inc_book_per_share"},
		{Physical: "RIS_TA", Canonical: "inc_total_asset"},
		{Physical: "DU_ROE", Canonical: "du_return_on_equity"},
		{Physical: "DU_RS", Canonical: "du_equity_multiplier"},
		{Physical: "DU_TAC", Canonical: "du_asset_turnover_ratio"},
		{Physical: "DU_NP_TP", Canonical: "du_profit_margin"},
		{Physical: "DU_EBIT_OR", Canonical: "du_return_on_sales"},
		{Physical: "INC_A", Canonical: "non_recurring_profit_and_loss"},
		{Physical: "INC_B", Canonical: "adjusted_net_profit"},
		{Physical: "INC_F", Canonical: "ebit"},
		{Physical: "INC_G", Canonical: "ebitda"},
		{Physical: "BAL_A", Canonical: "invested_capital"},
		{Physical: "BAL_B", Canonical: "working_capital"},
		{Physical: "BAL_C", Canonical: "net_working_capital"},
		{Physical: "BAL_D", Canonical: "tangible_assets"},
		{Physical: "BAL_E", Canonical: "retained_earnings"},
		{Physical: "BAL_F", Canonical: "interest_bearing_debt"},
		{Physical: "BAL_G", Canonical: "net_debt"},
		{Physical: "BAL_H", Canonical: "non_interest_bearing_current_debt"},
		{Physical: "BAL_I", Canonical: "non_interest_bearing_non_current_debt"},
		{Physical: "BAL_J", Canonical: "fcff"},
		{Physical: "BAL_K", Canonical: "fcfe"},
		{Physical: "BAL_L", Canonical: "depreciation_and_amortization"},
	},
}

// Day is the day-level valuation indicator table
var Day = &Table{
	Name:   "ana_stk_val_idx",
	Filter: "isvalid=1",
	Columns: []Column{
		{Physical: "stockcode", Canonical: "stockcode"},
		{Physical: "trd_date", Canonical: "tradedate"},
		{Physical: "PE", Canonical: "pe_ratio"},
		{Physical: "PC", Canonical: "pcf_ratio"},
		{Physical: "PB", Canonical: "pb_ratio"},
		{Physical: "TCAP_1", Canonical: "market_cap"},
		{Physical: "TCAP_2", Canonical: "market_cap_2"},
		{Physical: "A_TCAP_1", Canonical: "a_share_market_val"},
		{Physical: "A_TCAP_2", Canonical: "a_share_market_val_2"},
		{Physical: "SRV", Canonical: "val_of_stk_right"},
		{Physical: "EV1", Canonical: "ev"},
		{Physical: "EV2", Canonical: "ev_2"},
		{Physical: "EV_EBIT", Canonical: "ev_to_ebit"},
		{Physical: "DIV_RATE", Canonical: "dividend_yield"},
		{Physical: "PE1", Canonical: "pe_ratio_1"},
		{Physical: "PE2", Canonical: "pe_ratio_2"},
		{Physical: "PEG", Canonical: "peg_ratio"},
		{Physical: "PC1", Canonical: "pcf_ratio_1"},
		{Physical: "PC2", Canonical: "pcf_ratio_2"},
		{Physical: "PC3", Canonical: "pcf_ratio_3"},
		{Physical: "PS", Canonical: "ps_ratio"},
	},
}

// QuarterTables lists the four sources merged into the quarter tables.
// Merge order is fixed: later tables win on key collision, giving every
// shared logical column a deterministic source.
var QuarterTables = []*Table{Income, Balance, CashFlow, Indicator}
