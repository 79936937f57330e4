package models

// FinancialType selects one of the six financial statement tables.
type FinancialType string

const (
	FinancialIncomeStmt            FinancialType = "income_stmt"
	FinancialQuarterlyIncomeStmt   FinancialType = "quarterly_income_stmt"
	FinancialBalanceSheet          FinancialType = "balance_sheet"
	FinancialQuarterlyBalanceSheet FinancialType = "quarterly_balance_sheet"
	FinancialCashflow              FinancialType = "cashflow"
	FinancialQuarterlyCashflow     FinancialType = "quarterly_cashflow"
)

// FinancialTypes lists every valid statement selector, in tool-schema order.
func FinancialTypes() []FinancialType {
	return []FinancialType{
		FinancialIncomeStmt,
		FinancialQuarterlyIncomeStmt,
		FinancialBalanceSheet,
		FinancialQuarterlyBalanceSheet,
		FinancialCashflow,
		FinancialQuarterlyCashflow,
	}
}

// Valid reports whether t is one of the six known statement types.
func (t FinancialType) Valid() bool {
	switch t {
	case FinancialIncomeStmt, FinancialQuarterlyIncomeStmt,
		FinancialBalanceSheet, FinancialQuarterlyBalanceSheet,
		FinancialCashflow, FinancialQuarterlyCashflow:
		return true
	}
	return false
}

// HolderType selects one of the six ownership data sets.
type HolderType string

const (
	HolderMajorHolders         HolderType = "major_holders"
	HolderInstitutionalHolders HolderType = "institutional_holders"
	HolderMutualFundHolders    HolderType = "mutualfund_holders"
	HolderInsiderTransactions  HolderType = "insider_transactions"
	HolderInsiderPurchases     HolderType = "insider_purchases"
	HolderInsiderRosterHolders HolderType = "insider_roster_holders"
)

// HolderTypes lists every valid holder selector, in tool-schema order.
func HolderTypes() []HolderType {
	return []HolderType{
		HolderMajorHolders,
		HolderInstitutionalHolders,
		HolderMutualFundHolders,
		HolderInsiderTransactions,
		HolderInsiderPurchases,
		HolderInsiderRosterHolders,
	}
}

// Valid reports whether t is one of the six known holder types.
func (t HolderType) Valid() bool {
	switch t {
	case HolderMajorHolders, HolderInstitutionalHolders, HolderMutualFundHolders,
		HolderInsiderTransactions, HolderInsiderPurchases, HolderInsiderRosterHolders:
		return true
	}
	return false
}

// RecommendationType selects between current analyst ratings and the
// upgrade/downgrade history.
type RecommendationType string

const (
	RecommendationCurrent            RecommendationType = "recommendations"
	RecommendationUpgradesDowngrades RecommendationType = "upgrades_downgrades"
)

// RecommendationTypes lists both valid selectors.
func RecommendationTypes() []RecommendationType {
	return []RecommendationType{RecommendationCurrent, RecommendationUpgradesDowngrades}
}

// Valid reports whether t is a known recommendation type.
func (t RecommendationType) Valid() bool {
	return t == RecommendationCurrent || t == RecommendationUpgradesDowngrades
}
