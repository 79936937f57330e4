package models

// StatementPeriod is one reporting-period column of a financial statement:
// the period label plus its line-item values. Values are float64, string or
// nil, mirroring the loosely typed upstream table.
type StatementPeriod struct {
	Period string
	Items  map[string]any
}

// FinancialStatementResponse holds one transposed statement table.
// Periods lists the period labels in provider column order (most recent
// first) and always matches the key set of Data.
type FinancialStatementResponse struct {
	Ticker        string                    `json:"ticker"`
	StatementType string                    `json:"statement_type"`
	Data          map[string]map[string]any `json:"data"`
	Periods       []string                  `json:"periods"`
}

// NewFinancialStatementResponse builds a response from ordered period columns,
// so Periods and the keys of Data cannot drift apart.
func NewFinancialStatementResponse(ticker string, statementType FinancialType, columns []StatementPeriod) *FinancialStatementResponse {
	data := make(map[string]map[string]any, len(columns))
	periods := make([]string, 0, len(columns))
	for _, col := range columns {
		items := col.Items
		if items == nil {
			items = map[string]any{}
		}
		periods = append(periods, col.Period)
		data[col.Period] = items
	}
	return &FinancialStatementResponse{
		Ticker:        ticker,
		StatementType: string(statementType),
		Data:          data,
		Periods:       periods,
	}
}
