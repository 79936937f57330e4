package normalize

import (
	"yfmcp/internal/models"
	"yfmcp/internal/provider"
)

// FinancialStatement transposes the column-major statement table into
// period-keyed line-item maps. Timestamp columns become YYYY-MM-DD labels,
// label columns keep their native string. Period order follows the
// provider's column order (most recent first).
func FinancialStatement(ticker string, statementType models.FinancialType, table *provider.StatementTable) *models.FinancialStatementResponse {
	if table.Empty() {
		return models.NewFinancialStatementResponse(ticker, statementType, nil)
	}

	columns := make([]models.StatementPeriod, len(table.Columns))
	for i, col := range table.Columns {
		label := col.Label
		if !col.Date.IsZero() {
			label = col.Date.Format(periodLayout)
		}
		columns[i] = models.StatementPeriod{
			Period: label,
			Items:  make(map[string]any, len(table.Rows)),
		}
	}

	for _, row := range table.Rows {
		for i := range columns {
			var raw any
			if i < len(row.Values) {
				raw = row.Values[i]
			}
			columns[i].Items[row.LineItem] = cellValue(raw)
		}
	}

	return models.NewFinancialStatementResponse(ticker, statementType, columns)
}
