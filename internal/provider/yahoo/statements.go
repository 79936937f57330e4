package yahoo

import (
	"context"
	"math"
	"sort"
	"time"

	"yfmcp/internal/models"
	"yfmcp/internal/provider"
)

// statementModules maps a statement type to its quoteSummary module and the
// list key inside that module.
var statementModules = map[models.FinancialType]struct {
	module string
	list   string
}{
	models.FinancialIncomeStmt:            {"incomeStatementHistory", "incomeStatementHistory"},
	models.FinancialQuarterlyIncomeStmt:   {"incomeStatementHistoryQuarterly", "incomeStatementHistory"},
	models.FinancialBalanceSheet:          {"balanceSheetHistory", "balanceSheetStatements"},
	models.FinancialQuarterlyBalanceSheet: {"balanceSheetHistoryQuarterly", "balanceSheetStatements"},
	models.FinancialCashflow:              {"cashflowStatementHistory", "cashflowStatements"},
	models.FinancialQuarterlyCashflow:     {"cashflowStatementHistoryQuarterly", "cashflowStatements"},
}

// Statement fetches one financial statement and reshapes the upstream's
// period-object list into a column-major table, most recent column first.
func (c *Client) Statement(ctx context.Context, ticker string, statementType models.FinancialType) (*provider.StatementTable, error) {
	const op = "yahoo.statement"

	spec, ok := statementModules[statementType]
	if !ok {
		return nil, provider.Errorf(provider.KindUnknown, op, "unsupported statement type %s", statementType)
	}

	result, err := c.quoteSummary(ctx, op, ticker, spec.module)
	if err != nil {
		return nil, err
	}

	var section map[string]any
	found, err := module(result, spec.module, &section)
	if err != nil {
		return nil, provider.NewError(provider.KindMalformed, op, err)
	}
	if !found {
		return &provider.StatementTable{}, nil
	}

	periods, _ := section[spec.list].([]any)
	if len(periods) == 0 {
		return &provider.StatementTable{}, nil
	}

	type periodData struct {
		date  time.Time
		items map[string]any
	}

	parsed := make([]periodData, 0, len(periods))
	lineItems := make([]string, 0, 32)
	seen := make(map[string]bool)

	for _, p := range periods {
		obj, ok := p.(map[string]any)
		if !ok {
			continue
		}

		pd := periodData{items: make(map[string]any, len(obj))}
		for key, value := range obj {
			switch key {
			case "endDate":
				if ts := unwrapFloat(value); !math.IsNaN(ts) {
					pd.date = time.Unix(int64(ts), 0).UTC()
				}
			case "maxAge":
				// Upstream cache hint, not a line item.
			default:
				pd.items[key] = unwrapAny(value)
				if !seen[key] {
					seen[key] = true
					lineItems = append(lineItems, key)
				}
			}
		}
		if pd.date.IsZero() {
			continue
		}
		parsed = append(parsed, pd)
	}

	if len(parsed) == 0 {
		return &provider.StatementTable{}, nil
	}

	sort.Slice(parsed, func(i, j int) bool { return parsed[i].date.After(parsed[j].date) })
	sort.Strings(lineItems)

	table := &provider.StatementTable{
		Columns: make([]provider.StatementColumn, len(parsed)),
		Rows:    make([]provider.StatementRow, len(lineItems)),
	}
	for i, pd := range parsed {
		table.Columns[i] = provider.StatementColumn{Date: pd.date}
	}
	for r, item := range lineItems {
		row := provider.StatementRow{
			LineItem: item,
			Values:   make([]any, len(parsed)),
		}
		for i, pd := range parsed {
			row.Values[i] = pd.items[item]
		}
		table.Rows[r] = row
	}

	return table, nil
}
