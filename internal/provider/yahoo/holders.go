package yahoo

import (
	"context"
	"time"

	"yfmcp/internal/models"
	"yfmcp/internal/provider"
)

// holderModules maps a record-shaped holder type to its quoteSummary module
// and the list key inside it. An empty list key marks a flat module whose
// whole object becomes a single record.
var holderModules = map[models.HolderType]struct {
	module string
	list   string
}{
	models.HolderInstitutionalHolders: {"institutionOwnership", "ownershipList"},
	models.HolderMutualFundHolders:    {"fundOwnership", "ownershipList"},
	models.HolderInsiderTransactions:  {"insiderTransactions", "transactions"},
	models.HolderInsiderPurchases:     {"netSharePurchaseActivity", ""},
	models.HolderInsiderRosterHolders: {"insiderHolders", "holders"},
}

// MajorHolders fetches the ownership breakdown summary.
func (c *Client) MajorHolders(ctx context.Context, ticker string) (map[string]any, error) {
	const op = "yahoo.major_holders"

	result, err := c.quoteSummary(ctx, op, ticker, "majorHoldersBreakdown")
	if err != nil {
		return nil, err
	}

	var section map[string]any
	found, err := module(result, "majorHoldersBreakdown", &section)
	if err != nil {
		return nil, provider.NewError(provider.KindMalformed, op, err)
	}
	if !found {
		return map[string]any{}, nil
	}

	summary := make(map[string]any, len(section))
	for key, value := range section {
		if key == "maxAge" {
			continue
		}
		summary[key] = unwrapAny(value)
	}
	return summary, nil
}

// HolderRecords fetches one record-shaped holder table.
func (c *Client) HolderRecords(ctx context.Context, ticker string, holderType models.HolderType) ([]map[string]any, error) {
	const op = "yahoo.holder_records"

	spec, ok := holderModules[holderType]
	if !ok {
		return nil, provider.Errorf(provider.KindUnknown, op, "unsupported holder type %s", holderType)
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
		return nil, nil
	}

	if spec.list == "" {
		record := flattenHolderRecord(section)
		if len(record) == 0 {
			return nil, nil
		}
		return []map[string]any{record}, nil
	}

	rows, _ := section[spec.list].([]any)
	records := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		obj, ok := row.(map[string]any)
		if !ok {
			continue
		}
		records = append(records, flattenHolderRecord(obj))
	}
	return records, nil
}

// flattenHolderRecord collapses value envelopes and renders date envelopes as
// YYYY-MM-DD strings, dropping the maxAge cache hint.
func flattenHolderRecord(obj map[string]any) map[string]any {
	record := make(map[string]any, len(obj))
	for key, value := range obj {
		if key == "maxAge" {
			continue
		}
		switch key {
		case "reportDate", "positionDirectDate", "latestTransDate", "startDate":
			record[key] = envelopeDate(value)
		default:
			record[key] = unwrapAny(value)
		}
	}
	return record
}

// envelopeDate turns a {raw: epochSeconds} envelope into a YYYY-MM-DD string,
// falling back to the flattened raw value when the epoch is absent.
func envelopeDate(value any) any {
	raw := unwrapAny(value)
	if epoch, ok := raw.(float64); ok {
		return time.Unix(int64(epoch), 0).UTC().Format("2006-01-02")
	}
	return raw
}
