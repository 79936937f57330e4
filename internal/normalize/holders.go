package normalize

import (
	"yfmcp/internal/models"
)

// MajorHolders wraps the column-to-value breakdown in the mapping-shaped
// variant. Empty data is a success with an empty mapping.
func MajorHolders(ticker string, summary map[string]any) *models.HolderInfoResponse {
	return models.NewHolderSummaryResponse(ticker, summary)
}

// HolderRecords wraps per-holder rows in the sequence-shaped variant used by
// every holder type other than major_holders. Empty data is a success with an
// empty sequence.
func HolderRecords(ticker string, holderType models.HolderType, records []map[string]any) *models.HolderInfoResponse {
	return models.NewHolderRecordsResponse(ticker, holderType, records)
}
