package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// HolderData is the tagged union carried by HolderInfoResponse: the
// major_holders variant is a single column-to-value mapping, every other
// holder type is a sequence of per-holder records. Exactly one side is set.
type HolderData struct {
	Summary map[string]any
	Records []map[string]any
}

// MarshalJSON emits whichever variant is populated.
func (d HolderData) MarshalJSON() ([]byte, error) {
	if d.Summary != nil {
		return json.Marshal(d.Summary)
	}
	if d.Records != nil {
		return json.Marshal(d.Records)
	}
	// Neither variant set; treat as an empty record list.
	return []byte("[]"), nil
}

// UnmarshalJSON restores the variant from the JSON shape: an object selects
// Summary, an array selects Records.
func (d *HolderData) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return fmt.Errorf("holder data: empty input")
	}
	switch trimmed[0] {
	case '{':
		d.Records = nil
		return json.Unmarshal(data, &d.Summary)
	case '[':
		d.Summary = nil
		return json.Unmarshal(data, &d.Records)
	case 'n': // null
		d.Summary = nil
		d.Records = nil
		return nil
	}
	return fmt.Errorf("holder data: expected object or array, got %q", trimmed[0])
}

// HolderInfoResponse carries ownership data whose shape depends on the
// holder type.
type HolderInfoResponse struct {
	Ticker     string     `json:"ticker"`
	HolderType string     `json:"holder_type"`
	Data       HolderData `json:"data"`
}

// NewHolderSummaryResponse builds the mapping-shaped variant. Only the
// major_holders type is legal here.
func NewHolderSummaryResponse(ticker string, summary map[string]any) *HolderInfoResponse {
	if summary == nil {
		summary = map[string]any{}
	}
	return &HolderInfoResponse{
		Ticker:     ticker,
		HolderType: string(HolderMajorHolders),
		Data:       HolderData{Summary: summary},
	}
}

// NewHolderRecordsResponse builds the sequence-shaped variant used by every
// holder type other than major_holders.
func NewHolderRecordsResponse(ticker string, holderType HolderType, records []map[string]any) *HolderInfoResponse {
	if records == nil {
		records = []map[string]any{}
	}
	return &HolderInfoResponse{
		Ticker:     ticker,
		HolderType: string(holderType),
		Data:       HolderData{Records: records},
	}
}
