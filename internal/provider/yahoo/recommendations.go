package yahoo

import (
	"context"
	"time"

	"yfmcp/internal/provider"
)

// gradeHistoryResponse is the upgradeDowngradeHistory module payload.
type gradeHistoryResponse struct {
	History []struct {
		EpochGradeDate int64  `json:"epochGradeDate"`
		Firm           string `json:"firm"`
		ToGrade        string `json:"toGrade"`
		FromGrade      string `json:"fromGrade"`
		Action         string `json:"action"`
	} `json:"history"`
}

func (c *Client) gradeHistory(ctx context.Context, op, ticker string) (*gradeHistoryResponse, error) {
	result, err := c.quoteSummary(ctx, op, ticker, "upgradeDowngradeHistory")
	if err != nil {
		return nil, err
	}

	var gh gradeHistoryResponse
	found, err := module(result, "upgradeDowngradeHistory", &gh)
	if err != nil {
		return nil, provider.NewError(provider.KindMalformed, op, err)
	}
	if !found {
		return &gradeHistoryResponse{}, nil
	}
	return &gh, nil
}

// Recommendations returns the full analyst ratings table, upstream order.
func (c *Client) Recommendations(ctx context.Context, ticker string) ([]provider.RecommendationRow, error) {
	const op = "yahoo.recommendations"

	gh, err := c.gradeHistory(ctx, op, ticker)
	if err != nil {
		return nil, err
	}

	rows := make([]provider.RecommendationRow, 0, len(gh.History))
	for _, h := range gh.History {
		rows = append(rows, provider.RecommendationRow{
			Date:      time.Unix(h.EpochGradeDate, 0).UTC(),
			Firm:      h.Firm,
			ToGrade:   h.ToGrade,
			FromGrade: h.FromGrade,
			Action:    h.Action,
		})
	}
	return rows, nil
}

// UpgradesDowngrades returns the raw grade-change history; windowing and
// per-firm dedup happen downstream.
func (c *Client) UpgradesDowngrades(ctx context.Context, ticker string) ([]provider.GradeChange, error) {
	const op = "yahoo.upgrades_downgrades"

	gh, err := c.gradeHistory(ctx, op, ticker)
	if err != nil {
		return nil, err
	}

	changes := make([]provider.GradeChange, 0, len(gh.History))
	for _, h := range gh.History {
		changes = append(changes, provider.GradeChange{
			Date:      time.Unix(h.EpochGradeDate, 0).UTC(),
			Firm:      h.Firm,
			ToGrade:   h.ToGrade,
			FromGrade: h.FromGrade,
			Action:    h.Action,
		})
	}
	return changes, nil
}
