package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportEntry is one ranked row of the final report.
type ReportEntry struct {
	User          User          `json:"user"`
	Contributions Contributions `json:"contributions"`
	Score         Score         `json:"score"`
	SharePercent  int           `json:"share_percent"`
	Payout        float64       `json:"payout"`
}

// Report is the ranked result of one scoring run. Entries are sorted by
// total score descending and contain no zero scorers.
type Report struct {
	ID          string        `json:"id"`
	GeneratedAt time.Time     `json:"generated_at"`
	Window      Window        `json:"window"`
	TotalScore  int           `json:"total_score"`
	Balance     float64       `json:"balance,omitempty"`
	Entries     []ReportEntry `json:"entries"`
}

// NewReport creates an empty report for the given window.
func NewReport(window Window, balance float64) *Report {
	return &Report{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now(),
		Window:      window,
		Balance:     balance,
	}
}
