package services

import (
	"sort"

	"github.com/alimgiray/contribscore/internal/models"
)

type ReportService struct {
	scoreService *ScoreService
}

func NewReportService(scoreService *ScoreService) *ReportService {
	return &ReportService{scoreService: scoreService}
}

// BuildReport scores every member, ranks them by total descending
// (stable, so equal totals keep the original member order), drops zero
// scorers and computes each remaining member's share of the total and
// of the optional monetary balance.
func (s *ReportService) BuildReport(window models.Window, members []models.MemberContributions, balance float64) *models.Report {
	report := models.NewReport(window, balance)

	entries := make([]models.ReportEntry, 0, len(members))
	for _, member := range members {
		score := s.scoreService.Calculate(member.Contributions)
		if score.Total == 0 {
			continue
		}
		entries = append(entries, models.ReportEntry{
			User:          member.User,
			Contributions: member.Contributions,
			Score:         score,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score.Total > entries[j].Score.Total
	})

	totalScore := 0
	for _, entry := range entries {
		totalScore += entry.Score.Total
	}
	report.TotalScore = totalScore

	for i := range entries {
		entries[i].SharePercent = SharePercentage(entries[i].Score.Total, totalScore)
		entries[i].Payout = Payout(entries[i].Score.Total, totalScore, balance)
	}
	report.Entries = entries

	return report
}

// SharePercentage returns floor(total/totalScore*100). A zero totalScore
// yields 0 instead of dividing by zero.
func SharePercentage(total, totalScore int) int {
	if totalScore == 0 {
		return 0
	}
	return int(float64(total) / float64(totalScore) * 100)
}

// Payout returns the member's proportional cut of the balance. No
// rounding correction is applied, so payouts may not sum to the balance
// exactly. A zero totalScore yields 0.
func Payout(total, totalScore int, balance float64) float64 {
	if totalScore == 0 {
		return 0
	}
	return float64(total) / float64(totalScore) * balance
}
