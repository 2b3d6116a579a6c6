package services

import (
	"github.com/alimgiray/contribscore/internal/models"
)

type ScoreService struct {
	weights models.ScoreWeights
}

func NewScoreService(weights models.ScoreWeights) *ScoreService {
	return &ScoreService{weights: weights}
}

// Calculate converts classified contributions into a weighted score.
// Funded pull requests earn the funded weight instead of the normal
// one, never both. The calculation is pure and assumes well-formed
// input from the classifier.
func (s *ScoreService) Calculate(contributions models.Contributions) models.Score {
	score := models.Score{
		PullRequests: len(contributions.PullRequests.Normal)*s.weights.PullRequest +
			len(contributions.PullRequests.Funded)*s.weights.FundedPullRequest,
		Issues:   countCountable(contributions.Issues) * s.weights.Issue * s.weights.IssueMultiplier,
		Comments: len(contributions.Comments) * s.weights.Comment,
		Reviews:  len(contributions.Reviews) * s.weights.Comment,
	}
	score.Total = score.Sum()
	return score
}

func countCountable(issues []models.Issue) int {
	count := 0
	for _, issue := range issues {
		if issue.Countable() {
			count++
		}
	}
	return count
}
