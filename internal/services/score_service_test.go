package services

import (
	"testing"

	"github.com/alimgiray/contribscore/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	t.Run("Normal pull requests earn the PR weight", func(t *testing.T) {
		service := NewScoreService(models.NewScoreWeights())
		contributions := models.Contributions{
			PullRequests: models.GroupedPullRequests{
				Normal: []models.PullRequest{makePullRequest("alice", 1), makePullRequest("alice", 2)},
				All:    []models.PullRequest{makePullRequest("alice", 1), makePullRequest("alice", 2)},
			},
		}

		score := service.Calculate(contributions)

		assert.Equal(t, 4, score.PullRequests)
		assert.Equal(t, 4, score.Total)
	})

	t.Run("Funded weight replaces the normal weight", func(t *testing.T) {
		service := NewScoreService(models.NewScoreWeights())
		funded := makePullRequest("bob", 3, "funded")
		contributions := models.Contributions{
			PullRequests: models.GroupedPullRequests{
				Funded: []models.PullRequest{funded},
				All:    []models.PullRequest{funded},
			},
		}

		score := service.Calculate(contributions)

		assert.Equal(t, 10, score.PullRequests, "funded PR scores 10, not 10+2")
	})

	t.Run("Issues closed as not planned earn nothing", func(t *testing.T) {
		service := NewScoreService(models.NewScoreWeights())
		contributions := models.Contributions{
			Issues: []models.Issue{
				{Author: models.User{Login: "alice"}, StateReason: models.StateReasonCompleted},
				{Author: models.User{Login: "alice"}, StateReason: models.StateReasonNotPlanned},
				{Author: models.User{Login: "alice"}},
			},
		}

		score := service.Calculate(contributions)

		assert.Equal(t, 2, score.Issues)
	})

	t.Run("Issue multiplier scales the issue weight", func(t *testing.T) {
		weights := models.NewScoreWeights()
		weights.IssueMultiplier = 3
		service := NewScoreService(weights)
		contributions := models.Contributions{
			Issues: []models.Issue{{Author: models.User{Login: "alice"}}},
		}

		score := service.Calculate(contributions)

		assert.Equal(t, 3, score.Issues)
	})

	t.Run("Total equals the sum of subtotals for any weights", func(t *testing.T) {
		testCases := []struct {
			name    string
			weights models.ScoreWeights
		}{
			{name: "Defaults", weights: models.NewScoreWeights()},
			{name: "All zero", weights: models.ScoreWeights{}},
			{name: "Custom", weights: models.ScoreWeights{
				PullRequest:       7,
				FundedPullRequest: 50,
				Issue:             2,
				IssueMultiplier:   2,
				Comment:           3,
			}},
		}

		normal := makePullRequest("alice", 1)
		funded := makePullRequest("alice", 2, "funded")
		contributions := models.Contributions{
			PullRequests: models.GroupedPullRequests{
				Normal: []models.PullRequest{normal},
				Funded: []models.PullRequest{funded},
				All:    []models.PullRequest{normal, funded},
			},
			Issues:   []models.Issue{{Author: models.User{Login: "alice"}}},
			Comments: []models.Comment{{Author: models.User{Login: "alice"}}, {Author: models.User{Login: "alice"}}},
			Reviews:  []models.Comment{{Author: models.User{Login: "alice"}}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				score := NewScoreService(tc.weights).Calculate(contributions)

				assert.Equal(t, score.PullRequests+score.Issues+score.Comments+score.Reviews, score.Total)
				assert.GreaterOrEqual(t, score.PullRequests, 0)
				assert.GreaterOrEqual(t, score.Issues, 0)
				assert.GreaterOrEqual(t, score.Comments, 0)
				assert.GreaterOrEqual(t, score.Reviews, 0)
			})
		}
	})

	t.Run("Empty contributions score zero", func(t *testing.T) {
		score := NewScoreService(models.NewScoreWeights()).Calculate(models.Contributions{})

		assert.Equal(t, models.Score{}, score)
	})
}
