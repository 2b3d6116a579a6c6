package models

// ScoreWeights configures how many points each contribution category is
// worth. All weights are non-negative; the calculator never embeds them.
type ScoreWeights struct {
	PullRequest       int `json:"pull_request"`
	FundedPullRequest int `json:"funded_pull_request"`
	Issue             int `json:"issue"`
	IssueMultiplier   int `json:"issue_multiplier"`
	Comment           int `json:"comment"`
}

// NewScoreWeights returns the default weight configuration.
func NewScoreWeights() ScoreWeights {
	return ScoreWeights{
		PullRequest:       2,
		FundedPullRequest: 10,
		Issue:             1,
		IssueMultiplier:   1,
		Comment:           1,
	}
}

// Score is the weighted breakdown of a member's contributions.
// Total is always the sum of the category subtotals.
type Score struct {
	PullRequests int `json:"pull_requests"`
	Issues       int `json:"issues"`
	Comments     int `json:"comments"`
	Reviews      int `json:"reviews"`
	Total        int `json:"total"`
}

// Sum recomputes the total from the category subtotals.
func (s Score) Sum() int {
	return s.PullRequests + s.Issues + s.Comments + s.Reviews
}
