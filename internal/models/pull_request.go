package models

import "time"

// FundedLabel marks a pull request as sponsored work, scored at the
// funded weight instead of the normal one.
const FundedLabel = "funded"

// PullRequest represents a merged GitHub pull request
type PullRequest struct {
	Author    User       `json:"author"`
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	URL       string     `json:"url"`
	Labels    []Label    `json:"labels"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

// IsFunded reports whether the pull request carries the funded label.
func (pr *PullRequest) IsFunded() bool {
	for _, label := range pr.Labels {
		if label.Name == FundedLabel {
			return true
		}
	}
	return false
}

func (pr PullRequest) AuthorLogin() string {
	return pr.Author.Login
}

// EffectiveAt returns the closing time when known, the last update otherwise.
func (pr PullRequest) EffectiveAt() time.Time {
	if pr.ClosedAt != nil {
		return *pr.ClosedAt
	}
	return pr.UpdatedAt
}

// GroupedPullRequests partitions a pull request set by the funded label.
// Normal and Funded are disjoint and together equal All.
type GroupedPullRequests struct {
	Normal []PullRequest `json:"normal"`
	Funded []PullRequest `json:"funded"`
	All    []PullRequest `json:"all"`
}
