package models

// Contributions holds the entities a single member authored inside the
// scoring window, after comment deduplication.
type Contributions struct {
	PullRequests GroupedPullRequests `json:"pull_requests"`
	Issues       []Issue             `json:"issues"`
	Comments     []Comment           `json:"comments"`
	Reviews      []Comment           `json:"reviews"`
}

// MemberContributions pairs a member with their classified contributions.
type MemberContributions struct {
	User          User          `json:"user"`
	Contributions Contributions `json:"contributions"`
}
