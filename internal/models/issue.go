package models

import "time"

// Issue state reasons as reported by the GitHub API.
const (
	StateReasonCompleted  = "completed"
	StateReasonNotPlanned = "not_planned"
	StateReasonReopened   = "reopened"
)

// Issue represents a GitHub issue created in the scoring window
type Issue struct {
	Author      User       `json:"author"`
	Number      int        `json:"number"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	StateReason string     `json:"state_reason,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
}

// Countable reports whether the issue earns points. Issues closed as
// not planned (duplicates, invalid or rejected reports) do not count;
// every other state reason does.
func (i *Issue) Countable() bool {
	return i.StateReason != StateReasonNotPlanned
}

func (i Issue) AuthorLogin() string {
	return i.Author.Login
}

// EffectiveAt returns the closing time when known, the last update otherwise.
func (i Issue) EffectiveAt() time.Time {
	if i.ClosedAt != nil {
		return *i.ClosedAt
	}
	return i.UpdatedAt
}
