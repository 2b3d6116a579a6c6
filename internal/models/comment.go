package models

import "time"

// Comment represents a comment on an issue or pull request, or a pull
// request review comment. ThreadID identifies the parent issue/PR so
// that consecutive replies can be collapsed per thread.
type Comment struct {
	Author    User      `json:"author"`
	URL       string    `json:"url"`
	ThreadID  string    `json:"thread_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Comment) AuthorLogin() string {
	return c.Author.Login
}

func (c Comment) EffectiveAt() time.Time {
	return c.UpdatedAt
}
