package models

import "time"

// User identifies a GitHub account. ID is the stable identity used for
// membership uniqueness, Login is used for attribution matching.
type User struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

// Authored is implemented by every entity that can be attributed to a user.
type Authored interface {
	AuthorLogin() string
}

// Dated exposes the timestamp used by the paginated readers to decide
// whether an item falls after the window start.
type Dated interface {
	EffectiveAt() time.Time
}
