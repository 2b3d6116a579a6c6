package models

// Label represents a GitHub issue/PR label. Only the name matters here.
type Label struct {
	Name string `json:"name"`
}
