package models

import "time"

// Window is the [From, To] instant range defining which activity is
// eligible for scoring.
type Window struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// NewWindow builds a window from the given bounds. A zero `to` defaults
// to the current time.
func NewWindow(from, to time.Time) Window {
	if to.IsZero() {
		to = time.Now()
	}
	return Window{From: from, To: to}
}

// Contains reports whether t falls inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}
