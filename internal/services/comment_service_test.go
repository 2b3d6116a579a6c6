package services

import (
	"testing"
	"time"

	"github.com/alimgiray/contribscore/internal/models"
	"github.com/stretchr/testify/assert"
)

var dedupEpoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func makeComment(login, thread string, offset time.Duration) models.Comment {
	return models.Comment{
		Author:    models.User{Login: login},
		URL:       "https://github.com/org/repo/issues/1#comment",
		ThreadID:  thread,
		CreatedAt: dedupEpoch.Add(offset),
		UpdatedAt: dedupEpoch.Add(offset),
	}
}

func TestDeduplicate(t *testing.T) {
	service := NewCommentService()

	t.Run("Burst by one author collapses to bounds of the cooldown", func(t *testing.T) {
		comments := []models.Comment{
			makeComment("alice", "t1", 0),
			makeComment("alice", "t1", time.Hour),
			makeComment("alice", "t1", 25*time.Hour),
		}

		kept := service.Deduplicate(comments)

		assert.Len(t, kept, 2)
		assert.Equal(t, dedupEpoch, kept[0].CreatedAt)
		assert.Equal(t, dedupEpoch.Add(25*time.Hour), kept[1].CreatedAt)
	})

	t.Run("Different authors always kept", func(t *testing.T) {
		comments := []models.Comment{
			makeComment("alice", "t1", 0),
			makeComment("bob", "t1", time.Minute),
			makeComment("alice", "t1", 2*time.Minute),
		}

		kept := service.Deduplicate(comments)

		assert.Len(t, kept, 3)
	})

	t.Run("Cooldown boundary", func(t *testing.T) {
		testCases := []struct {
			name     string
			gap      time.Duration
			expected int
		}{
			{name: "Just under 24 hours", gap: 23*time.Hour + 59*time.Minute + 59*time.Second, expected: 1},
			{name: "Exactly 24 hours", gap: 24 * time.Hour, expected: 2},
			{name: "Over 24 hours", gap: 24*time.Hour + time.Second, expected: 2},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				comments := []models.Comment{
					makeComment("alice", "t1", 0),
					makeComment("alice", "t1", tc.gap),
				}

				kept := service.Deduplicate(comments)

				assert.Len(t, kept, tc.expected)
			})
		}
	})

	t.Run("Cooldown measured against previous seen comment, not previous kept", func(t *testing.T) {
		// The 23h comment is dropped, and the 30h comment is only 7h
		// after it, so the 30h comment is dropped too even though it is
		// 30h after the last kept one.
		comments := []models.Comment{
			makeComment("alice", "t1", 0),
			makeComment("alice", "t1", 23*time.Hour),
			makeComment("alice", "t1", 30*time.Hour),
		}

		kept := service.Deduplicate(comments)

		assert.Len(t, kept, 1)
		assert.Equal(t, dedupEpoch, kept[0].CreatedAt)
	})

	t.Run("First comment of every thread is kept", func(t *testing.T) {
		comments := []models.Comment{
			makeComment("alice", "t1", 0),
			makeComment("alice", "t1", time.Minute),
			makeComment("bob", "t2", 0),
			makeComment("bob", "t2", time.Minute),
		}

		kept := service.Deduplicate(comments)

		threads := make(map[string]int)
		for _, comment := range kept {
			threads[comment.ThreadID]++
		}
		assert.Equal(t, 1, threads["t1"])
		assert.Equal(t, 1, threads["t2"])
	})

	t.Run("Identical timestamps with different authors are both kept", func(t *testing.T) {
		comments := []models.Comment{
			makeComment("alice", "t1", 0),
			makeComment("bob", "t1", 0),
		}

		kept := service.Deduplicate(comments)

		assert.Len(t, kept, 2)
	})

	t.Run("Idempotent", func(t *testing.T) {
		comments := []models.Comment{
			makeComment("alice", "t1", 0),
			makeComment("alice", "t1", time.Hour),
			makeComment("bob", "t1", 2*time.Hour),
			makeComment("alice", "t1", 26*time.Hour),
			makeComment("carol", "t2", 0),
			makeComment("carol", "t2", 23*time.Hour),
			makeComment("carol", "t2", 30*time.Hour),
		}

		once := service.Deduplicate(comments)
		twice := service.Deduplicate(once)

		assert.Equal(t, once, twice)
	})

	t.Run("Never produces more output than input", func(t *testing.T) {
		comments := []models.Comment{
			makeComment("alice", "t1", 0),
			makeComment("bob", "t1", time.Minute),
			makeComment("alice", "t2", 0),
		}

		kept := service.Deduplicate(comments)

		assert.LessOrEqual(t, len(kept), len(comments))
	})

	t.Run("Empty input", func(t *testing.T) {
		assert.Empty(t, service.Deduplicate(nil))
	})
}
