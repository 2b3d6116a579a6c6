package services

import (
	"sort"
	"time"

	"github.com/alimgiray/contribscore/internal/models"
)

// DedupCooldown is the interval after which a same-author reply in the
// same thread counts as a new contribution again.
const DedupCooldown = 24 * time.Hour

type CommentService struct{}

func NewCommentService() *CommentService {
	return &CommentService{}
}

// Deduplicate collapses comment bursts: consecutive comments by the same
// author in the same thread count as one contribution unless separated
// by at least DedupCooldown. The first comment of a thread is always
// kept, and the cooldown is measured against the immediately previous
// comment in chronological order, kept or not. The operation is
// idempotent and never grows the input.
func (s *CommentService) Deduplicate(comments []models.Comment) []models.Comment {
	threads := make(map[string][]models.Comment)
	var order []string
	for _, comment := range comments {
		if _, ok := threads[comment.ThreadID]; !ok {
			order = append(order, comment.ThreadID)
		}
		threads[comment.ThreadID] = append(threads[comment.ThreadID], comment)
	}

	deduplicated := make([]models.Comment, 0, len(comments))
	for _, threadID := range order {
		thread := threads[threadID]
		sort.SliceStable(thread, func(i, j int) bool {
			return thread[i].CreatedAt.Before(thread[j].CreatedAt)
		})

		deduplicated = append(deduplicated, thread[0])
		for i := 1; i < len(thread); i++ {
			previous := thread[i-1]
			current := thread[i]
			if previous.Author.Login != current.Author.Login {
				deduplicated = append(deduplicated, current)
				continue
			}
			if current.CreatedAt.Sub(previous.CreatedAt) >= DedupCooldown {
				deduplicated = append(deduplicated, current)
			}
		}
	}

	return deduplicated
}
