package services

import (
	"github.com/alimgiray/contribscore/internal/models"
)

type ContributionService struct{}

func NewContributionService() *ContributionService {
	return &ContributionService{}
}

// GroupPullRequests partitions pull requests into funded and normal
// buckets. A pull request is funded iff it carries the funded label,
// so the buckets are disjoint and cover the whole input.
func (s *ContributionService) GroupPullRequests(pullRequests []models.PullRequest) models.GroupedPullRequests {
	grouped := models.GroupedPullRequests{All: pullRequests}
	for _, pr := range pullRequests {
		if pr.IsFunded() {
			grouped.Funded = append(grouped.Funded, pr)
		} else {
			grouped.Normal = append(grouped.Normal, pr)
		}
	}
	return grouped
}

// AttributeContributions buckets every entity under the member who
// authored it, matching by login. Every member appears in the output,
// with empty buckets when they authored nothing; entities authored by
// non-members are left out. Authorship is single-valued, so no entity
// can end up under two members.
func (s *ContributionService) AttributeContributions(
	members []models.User,
	pullRequests models.GroupedPullRequests,
	issues []models.Issue,
	comments []models.Comment,
	reviews []models.Comment,
) []models.MemberContributions {
	contributions := make([]models.MemberContributions, 0, len(members))
	for _, member := range members {
		contributions = append(contributions, models.MemberContributions{
			User: member,
			Contributions: models.Contributions{
				PullRequests: models.GroupedPullRequests{
					Normal: filterByAuthor(pullRequests.Normal, member),
					Funded: filterByAuthor(pullRequests.Funded, member),
					All:    filterByAuthor(pullRequests.All, member),
				},
				Issues:   filterByAuthor(issues, member),
				Comments: filterByAuthor(comments, member),
				Reviews:  filterByAuthor(reviews, member),
			},
		})
	}
	return contributions
}

func filterByAuthor[T models.Authored](entities []T, member models.User) []T {
	var authored []T
	for _, entity := range entities {
		if entity.AuthorLogin() == member.Login {
			authored = append(authored, entity)
		}
	}
	return authored
}
