package services

import (
	"context"
	"fmt"
	"time"

	"github.com/alimgiray/contribscore/internal/models"
	"github.com/alimgiray/contribscore/pkg/logger"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// requestsPerSecond throttles calls to the GitHub API well below its
// secondary rate limits.
const requestsPerSecond = 5

// GitHubService adapts the GitHub API to the canonical entity model.
// API field names never leak past this boundary.
type GitHubService struct {
	client  *github.Client
	limiter *rate.Limiter
	org     string
}

// NewGitHubService creates a GitHub service authenticated with the
// given personal access token, scoped to one organization.
func NewGitHubService(token, org string) *GitHubService {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	return &GitHubService{
		client:  github.NewClient(tc),
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond*2),
		org:     org,
	}
}

// Authenticate verifies the token by fetching the authenticated user.
func (s *GitHubService) Authenticate(ctx context.Context) (*models.User, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	user, _, err := s.client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate with GitHub: %w", err)
	}
	return &models.User{ID: user.GetID(), Login: user.GetLogin()}, nil
}

// ListMembers returns the organization members, unique by ID.
func (s *GitHubService) ListMembers(ctx context.Context) ([]models.User, error) {
	var members []models.User
	seen := make(map[int64]bool)

	opts := &github.ListMembersOptions{
		ListOptions: github.ListOptions{PerPage: PageSize},
	}
	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		users, resp, err := s.client.Organizations.ListMembers(ctx, s.org, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list members of %s: %w", s.org, err)
		}
		for _, user := range users {
			if seen[user.GetID()] {
				continue
			}
			seen[user.GetID()] = true
			members = append(members, models.User{ID: user.GetID(), Login: user.GetLogin()})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logger.Debugf("fetched %d members for %s", len(members), s.org)
	return members, nil
}

// ListRepositories returns the names of all repositories in the organization.
func (s *GitHubService) ListRepositories(ctx context.Context) ([]string, error) {
	var repositories []string

	opts := &github.RepositoryListByOrgOptions{
		ListOptions: github.ListOptions{PerPage: PageSize},
	}
	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		repos, resp, err := s.client.Repositories.ListByOrg(ctx, s.org, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories of %s: %w", s.org, err)
		}
		for _, repo := range repos {
			repositories = append(repositories, repo.GetName())
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logger.Debugf("fetched %d repositories for %s", len(repositories), s.org)
	return repositories, nil
}

// SearchMergedPullRequests returns every pull request merged inside the
// window, across all repositories of the organization. The window is
// encoded into the search query, so no local date filtering is needed.
func (s *GitHubService) SearchMergedPullRequests(ctx context.Context, window models.Window) ([]models.PullRequest, error) {
	query := fmt.Sprintf("type:pr org:%s is:merged merged:%s..%s",
		s.org, toISODate(window.From), toISODate(window.To))

	pullRequests, err := ReadSearch(ctx, func(ctx context.Context, page int) ([]models.PullRequest, error) {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		result, _, err := s.client.Search.Issues(ctx, query, searchOptions(page))
		if err != nil {
			return nil, fmt.Errorf("failed to search pull requests: %w", err)
		}
		prs := make([]models.PullRequest, 0, len(result.Issues))
		for _, issue := range result.Issues {
			prs = append(prs, toPullRequest(issue))
		}
		return prs, nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debugf("fetched %d merged pull requests for %s", len(pullRequests), s.org)
	return pullRequests, nil
}

// SearchCreatedIssues returns issues created inside the window,
// excluding those closed as not planned.
func (s *GitHubService) SearchCreatedIssues(ctx context.Context, window models.Window) ([]models.Issue, error) {
	query := fmt.Sprintf("type:issue org:%s created:%s..%s",
		s.org, toISODate(window.From), toISODate(window.To))

	issues, err := ReadSearch(ctx, func(ctx context.Context, page int) ([]models.Issue, error) {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		result, _, err := s.client.Search.Issues(ctx, query, searchOptions(page))
		if err != nil {
			return nil, fmt.Errorf("failed to search issues: %w", err)
		}
		items := make([]models.Issue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			items = append(items, toIssue(issue))
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	countable := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.Countable() {
			countable = append(countable, issue)
		}
	}

	logger.Debugf("fetched %d countable issues for %s", len(countable), s.org)
	return countable, nil
}

// ListRepositoryComments returns issue and pull request comments created
// inside the window for one repository.
func (s *GitHubService) ListRepositoryComments(ctx context.Context, repo string, window models.Window) ([]models.Comment, error) {
	since := window.From
	comments, err := ReadCollection(ctx, window.From, func(ctx context.Context, page int) ([]models.Comment, error) {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		opts := &github.IssueListCommentsOptions{
			Since:       &since,
			ListOptions: github.ListOptions{PerPage: PageSize, Page: page},
		}
		items, _, err := s.client.Issues.ListComments(ctx, s.org, repo, 0, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list comments for %s/%s: %w", s.org, repo, err)
		}
		comments := make([]models.Comment, 0, len(items))
		for _, item := range items {
			comments = append(comments, models.Comment{
				Author:    models.User{ID: item.GetUser().GetID(), Login: item.GetUser().GetLogin()},
				URL:       item.GetHTMLURL(),
				ThreadID:  item.GetIssueURL(),
				CreatedAt: item.GetCreatedAt().Time,
				UpdatedAt: item.GetUpdatedAt().Time,
			})
		}
		return comments, nil
	})
	if err != nil {
		return nil, err
	}

	return filterByWindow(comments, window), nil
}

// ListReviewComments returns pull request review comments created inside
// the window for one repository.
func (s *GitHubService) ListReviewComments(ctx context.Context, repo string, window models.Window) ([]models.Comment, error) {
	reviews, err := ReadCollection(ctx, window.From, func(ctx context.Context, page int) ([]models.Comment, error) {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		opts := &github.PullRequestListCommentsOptions{
			Since:       window.From,
			ListOptions: github.ListOptions{PerPage: PageSize, Page: page},
		}
		items, _, err := s.client.PullRequests.ListComments(ctx, s.org, repo, 0, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list review comments for %s/%s: %w", s.org, repo, err)
		}
		reviews := make([]models.Comment, 0, len(items))
		for _, item := range items {
			reviews = append(reviews, models.Comment{
				Author:    models.User{ID: item.GetUser().GetID(), Login: item.GetUser().GetLogin()},
				URL:       item.GetHTMLURL(),
				ThreadID:  item.GetPullRequestURL(),
				CreatedAt: item.GetCreatedAt().Time,
				UpdatedAt: item.GetUpdatedAt().Time,
			})
		}
		return reviews, nil
	})
	if err != nil {
		return nil, err
	}

	return filterByWindow(reviews, window), nil
}

func searchOptions(page int) *github.SearchOptions {
	return &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: PageSize, Page: page},
	}
}

// filterByWindow keeps comments whose creation time falls inside the
// window. The API's `since` parameter only bounds the lower end.
func filterByWindow(comments []models.Comment, window models.Window) []models.Comment {
	filtered := make([]models.Comment, 0, len(comments))
	for _, comment := range comments {
		if window.Contains(comment.CreatedAt) {
			filtered = append(filtered, comment)
		}
	}
	return filtered
}

func toPullRequest(issue *github.Issue) models.PullRequest {
	pr := models.PullRequest{
		Author:    models.User{ID: issue.GetUser().GetID(), Login: issue.GetUser().GetLogin()},
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		URL:       issue.GetHTMLURL(),
		CreatedAt: issue.GetCreatedAt().Time,
		UpdatedAt: issue.GetUpdatedAt().Time,
	}
	if issue.ClosedAt != nil {
		pr.ClosedAt = &issue.ClosedAt.Time
	}
	for _, label := range issue.Labels {
		pr.Labels = append(pr.Labels, models.Label{Name: label.GetName()})
	}
	return pr
}

func toIssue(issue *github.Issue) models.Issue {
	converted := models.Issue{
		Author:      models.User{ID: issue.GetUser().GetID(), Login: issue.GetUser().GetLogin()},
		Number:      issue.GetNumber(),
		Title:       issue.GetTitle(),
		URL:         issue.GetHTMLURL(),
		StateReason: issue.GetStateReason(),
		CreatedAt:   issue.GetCreatedAt().Time,
		UpdatedAt:   issue.GetUpdatedAt().Time,
	}
	if issue.ClosedAt != nil {
		converted.ClosedAt = &issue.ClosedAt.Time
	}
	return converted
}

// toISODate renders the date-only form the search API expects.
func toISODate(t time.Time) string {
	return t.Format("2006-01-02")
}
