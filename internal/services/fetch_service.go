package services

import (
	"context"
	"sync"

	"github.com/alimgiray/contribscore/internal/models"
	"github.com/alimgiray/contribscore/pkg/logger"
)

// FetchResult is the in-memory snapshot of all activity inside the
// window, ready for classification. Comments are already deduplicated.
type FetchResult struct {
	Members      []models.User
	PullRequests []models.PullRequest
	Issues       []models.Issue
	Comments     []models.Comment
	Reviews      []models.Comment
}

// ContributionSource is the abstract data source the fetch layer reads
// from. GitHubService is the production implementation.
type ContributionSource interface {
	ListMembers(ctx context.Context) ([]models.User, error)
	ListRepositories(ctx context.Context) ([]string, error)
	SearchMergedPullRequests(ctx context.Context, window models.Window) ([]models.PullRequest, error)
	SearchCreatedIssues(ctx context.Context, window models.Window) ([]models.Issue, error)
	ListRepositoryComments(ctx context.Context, repo string, window models.Window) ([]models.Comment, error)
	ListReviewComments(ctx context.Context, repo string, window models.Window) ([]models.Comment, error)
}

type FetchService struct {
	source         ContributionSource
	commentService *CommentService
}

func NewFetchService(source ContributionSource, commentService *CommentService) *FetchService {
	return &FetchService{
		source:         source,
		commentService: commentService,
	}
}

// FetchAll reads every collection needed for a scoring run. Mutually
// independent reads run concurrently and each goroutine writes only its
// own slot; results are merged after all of them finish. Any failed
// read fails the whole run, no partial snapshot is returned.
func (s *FetchService) FetchAll(ctx context.Context, window models.Window) (*FetchResult, error) {
	result := &FetchResult{}

	var wg sync.WaitGroup
	errs := make([]error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		result.Members, errs[0] = s.source.ListMembers(ctx)
	}()
	go func() {
		defer wg.Done()
		result.PullRequests, errs[1] = s.source.SearchMergedPullRequests(ctx, window)
	}()
	go func() {
		defer wg.Done()
		result.Issues, errs[2] = s.source.SearchCreatedIssues(ctx, window)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	repositories, err := s.source.ListRepositories(ctx)
	if err != nil {
		return nil, err
	}

	commentsByRepo := make([][]models.Comment, len(repositories))
	reviewsByRepo := make([][]models.Comment, len(repositories))
	repoErrs := make([]error, 2*len(repositories))

	for i, repo := range repositories {
		wg.Add(2)
		go func(i int, repo string) {
			defer wg.Done()
			commentsByRepo[i], repoErrs[2*i] = s.source.ListRepositoryComments(ctx, repo, window)
		}(i, repo)
		go func(i int, repo string) {
			defer wg.Done()
			reviewsByRepo[i], repoErrs[2*i+1] = s.source.ListReviewComments(ctx, repo, window)
		}(i, repo)
	}
	wg.Wait()

	for _, err := range repoErrs {
		if err != nil {
			return nil, err
		}
	}

	var comments []models.Comment
	for _, repoComments := range commentsByRepo {
		comments = append(comments, repoComments...)
	}
	result.Comments = s.commentService.Deduplicate(comments)

	for _, repoReviews := range reviewsByRepo {
		result.Reviews = append(result.Reviews, repoReviews...)
	}

	logger.Infof("fetched %d members, %d pull requests, %d issues, %d comments, %d reviews",
		len(result.Members), len(result.PullRequests), len(result.Issues), len(result.Comments), len(result.Reviews))
	return result, nil
}
