package main

import (
	"context"
	"os"

	"github.com/alimgiray/contribscore/internal/models"
	"github.com/alimgiray/contribscore/internal/report"
	"github.com/alimgiray/contribscore/internal/services"
	"github.com/alimgiray/contribscore/pkg/config"
	"github.com/alimgiray/contribscore/pkg/logger"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.AppConfig

	window := models.NewWindow(cfg.Window.From, cfg.Window.To)
	weights := models.ScoreWeights{
		PullRequest:       cfg.Weights.PullRequest,
		FundedPullRequest: cfg.Weights.FundedPullRequest,
		Issue:             cfg.Weights.Issue,
		IssueMultiplier:   cfg.Weights.IssueMultiplier,
		Comment:           cfg.Weights.Comment,
	}

	// Initialize dependencies
	githubService := services.NewGitHubService(cfg.GitHub.Token, cfg.GitHub.Org)
	commentService := services.NewCommentService()
	fetchService := services.NewFetchService(githubService, commentService)
	contributionService := services.NewContributionService()
	scoreService := services.NewScoreService(weights)
	reportService := services.NewReportService(scoreService)

	ctx := context.Background()

	// Make sure we can reach the GitHub API before fanning out
	viewer, err := githubService.Authenticate(ctx)
	if err != nil {
		logger.Fatalf("GitHub authentication failed: %v", err)
	}
	logger.Infof("authenticated as %s, scoring %s from %s to %s",
		viewer.Login, cfg.GitHub.Org, window.From.Format("2006-01-02"), window.To.Format("2006-01-02"))

	snapshot, err := fetchService.FetchAll(ctx, window)
	if err != nil {
		logger.Fatalf("Failed to fetch contributions: %v", err)
	}

	grouped := contributionService.GroupPullRequests(snapshot.PullRequests)
	contributions := contributionService.AttributeContributions(
		snapshot.Members, grouped, snapshot.Issues, snapshot.Comments, snapshot.Reviews)

	result := reportService.BuildReport(window, contributions, cfg.Report.Balance)
	logger.WithField("report_id", result.ID).Infof("scored %d contributors", len(result.Entries))

	if err := report.Render(os.Stdout, result); err != nil {
		logger.Fatalf("Failed to render report: %v", err)
	}

	if cfg.Report.ExcelOut != "" {
		if err := report.WriteExcel(cfg.Report.ExcelOut, result); err != nil {
			logger.Fatalf("Failed to export report: %v", err)
		}
		logger.Infof("wrote %s", cfg.Report.ExcelOut)
	}
}
