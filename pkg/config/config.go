package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	GitHub  GitHubConfig
	Window  WindowConfig
	Weights WeightsConfig
	Report  ReportConfig
	Log     LogConfig
}

type GitHubConfig struct {
	Token string
	Org   string
}

type WindowConfig struct {
	From time.Time
	To   time.Time // zero means "now"
}

type WeightsConfig struct {
	PullRequest       int
	FundedPullRequest int
	Issue             int
	IssueMultiplier   int
	Comment           int
}

type ReportConfig struct {
	Balance  float64 // 0 disables payout calculation
	ExcelOut string  // empty disables the xlsx export
}

type LogConfig struct {
	Level string
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables.
// Validation happens here, before any network read: a missing token,
// organization or window start fails the whole run.
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	token := getEnv("GITHUB_TOKEN", "")
	if token == "" {
		return fmt.Errorf("GITHUB_TOKEN is required")
	}
	org := getEnv("GITHUB_ORG", "")
	if org == "" {
		return fmt.Errorf("GITHUB_ORG is required")
	}

	from, err := getEnvAsTime("FROM")
	if err != nil {
		return err
	}
	if from.IsZero() {
		return fmt.Errorf("FROM is required")
	}
	to, err := getEnvAsTime("TO")
	if err != nil {
		return err
	}
	if !to.IsZero() && to.Before(from) {
		return fmt.Errorf("TO must not be before FROM")
	}

	balance, err := getEnvAsFloat("BALANCE", 0)
	if err != nil {
		return err
	}
	if balance < 0 {
		return fmt.Errorf("BALANCE must not be negative")
	}

	weights := WeightsConfig{
		PullRequest:       getEnvAsInt("PR_WEIGHT", 2),
		FundedPullRequest: getEnvAsInt("FUNDED_WEIGHT", 10),
		Issue:             getEnvAsInt("ISSUE_WEIGHT", 1),
		IssueMultiplier:   getEnvAsInt("ISSUE_MULTIPLIER", 1),
		Comment:           getEnvAsInt("COMMENT_WEIGHT", 1),
	}
	if weights.PullRequest < 0 || weights.FundedPullRequest < 0 ||
		weights.Issue < 0 || weights.IssueMultiplier < 0 || weights.Comment < 0 {
		return fmt.Errorf("score weights must be non-negative")
	}

	AppConfig = &Config{
		GitHub: GitHubConfig{
			Token: token,
			Org:   org,
		},
		Window: WindowConfig{
			From: from,
			To:   to,
		},
		Weights: weights,
		Report: ReportConfig{
			Balance:  balance,
			ExcelOut: getEnv("REPORT_XLSX", ""),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat gets an environment variable as float. Unlike the int
// helper, a malformed value is an error: a mistyped balance must not be
// silently replaced by a default.
func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be numeric, got %q", key, value)
	}
	return floatValue, nil
}

// getEnvAsTime parses an environment variable as RFC 3339 or as a plain
// date. A zero time means the variable was not set.
func getEnvAsTime(key string) (time.Time, error) {
	value := os.Getenv(key)
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%s must be RFC 3339 or 2006-01-02, got %q", key, value)
}
