package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alimgiray/contribscore/internal/models"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Color variables for console output.
var (
	memberColor = color.New(color.FgCyan, color.Bold)
	shareColor  = color.New(color.FgGreen, color.Bold)
	payoutColor = color.New(color.FgYellow)
)

// Render writes the full report: one contribution listing per member,
// then the ranked summary table. It is a pure formatting function over
// an already-built report.
func Render(w io.Writer, report *models.Report) error {
	if len(report.Entries) == 0 {
		_, err := fmt.Fprintln(w, "No scored contributions in the given window.")
		return err
	}

	for _, entry := range report.Entries {
		if err := renderMember(w, entry); err != nil {
			return err
		}
	}

	return renderSummary(w, report)
}

func renderMember(w io.Writer, entry models.ReportEntry) error {
	login := entry.User.Login
	if _, err := fmt.Fprintf(w, "\n%s\n%s\n", memberColor.Sprint(login), strings.Repeat("-", len(login))); err != nil {
		return err
	}

	renderSection(w, "Pull Requests", len(entry.Contributions.PullRequests.All))
	for _, pr := range entry.Contributions.PullRequests.All {
		suffix := ""
		if pr.IsFunded() {
			suffix = " [funded]"
		}
		fmt.Fprintf(w, "- %s (%s)%s\n", pr.Title, pr.URL, suffix)
	}

	renderSection(w, "Issues", len(entry.Contributions.Issues))
	for _, issue := range entry.Contributions.Issues {
		fmt.Fprintf(w, "- %s (%s)\n", issue.Title, issue.URL)
	}

	renderSection(w, "Comments", len(entry.Contributions.Comments))
	for _, comment := range entry.Contributions.Comments {
		fmt.Fprintf(w, "- %s\n", comment.URL)
	}

	renderSection(w, "Reviews", len(entry.Contributions.Reviews))
	for _, review := range entry.Contributions.Reviews {
		fmt.Fprintf(w, "- %s\n", review.URL)
	}

	return nil
}

func renderSection(w io.Writer, title string, count int) {
	if count == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", title)
}

func renderSummary(w io.Writer, report *models.Report) error {
	if _, err := fmt.Fprintf(w, "\nOverall stats (total score: %d)\n", report.TotalScore); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)

	headers := []string{"Rank", "Member", "Total", "PRs", "Issues", "Comments", "Reviews", "Share"}
	withPayout := report.Balance > 0
	if withPayout {
		headers = append(headers, "Payout")
	}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, entry := range report.Entries {
		row := []string{
			strconv.Itoa(i + 1),
			entry.User.Login,
			strconv.Itoa(entry.Score.Total),
			strconv.Itoa(entry.Score.PullRequests),
			strconv.Itoa(entry.Score.Issues),
			strconv.Itoa(entry.Score.Comments),
			strconv.Itoa(entry.Score.Reviews),
			shareColor.Sprintf("%d%%", entry.SharePercent),
		}
		if withPayout {
			row = append(row, payoutColor.Sprintf("%.2f", entry.Payout))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
