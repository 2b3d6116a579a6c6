package report

import (
	"fmt"

	"github.com/alimgiray/contribscore/internal/models"
	"github.com/xuri/excelize/v2"
)

const summarySheet = "Scores"

// WriteExcel exports the ranked summary to an xlsx file, one row per
// member plus a header row.
func WriteExcel(path string, report *models.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(summarySheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headers := []string{"Rank", "Member", "Total", "Pull Requests", "Issues", "Comments", "Reviews", "Share %", "Payout"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, cell, header); err != nil {
			return err
		}
	}

	for i, entry := range report.Entries {
		values := []interface{}{
			i + 1,
			entry.User.Login,
			entry.Score.Total,
			entry.Score.PullRequests,
			entry.Score.Issues,
			entry.Score.Comments,
			entry.Score.Reviews,
			entry.SharePercent,
			entry.Payout,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(summarySheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report to %s: %w", path, err)
	}
	return nil
}
