package report

import (
	"fmt"

	"github.com/evandrarf/lingua-be/internal/delivery/http/entity"
	"github.com/xuri/excelize/v2"
)

// New workbooks start with a single sheet under this name.
const resultsSheet = "Sheet1"

var resultsHeader = []string{
	"Completed At", "Student", "Lesson", "Score", "Total Questions", "Percentage", "Time Spent (s)",
}

// ResultsWorkbook renders lesson results as an xlsx file, one row per result.
// Lesson ids missing from titles are written as-is.
func ResultsWorkbook(results []entity.LessonResultResponse, titles map[string]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for col, name := range resultsHeader {
		if err := setCell(f, col+1, 1, name); err != nil {
			return nil, err
		}
	}

	for i, r := range results {
		row := i + 2
		lessonName := r.LessonID
		if title, ok := titles[r.LessonID]; ok && title != "" {
			lessonName = title
		}
		student := r.DisplayName
		if student == "" {
			student = fmt.Sprintf("user #%d", r.UserID)
		}

		values := []interface{}{
			r.CompletedAt.Format("2006-01-02 15:04"),
			student,
			lessonName,
			r.Score,
			r.TotalQuestions,
			r.Percentage,
			r.TimeSpentSec,
		}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(resultsSheet, "A", "C", 22); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, v interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(resultsSheet, cell, v)
}
