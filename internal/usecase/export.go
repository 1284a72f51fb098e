package usecase

import (
	"bytes"
	"context"
	"fmt"

	"go-jobboard/internal/domain"
	"go-jobboard/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{"APPLICANT", "HEADLINE", "STATUS", "APPLIED AT", "COVER LETTER"}

// ExportApplications renders the job's applications, newest first, as xlsx.
func (u *applicationUsecase) ExportApplications(ctx context.Context, userID, jobID int64) (*domain.ApplicationExport, error) {
	job, apps, err := u.ListByJobID(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	data, err := buildApplicationsWorkbook(job, apps)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.ApplicationExport{
		Filename: fmt.Sprintf("job_%d_applications.xlsx", job.ID),
		Data:     data,
	}, nil
}

func buildApplicationsWorkbook(job *domain.JobPosting, apps []domain.Application) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Applications"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, app := range apps {
		row := []any{
			app.SeekerName,
			app.SeekerHeadline,
			app.Status.Label(),
			app.ApplicationDate.UTC().Format("2006-01-02 15:04"),
			app.CoverLetterText,
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	widths := []float64{24, 32, 12, 18, 60}
	for i, w := range widths {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, w)
	}
	f.SetDocProps(&excelize.DocProperties{Title: job.Title + " applications"})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}
