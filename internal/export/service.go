// Package export renders parsed notifications into spreadsheet reports.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jobsarthi/notification-parser/internal/jobextract"
	"github.com/jobsarthi/notification-parser/internal/repository"
)

// Service is a tiny façade over the run repository that produces XLSX bytes.
type Service struct {
	runs   repository.ParseRunRepository
	logger *slog.Logger
}

func NewService(runs repository.ParseRunRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{runs: runs, logger: logger}
}

// ExportRunsXLSX returns an XLSX workbook for parse runs matching filter.
// Rows without a stored result (failed runs) still appear, with their
// status and error, so the report doubles as a triage list.
func (s *Service) ExportRunsXLSX(ctx context.Context, filter repository.ListFilter) ([]byte, error) {
	start := time.Now()

	rows, err := s.runs.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query parse runs: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Parsed Jobs"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Job ID",
		"Title",
		"Department",
		"Advertisement No",
		"Application Start",
		"Application End",
		"Total Vacancies",
		"Fee (General)",
		"Status",
		"Needs Review",
		"Corrigendum",
		"Attempts",
		"Tokens Used",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	rowNum := 2
	for _, run := range rows {
		var res jobextract.Result
		hasResult := false
		if len(run.ResultJSON) > 0 {
			if err := json.Unmarshal(run.ResultJSON, &res); err != nil {
				s.logger.Warn("export: bad stored result json", "run_id", run.ID, "error", err)
			} else {
				hasResult = true
			}
		}

		values := []any{
			run.JobID,
			"", "", "", "", "", "", "",
			run.Status,
			run.NeedsReview,
			run.IsCorrigendum,
			run.Attempts,
			run.TokensUsed,
			deref(run.ErrorMessage),
		}
		if hasResult {
			values[1] = deref(res.JobInfo.Title)
			values[2] = deref(res.JobInfo.Department)
			values[3] = deref(res.JobInfo.AdvertisementNumber)
			values[4] = deref(res.ImportantDates.ApplicationStart)
			values[5] = deref(res.ImportantDates.ApplicationEnd)
			if res.Vacancies.Total != nil {
				values[6] = *res.Vacancies.Total
			}
			if res.ApplicationFees.General != nil {
				values[7] = *res.ApplicationFees.General
			}
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowNum)
			_ = f.SetCellValue(sheet, cell, v)
		}
		rowNum++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export complete",
		"rows", len(rows),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
