package service

import (
	"strconv"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"github.com/zeebo/xxh3"

	"exusiai.dev/roadmap-tracker/internal/app/appconfig"
	"exusiai.dev/roadmap-tracker/internal/util"
)

const (
	sheetProgress = "Progress"
	sheetSummary  = "Summary"

	MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportResult is a rendered export attachment.
type ExportResult struct {
	Filename string
	Body     []byte
	// Revision is a content hash of Body, suitable as an ETag.
	Revision string
}

type Export struct {
	Config          *appconfig.Config
	ProgressService *Progress
}

func NewExport(conf *appconfig.Config, progressService *Progress) *Export {
	return &Export{
		Config:          conf,
		ProgressService: progressService,
	}
}

// JSON renders the progress store in its persisted layout, indented by two
// spaces.
func (s *Export) JSON() (*ExportResult, error) {
	body, err := json.MarshalIndent(s.ProgressService.GetProgress(), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "export: encode progress")
	}
	return s.result(".json", body), nil
}

// XLSX renders one row per catalog day plus a per-phase summary sheet.
func (s *Export) XLSX() (*ExportResult, error) {
	catalog := s.ProgressService.CatalogRepo.GetCatalog()
	progress := s.ProgressService.GetProgress()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetProgress); err != nil {
		return nil, errors.Wrap(err, "export: xlsx: rename sheet")
	}
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, errors.Wrap(err, "export: xlsx: create summary sheet")
	}

	rows := [][]any{{"Phase", "Phase Name", "Week", "Title", "Day", "Task", "Completed"}}
	for _, p := range catalog.Phases {
		for _, w := range p.Weeks {
			days := progress.Days(p.ID, w.ID)
			for i, label := range w.Days {
				rows = append(rows, []any{p.ID, p.Name, w.ID, w.Title, i + 1, label, days[i]})
			}
		}
	}
	if err := writeRows(f, sheetProgress, rows); err != nil {
		return nil, err
	}

	summary := [][]any{{"Phase", "Phase Name", "Completed", "Total", "Percent"}}
	for _, p := range catalog.Phases {
		c := util.PhaseCompletion(p, progress)
		summary = append(summary, []any{p.ID, p.Name, c.Completed, c.Total, c.Percent()})
	}
	total := util.GlobalCompletion(catalog, progress)
	summary = append(summary, []any{"Overall", "", total.Completed, total.Total, total.Percent()})
	if err := writeRows(f, sheetSummary, summary); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "export: xlsx: write workbook")
	}
	return s.result(".xlsx", buf.Bytes()), nil
}

func (s *Export) result(ext string, body []byte) *ExportResult {
	return &ExportResult{
		Filename: s.Config.ExportFilename + ext,
		Body:     body,
		Revision: strconv.FormatUint(xxh3.Hash(body), 16),
	}
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Wrap(err, "export: xlsx: cell name")
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "export: xlsx: write %s row %d", sheet, i+1)
		}
	}
	return nil
}
