package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"exusiai.dev/roadmap-tracker/internal/app/appconfig"
	"exusiai.dev/roadmap-tracker/internal/pkg/kvslot"
)

func newTestExport(t *testing.T) (*Export, *Progress) {
	t.Helper()
	progress := newTestProgress(t, kvslot.NewMemory("test"))
	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{ExportFilename: "fullstack-7mo-progress"}}
	return NewExport(conf, progress), progress
}

func TestExportJSONEmpty(t *testing.T) {
	export, _ := newTestExport(t)

	res, err := export.JSON()
	require.NoError(t, err)
	assert.Equal(t, "fullstack-7mo-progress.json", res.Filename)
	assert.Equal(t, "{}", string(res.Body))
	assert.NotEmpty(t, res.Revision)
}

func TestExportJSONIndented(t *testing.T) {
	export, progress := newTestExport(t)
	_, err := progress.ToggleDay(context.Background(), "Phase 1", 1, 0)
	require.NoError(t, err)

	res, err := export.JSON()
	require.NoError(t, err)
	assert.Equal(t, `{
  "Phase 1": {
    "1": {
      "days": {
        "0": true
      }
    }
  }
}`, string(res.Body))
}

func TestExportRevisionFollowsContent(t *testing.T) {
	export, progress := newTestExport(t)

	first, err := export.JSON()
	require.NoError(t, err)
	same, err := export.JSON()
	require.NoError(t, err)
	assert.Equal(t, first.Revision, same.Revision)

	_, err = progress.ToggleDay(context.Background(), "Phase 2", 5, 2)
	require.NoError(t, err)
	changed, err := export.JSON()
	require.NoError(t, err)
	assert.NotEqual(t, first.Revision, changed.Revision)
}

func TestExportXLSX(t *testing.T) {
	export, progress := newTestExport(t)
	_, err := progress.ToggleWeek(context.Background(), "Phase 1", 1, true)
	require.NoError(t, err)

	res, err := export.XLSX()
	require.NoError(t, err)
	assert.Equal(t, "fullstack-7mo-progress.xlsx", res.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(res.Body))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetProgress, sheetSummary}, f.GetSheetList())

	rows, err := f.GetRows(sheetProgress)
	require.NoError(t, err)
	require.Len(t, rows, 211, "header plus one row per day")
	assert.Equal(t, "Completed", rows[0][6])
	assert.Equal(t, []string{"Phase 1", "HTML & CSS Foundations", "1", "HTML Basics", "1"}, rows[1][:5])
	assert.Equal(t, "TRUE", rows[1][6])
	assert.Equal(t, "FALSE", rows[8][6])

	summary, err := f.GetRows(sheetSummary)
	require.NoError(t, err)
	require.Len(t, summary, 8)
	assert.Equal(t, []string{"Phase 1", "HTML & CSS Foundations", "7", "28", "25"}, summary[1])
	assert.Equal(t, []string{"Overall", "", "7", "210", "3"}, summary[7])
}
