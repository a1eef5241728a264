package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"lab-supply-ledger/internal/delivery/dto"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

var (
	ErrNothingToExport = errors.New("nothing to export")
)

const (
	exportFilePrefix = "material-report-"
	exportSheetName  = "Sheet1"
)

// ExportService writes report rows to a spreadsheet file. It only sees
// the rows a report produced, never the store.
type ExportService interface {
	Export(rows []dto.UsageReportRow, destDir string) (string, error)
}

type exportService struct {
	log *logrus.Logger
}

func NewExportService(log *logrus.Logger) ExportService {
	return &exportService{log: log}
}

// Export writes one worksheet with a bold Material/Total header and one
// row per report line, in the given order. The file name carries a
// minute-resolution timestamp so repeated exports never overwrite each
// other. The workbook is written to a temporary path first and renamed
// into place, so a failure mid-write leaves nothing under the final
// name. An empty report is rejected rather than producing a header-only
// file.
func (s *exportService) Export(rows []dto.UsageReportRow, destDir string) (string, error) {
	if len(rows) == 0 {
		return "", ErrNothingToExport
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory %s: %w", destDir, err)
	}

	workbook, err := buildWorkbook(rows)
	if err != nil {
		return "", err
	}
	defer workbook.Close()

	fileName := exportFilePrefix + time.Now().Format("20060102-1504") + ".xlsx"
	finalPath := filepath.Join(destDir, fileName)

	tmp, err := os.CreateTemp(destDir, exportFilePrefix+"*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create export file %s: %w", finalPath, err)
	}
	tmpPath := tmp.Name()

	if err := workbook.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write export file %s: %w", finalPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to flush export file %s: %w", finalPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to close export file %s: %w", finalPath, err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to move export file into place at %s: %w", finalPath, err)
	}

	s.log.Infof("Exported %d report rows to %s", len(rows), finalPath)
	return finalPath, nil
}

func buildWorkbook(rows []dto.UsageReportRow) (*excelize.File, error) {
	workbook := excelize.NewFile()

	bold, err := workbook.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		workbook.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	workbook.SetCellValue(exportSheetName, "A1", "Material")
	workbook.SetCellValue(exportSheetName, "B1", "Total")
	workbook.SetCellStyle(exportSheetName, "A1", "B1", bold)

	for i, row := range rows {
		workbook.SetCellValue(exportSheetName, fmt.Sprintf("A%d", i+2), row.Material)
		workbook.SetCellValue(exportSheetName, fmt.Sprintf("B%d", i+2), row.Total)
	}

	return workbook, nil
}
