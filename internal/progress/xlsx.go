package progress

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet ExportXLSX writes.
const SheetName = "progress"

var header = []string{"Target", "MapType", "Completed", "Max", "LongestRun", "Percent"}

// ExportXLSX writes reports to a workbook at path, replacing any existing
// file. The workbook is saved to a temporary file first and then renamed.
func ExportXLSX(path string, reports []Report) error {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("xlsx new sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	for c, v := range header {
		if err := f.SetCellValue(SheetName, cellName(c, 1), v); err != nil {
			return err
		}
	}
	for i, r := range reports {
		row := []any{r.Target, string(r.MapType), r.Completed, r.Max, r.LongestRun, r.Percent}
		for c, v := range row {
			if err := f.SetCellValue(SheetName, cellName(c, i+2), v); err != nil {
				return err
			}
		}
	}

	// excelize determines format by extension; keep .xlsx for temp files.
	tmp := path + ".tmp.xlsx"
	if err := f.SaveAs(tmp); err != nil {
		return fmt.Errorf("xlsx save temp: %w", err)
	}
	// On Windows, rename cannot overwrite an existing file.
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		_ = os.Remove(tmp)
		return fmt.Errorf("xlsx remove old: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("xlsx rename: %w", err)
	}
	return nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}
