package export

import (
	"context"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/anicoll/tariff-simulator/internal/pkg/model"
)

const workbookName = "ranking_tarifas.xlsx"

// XLSX writes all tables into one workbook, one sheet per table.
type XLSX struct {
	dir    string
	format Format
	logger *zap.Logger
}

func NewXLSX(dir string, format Format) *XLSX {
	return &XLSX{
		dir:    dir,
		format: format,
		logger: zap.L(),
	}
}

func (x *XLSX) Path() string {
	return filepath.Join(x.dir, workbookName)
}

func (x *XLSX) Write(ctx context.Context, tables []model.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, table := range tables {
		if err := ctx.Err(); err != nil {
			return err
		}
		sheet := sheetName(table.Name)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return err
		}

		if err := f.SetSheetRow(sheet, "A1", &table.Columns); err != nil {
			return err
		}
		for r, row := range table.Rows {
			values := make([]any, len(table.Columns))
			for c, col := range table.Columns {
				values[c] = x.format.round(row[col])
			}
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return err
			}
		}
	}

	if err := os.MkdirAll(x.dir, 0o755); err != nil {
		return err
	}
	if err := f.SaveAs(x.Path()); err != nil {
		return err
	}
	x.logger.Info("workbook exported", zap.String("path", x.Path()), zap.Int("sheets", len(tables)))
	return nil
}

// sheetName trims a table name to the 31 characters Excel allows.
func sheetName(name string) string {
	if len(name) > 31 {
		return name[:31]
	}
	return name
}
