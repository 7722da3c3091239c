package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/anicoll/tariff-simulator/internal/pkg/model"
)

const reportName = "resumen_tarifas.pdf"

// PDF renders the summary columns of every table into a short report.
type PDF struct {
	dir     string
	format  Format
	maxRows int
	logger  *zap.Logger
}

// NewPDF returns a PDF reporter listing at most maxRows rows per table;
// maxRows <= 0 lists every row.
func NewPDF(dir string, format Format, maxRows int) *PDF {
	return &PDF{
		dir:     dir,
		format:  format,
		maxRows: maxRows,
		logger:  zap.L(),
	}
}

func (p *PDF) Path() string {
	return filepath.Join(p.dir, reportName)
}

func (p *PDF) Write(ctx context.Context, tables []model.Table) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	// core fonts are cp1252, provider names often carry accents
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, tr("Simulación de tarifas eléctricas"))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generado: %s", time.Now().Format(time.RFC3339)))
	pdf.Ln(10)

	for _, table := range tables {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.renderTable(pdf, tr, table)
	}

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return err
	}
	if err := pdf.OutputFileAndClose(p.Path()); err != nil {
		return err
	}
	p.logger.Info("report exported", zap.String("path", p.Path()))
	return nil
}

func (p *PDF) renderTable(pdf *gofpdf.Fpdf, tr func(string) string, table model.Table) {
	columns := table.Summary
	if len(columns) == 0 {
		columns = table.Columns
	}
	width := 270.0 / float64(len(columns))

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, tr(table.Title))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 8)
	for _, col := range columns {
		pdf.CellFormat(width, 6, tr(col), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	rows := table.Rows
	if p.maxRows > 0 && len(rows) > p.maxRows {
		rows = rows[:p.maxRows]
	}
	for _, row := range rows {
		for _, col := range columns {
			align := "R"
			if _, ok := row[col].(string); ok {
				align = "L"
			}
			pdf.CellFormat(width, 6, tr(p.format.Cell(row[col])), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}
