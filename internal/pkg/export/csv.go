package export

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/anicoll/tariff-simulator/internal/pkg/model"
)

// CSV writes every table to <dir>/<table name>.csv.
type CSV struct {
	dir    string
	format Format
	rename func(oldpath, newpath string) error
	logger *zap.Logger
}

func NewCSV(dir string, format Format) *CSV {
	return &CSV{
		dir:    dir,
		format: format,
		rename: os.Rename,
		logger: zap.L(),
	}
}

func (c *CSV) Path(table model.Table) string {
	return filepath.Join(c.dir, table.Name+".csv")
}

// Write stages all tables in temporary files and only moves them into place
// once every table was written. A failed run leaves the previous exports
// untouched.
func (c *CSV) Write(ctx context.Context, tables []model.Table) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}

	staged := make([]string, 0, len(tables))
	cleanup := func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}

	for _, table := range tables {
		if err := ctx.Err(); err != nil {
			cleanup()
			return err
		}
		tmp, err := c.stage(table)
		if tmp != "" {
			staged = append(staged, tmp)
		}
		if err != nil {
			cleanup()
			return err
		}
	}

	targets := make([]string, len(tables))
	for i, table := range tables {
		targets[i] = c.Path(table)
	}
	if err := c.commit(staged, targets); err != nil {
		cleanup()
		return err
	}
	for i, table := range tables {
		c.logger.Info("table exported", zap.String("path", targets[i]), zap.Int("rows", len(table.Rows)))
	}
	return nil
}

// commit moves every staged file onto its target. Existing targets are
// first moved aside; if any step fails the previous targets are restored.
func (c *CSV) commit(staged, targets []string) error {
	backups := make([]string, len(targets))
	placed := 0

	rollback := func() {
		for i := placed - 1; i >= 0; i-- {
			_ = os.Remove(targets[i])
		}
		for i, backup := range backups {
			if backup != "" {
				_ = c.rename(backup, targets[i])
			}
		}
	}

	for i, target := range targets {
		info, err := os.Lstat(target)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			rollback()
			return err
		}
		if !info.Mode().IsRegular() {
			rollback()
			return fmt.Errorf("%s: existing export is not a regular file", target)
		}
		backup := staged[i] + ".bak"
		if err := c.rename(target, backup); err != nil {
			rollback()
			return err
		}
		backups[i] = backup
	}

	for i, target := range targets {
		if err := c.rename(staged[i], target); err != nil {
			rollback()
			return err
		}
		placed++
	}

	for _, backup := range backups {
		if backup != "" {
			_ = os.Remove(backup)
		}
	}
	return nil
}

func (c *CSV) stage(table model.Table) (string, error) {
	f, err := os.CreateTemp(c.dir, table.Name+".*.tmp")
	if err != nil {
		return "", err
	}
	err = c.encode(f, table)
	return f.Name(), errors.Join(err, f.Close())
}

func (c *CSV) encode(f *os.File, table model.Table) error {
	buf := bufio.NewWriter(f)
	if c.format.BOM {
		if _, err := buf.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return err
		}
	}

	w := csv.NewWriter(buf)
	w.Comma = c.format.Separator
	if err := w.Write(table.Columns); err != nil {
		return err
	}
	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i, col := range table.Columns {
			record[i] = c.format.Cell(row[col])
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return buf.Flush()
}
