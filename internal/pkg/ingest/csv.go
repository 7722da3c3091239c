package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anicoll/tariff-simulator/internal/pkg/model"
)

// Separator used by Datadis exports and the tariff catalog.
const Separator = ';'

type rawTable struct {
	source   string
	encoding string
	header   []string
	rows     [][]string
	// lines[i] is the file line where rows[i] starts.
	lines []int
}

func readRawTable(path string) (*rawTable, error) {
	source := filepath.Base(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	text, encoding, err := decode(data)
	if err != nil {
		return nil, &model.ValidationError{Source: source, Err: fmt.Errorf("%w: %v", model.ErrUndecodable, err)}
	}

	r := csv.NewReader(bytes.NewReader(text))
	r.Comma = Separator

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &model.ValidationError{Source: source, Field: "header", Err: model.ErrMissingColumn}
		}
		return nil, csvError(source, err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	table := &rawTable{source: source, encoding: encoding, header: header}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(source, err)
		}
		line, _ := r.FieldPos(0)
		table.rows = append(table.rows, record)
		table.lines = append(table.lines, line)
	}
	return table, nil
}

// column returns the index of the header named name.
func (t *rawTable) column(name string) int {
	for i, h := range t.header {
		if h == name {
			return i
		}
	}
	return -1
}

func csvError(source string, err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &model.ValidationError{Source: source, Line: perr.Line, Err: perr.Err}
	}
	return &model.ValidationError{Source: source, Err: err}
}
