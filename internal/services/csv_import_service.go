package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"spendsight/internal/models"
)

var (
	ErrEmptyFile     = errors.New("uploaded file is empty")
	ErrMalformedFile = errors.New("uploaded file could not be read as CSV")
	ErrTooManyRows   = errors.New("uploaded file exceeds the maximum row count")
)

// csvImportService reads delimited uploads into raw records. The first row
// is the header; each subsequent row becomes one RawRecord keyed by header
// column. Rows shorter or longer than the header are tolerated: missing
// cells are simply absent keys, extra cells are dropped.
type csvImportService struct{}

// NewCSVImportService creates the delimited-file import adapter
func NewCSVImportService() CSVImportServiceInterface {
	return &csvImportService{}
}

func (s *csvImportService) ReadRecords(r io.Reader, maxRows int) ([]models.RawRecord, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, ErrEmptyFile
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}

	columns := make([]string, len(header))
	for i, column := range header {
		columns[i] = strings.TrimSpace(column)
	}

	records := make([]models.RawRecord, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: row %d: %v", ErrMalformedFile, len(records)+2, err)
		}

		if maxRows > 0 && len(records) >= maxRows {
			return nil, nil, fmt.Errorf("%w: limit %d", ErrTooManyRows, maxRows)
		}

		record := make(models.RawRecord, len(columns))
		for i, cell := range row {
			if i >= len(columns) {
				break
			}
			record[columns[i]] = cell
		}
		records = append(records, record)
	}

	return records, columns, nil
}
