package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"jifdict/domain/journal"
	"jifdict/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Supported table formats
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx", "csv" or "" when unsupported
	ext      string
	config   ReaderConfig
}

// NewDataReader creates a data reader for filePath, dispatching on its extension
func NewDataReader(filePath string, config ReaderConfig) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := ""
	switch ext {
	case ".xlsx":
		fileType = FormatXLSX
	case ".csv":
		fileType = FormatCSV
	}
	if len(config.Encodings) == 0 {
		config.Encodings = DefaultEncodings()
	}
	return &DataReader{filePath: filePath, fileType: fileType, ext: ext, config: config}
}

// FileType returns the detected format, empty when unsupported
func (r *DataReader) FileType() string {
	return r.fileType
}

// ReadData reads the file into a source table. Unsupported extensions fail
// with UNSUPPORTED_FORMAT; every other problem is a LOAD_FAILURE.
func (r *DataReader) ReadData(ctx context.Context) (*journal.SourceTable, error) {
	if r.fileType == "" {
		return nil, errors.UnsupportedFormat(r.ext)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.LoadFailure(r.filePath, err)
	}

	log.Printf("[DataReader] Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); err != nil {
		return nil, errors.LoadFailure(r.filePath, err)
	}

	var (
		table *journal.SourceTable
		err   error
	)
	switch r.fileType {
	case FormatCSV:
		table, err = r.readCSVData(ctx)
	default:
		table, err = r.readExcelData()
	}
	if err != nil {
		return nil, errors.LoadFailure(r.filePath, err)
	}
	return table, nil
}

// readExcelData reads the configured sheet, or the first one, into a table
func (r *DataReader) readExcelData() (*journal.SourceTable, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()
	log.Printf("[DataReader] Excel file opened in %.2fms", float64(time.Since(startTime).Nanoseconds())/1e6)

	sheet := r.config.SheetName
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	readStart := time.Now()
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	log.Printf("[DataReader] Sheet %q read in %.2fms (%d rows)",
		sheet, float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return r.processRows(rows, "")
}

// readCSVData tries each configured encoding in order and keeps the first
// one that both decodes and parses
func (r *DataReader) readCSVData(ctx context.Context) (*journal.SourceTable, error) {
	raw, err := os.ReadFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}

	var attempts []string
	for _, enc := range r.config.Encodings {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rows, err := parseCSV(enc, raw)
		if err != nil {
			log.Printf("[DataReader] CSV decode with %s failed: %v", enc, err)
			attempts = append(attempts, fmt.Sprintf("%s: %v", enc, err))
			continue
		}

		log.Printf("[DataReader] CSV file decoded as %s (%d rows)", enc, len(rows))
		return r.processRows(rows, enc)
	}

	return nil, fmt.Errorf("no encoding could read the file (%s)", strings.Join(attempts, "; "))
}

func parseCSV(enc string, raw []byte) ([][]string, error) {
	text, err := decodeText(enc, raw)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no columns to parse from file")
	}
	return rows, nil
}

// processRows converts raw string rows into a source table. Headers are
// trimmed; cell text is kept as read. When a header repeats, the first
// column with that name wins.
func (r *DataReader) processRows(rows [][]string, encoding string) (*journal.SourceTable, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s file has no header row", strings.ToUpper(r.fileType))
	}

	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]journal.SourceRow, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowData := make(journal.SourceRow, len(row))

		for j, cell := range row {
			if j >= len(headers) {
				break
			}
			if _, seen := rowData[headers[j]]; seen {
				continue
			}
			rowData[headers[j]] = cell
		}

		dataRows = append(dataRows, rowData)
	}

	log.Printf("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return &journal.SourceTable{
		Headers:  headers,
		Rows:     dataRows,
		Format:   r.fileType,
		Encoding: encoding,
	}, nil
}

// Loader adapts DataReader to ports.TableReader
type Loader struct {
	config ReaderConfig
}

// NewLoader creates a loader using config for every file
func NewLoader(config ReaderConfig) *Loader {
	return &Loader{config: config}
}

// ReadTable reads the table at path
func (l *Loader) ReadTable(ctx context.Context, path string) (*journal.SourceTable, error) {
	return NewDataReader(path, l.config).ReadData(ctx)
}
