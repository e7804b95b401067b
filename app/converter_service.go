package app

import (
	"context"
	"time"

	"jifdict/domain/journal"
	"jifdict/internal"
	"jifdict/internal/errors"
	"jifdict/ports"
)

// ConverterService turns an impact-factor table into a journal lookup file
type ConverterService struct {
	reader ports.TableReader
	writer ports.LookupWriter
	logger *internal.Logger
}

// ConversionResult summarizes one conversion
type ConversionResult struct {
	InputPath   string `json:"input_path"`
	OutputPath  string `json:"output_path"`
	Format      string `json:"format"`
	Encoding    string `json:"encoding,omitempty"`
	RowsRead    int    `json:"rows_read"`
	RowsSkipped int    `json:"rows_skipped"`
	Keys        int    `json:"keys"`
	Overwrites  int    `json:"overwrites"`
	RuntimeMs   int64  `json:"runtime_ms"`
}

// NewConverterService creates a converter service
func NewConverterService(reader ports.TableReader, writer ports.LookupWriter, logger *internal.Logger) *ConverterService {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &ConverterService{
		reader: reader,
		writer: writer,
		logger: logger,
	}
}

// Build loads the table at inputPath and folds it into a lookup without
// writing anything
func (s *ConverterService) Build(ctx context.Context, inputPath string) (*journal.Lookup, *ConversionResult, error) {
	startTime := time.Now()

	table, err := s.reader.ReadTable(ctx, inputPath)
	if err != nil {
		s.logger.Error("[Converter] could not read %s: %v", inputPath, err)
		return nil, nil, err
	}

	builder := journal.NewBuilder()
	builder.AddTable(table)
	stats := builder.Stats()

	result := &ConversionResult{
		InputPath:   inputPath,
		Format:      table.Format,
		Encoding:    table.Encoding,
		RowsRead:    stats.RowsRead,
		RowsSkipped: stats.RowsSkipped,
		Keys:        stats.Keys,
		Overwrites:  stats.Overwrites,
		RuntimeMs:   time.Since(startTime).Milliseconds(),
	}
	return builder.Lookup(), result, nil
}

// Convert builds the lookup from inputPath and writes it to outputPath.
// On any load failure nothing is written and the typed error is returned.
func (s *ConverterService) Convert(ctx context.Context, inputPath, outputPath string) (*ConversionResult, error) {
	if outputPath == "" {
		return nil, errors.ConfigInvalid("output path is required")
	}

	lookup, result, err := s.Build(ctx, inputPath)
	if err != nil {
		return nil, err
	}

	if err := s.writer.WriteLookup(ctx, outputPath, lookup); err != nil {
		s.logger.Error("[Converter] could not write %s: %v", outputPath, err)
		return nil, errors.InternalError("failed to write lookup", err)
	}
	result.OutputPath = outputPath

	if result.Overwrites > 0 {
		s.logger.Debug("[Converter] %d keys were overwritten by later rows", result.Overwrites)
	}
	s.logger.Info("[Converter] wrote %d journal keys to %s (%d rows read, %d skipped)",
		result.Keys, outputPath, result.RowsRead, result.RowsSkipped)

	return result, nil
}
