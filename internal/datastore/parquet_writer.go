package datastore

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/aleister1102/siteguard/internal/common"
	"github.com/aleister1102/siteguard/internal/config"
	"github.com/aleister1102/siteguard/internal/models"

	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
)

// ResultArchive writes the checks of each audit run to <base>/audit/<run_id>.parquet
type ResultArchive struct {
	config      *config.StorageConfig
	logger      zerolog.Logger
	transformer *RecordTransformer
}

// NewResultArchive creates an archive rooted at cfg.ParquetBasePath
func NewResultArchive(cfg *config.StorageConfig, logger zerolog.Logger) (*ResultArchive, error) {
	if cfg == nil {
		return nil, common.NewValidationError("config", cfg, "storage config cannot be nil")
	}
	if cfg.ParquetBasePath == "" {
		return nil, common.NewValidationError("parquet_base_path", cfg.ParquetBasePath, "ParquetBasePath is not configured")
	}
	archiveLogger := logger.With().Str("component", "ResultArchive").Logger()
	return &ResultArchive{
		config:      cfg,
		logger:      archiveLogger,
		transformer: NewRecordTransformer(archiveLogger),
	}, nil
}

// WriteResult contains the result of a write operation
type WriteResult struct {
	FilePath       string
	RecordsWritten int
	FileSize       int64
	WriteTime      time.Duration
}

// Store implements the audit report sink
func (ra *ResultArchive) Store(ctx context.Context, report *models.AuditReport) error {
	_, err := ra.Write(ctx, report)
	return err
}

// Write archives report, replacing any earlier file for the same run
func (ra *ResultArchive) Write(ctx context.Context, report *models.AuditReport) (*WriteResult, error) {
	startTime := time.Now()
	if report == nil || report.RunID == "" {
		return nil, common.NewValidationError("run_id", "", "report must carry a run id")
	}
	if result := CheckCancellationWithLog(ctx, ra.logger, "archive write"); result.Cancelled {
		return nil, result.Error
	}

	filePath, err := ra.prepareOutputFile(report.RunID)
	if err != nil {
		return nil, err
	}

	records := ra.transformer.TransformReport(report)
	written, err := ra.writeToParquetFile(filePath, records)
	if err != nil {
		return nil, err
	}

	result := &WriteResult{FilePath: filePath, RecordsWritten: written, WriteTime: time.Since(startTime)}
	if info, statErr := os.Stat(filePath); statErr == nil {
		result.FileSize = info.Size()
	}

	ra.logger.Info().
		Str("file_path", result.FilePath).
		Int("records_written", result.RecordsWritten).
		Dur("write_time", result.WriteTime).
		Msg("Audit run archived to Parquet")
	return result, nil
}

// ArchivePath returns the file an audit run is archived to
func (ra *ResultArchive) ArchivePath(runID string) string {
	return filepath.Join(ra.config.ParquetBasePath, "audit", runID+".parquet")
}

func (ra *ResultArchive) prepareOutputFile(runID string) (string, error) {
	filePath := ra.ArchivePath(runID)
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", common.WrapError(err, "failed to create audit Parquet directory: "+filepath.Dir(filePath))
	}
	return filePath, nil
}

func (ra *ResultArchive) writeToParquetFile(filePath string, records []models.ParquetCheckRecord) (int, error) {
	file, err := os.Create(filePath)
	if err != nil {
		return 0, common.WrapError(err, "failed to create/truncate parquet file: "+filePath)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[models.ParquetCheckRecord](file, ra.compressionOption())
	written, err := writer.Write(records)
	if err != nil {
		_ = writer.Close()
		return 0, common.WrapError(err, "failed to write audit records to parquet file")
	}
	if err := writer.Close(); err != nil {
		return 0, common.WrapError(err, "failed to finalize parquet file")
	}
	return written, nil
}

func (ra *ResultArchive) compressionOption() parquet.WriterOption {
	switch ra.config.CompressionCodec {
	case "gzip":
		return parquet.Compression(&parquet.Gzip)
	case "snappy":
		return parquet.Compression(&parquet.Snappy)
	case "none":
		return parquet.Compression(&parquet.Uncompressed)
	default:
		return parquet.Compression(&parquet.Zstd)
	}
}
