package datastore

import (
	"os"

	"github.com/aleister1102/siteguard/internal/common"
	"github.com/aleister1102/siteguard/internal/models"

	"github.com/parquet-go/parquet-go"
)

// ReadArchive loads every record archived for runID
func (ra *ResultArchive) ReadArchive(runID string) ([]models.ParquetCheckRecord, error) {
	filePath := ra.ArchivePath(runID)
	if _, err := os.Stat(filePath); err != nil {
		if os.IsNotExist(err) {
			return nil, common.WrapErrorf(common.ErrNotFound, "no archive for run %s", runID)
		}
		return nil, common.WrapError(err, "failed to stat parquet file: "+filePath)
	}

	records, err := parquet.ReadFile[models.ParquetCheckRecord](filePath)
	if err != nil {
		ra.logger.Error().Err(err).Str("file", filePath).Msg("Failed to read parquet archive")
		return nil, common.WrapError(err, "failed to read parquet file: "+filePath)
	}
	ra.logger.Debug().Int("record_count", len(records)).Str("file", filePath).Msg("Read audit archive")
	return records, nil
}
