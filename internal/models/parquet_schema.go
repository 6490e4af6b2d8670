package models

// ParquetCheckRecord is one archived audit check, one row per check of a run.
// Optional fields use pointers so absent values stay null in the file.
type ParquetCheckRecord struct {
	RunID      string  `parquet:"run_id"`
	Kind       string  `parquet:"kind"`
	Target     string  `parquet:"target"`
	Verdict    string  `parquet:"verdict"`
	StatusCode *int32  `parquet:"status_code,optional"`
	Detail     *string `parquet:"detail,optional"`
	CheckedAt  int64   `parquet:"checked_at"` // unix millis
}
