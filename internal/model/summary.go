package model

import "time"

// IngestSummary captures metrics from a single file ingest run.
type IngestSummary struct {
	FilePath      string
	FileSHA256    string
	SourceFileID  int64
	IngestBatchID string
	AlreadyLoaded bool
	RowsRead      int64
	RowsStaged    int64
	RowsRejected  int64
	RowsMerged    int64
	RowsByScheme  map[string]int64
	DurationStage time.Duration
	DurationMerge time.Duration
	DurationFinal time.Duration
	DurationTotal time.Duration
}
