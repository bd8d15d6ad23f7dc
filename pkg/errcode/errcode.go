package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Weights configuration errors
	WeightsConfigError

	// API client errors
	APIRequestError
	APIStatusError
	APIDecodeError

	// HTTP cache errors
	CacheOpenError
	CacheReadError
	CacheWriteError

	// Loader errors
	LoadNoExportsError
	LoadCSVError
	LoadDatasetError
	SaveDatasetError

	// Enrichment errors
	StatsCheckpointError
	StatsFetchError
	StatsBadTaxonError

	// IQA errors
	IQAReportError

	// Image download errors
	ImageDirError

	// Report errors
	ReportTemplateError
	ReportWriteError
	MinifiedExportError
)
