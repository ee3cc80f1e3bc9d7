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

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableCheckError
	DBExportError

	// Input data errors
	IdentityFileParseError
	RegisterParseError
	PeopleParseError
	RosterParseError
	RosterEmptyError
	TableParseError
	TableWriteError

	// Tracking source errors
	TrackingRequestError
	TrackingStatusError
	TrackingParseError

	// Event cache errors
	CacheOpenError
	CacheReadError
	CacheWriteError

	// Enrichment errors
	EnrichCancelledError
	MetricsWriteError
)
