// Package core implements spreadsheet loading and column concatenation.
//
// # Error Codes Reference
//
// This file maps domain failure messages to user-facing codes for support
// reference. Clients always receive the failure message verbatim; the code
// rides alongside it so users can quote it to support staff.
//
//	FILE001 - File not found: the requested path does not exist
//	          Patterns: "file not found"
//
//	FILE002 - Load error: the spreadsheet could not be parsed
//	          Patterns: "error loading excel file"
//
//	FILE003 - Empty file: the spreadsheet has a header but no data rows
//	          Patterns: "contains no data"
//
//	FILE004 - No file: the upload form had no file field
//	          Patterns: "no file provided"
//
//	FILE005 - Invalid path: the path escapes the data directory
//	          Patterns: "invalid file path"
//
//	FILE006 - File too large: the upload exceeds the configured size cap
//	          Patterns: "exceeds the maximum allowed size"
//
//	DATA001 - Insufficient data: fewer than two rows entered concatenation
//	          Patterns: "no data to process"
//
//	COL002  - No columns: the request named no usable columns
//	          Patterns: "invalid columns"
//
//	COL001  - Column not found: a requested column is absent from the header
//	          Patterns: "not found in the data"
//
//	ROW001  - Inconsistent row: a data row is shorter than a selected column
//	          Patterns: "inconsistent number of columns"
//
//	ROW002  - Null value: a selected cell is empty or missing
//	          Patterns: "null values in columns"
//
//	PROC001 - System busy: too many concurrent processing jobs
//	          Patterns: "too many concurrent processing"
//
//	PROC002 - Request cancelled
//	          Patterns: "context canceled"
//
//	PROC003 - Request timeout
//	          Patterns: "context deadline exceeded"
//
//	RATE001 - Rate limited: too many requests from one client
//	          Patterns: "rate limit"
//
//	ERR000  - Fallback when no pattern matches; check server logs
//
// Patterns are matched case-insensitively with strings.Contains, first
// match wins, so specific patterns must precede general ones.
package core

import "strings"

// UserMessage carries the support code and guidance for a failure.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// messagePattern pairs a failure-text pattern with its user message.
type messagePattern struct {
	pattern string
	msg     UserMessage
}

var messagePatterns = []messagePattern{
	{
		pattern: "file not found",
		msg: UserMessage{
			Message: "The requested file does not exist",
			Action:  "Check the file path and try again",
			Code:    "FILE001",
		},
	},
	{
		pattern: "error loading excel file",
		msg: UserMessage{
			Message: "The spreadsheet could not be read",
			Action:  "Ensure the file is a valid .xlsx or .csv file",
			Code:    "FILE002",
		},
	},
	{
		pattern: "contains no data",
		msg: UserMessage{
			Message: "The spreadsheet has no data rows",
			Action:  "Upload a file with at least one row below the header",
			Code:    "FILE003",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Attach a spreadsheet in the file field",
			Code:    "FILE004",
		},
	},
	{
		pattern: "invalid file path",
		msg: UserMessage{
			Message: "The file path is not allowed",
			Action:  "Use a relative path inside the data directory",
			Code:    "FILE005",
		},
	},
	{
		pattern: "exceeds the maximum allowed size",
		msg: UserMessage{
			Message: "The uploaded file is too large",
			Action:  "Upload a smaller file",
			Code:    "FILE006",
		},
	},
	{
		pattern: "invalid columns",
		msg: UserMessage{
			Message: "No usable column names were provided",
			Action:  "Provide a comma-separated list of column names",
			Code:    "COL002",
		},
	},
	{
		pattern: "no data to process",
		msg: UserMessage{
			Message: "There is no data to process",
			Action:  "Provide a table with a header and at least one data row",
			Code:    "DATA001",
		},
	},
	{
		pattern: "not found in the data",
		msg: UserMessage{
			Message: "A requested column is missing from the header",
			Action:  "Verify column names match the header exactly",
			Code:    "COL001",
		},
	},
	{
		pattern: "inconsistent number of columns",
		msg: UserMessage{
			Message: "A row is shorter than a selected column",
			Action:  "Fix ragged rows in the source file and retry",
			Code:    "ROW001",
		},
	},
	{
		pattern: "null values in columns",
		msg: UserMessage{
			Message: "A selected cell is empty",
			Action:  "Fill in the missing values or pick other columns",
			Code:    "ROW002",
		},
	},
	{
		pattern: "too many concurrent processing",
		msg: UserMessage{
			Message: "System is busy processing other files",
			Action:  "Please wait a moment and try again",
			Code:    "PROC001",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "PROC002",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Try a smaller file or check your connection",
			Code:    "PROC003",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000). Support
// staff should check server logs for the original failure text.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapMessage converts a domain failure message to a UserMessage.
// Matching is case-insensitive, first pattern wins, ERR000 on no match.
func MapMessage(message string) UserMessage {
	if message == "" {
		return UserMessage{}
	}

	lower := strings.ToLower(message)

	for _, mp := range messagePatterns {
		if strings.Contains(lower, mp.pattern) {
			return mp.msg
		}
	}

	return defaultMessage
}
