package core

// errors.go defines user-friendly error messages with codes for support
// reference. When users encounter errors, they can quote the error code for
// faster diagnosis.
//
// Error codes are grouped by category:
//
//	DB001 - Connection refused  ("connection refused")
//	DB002 - Connection reset    ("connection reset")
//	DB003 - Timeout             ("timeout")
//	DB004 - Deadlock            ("deadlock")
//
//	FILE001 - File too large    ("file too large", "request body too large")
//	FILE002 - No file provided  ("no file provided")
//	FILE003 - Empty file        ("empty file")
//
//	DS001 - Dataset not found   ("dataset not found")
//	DS002 - Report not found    ("report not found")
//	DS003 - Invalid identifier  ("invalid identifier")
//
//	UPL001 - System busy        ("too many concurrent validations")
//	UPL002 - Request cancelled  ("context canceled")
//	UPL003 - Request timeout    ("context deadline exceeded")
//
//	RATE001 - Rate limited      ("rate limit")
//
//	ERR000 - Fallback when no pattern matches. Support staff should check
//	         application logs for the original technical error.
//
// Patterns are matched case-insensitively using strings.Contains; the first
// matching pattern wins, so more specific patterns come before general ones.

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for lookups against the catalog.
var (
	ErrDatasetNotFound = errors.New("dataset not found")
	ErrReportNotFound  = errors.New("report not found")
	ErrInvalidID       = errors.New("invalid identifier")
	ErrRateLimited     = errors.New("rate limit exceeded")
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// Database connectivity
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to database",
			Action:  "Please try again in a few moments",
			Code:    "DB001",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "Database connection was interrupted",
			Action:  "Please try again",
			Code:    "DB002",
		},
	},
	{
		pattern: "deadlock",
		msg: UserMessage{
			Message: "Database was busy with conflicting operations",
			Action:  "Please try again",
			Code:    "DB004",
		},
	},

	// File handling
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "File exceeds the maximum size limit",
			Action:  "Split the file into smaller chunks",
			Code:    "FILE001",
		},
	},
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "File exceeds the maximum size limit",
			Action:  "Split the file into smaller chunks",
			Code:    "FILE001",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Please select a CSV file to upload",
			Code:    "FILE002",
		},
	},
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The uploaded file is empty",
			Action:  "Please upload a CSV file with data rows",
			Code:    "FILE003",
		},
	},

	// Catalog lookups
	{
		pattern: "dataset not found",
		msg: UserMessage{
			Message: "Dataset not found",
			Action:  "Verify the dataset ID is correct",
			Code:    "DS001",
		},
	},
	{
		pattern: "report not found",
		msg: UserMessage{
			Message: "Validation report not found",
			Action:  "Verify the report ID is correct",
			Code:    "DS002",
		},
	},
	{
		pattern: "invalid identifier",
		msg: UserMessage{
			Message: "The provided ID is not valid",
			Action:  "IDs must be valid UUIDs",
			Code:    "DS003",
		},
	},

	// Validation processing
	{
		pattern: "too many concurrent validations",
		msg: UserMessage{
			Message: "System is busy processing other files",
			Action:  "Please wait a moment and try again",
			Code:    "UPL001",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "UPL002",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Try uploading a smaller file or check your connection",
			Code:    "UPL003",
		},
	},
	// General timeout after the more specific deadline pattern
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Operation timed out",
			Action:  "Try uploading a smaller file or try again later",
			Code:    "DB003",
		},
	},

	// Rate limiting
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Returns a zero UserMessage for nil errors.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}
	return defaultMessage
}

// FormatUserError renders a UserMessage as a single display string.
func FormatUserError(msg UserMessage) string {
	if msg.Code == "" {
		return ""
	}
	return fmt.Sprintf("%s. %s (ref: %s)", msg.Message, msg.Action, msg.Code)
}
