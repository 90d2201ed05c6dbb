package sqlerr

import (
	"fmt"
	"strings"
)

// Code is a friendly name for the SQLSTATE values the core cares about.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	ExclusionViolation  Code = "exclusion_violation"
	ConnectionException Code = "connection_exception"
	TooManyConnections  Code = "too_many_connections"
	AdminShutdown       Code = "admin_shutdown"
	QueryCanceled       Code = "query_canceled"
)

// Severity mirrors the Postgres severity field.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is a normalized Postgres error.
//
// It keeps the SQLSTATE, the table/column/constraint metadata and a
// machine code plus a message safe to show to end users.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	// AppCode is e.g. CATEGORY_ALREADY_EXISTS.
	AppCode string
	// UserMessage is e.g. "A Category with this Name already exists".
	UserMessage string

	driverErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (SQLSTATE %s): %s", e.Code, e.DatabaseCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// PublicCode returns the application code, e.g. MEMBER_ALREADY_EXISTS.
func (e *Error) PublicCode() string {
	return e.AppCode
}

// PublicMessage returns the message that is safe to show to users.
func (e *Error) PublicMessage() string {
	return e.UserMessage
}

// MapCode converts a raw SQLSTATE into a Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "23P01":
		return ExclusionViolation
	case "53300":
		return TooManyConnections
	case "57P01", "57P02", "57P03":
		return AdminShutdown
	case "57014":
		return QueryCanceled
	}
	if strings.HasPrefix(sqlstate, "08") {
		return ConnectionException
	}
	return Other
}

// MapSeverity converts the severity string reported by Postgres.
func MapSeverity(severity string) Severity {
	switch Severity(strings.ToUpper(severity)) {
	case SeverityFatal:
		return SeverityFatal
	case SeverityPanic:
		return SeverityPanic
	case SeverityWarning:
		return SeverityWarning
	case SeverityNotice:
		return SeverityNotice
	case SeverityDebug:
		return SeverityDebug
	case SeverityInfo:
		return SeverityInfo
	case SeverityLog:
		return SeverityLog
	default:
		return SeverityError
	}
}

// IsConstraint reports whether the code is an integrity constraint violation
// (SQLSTATE class 23).
func (c Code) IsConstraint() bool {
	switch c {
	case NotNullViolation, ForeignKeyViolation, UniqueViolation, CheckViolation, ExclusionViolation:
		return true
	}
	return false
}

// IsConnection reports whether the code means the session with the server
// is unusable.
func (c Code) IsConnection() bool {
	switch c {
	case ConnectionException, TooManyConnections, AdminShutdown:
		return true
	}
	return false
}
