package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"regexp"
	"strings"

	"github.com/deppfellow/member-directory/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode reports the mapped sqlerr.Code for a given error.
//
// If err can be unwrapped into *sqlerr.Error its Code is returned,
// otherwise Other.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// ConvertPgError converts a pgconn.PgError (raw Postgres error) into our custom sqlerr.Error.
//
// SQLSTATE and severity are mapped into enums for easier switching, and the
// application code / user message are derived from the table and column.
func ConvertPgError(src *pgconn.PgError) *Error {
	sqlErr := &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}

	sqlErr.AppCode = generateErrorCode(sqlErr.TableName, sqlErr.Code)
	sqlErr.UserMessage = formatUserFriendlyMessage(sqlErr)
	if sqlErr.Code == UniqueViolation {
		if column := extractColumnForUniqueViolation(sqlErr.ConstraintName); column != "" {
			sqlErr.UserMessage = strings.ReplaceAll(sqlErr.UserMessage, "identifier", humanizeText(column))
		}
	}

	return sqlErr
}

// generateErrorCode creates consistent "application error codes" from DB errors.
//
// Output format:
//
//	<DOMAIN>_<ACTION>
//
// Example:
//
//	category + UniqueViolation => CATEGORY_ALREADY_EXISTS
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)

	// Very naive singularization: "MEMBERS" -> "MEMBER".
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces an end-user-facing error message.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		// "identifier" is replaced later when the column can be inferred.
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName tries to infer an entity name from table/column data.
//
// Priority rules:
//  1. A column prefixed "id_" names the referenced entity ("id_category" -> "Category").
//  2. Otherwise the table name, singularized if it ends with "s".
//  3. Otherwise "record".
func getEntityName(tableName, columnName string) string {
	column := strings.ToLower(columnName)
	if strings.HasPrefix(column, "id_") && len(column) > 3 {
		return humanizeText(strings.TrimPrefix(column, "id_"))
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText converts snake_case into Title Case ("url_portfolio" -> "Url Portfolio").
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

var uniqueKeyPattern = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// extractColumnForUniqueViolation tries to infer the column name from a unique constraint name.
//
// It supports two conventions:
//
//  1. "unique_<table>_<column>"   e.g. unique_member_username -> "username"
//  2. "<table>_<column>_(key|ukey)" e.g. category_name_key -> "name"
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueKeyPattern.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// Classify returns the errs.Kind for a low-level database error.
//
//   - SQLSTATE class 23 (integrity constraints): Conflict
//   - SQLSTATE class 08, 53300, 57P0x, 57014: ConnectionFailure
//   - pgx.ErrNoRows: NotFound
//   - dial errors, timeouts, broken sockets: ConnectionFailure
//   - everything else: Unknown
func Classify(err error) errs.Kind {
	if err == nil {
		return errs.Unknown
	}

	var coreErr *errs.Error
	if errors.As(err, &coreErr) {
		return coreErr.Kind
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		code := MapCode(pgerr.Code)
		switch {
		case code.IsConstraint():
			return errs.Conflict
		case code.IsConnection(), code == QueryCanceled:
			return errs.ConnectionFailure
		default:
			return errs.Unknown
		}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NotFound
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return errs.ConnectionFailure
	}

	var netErr net.Error
	switch {
	case pgconn.Timeout(err),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.As(err, &netErr),
		strings.Contains(err.Error(), "closed pool"):
		return errs.ConnectionFailure
	}

	return errs.Unknown
}

// HandleError converts a low-level database error into an *errs.Error
// labelled with op.
//
// Postgres errors are converted into *sqlerr.Error first so the wrapped
// chain keeps the constraint/table details for logging.
func HandleError(op string, err error) error {
	if err == nil {
		return nil
	}

	var coreErr *errs.Error
	if errors.As(err, &coreErr) {
		return err
	}

	kind := Classify(err)

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return errs.E(op, kind, ConvertPgError(pgerr))
	}

	return errs.E(op, kind, err)
}
