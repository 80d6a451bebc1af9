package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/timesheet/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// "<table>_<column>_key" or "<table>_<column>_ukey"
	uniqueConstraintPattern = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

	// "<table>_<column>_fkey", the column itself ends in "_id"
	foreignKeyConstraintPattern = regexp.MustCompile(`([a-z0-9]+_id)_fkey$`)
)

// ErrCode reports the Code of err, or Other when err is not an *Error.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

// ConvertPgError converts a *pgconn.PgError into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
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
}

// singularize strips the plural suffix of a table name.
//
//	"time_entries" -> "time_entry", "developers" -> "developer"
func singularize(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, "ies") && len(name) > 3:
		return name[:len(name)-3] + "y"
	case strings.HasSuffix(lower, "s") && len(name) > 1:
		return name[:len(name)-1]
	}
	return name
}

// generateErrorCode builds "<DOMAIN>_<ACTION>" codes such as
// DEVELOPER_ALREADY_EXISTS or DEVELOPER_NOT_FOUND.
func generateErrorCode(entity string, errType Code) string {
	if entity == "" {
		entity = "record"
	}
	domain := strings.ToUpper(strings.ReplaceAll(entity, " ", "_"))

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, StringTooLong, InvalidText:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// referencedColumn finds the column a constraint is about: the reported
// column when present, otherwise one parsed from the constraint name.
func referencedColumn(sqlErr *Error) string {
	if sqlErr.ColumnName != "" {
		return sqlErr.ColumnName
	}

	switch sqlErr.Code {
	case ForeignKeyViolation:
		if m := foreignKeyConstraintPattern.FindStringSubmatch(sqlErr.ConstraintName); len(m) > 1 {
			return m[1]
		}
	case UniqueViolation:
		return extractColumnForUniqueViolation(sqlErr.ConstraintName)
	}
	return ""
}

// getEntityName infers an entity name, lowercase with spaces.
//
// A "<entity>_id" column wins (best for foreign keys), then the singular
// table name, then "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return strings.ReplaceAll(entity, "_", " ")
	}

	if tableName != "" {
		return strings.ReplaceAll(singularize(strings.ToLower(tableName)), "_", " ")
	}

	return "record"
}

// humanizeText turns snake_case into Title Case ("hourly_rate" -> "Hourly Rate").
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation infers the column from a unique constraint
// name: "unique_<table>_<column>" or "<table>_<column>_(key|ukey)".
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

	if matches := uniqueConstraintPattern.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// formatUserFriendlyMessage produces the client-facing message for a
// constraint failure.
func formatUserFriendlyMessage(sqlErr *Error, column string) string {
	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", getEntityName("", column))

	case UniqueViolation:
		entity := getEntityName(sqlErr.TableName, "")
		if column != "" {
			return fmt.Sprintf("A %s with this %s already exists", entity, humanizeText(column))
		}
		return fmt.Sprintf("A %s with this identifier already exists", entity)

	case NotNullViolation:
		fieldName := humanizeText(column)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation, StringTooLong, InvalidText:
		if fieldName := humanizeText(column); fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return sqlErr.Message
	}
}

// HandleError converts a low-level database error into an *errs.HTTPError.
//
//   - *errs.HTTPError: returned unchanged
//   - unique violation: 400 with the offending column named
//   - foreign key violation: 500 integrity failure naming the missing reference
//   - not-null / check / too long / bad text: 400
//   - pgx.ErrNoRows / sql.ErrNoRows: 404
//   - anything else: 500 carrying the raw message
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)
		column := referencedColumn(sqlErr)
		userMessage := formatUserFriendlyMessage(sqlErr, column)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			errorCode := generateErrorCode(getEntityName("", column), sqlErr.Code)
			return errs.NewInternalServerError(userMessage, &errorCode)

		case UniqueViolation:
			errorCode := generateErrorCode(getEntityName(sqlErr.TableName, ""), sqlErr.Code)
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil)

		case NotNullViolation:
			errorCode := generateErrorCode(getEntityName(sqlErr.TableName, ""), sqlErr.Code)
			fieldErrors := []errs.FieldError{
				{Field: strings.ToLower(column), Error: "is required"},
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors)

		case CheckViolation, StringTooLong, InvalidText:
			errorCode := generateErrorCode(getEntityName(sqlErr.TableName, ""), sqlErr.Code)
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil)

		default:
			return errs.NewInternalServerError(sqlErr.Message, nil)
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		// Repositories wrap ErrNoRows as "table:<name>: ..." so the entity can
		// be named in the message.
		errMsg := err.Error()
		tablePrefix := "table:"
		if strings.Contains(errMsg, tablePrefix) {
			table := strings.Split(strings.Split(errMsg, tablePrefix)[1], ":")[0]
			entityName := humanizeText(getEntityName(table, ""))
			return errs.NewNotFoundError(fmt.Sprintf("%s not found", entityName), true, nil)
		}
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError(err.Error(), nil)
}
