package ipc

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// Code is one of the closed set of error categories every failure is
// mapped to before it crosses the channel boundary.
type Code string

const (
	CodeUniqueConstraint Code = "UNIQUE_CONSTRAINT"
	CodeForeignKey       Code = "FOREIGN_KEY"
	CodeNotFound         Code = "NOT_FOUND"
	CodeValidation       Code = "VALIDATION"
	CodeUnknown          Code = "UNKNOWN"
)

// defaultMessages holds the classifier's default human-readable message
// per code. The client facade keeps its own table and may phrase things
// differently.
var defaultMessages = map[Code]string{
	CodeUniqueConstraint: "A record with this value already exists.",
	CodeForeignKey:       "A related record could not be found.",
	CodeNotFound:         "The requested record was not found.",
	CodeValidation:       "The provided data is invalid.",
	CodeUnknown:          "An unexpected error occurred.",
}

// ErrorInfo is the error half of the response envelope.
type ErrorInfo struct {
	Code    Code              `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// FieldErrors maps an input field name to the first violation found for
// it. It is the failure result of every create/update schema.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: %s", f, e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Classify maps any error raised during a handler's execution onto the
// taxonomy. Storage signals are checked before validation so a constraint
// violation can never masquerade as a schema problem, and anything
// unrecognised falls through to UNKNOWN.
func Classify(err error) *ErrorInfo {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &ErrorInfo{Code: CodeUniqueConstraint, Message: defaultMessages[CodeUniqueConstraint]}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &ErrorInfo{Code: CodeForeignKey, Message: defaultMessages[CodeForeignKey]}
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &ErrorInfo{Code: CodeNotFound, Message: defaultMessages[CodeNotFound]}
	}

	var fields FieldErrors
	if errors.As(err, &fields) {
		return &ErrorInfo{
			Code:    CodeValidation,
			Message: defaultMessages[CodeValidation],
			Fields:  fields,
		}
	}

	return &ErrorInfo{Code: CodeUnknown, Message: defaultMessages[CodeUnknown]}
}
