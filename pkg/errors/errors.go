package errors

import (
	stdErrors "errors"
	"fmt"
)

type Code string

const (
	CodeMalformedRecord   Code = "MALFORMED_RECORD"
	CodeEnrichmentFailed  Code = "ENRICHMENT_FAILED"
	CodePersistenceFailed Code = "PERSISTENCE_FAILED"
	CodeValidation        Code = "VALIDATION_ERROR"
	CodeInternal          Code = "INTERNAL_ERROR"
)

type Metadata struct {
	ExitStatus    int
	Retryable     bool
	PublicMessage string
}

// Every pipeline failure aborts the whole run; a clean re-run is the only
// recovery path, so nothing is marked retryable.
var metadataByCode = map[Code]Metadata{
	CodeMalformedRecord: {
		ExitStatus:    1,
		Retryable:     false,
		PublicMessage: "malformed inventory record",
	},
	CodeEnrichmentFailed: {
		ExitStatus:    1,
		Retryable:     false,
		PublicMessage: "card enrichment failed",
	},
	CodePersistenceFailed: {
		ExitStatus:    1,
		Retryable:     false,
		PublicMessage: "persistence write failed",
	},
	CodeValidation: {
		ExitStatus:    1,
		Retryable:     false,
		PublicMessage: "validation failed",
	},
	CodeInternal: {
		ExitStatus:    1,
		Retryable:     false,
		PublicMessage: "internal error",
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// CodeOf extracts the code from any error, defaulting to CodeInternal for
// errors produced outside this package.
func CodeOf(err error) Code {
	if typed := As(err); typed != nil {
		return typed.Code()
	}
	return CodeInternal
}
