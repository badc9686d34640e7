package models

import "errors"

var (
	// ErrExternalService indicates the reasoning model call failed, timed
	// out, or returned content that does not parse as JSON. Fatal to the
	// current request: no partial CaseAnalysis exists without synthesis.
	ErrExternalService = errors.New("external reasoning service failed")

	// ErrSchemaViolation indicates the reasoning model returned JSON that
	// omits required keys or has the wrong shape.
	ErrSchemaViolation = errors.New("analysis payload violates schema")
)
