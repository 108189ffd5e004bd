package utils

import "net/http"

// SubmissionError is a terminal failure of the submission pipeline. Kind is
// the canonical error code used both in JSON bodies and in the ?error= query
// parameter of failure redirects, so the two presentation modes never drift.
type SubmissionError struct {
	Kind    string
	Status  int
	Message string
}

func (e *SubmissionError) Error() string {
	return e.Kind
}

var (
	ErrSubmissionFormNotFound = &SubmissionError{
		Kind:    "not-found",
		Status:  http.StatusNotFound,
		Message: "Form not found",
	}
	ErrMissingAuthHeader = &SubmissionError{
		Kind:    "unauthorized",
		Status:  http.StatusUnauthorized,
		Message: "This is a private form. You need to pass the secret key in the Authorization header using Bearer scheme",
	}
	ErrInvalidAuthHeader = &SubmissionError{
		Kind:    "invalid-header",
		Status:  http.StatusUnauthorized,
		Message: "Authorization header must contain secret key with Bearer scheme",
	}
	ErrInvalidSecretKey = &SubmissionError{
		Kind:    "invalid-key",
		Status:  http.StatusForbidden,
		Message: "Invalid secret key",
	}
	ErrInvalidApp = &SubmissionError{
		Kind:    "invalid-app",
		Status:  http.StatusForbidden,
		Message: "Invalid secret key",
	}
	ErrLimitReached = &SubmissionError{
		Kind:    "limit-reached",
		Status:  http.StatusTooManyRequests,
		Message: "You have reached the limit of form submissions in your plan.",
	}
	ErrUnsupportedContentType = &SubmissionError{
		Kind:    "unsupported-content-type",
		Status:  http.StatusBadRequest,
		Message: "We currently support only application/json, multipart/form-data, and application/x-www-form-urlencoded",
	}
	ErrInvalidField = &SubmissionError{
		Kind:    "invalid-field",
		Status:  http.StatusBadRequest,
		Message: "Does not match schema",
	}
	ErrInvalidType = &SubmissionError{
		Kind:    "invalid-type",
		Status:  http.StatusBadRequest,
		Message: "Does not match schema",
	}
	ErrInvalidSchema = &SubmissionError{
		Kind:    "invalid-schema",
		Status:  http.StatusInternalServerError,
		Message: "Schema data is corrupted. We could not process this form. Please contact support.",
	}
	ErrDuplicateFieldIDs = &SubmissionError{
		Kind:    "duplicate-field-ids",
		Status:  http.StatusBadRequest,
		Message: "Each field must have a unique ID",
	}
	ErrSubmissionInternal = &SubmissionError{
		Kind:    "internal-server-error",
		Status:  http.StatusInternalServerError,
		Message: "Internal server error",
	}
	ErrRequestTooLarge = &SubmissionError{
		Kind:    "request-too-large",
		Status:  http.StatusRequestEntityTooLarge,
		Message: "Request is too large. It must not exceed 20 MB.",
	}
)
