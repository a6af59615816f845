// Package errors renders failures as RFC 7807 problem documents.
package errors

import (
	"fmt"
	"net/http"
)

// ProblemDetail is the application/problem+json body.
type ProblemDetail struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Status     int            `json:"status"`
	Detail     string         `json:"detail,omitempty"`
	Instance   string         `json:"instance,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (p ProblemDetail) Error() string {
	if p.Detail == "" {
		return p.Title
	}
	return p.Title + ": " + p.Detail
}

// WithDetail returns a copy carrying detail.
func (p ProblemDetail) WithDetail(detail string) ProblemDetail {
	p.Detail = detail
	return p
}

// WithInstance returns a copy pointing at a specific occurrence.
func (p ProblemDetail) WithInstance(instance string) ProblemDetail {
	p.Instance = instance
	return p
}

// WithExtension returns a copy with key set. Templates keep their own map.
func (p ProblemDetail) WithExtension(key string, value any) ProblemDetail {
	extensions := make(map[string]any, len(p.Extensions)+1)
	for k, v := range p.Extensions {
		extensions[k] = v
	}
	extensions[key] = value
	p.Extensions = extensions
	return p
}

const typePrefix = "/problems/"

// Problem type references, relative to the responder base URI.
const (
	TypeBadRequest   = typePrefix + "bad-request"
	TypeValidation   = typePrefix + "validation-error"
	TypeUnauthorized = typePrefix + "unauthorized"
	TypeForbidden    = typePrefix + "forbidden"
	TypeNotFound     = typePrefix + "not-found"
	TypeConflict     = typePrefix + "conflict"
	TypeInternal     = typePrefix + "internal-error"
)

func template(kind string, status int) ProblemDetail {
	return ProblemDetail{Type: kind, Title: http.StatusText(status), Status: status}
}

var (
	ErrBadRequest   = template(TypeBadRequest, http.StatusBadRequest)
	ErrValidation   = ProblemDetail{Type: TypeValidation, Title: "Validation Error", Status: http.StatusBadRequest}
	ErrUnauthorized = template(TypeUnauthorized, http.StatusUnauthorized)
	ErrForbidden    = template(TypeForbidden, http.StatusForbidden)
	ErrNotFound     = ProblemDetail{Type: TypeNotFound, Title: "Resource Not Found", Status: http.StatusNotFound}
	ErrConflict     = template(TypeConflict, http.StatusConflict)

	// ErrInternal never carries the underlying error text.
	ErrInternal = template(TypeInternal, http.StatusInternalServerError).WithDetail("an unexpected error occurred")
)

// NewValidationProblem reports one message per offending field.
func NewValidationProblem(fieldErrors map[string]string) ProblemDetail {
	problem := ErrValidation.WithExtension("fields", fieldErrors)
	if len(fieldErrors) == 1 {
		for field, message := range fieldErrors {
			problem.Detail = field + ": " + message
		}
	}
	return problem
}

// NewNotFoundProblem names the missing resource and its identifier.
func NewNotFoundProblem(resourceType string, identifier any) ProblemDetail {
	return ErrNotFound.
		WithDetail(fmt.Sprintf("%s %v not found", resourceType, identifier)).
		WithExtension("resourceType", resourceType).
		WithExtension("identifier", identifier)
}
