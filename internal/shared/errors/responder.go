package errors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the media type for Problem Details responses.
const ContentTypeProblemJSON = "application/problem+json"

// Responder writes Problem Details responses.
type Responder struct {
	// BaseURI is prepended to problem type URIs if they are relative.
	BaseURI string
	mappers []ErrorMapper
}

// ErrorMapper maps domain/application errors to ProblemDetail.
type ErrorMapper func(err error) (ProblemDetail, bool)

// Sentinel pairs an application error with the problem it is reported as.
type Sentinel struct {
	Err     error
	Problem ProblemDetail
}

// SentinelMapper builds an ErrorMapper matching errors with errors.Is, in order.
// The wrapped error text becomes the problem detail.
func SentinelMapper(entries ...Sentinel) ErrorMapper {
	return func(err error) (ProblemDetail, bool) {
		for _, entry := range entries {
			if errors.Is(err, entry.Err) {
				return entry.Problem.WithDetail(err.Error()), true
			}
		}
		return ProblemDetail{}, false
	}
}

// NewResponder creates a problem responder with optional base URI and error mappers.
func NewResponder(baseURI string, mappers ...ErrorMapper) *Responder {
	return &Responder{BaseURI: baseURI, mappers: mappers}
}

// DefaultResponder uses relative URIs for problem types.
var DefaultResponder = NewResponder("")

// Respond sends a ProblemDetail response with proper content type.
func (r *Responder) Respond(c *gin.Context, problem ProblemDetail) {
	if r.BaseURI != "" && len(problem.Type) > 0 && problem.Type[0] == '/' {
		problem.Type = r.BaseURI + problem.Type
	}
	if problem.Instance == "" {
		problem.Instance = c.Request.URL.Path
	}
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.AbortWithStatusJSON(problem.Status, problem)
}

// RespondError resolves err through the mappers, then through an embedded
// ProblemDetail, and finally falls back to a generic internal error.
func (r *Responder) RespondError(c *gin.Context, err error) {
	r.Respond(c, r.Resolve(err))
}

// Resolve converts err to the ProblemDetail that RespondError would send.
func (r *Responder) Resolve(err error) ProblemDetail {
	for _, mapper := range r.mappers {
		if problem, ok := mapper(err); ok {
			return problem
		}
	}
	var problem ProblemDetail
	if errors.As(err, &problem) {
		return problem
	}
	return ErrInternal
}

// With returns a copy of the responder with additional mappers appended.
func (r *Responder) With(mappers ...ErrorMapper) *Responder {
	combined := make([]ErrorMapper, 0, len(r.mappers)+len(mappers))
	combined = append(combined, r.mappers...)
	combined = append(combined, mappers...)
	return &Responder{BaseURI: r.BaseURI, mappers: combined}
}

// NotFound sends a 404 problem response.
func (r *Responder) NotFound(c *gin.Context, resourceType string, identifier any) {
	r.Respond(c, NewNotFoundProblem(resourceType, identifier))
}

// BadRequest sends a 400 problem response.
func (r *Responder) BadRequest(c *gin.Context, detail string) {
	r.Respond(c, ErrBadRequest.WithDetail(detail))
}

// ValidationFailed sends a 400 problem response with field errors.
func (r *Responder) ValidationFailed(c *gin.Context, fieldErrors map[string]string) {
	r.Respond(c, NewValidationProblem(fieldErrors))
}

// Respond is a convenience function using the default responder.
func Respond(c *gin.Context, problem ProblemDetail) {
	DefaultResponder.Respond(c, problem)
}

// RespondError is a convenience function using the default responder.
func RespondError(c *gin.Context, err error) {
	DefaultResponder.RespondError(c, err)
}

// HTTPStatusFromError extracts HTTP status from an error if possible.
func HTTPStatusFromError(err error) int {
	var problem ProblemDetail
	if errors.As(err, &problem) {
		return problem.Status
	}
	return http.StatusInternalServerError
}
