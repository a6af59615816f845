package adoptionserver

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	accountsapp "github.com/Apurer/petadopt-api/internal/domains/accounts/application"
	accountports "github.com/Apurer/petadopt-api/internal/domains/accounts/ports"
	adoptionsapp "github.com/Apurer/petadopt-api/internal/domains/adoptions/application"
	adoptionports "github.com/Apurer/petadopt-api/internal/domains/adoptions/ports"
	listingsapp "github.com/Apurer/petadopt-api/internal/domains/listings/application"
	listingports "github.com/Apurer/petadopt-api/internal/domains/listings/ports"
	apierrors "github.com/Apurer/petadopt-api/internal/shared/errors"
)

// problems maps every bounded context error onto RFC 7807 responses.
var problems = apierrors.NewResponder("", authenticationMapper, apierrors.SentinelMapper(
	apierrors.Sentinel{Err: accountsapp.ErrInvalidInput, Problem: apierrors.ErrValidation},
	apierrors.Sentinel{Err: accountsapp.ErrConflict, Problem: apierrors.ErrConflict},
	apierrors.Sentinel{Err: accountsapp.ErrForbidden, Problem: apierrors.ErrForbidden},
	apierrors.Sentinel{Err: accountports.ErrNotFound, Problem: apierrors.ErrNotFound},
	apierrors.Sentinel{Err: listingsapp.ErrInvalidInput, Problem: apierrors.ErrValidation},
	apierrors.Sentinel{Err: listingsapp.ErrForbidden, Problem: apierrors.ErrForbidden},
	apierrors.Sentinel{Err: listingports.ErrIdempotencyConflict, Problem: apierrors.ErrConflict},
	apierrors.Sentinel{Err: listingports.ErrNotFound, Problem: apierrors.ErrNotFound},
	apierrors.Sentinel{Err: listingports.ErrOwnerNotFound, Problem: apierrors.ErrNotFound},
	apierrors.Sentinel{Err: adoptionsapp.ErrInvalidInput, Problem: apierrors.ErrValidation},
	apierrors.Sentinel{Err: adoptionports.ErrAlreadyApplied, Problem: apierrors.ErrConflict},
	apierrors.Sentinel{Err: adoptionports.ErrPetUnavailable, Problem: apierrors.ErrNotFound},
	apierrors.Sentinel{Err: adoptionports.ErrNotFound, Problem: apierrors.ErrNotFound},
))

// authenticationMapper keeps token parsing details out of 401 responses.
func authenticationMapper(err error) (apierrors.ProblemDetail, bool) {
	if errors.Is(err, accountsapp.ErrAuthentication) {
		return apierrors.ErrUnauthorized.WithDetail("invalid credentials"), true
	}
	return apierrors.ProblemDetail{}, false
}

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	problems.Respond(c, problem)
}

// respondServiceError resolves application errors to problem responses.
func respondServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	problems.RespondError(c, err)
}

// respondBadRequest reports binding failures per field when the validator
// produced them, and as a plain bad request otherwise.
func respondBadRequest(c *gin.Context, err error) {
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		fields := make(map[string]string, len(invalid))
		for _, fieldErr := range invalid {
			fields[jsonFieldName(fieldErr.Field())] = fieldErr.Tag()
		}
		respondProblem(c, apierrors.NewValidationProblem(fields))
		return
	}
	respondProblem(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
}

func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
