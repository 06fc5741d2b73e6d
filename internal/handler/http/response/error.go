package response

import (
	"errors"
	"net/http"

	"github.com/kintai-hq/kintai-backend-go/internal/domain/report"
	"github.com/kintai-hq/kintai-backend-go/internal/domain/workrule"
	"github.com/kintai-hq/kintai-backend-go/internal/pkg/geo"
	"github.com/kintai-hq/kintai-backend-go/internal/pkg/jwt"
	"github.com/kintai-hq/kintai-backend-go/internal/pkg/timeutil"
	"github.com/kintai-hq/kintai-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, jwt.ErrInvalidToken):
		Unauthorized(w, err.Error())

	// Report domain errors
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Report not found")
	case errors.Is(err, report.ErrReportAlreadyFinalized):
		Conflict(w, "Report has been finalized and can no longer be modified")
	case errors.Is(err, report.ErrMissingWorkplace):
		BadRequest(w, "No workplace is configured for a date in the report period", nil)
	case errors.Is(err, report.ErrInvalidClosingDay):
		BadRequest(w, "Closing day must be between 1 and 31", nil)
	case errors.Is(err, report.ErrInvalidRoundingUnit):
		BadRequest(w, "Rounding unit must be between 1 and 60 minutes", nil)
	case errors.Is(err, report.ErrNegativeTolerance):
		BadRequest(w, "Workplace tolerance must not be negative", nil)

	// Work rule domain errors
	case errors.Is(err, workrule.ErrRuleNotFound):
		NotFound(w, "Work rule not found")
	case errors.Is(err, workrule.ErrInvalidInterval):
		BadRequest(w, "Assignment interval is invalid", nil)

	// Shared helpers
	case errors.Is(err, geo.ErrInvalidCoordinate):
		BadRequest(w, "Coordinates are out of range", nil)
	case errors.Is(err, timeutil.ErrInvalidUnit):
		BadRequest(w, "Rounding unit must be between 1 and 60 minutes", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
