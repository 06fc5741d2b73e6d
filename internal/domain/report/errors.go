package report

import "errors"

// Report domain errors
var (
	ErrReportNotFound         = errors.New("report not found")
	ErrReportAlreadyFinalized = errors.New("report has already been submitted or approved")

	// Engine argument errors
	ErrInvalidClosingDay   = errors.New("closing day must be between 1 and 31")
	ErrInvalidRoundingUnit = errors.New("rounding unit must be between 1 and 60 minutes")
	ErrNegativeTolerance   = errors.New("tolerance radius must not be negative")

	// ErrMissingWorkplace is raised in strict location mode when a work date
	// has no workplace configured in any rule source.
	ErrMissingWorkplace = errors.New("no workplace configured for work date")
)
