package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrCatalogNotFound           = goerr.New("catalog not found")
	ErrMissingReferenceDate      = goerr.New("either conception date or LMP date is required")
	ErrConflictingReferenceDates = goerr.New("conception date and LMP date are mutually exclusive")
	ErrInvalidReferenceDate      = goerr.New("invalid reference date")
)
