package http

import (
	"errors"

	"mission-report-srv/internal/savedreport"
	pkgErrors "mission-report-srv/pkg/errors"
)

var (
	errNotFound          = pkgErrors.NewHTTPError(404, "Saved report not found")
	errForbidden         = pkgErrors.NewHTTPError(403, "Saved report belongs to another user")
	errNameRequired      = pkgErrors.NewHTTPError(400, "Name is required")
	errInvalidParameters = pkgErrors.NewHTTPError(400, "Invalid report parameters")
	errGlobalNotAllowed  = pkgErrors.NewHTTPError(403, "Only administrators can share reports globally")
	errWrongBody         = pkgErrors.NewHTTPError(400, "Wrong body")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, savedreport.ErrNotFound):
		return errNotFound
	case errors.Is(err, savedreport.ErrForbidden):
		return errForbidden
	case errors.Is(err, savedreport.ErrNameRequired):
		return errNameRequired
	case errors.Is(err, savedreport.ErrInvalidParameters):
		return errInvalidParameters
	case errors.Is(err, savedreport.ErrGlobalNotAllowed):
		return errGlobalNotAllowed
	default:
		panic(err)
	}
}
