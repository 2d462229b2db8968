package http

import (
	"errors"

	"mission-report-srv/internal/missionreport"
	pkgErrors "mission-report-srv/pkg/errors"
)

var (
	errInvalidParameters   = pkgErrors.NewHTTPError(400, "Invalid report parameters")
	errSavedReportNotFound = pkgErrors.NewHTTPError(404, "Saved report not found")
	errChartsNotFound      = pkgErrors.NewHTTPError(404, "No charts have been generated yet")
	errExportFailed        = pkgErrors.NewHTTPError(500, "Failed to export charts")
	errUserRequired        = pkgErrors.NewHTTPError(400, "User ID is required")
	errWrongBody           = pkgErrors.NewHTTPError(400, "Wrong body")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, missionreport.ErrInvalidParameters):
		return errInvalidParameters
	case errors.Is(err, missionreport.ErrSavedReportNotFound):
		return errSavedReportNotFound
	case errors.Is(err, missionreport.ErrChartsNotFound):
		return errChartsNotFound
	case errors.Is(err, missionreport.ErrExportFailed):
		return errExportFailed
	case errors.Is(err, missionreport.ErrUserRequired):
		return errUserRequired
	default:
		panic(err)
	}
}
