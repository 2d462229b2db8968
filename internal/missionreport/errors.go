package missionreport

import "errors"

var (
	ErrInvalidParameters   = errors.New("invalid report parameters")
	ErrSavedReportNotFound = errors.New("saved report not found")
	ErrQueryFailed         = errors.New("mission report query failed")
	ErrChartsNotFound      = errors.New("no charts have been generated")
	ErrExportFailed        = errors.New("failed to export charts")
	ErrUserRequired        = errors.New("user_id is required")
)
