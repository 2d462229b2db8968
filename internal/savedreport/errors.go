package savedreport

import "errors"

var (
	ErrNotFound          = errors.New("saved report not found")
	ErrForbidden         = errors.New("saved report belongs to another user")
	ErrNameRequired      = errors.New("saved report name is required")
	ErrInvalidParameters = errors.New("invalid report parameters")
	ErrGlobalNotAllowed  = errors.New("only administrators can share reports globally")
)
