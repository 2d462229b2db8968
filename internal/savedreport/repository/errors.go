package repository

import "errors"

var (
	ErrNotFound     = errors.New("repository: saved report not found")
	ErrCreateFailed = errors.New("repository: failed to create saved report")
	ErrUpdateFailed = errors.New("repository: failed to update saved report")
	ErrDeleteFailed = errors.New("repository: failed to delete saved report")
	ErrQueryFailed  = errors.New("repository: failed to query saved reports")
)
