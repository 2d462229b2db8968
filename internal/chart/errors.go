package chart

import "errors"

var (
	ErrMetadataUnavailable = errors.New("metadata is unavailable")
)
