package metadata

import "errors"

var (
	ErrLoadFailed = errors.New("failed to load vocabularies")
)
