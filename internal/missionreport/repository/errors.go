package repository

import "errors"

var (
	ErrAggregateFailed = errors.New("repository: failed to aggregate published items")
	ErrCacheMiss       = errors.New("repository: cache miss")
	ErrEncodeFailed    = errors.New("repository: failed to encode cache entry")
)
