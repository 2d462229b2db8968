package redis

import (
	"errors"
	"time"
)

const DefaultConnectTimeout = 5 * time.Second

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: invalid port")
	// ErrNil is returned by Get when the key does not exist.
	ErrNil = errors.New("redis: nil")
)
