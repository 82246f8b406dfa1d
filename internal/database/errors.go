package database

import "errors"

var (
	ErrNotFound         = errors.New("document not found")
	ErrRealtimeDisabled = errors.New("realtime database url not configured")
)
