package utils

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrProductNotFound   = errors.New("product not found")
	ErrDatabaseError     = errors.New("database error")
	ErrIndexUnavailable  = errors.New("embedding index unavailable")
	ErrEmbeddingFailed   = errors.New("embedding provider failure")
	ErrReportFailed      = errors.New("report generation failure")
	ErrDimensionMismatch = errors.New("embedding dimensionality mismatch")
)
