package blocks

import (
	"errors"
	"net/http"
)

// Domain errors for block operations.
var (
	ErrNotFound       = errors.New("block not found")
	ErrDuplicate      = errors.New("block already exists")
	ErrNoBlocks       = errors.New("no active blocks for requested type and cluster")
	ErrInvalidCluster = errors.New("unknown style cluster")
)

// MapHTTPStatus maps block domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidCluster) || errors.Is(err, ErrNoBlocks) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
