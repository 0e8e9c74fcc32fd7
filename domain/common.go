package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"

	DifficultyEasy   = "EASY"
	DifficultyMedium = "MEDIUM"
	DifficultyHard   = "HARD"
)

var (
	MessageFailedBodyRequest    = "failed to process body request"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	// Error taxonomy. Feature errors wrap one of these so the transport
	// layer can map them to a status code with errors.Is.
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
	ErrUserNotAllowed  = errors.New("user not allowed")
	ErrBadRequest      = errors.New("invalid request")
	ErrUnauthenticated = errors.New("authentication required")

	ErrParseUUID    = fmt.Errorf("%w: failed to parse UUID", ErrBadRequest)
	ErrTokenExpired = fmt.Errorf("%w: token expired", ErrUnauthenticated)
	ErrTokenInvalid = fmt.Errorf("%w: token invalid", ErrUnauthenticated)
	ErrTokenMissing = fmt.Errorf("%w: token not found", ErrUnauthenticated)
)

// AssertOwner gates every mutation on an owned resource. Ownership is the only
// write gate; the admin role is carried in claims but never consulted here.
func AssertOwner(ownerID, callerID uuid.UUID) error {
	if ownerID != callerID {
		return ErrUserNotAllowed
	}
	return nil
}

type (
	// PageRequest is 0-indexed. Values are normalized before hitting the
	// repository, an out-of-range page or size never errors.
	PageRequest struct {
		Page      int    `json:"page"`
		Size      int    `json:"size"`
		SortBy    string `json:"sort_by,omitempty"`
		Direction string `json:"direction,omitempty"`
	}

	PageMeta struct {
		Page       int   `json:"page"`
		Size       int   `json:"size"`
		TotalItems int64 `json:"total_items"`
		TotalPages int   `json:"total_pages"`
	}
)
