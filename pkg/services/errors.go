package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConcurrentModification is returned when optimistic locking fails
	ErrConcurrentModification = errors.New("concurrent modification detected")

	// ErrPreconditionFailed is returned when a lane or state precondition
	// blocks the requested transition
	ErrPreconditionFailed = errors.New("precondition not met")

	// ErrBackendUnavailable is returned when the squad's opencode backend
	// is not running or cannot be reached
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrTimeout is returned when a backend call exceeds its deadline
	ErrTimeout = errors.New("operation timed out")
)

// Conflict kinds distinguish why a request collided with current state.
const (
	ConflictAgentBusy      = "agent_busy"
	ConflictTurnInProgress = "turn_in_progress"
	ConflictWorktreeClaim  = "worktree_claimed"
	ConflictLaneBlocked    = "lane_precondition_unmet"
	ConflictAlreadyIdle    = "already_idle"
	ConflictStaleVersion   = "stale_version"
)

// ConflictError carries the conflict kind so handlers can expose it
type ConflictError struct {
	Kind    string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict (%s): %s", e.Kind, e.Message)
}

// NewConflictError creates a new conflict error
func NewConflictError(kind, message string) error {
	return &ConflictError{Kind: kind, Message: message}
}

// IsConflictError checks if an error is a conflict error
func IsConflictError(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// ConflictKind extracts the kind from a conflict error, or "" if none
func ConflictKind(err error) string {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
