package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by repositories and services. Controllers branch on them with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation failed")
	ErrCapacityReached = errors.New("capacity reached")
	ErrHasDependents   = errors.New("has dependents")
	ErrUnauthorized    = errors.New("unauthorized")
)

// RuleError is a single constraint failure with a client-facing message.
// Kind is one of the sentinel errors above.
type RuleError struct {
	Kind    error
	Message string
}

func (e *RuleError) Error() string { return e.Message }

func (e *RuleError) Unwrap() error { return e.Kind }

// NotFound reports that an entity with the given id does not exist.
func NotFound(entity string, id int64) error {
	return &RuleError{Kind: ErrNotFound, Message: fmt.Sprintf("%s with ID %d was not found", entity, id)}
}

// Conflict reports a uniqueness violation.
func Conflict(format string, args ...any) error {
	return &RuleError{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// CapacityReached reports that an event has no free seats left.
func CapacityReached(eventID, maxParticipants int64) error {
	return &RuleError{
		Kind:    ErrCapacityReached,
		Message: fmt.Sprintf("Event with ID %d has reached maximum capacity of %d participants.", eventID, maxParticipants),
	}
}

// HasDependents reports that a row cannot be deleted while other rows reference it.
func HasDependents(entity string, id int64, count int, dependents string) error {
	return &RuleError{
		Kind:    ErrHasDependents,
		Message: fmt.Sprintf("%s with ID %d could not be deleted: %d %s still reference it", entity, id, count, dependents),
	}
}

// BusinessRule reports any other rule that depends on stored state.
func BusinessRule(kind error, format string, args ...any) error {
	return &RuleError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
