package domain

import (
	"errors"
	"fmt"
)

// ErrDecline is the common ancestor for deterministic business declines.
// Callers must not retry an operation that failed with a decline; the
// outcome will not change. Infrastructure faults are never wrapped in it.
var ErrDecline = errors.New("declined by business rule")

// declineError pairs a specific decline with the ErrDecline category so
// errors.Is matches both the sentinel and the category.
type declineError struct {
	msg string
}

func (e *declineError) Error() string { return e.msg }

func (e *declineError) Is(target error) bool { return target == ErrDecline }

func newDecline(msg string) error {
	return &declineError{msg: msg}
}

var (
	// ErrInsufficientBalance is returned when a spend exceeds the available balance
	ErrInsufficientBalance = newDecline("insufficient star balance")

	// ErrGrantNotFound is returned when a power grant does not exist
	ErrGrantNotFound = newDecline("power grant not found")

	// ErrGrantNotOwned is returned when the caller does not own the power grant
	ErrGrantNotOwned = newDecline("power grant not owned by caller")

	// ErrGrantAlreadyUsed is returned when a power grant has already been consumed
	ErrGrantAlreadyUsed = newDecline("power grant already used")

	// ErrGrantCancelled is returned when a power grant was cancelled (e.g. overturned by vote)
	ErrGrantCancelled = newDecline("power grant cancelled")

	// ErrGrantExpired is returned when a power grant is past its expiry
	ErrGrantExpired = newDecline("power grant expired")

	// ErrTargetRequired is returned when consuming a target_lock without naming a target
	ErrTargetRequired = newDecline("target player required")

	// ErrSelfTarget is returned when a player tries to target themselves
	ErrSelfTarget = newDecline("cannot target yourself")

	// ErrChallengeNotFound is returned when a challenge does not exist
	ErrChallengeNotFound = newDecline("challenge not found")

	// ErrChallengeNotActive is returned when voting on a terminal or expired challenge
	ErrChallengeNotActive = newDecline("challenge is not active")

	// ErrAlreadyVoted is returned when a member votes twice on the same challenge
	ErrAlreadyVoted = newDecline("already voted on this challenge")

	// ErrNoJudgeAssigned is returned when no judge assignment exists for the day
	ErrNoJudgeAssigned = newDecline("no judge assigned for this day")

	// ErrJudgeAlreadyAssigned is returned when a squad already has a judge for the day
	ErrJudgeAlreadyAssigned = newDecline("judge already assigned for this day")
)

// ErrInvalidInput categorizes malformed caller input: unknown enum values,
// non-positive amounts, missing references. It is a decline; retrying the
// same request will never succeed.
var ErrInvalidInput = newDecline("invalid input")

type invalidInputError struct {
	msg string
}

func (e *invalidInputError) Error() string { return e.msg }

func (e *invalidInputError) Is(target error) bool {
	return target == ErrInvalidInput || target == ErrDecline
}

// NewInvalidInput builds an invalid-input decline carrying a specific message.
func NewInvalidInput(format string, args ...interface{}) error {
	return &invalidInputError{msg: fmt.Sprintf(format, args...)}
}

// IsDecline reports whether err is a deterministic business decline rather
// than an infrastructure failure.
func IsDecline(err error) bool {
	return errors.Is(err, ErrDecline)
}
