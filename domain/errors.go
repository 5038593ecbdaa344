package domain

import (
	"github.com/pkg/errors"
)

// ErrCohortRejected is returned by the transaction front-end when a cohort
// votes no during the canCommit phase.
var ErrCohortRejected = errors.New("transaction rejected by cohort")

type NotFoundError struct {
}

func (n NotFoundError) Error() string {
	return "Data not found!"
}

type AbortedError struct {
}

func (a AbortedError) Error() string {
	return "Transaction was aborted"
}

// ResolutionError reports that one of the coordinator's cohort references
// failed to resolve. No cohort is ever contacted once this is raised.
type ResolutionError struct {
	Cause error
}

func (e *ResolutionError) Error() string {
	return "cohort resolution failed: " + e.Cause.Error()
}

func (e *ResolutionError) Unwrap() error { return e.Cause }

type FailureKind int

const (
	FailureTimeout FailureKind = iota
	FailureTransport
	FailureTypeMismatch
)

func (k FailureKind) String() string {
	switch k {
	case FailureTimeout:
		return "timeout"
	case FailureTransport:
		return "transport"
	case FailureTypeMismatch:
		return "type mismatch"
	}
	return "unknown"
}

// CohortCallError reports a failed remote call during canCommit or commit.
// Abort swallows these; they are never surfaced from that phase.
type CohortCallError struct {
	Kind   FailureKind
	Cohort string
	Cause  error
}

func (e *CohortCallError) Error() string {
	msg := "cohort " + e.Cohort + " call failed (" + e.Kind.String() + ")"
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *CohortCallError) Unwrap() error { return e.Cause }
