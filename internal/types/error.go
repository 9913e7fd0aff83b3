package types

import (
	"errors"
	"net/http"
)

type ErrorCode string

func (e ErrorCode) String() string {
	return string(e)
}

const (
	// 5XX
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
	RequestTimeout       ErrorCode = "REQUEST_TIMEOUT"
	// Generic 4XX
	ValidationError ErrorCode = "VALIDATION_ERROR"
	NotFound        ErrorCode = "NOT_FOUND"
	BadRequest      ErrorCode = "BAD_REQUEST"
	Forbidden       ErrorCode = "FORBIDDEN"
	Unauthorized    ErrorCode = "UNAUTHORIZED"
)

// Validation errors. All of these are checked before any state is written,
// so the caller can correct the input and retry.
const (
	InvalidAmount       ErrorCode = "INVALID_AMOUNT"
	DurationOutOfRange  ErrorCode = "DURATION_OUT_OF_RANGE"
	LengthMismatch      ErrorCode = "LENGTH_MISMATCH"
	InsufficientBalance ErrorCode = "INSUFFICIENT_BALANCE"
)

// State-conflict errors. The requested transition is no longer valid; the
// call is rejected with no state change.
const (
	StakeAlreadyActive       ErrorCode = "STAKE_ALREADY_ACTIVE"
	StakeNotFound            ErrorCode = "STAKE_NOT_FOUND"
	InsufficientStakedAmount ErrorCode = "INSUFFICIENT_STAKED_AMOUNT"
	ProposalAlreadyOpen      ErrorCode = "PROPOSAL_ALREADY_OPEN"
	ProposalNotFound         ErrorCode = "PROPOSAL_NOT_FOUND"
	AlreadyApproved          ErrorCode = "ALREADY_APPROVED"
	ProposalAlreadyExecuted  ErrorCode = "PROPOSAL_ALREADY_EXECUTED"
	ProposalWasSuperseded    ErrorCode = "PROPOSAL_SUPERSEDED"
)

// Temporal errors. Recoverable by retrying after the maturity time.
const (
	TimelockNotMatured   ErrorCode = "TIMELOCK_NOT_MATURED"
	TimelockNotScheduled ErrorCode = "TIMELOCK_NOT_SCHEDULED"
)

// Error represents an error with an HTTP status code and an application-specific error code.
type Error struct {
	Err        error
	StatusCode int
	ErrorCode  ErrorCode
}

const UninitializedStatusCode = 0

func (e *Error) Error() string {
	return e.Err.Error()
}

// NewError creates a new Error with the provided status code, error code, and underlying error.
// If the status code is not provided (0), it defaults to http.StatusInternalServerError(500).
// If the error code is empty, it defaults to INTERNAL_SERVICE_ERROR.
func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	if statusCode == UninitializedStatusCode {
		statusCode = http.StatusInternalServerError
	}
	if errorCode == "" {
		errorCode = InternalServiceError
	}
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Err:        err,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return NewError(statusCode, errorCode, errors.New(msg))
}

func NewInternalServiceError(err error) *Error {
	return &Error{
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  InternalServiceError,
		Err:        err,
	}
}
