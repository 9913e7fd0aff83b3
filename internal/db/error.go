package db

import (
	"errors"

	"github.com/corestake/staking-governance-service/internal/types"
	"go.mongodb.org/mongo-driver/mongo"
)

// DuplicateKeyError is an error type for duplicate key errors
type DuplicateKeyError struct {
	Key     string
	Message string
}

func (e *DuplicateKeyError) Error() string {
	return e.Message
}

func IsDuplicateKeyError(err error) bool {
	var duplicateKeyError *DuplicateKeyError
	return errors.As(err, &duplicateKeyError)
}

// InvalidPaginationTokenError is an error type for invalid pagination token errors
type InvalidPaginationTokenError struct {
	Message string
}

func (e *InvalidPaginationTokenError) Error() string {
	return e.Message
}

func IsInvalidPaginationTokenError(err error) bool {
	var invalidTokenError *InvalidPaginationTokenError
	return errors.As(err, &invalidTokenError)
}

// NotFoundError is returned when a document addressed by its key does not exist
type NotFoundError struct {
	Key     string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	return errors.As(err, &notFoundError)
}

// InsufficientBalanceError is returned when the asset ledger balance does not
// cover the requested deposit amount. No state is mutated.
type InsufficientBalanceError struct {
	Key     string
	Message string
}

func (e *InsufficientBalanceError) Error() string {
	return e.Message
}

func IsInsufficientBalanceError(err error) bool {
	var insufficientBalanceError *InsufficientBalanceError
	return errors.As(err, &insufficientBalanceError)
}

// StakeActiveError is returned when a deposit targets a position that is
// still active. Re-staking requires the prior position to be emptied first.
type StakeActiveError struct {
	Key     string
	Message string
}

func (e *StakeActiveError) Error() string {
	return e.Message
}

func IsStakeActiveError(err error) bool {
	var stakeActiveError *StakeActiveError
	return errors.As(err, &stakeActiveError)
}

// StakeNotFoundError is returned when a penalty targets a position that does
// not exist or is no longer active.
type StakeNotFoundError struct {
	Key     string
	Message string
}

func (e *StakeNotFoundError) Error() string {
	return e.Message
}

func IsStakeNotFoundError(err error) bool {
	var stakeNotFoundError *StakeNotFoundError
	return errors.As(err, &stakeNotFoundError)
}

// InsufficientStakeError is returned when a penalty would drive a stake
// position negative. The position is left unchanged.
type InsufficientStakeError struct {
	Key     string
	Message string
}

func (e *InsufficientStakeError) Error() string {
	return e.Message
}

func IsInsufficientStakeError(err error) bool {
	var insufficientStakeError *InsufficientStakeError
	return errors.As(err, &insufficientStakeError)
}

// ProposalOpenError is returned when opening a proposal for a staker/asset
// pair that already has an open one and the caller did not ask to supersede.
type ProposalOpenError struct {
	Key     string
	Message string
}

func (e *ProposalOpenError) Error() string {
	return e.Message
}

func IsProposalOpenError(err error) bool {
	var proposalOpenError *ProposalOpenError
	return errors.As(err, &proposalOpenError)
}

// ProposalClosedError is returned when approving a proposal that has already
// left the open state. Status tells the caller which terminal state it is in.
type ProposalClosedError struct {
	Key     string
	Status  types.ProposalStatus
	Message string
}

func (e *ProposalClosedError) Error() string {
	return e.Message
}

func IsProposalClosedError(err error) bool {
	var proposalClosedError *ProposalClosedError
	return errors.As(err, &proposalClosedError)
}

// AlreadyApprovedError is returned when a validator approves the same
// proposal twice. The approval count is left unchanged.
type AlreadyApprovedError struct {
	Key     string
	Message string
}

func (e *AlreadyApprovedError) Error() string {
	return e.Message
}

func IsAlreadyApprovedError(err error) bool {
	var alreadyApprovedError *AlreadyApprovedError
	return errors.As(err, &alreadyApprovedError)
}

// TimelockNotScheduledError is returned when a guarded admin mutation runs
// without a prior schedule for its operation tag.
type TimelockNotScheduledError struct {
	Key     string
	Message string
}

func (e *TimelockNotScheduledError) Error() string {
	return e.Message
}

func IsTimelockNotScheduledError(err error) bool {
	var timelockNotScheduledError *TimelockNotScheduledError
	return errors.As(err, &timelockNotScheduledError)
}

// TimelockNotMaturedError is returned when a guarded admin mutation runs
// strictly before its scheduled maturity time.
type TimelockNotMaturedError struct {
	Key       string
	MaturesAt int64
	Message   string
}

func (e *TimelockNotMaturedError) Error() string {
	return e.Message
}

func IsTimelockNotMaturedError(err error) bool {
	var timelockNotMaturedError *TimelockNotMaturedError
	return errors.As(err, &timelockNotMaturedError)
}

// Error code references: https://www.mongodb.com/docs/manual/reference/error-codes/
func IsWriteConflictError(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 112
	}
	return false
}

func IsTransactionAbortedError(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 251
	}
	return false
}
