package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestTypedErrorClassification(t *testing.T) {
	notFound := &NotFoundError{Key: "k", Message: "not found"}
	assert.True(t, IsNotFoundError(notFound))
	assert.False(t, IsNotFoundError(errors.New("not found")))

	// Classification survives wrapping
	wrapped := fmt.Errorf("lookup failed: %w", notFound)
	assert.True(t, IsNotFoundError(wrapped))

	assert.True(t, IsInsufficientBalanceError(&InsufficientBalanceError{Message: "m"}))
	assert.True(t, IsStakeActiveError(&StakeActiveError{Message: "m"}))
	assert.True(t, IsStakeNotFoundError(&StakeNotFoundError{Message: "m"}))
	assert.True(t, IsInsufficientStakeError(&InsufficientStakeError{Message: "m"}))
	assert.True(t, IsProposalOpenError(&ProposalOpenError{Message: "m"}))
	assert.True(t, IsProposalClosedError(&ProposalClosedError{Message: "m"}))
	assert.True(t, IsAlreadyApprovedError(&AlreadyApprovedError{Message: "m"}))
	assert.True(t, IsTimelockNotScheduledError(&TimelockNotScheduledError{Message: "m"}))
	assert.True(t, IsTimelockNotMaturedError(&TimelockNotMaturedError{Message: "m"}))

	// The Is helpers do not cross-match each other
	assert.False(t, IsStakeActiveError(notFound))
	assert.False(t, IsProposalOpenError(&ProposalClosedError{Message: "m"}))
}

func TestShouldRetryClassification(t *testing.T) {
	writeConflict := mongo.CommandError{Code: 112, Message: "WriteConflict"}
	assert.True(t, shouldRetry(writeConflict))

	txnAborted := mongo.CommandError{Code: 251, Message: "NoSuchTransaction"}
	assert.True(t, shouldRetry(txnAborted))

	// Business errors roll the transaction back and must not be retried
	assert.False(t, shouldRetry(&InsufficientBalanceError{Message: "m"}))
	assert.False(t, shouldRetry(&ProposalOpenError{Message: "m"}))
	assert.False(t, shouldRetry(errors.New("some other failure")))
}
