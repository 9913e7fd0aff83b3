package db

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/corestake/staking-governance-service/internal/utils"
)

const (
	defaultMaxAttempts    = 4 // max attempt INCLUDES the first execution
	defaultInitialBackoff = 100 * time.Millisecond
	defaultBackoffFactor  = 2
)

// txWithRetries runs txnFunc inside a mongo session transaction, retrying
// with exponential backoff on transient errors (write conflicts, aborted
// transactions, network issues). Business errors abort immediately and roll
// the whole transaction back.
func (db *Database) txWithRetries(
	ctx context.Context,
	txnFunc func(sessCtx mongo.SessionContext) (interface{}, error),
) (interface{}, error) {
	var (
		result  interface{}
		err     error
		backoff = defaultInitialBackoff
	)

	for attempt := 1; attempt <= defaultMaxAttempts; attempt++ {
		session, sessionErr := db.Client.StartSession()
		if sessionErr != nil {
			return nil, sessionErr
		}

		result, err = session.WithTransaction(ctx, txnFunc)
		session.EndSession(ctx)

		if err != nil {
			if shouldRetry(err) && attempt < defaultMaxAttempts {
				log.Ctx(ctx).Warn().Err(err).Int("attempt", attempt).
					Dur("backoff", backoff).Msg("retrying transaction after transient error")
				utils.Sleep(backoff)
				backoff *= defaultBackoffFactor
				continue
			}
			return nil, err
		}
		break
	}
	return result, nil
}

// Network-related and timeout errors, write conflicts and aborted
// transactions are transient and safe to retry. Everything else, including
// the typed business errors, is not.
func shouldRetry(err error) bool {
	if mongo.IsNetworkError(err) {
		return true
	}
	if mongo.IsTimeout(err) {
		return true
	}
	if IsWriteConflictError(err) {
		return true
	}
	if IsTransactionAbortedError(err) {
		return true
	}
	return false
}
