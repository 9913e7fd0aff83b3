package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/corestake/staking-governance-service/internal/api"
	"github.com/corestake/staking-governance-service/internal/api/handlers"
	"github.com/corestake/staking-governance-service/internal/clients/assetledger"
	"github.com/corestake/staking-governance-service/internal/db/model"
	"github.com/corestake/staking-governance-service/internal/services"
	"github.com/corestake/staking-governance-service/internal/types"
	testmock "github.com/corestake/staking-governance-service/tests/mocks"
)

const (
	stakePath          = "/v1/stake"
	batchStakePath     = "/v1/stake/batch"
	stakePositionsPath = "/v1/stake/positions"
)

func postJSON(t *testing.T, url string, payload interface{}) *http.Response {
	requestBodyBytes, err := json.Marshal(payload)
	require.NoError(t, err, "marshalling request body should not fail")

	resp, err := http.Post(url, "application/json", bytes.NewReader(requestBodyBytes))
	require.NoError(t, err, "making POST request should not fail")
	return resp
}

func decodeErrorResponse(t *testing.T, resp *http.Response) api.ErrorResponse {
	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "reading response body should not fail")

	var response api.ErrorResponse
	err = json.Unmarshal(bodyBytes, &response)
	require.NoError(t, err, "unmarshalling response body should not fail")
	return response
}

func TestDeposit(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	staker := "staker-deposit.test"
	asset := "asset-gold"

	// Mirror a balance for the staker before depositing
	events := buildBalanceUpdateEvents(staker, []string{asset}, 100000)
	err := sendTestMessage(testServer.Queues.BalanceUpdateQueueClient, events)
	require.NoError(t, err)
	time.Sleep(2 * time.Second)

	resp := postJSON(t, testServer.Server.URL+stakePath, handlers.DepositRequestPayload{
		StakerAddress:   staker,
		AssetID:         asset,
		Amount:          5000,
		DurationSeconds: 7200,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode, "expected HTTP 201 Created status")

	// Check from DB if the position is saved
	results, err := inspectDbDocuments[model.StakePositionDocument](t, model.StakePositionCollection)
	require.NoError(t, err)
	assert.Equal(t, 1, len(results), "expected 1 document in the DB")
	assert.Equal(t, staker, results[0].StakerAddress)
	assert.Equal(t, asset, results[0].AssetID)
	assert.Equal(t, uint64(5000), results[0].Amount)
	assert.True(t, results[0].Active)

	// Re-staking while the position is active is rejected
	resp = postJSON(t, testServer.Server.URL+stakePath, handlers.DepositRequestPayload{
		StakerAddress:   staker,
		AssetID:         asset,
		Amount:          100,
		DurationSeconds: 7200,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	errorResponse := decodeErrorResponse(t, resp)
	assert.Equal(t, "STAKE_ALREADY_ACTIVE", errorResponse.ErrorCode)
}

func TestDepositRejectedOnInsufficientBalance(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	staker := "staker-poor.test"
	asset := "asset-silver"

	events := buildBalanceUpdateEvents(staker, []string{asset}, 100)
	err := sendTestMessage(testServer.Queues.BalanceUpdateQueueClient, events)
	require.NoError(t, err)
	time.Sleep(2 * time.Second)

	resp := postJSON(t, testServer.Server.URL+stakePath, handlers.DepositRequestPayload{
		StakerAddress:   staker,
		AssetID:         asset,
		Amount:          5000,
		DurationSeconds: 7200,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	errorResponse := decodeErrorResponse(t, resp)
	assert.Equal(t, "INSUFFICIENT_BALANCE", errorResponse.ErrorCode)

	// No position should have been written
	results, err := inspectDbDocuments[model.StakePositionDocument](t, model.StakePositionCollection)
	require.NoError(t, err)
	assert.Equal(t, 0, len(results), "expected no documents in the DB")
}

// A deposit for an account the mirror has never seen backfills the balance
// from the upstream asset ledger before the balance check runs.
func TestDepositBackfillsBalanceFromAssetLedger(t *testing.T) {
	staker := "staker-backfill.test"
	asset := "asset-gold"

	mockAssetLedger := new(testmock.AssetLedgerClient)
	mockAssetLedger.On("GetBalance", mock.Anything, staker, asset).Return(
		&assetledger.BalanceResponse{
			AccountAddress: staker,
			AssetID:        asset,
			Balance:        8000,
		}, nil,
	)
	testServer := setupTestServer(t, &TestServerDependency{MockAssetLedgerClient: mockAssetLedger})
	defer testServer.Close()

	// No balance event is published, so the mirror is empty on purpose
	resp := postJSON(t, testServer.Server.URL+stakePath, handlers.DepositRequestPayload{
		StakerAddress:   staker,
		AssetID:         asset,
		Amount:          5000,
		DurationSeconds: 7200,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode, "expected HTTP 201 Created status")

	// The fetched balance was written into the mirror
	balances, err := inspectDbDocuments[model.AssetBalanceDocument](t, model.AssetBalanceCollection)
	require.NoError(t, err)
	require.Equal(t, 1, len(balances))
	assert.Equal(t, uint64(8000), balances[0].Balance)

	positions, err := inspectDbDocuments[model.StakePositionDocument](t, model.StakePositionCollection)
	require.NoError(t, err)
	require.Equal(t, 1, len(positions))
	assert.Equal(t, uint64(5000), positions[0].Amount)

	mockAssetLedger.AssertExpectations(t)
}

// An account unknown to the upstream ledger is tolerated during the backfill
// and the deposit then fails the balance check with nothing written.
func TestDepositUnknownUpstreamAccountRejected(t *testing.T) {
	staker := "staker-unknown.test"
	asset := "asset-gold"

	mockAssetLedger := new(testmock.AssetLedgerClient)
	mockAssetLedger.On("GetBalance", mock.Anything, staker, asset).Return(
		nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "account not found"),
	)
	testServer := setupTestServer(t, &TestServerDependency{MockAssetLedgerClient: mockAssetLedger})
	defer testServer.Close()

	resp := postJSON(t, testServer.Server.URL+stakePath, handlers.DepositRequestPayload{
		StakerAddress:   staker,
		AssetID:         asset,
		Amount:          5000,
		DurationSeconds: 7200,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	errorResponse := decodeErrorResponse(t, resp)
	assert.Equal(t, "INSUFFICIENT_BALANCE", errorResponse.ErrorCode)

	results, err := inspectDbDocuments[model.StakePositionDocument](t, model.StakePositionCollection)
	require.NoError(t, err)
	assert.Equal(t, 0, len(results), "expected no documents in the DB")

	mockAssetLedger.AssertExpectations(t)
}

func TestDepositValidation(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	// Zero amount
	resp := postJSON(t, testServer.Server.URL+stakePath, handlers.DepositRequestPayload{
		StakerAddress:   "staker-validation.test",
		AssetID:         "asset-gold",
		Amount:          0,
		DurationSeconds: 7200,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errorResponse := decodeErrorResponse(t, resp)
	assert.Equal(t, "INVALID_AMOUNT", errorResponse.ErrorCode)

	// Duration below the configured minimum of 1h
	resp = postJSON(t, testServer.Server.URL+stakePath, handlers.DepositRequestPayload{
		StakerAddress:   "staker-validation.test",
		AssetID:         "asset-gold",
		Amount:          100,
		DurationSeconds: 60,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errorResponse = decodeErrorResponse(t, resp)
	assert.Equal(t, "DURATION_OUT_OF_RANGE", errorResponse.ErrorCode)

	// Amount above the configured maximum
	resp = postJSON(t, testServer.Server.URL+stakePath, handlers.DepositRequestPayload{
		StakerAddress:   "staker-validation.test",
		AssetID:         "asset-gold",
		Amount:          2000000,
		DurationSeconds: 7200,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errorResponse = decodeErrorResponse(t, resp)
	assert.Equal(t, "INVALID_AMOUNT", errorResponse.ErrorCode)
}

func TestBatchDepositLengthMismatch(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	resp := postJSON(t, testServer.Server.URL+batchStakePath, handlers.BatchDepositRequestPayload{
		StakerAddress: "staker-batch.test",
		AssetIDs:      []string{"asset-gold", "asset-silver"},
		Amounts:       []uint64{100},
		Durations:     []int64{7200, 7200},
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errorResponse := decodeErrorResponse(t, resp)
	assert.Equal(t, "LENGTH_MISMATCH", errorResponse.ErrorCode)
}

func TestBatchDeposit(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	staker := "staker-batch.test"
	assets := []string{"asset-gold", "asset-silver"}

	events := buildBalanceUpdateEvents(staker, assets, 100000)
	err := sendTestMessage(testServer.Queues.BalanceUpdateQueueClient, events)
	require.NoError(t, err)
	time.Sleep(2 * time.Second)

	resp := postJSON(t, testServer.Server.URL+batchStakePath, handlers.BatchDepositRequestPayload{
		StakerAddress: staker,
		AssetIDs:      assets,
		Amounts:       []uint64{1000, 2000},
		Durations:     []int64{7200, 7200},
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode, "expected HTTP 201 Created status")

	results, err := inspectDbDocuments[model.StakePositionDocument](t, model.StakePositionCollection)
	require.NoError(t, err)
	assert.Equal(t, 2, len(results), "expected 2 documents in the DB")
}

// A batch that references the same asset twice must be checked against the
// summed amount, not against the balance once per entry.
func TestBatchDepositAggregatesRepeatedAssets(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	staker := "staker-repeat.test"
	asset := "asset-gold"

	events := buildBalanceUpdateEvents(staker, []string{asset}, 1000)
	err := sendTestMessage(testServer.Queues.BalanceUpdateQueueClient, events)
	require.NoError(t, err)
	time.Sleep(2 * time.Second)

	// 600 + 600 exceeds the 1000 balance even though each entry alone fits
	resp := postJSON(t, testServer.Server.URL+batchStakePath, handlers.BatchDepositRequestPayload{
		StakerAddress: staker,
		AssetIDs:      []string{asset, asset},
		Amounts:       []uint64{600, 600},
		Durations:     []int64{7200, 7200},
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	errorResponse := decodeErrorResponse(t, resp)
	assert.Equal(t, "INSUFFICIENT_BALANCE", errorResponse.ErrorCode)

	// The rejection must leave no partial state behind
	results, err := inspectDbDocuments[model.StakePositionDocument](t, model.StakePositionCollection)
	require.NoError(t, err)
	assert.Equal(t, 0, len(results), "expected no documents in the DB")
}

func TestGetStakePositions(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	staker := "staker-list.test"
	assets := []string{"asset-a", "asset-b", "asset-c", "asset-d"}

	events := buildBalanceUpdateEvents(staker, assets, 100000)
	err := sendTestMessage(testServer.Queues.BalanceUpdateQueueClient, events)
	require.NoError(t, err)
	time.Sleep(2 * time.Second)

	amounts := []uint64{100, 200, 300, 400}
	durations := []int64{7200, 7200, 7200, 7200}
	resp := postJSON(t, testServer.Server.URL+batchStakePath, handlers.BatchDepositRequestPayload{
		StakerAddress: staker,
		AssetIDs:      assets,
		Amounts:       amounts,
		Durations:     durations,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Max pagination limit in the test config is 3, so expect two pages
	url := testServer.Server.URL + stakePositionsPath + "?staker_address=" + staker
	var fetched []services.StakePositionPublic
	paginationKey := ""
	for i := 0; i < 2; i++ {
		pageUrl := url
		if paginationKey != "" {
			pageUrl += "&pagination_key=" + paginationKey
		}
		resp, err := http.Get(pageUrl)
		require.NoError(t, err)
		bodyBytes, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)

		var response handlers.PublicResponse[[]services.StakePositionPublic]
		err = json.Unmarshal(bodyBytes, &response)
		require.NoError(t, err)

		fetched = append(fetched, response.Data...)
		if response.Pagination == nil || response.Pagination.NextKey == "" {
			break
		}
		paginationKey = response.Pagination.NextKey
	}

	assert.Equal(t, len(assets), len(fetched), "expected all positions across pages")
}
