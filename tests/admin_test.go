package tests

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corestake/staking-governance-service/internal/api/handlers"
	"github.com/corestake/staking-governance-service/internal/db"
	"github.com/corestake/staking-governance-service/internal/db/model"
	"github.com/corestake/staking-governance-service/internal/services"
	"github.com/corestake/staking-governance-service/internal/types"
)

const (
	grantRolePath        = "/v1/admin/roles/grant"
	revokeRolePath       = "/v1/admin/roles/revoke"
	scheduleTimelockPath = "/v1/admin/timelock/schedule"
	updateTreasuryPath   = "/v1/admin/treasury"
	updateThresholdPath  = "/v1/admin/threshold"
	governanceParamsPath = "/v1/governance/params"
)

func TestGrantAndRevokeRole(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	admin := "admin-roles.test"
	grantRoleDirectly(t, types.RoleAdmin, admin)
	account := "validator-granted.test"

	resp := postJSON(t, testServer.Server.URL+grantRolePath, handlers.RoleRequestPayload{
		AdminAddress:   admin,
		Role:           "validator",
		AccountAddress: account,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	roles, err := inspectDbDocuments[model.AccessRoleDocument](t, model.AccessRoleCollection)
	require.NoError(t, err)
	require.Equal(t, 2, len(roles))

	// Granting the same role twice is rejected
	resp = postJSON(t, testServer.Server.URL+grantRolePath, handlers.RoleRequestPayload{
		AdminAddress:   admin,
		Role:           "validator",
		AccountAddress: account,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	errorResponse := decodeErrorResponse(t, resp)
	resp.Body.Close()
	assert.Equal(t, "FORBIDDEN", errorResponse.ErrorCode)

	resp = postJSON(t, testServer.Server.URL+revokeRolePath, handlers.RoleRequestPayload{
		AdminAddress:   admin,
		Role:           "validator",
		AccountAddress: account,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Revoking a role the account no longer holds is not found
	resp = postJSON(t, testServer.Server.URL+revokeRolePath, handlers.RoleRequestPayload{
		AdminAddress:   admin,
		Role:           "validator",
		AccountAddress: account,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	errorResponse = decodeErrorResponse(t, resp)
	resp.Body.Close()
	assert.Equal(t, "NOT_FOUND", errorResponse.ErrorCode)
}

func TestRoleManagementRequiresAdmin(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	// Validators cannot manage roles
	validator := "validator-not-admin.test"
	grantRoleDirectly(t, types.RoleValidator, validator)

	resp := postJSON(t, testServer.Server.URL+grantRolePath, handlers.RoleRequestPayload{
		AdminAddress:   validator,
		Role:           "validator",
		AccountAddress: "someone.test",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	errorResponse := decodeErrorResponse(t, resp)
	resp.Body.Close()
	assert.Equal(t, "UNAUTHORIZED", errorResponse.ErrorCode)

	resp = postJSON(t, testServer.Server.URL+grantRolePath, handlers.RoleRequestPayload{
		AdminAddress:   validator,
		Role:           "treasurer",
		AccountAddress: "someone.test",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestTimelockGuardsGovernanceUpdates(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	admin := "admin-timelock.test"
	grantRoleDirectly(t, types.RoleAdmin, admin)

	// Updating without an armed schedule is rejected
	resp := postJSON(t, testServer.Server.URL+updateTreasuryPath, handlers.UpdateTreasuryRequestPayload{
		AdminAddress:    admin,
		TreasuryAddress: "treasury-next.test",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	errorResponse := decodeErrorResponse(t, resp)
	resp.Body.Close()
	assert.Equal(t, "TIMELOCK_NOT_SCHEDULED", errorResponse.ErrorCode)

	// Arming the schedule sets maturity at the configured minimum delay
	resp = postJSON(t, testServer.Server.URL+scheduleTimelockPath, handlers.ScheduleTimelockRequestPayload{
		AdminAddress: admin,
		OperationTag: types.UpdateTreasuryTag.ToString(),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	bodyBytes, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	var scheduled handlers.PublicResponse[handlers.ScheduleTimelockResponse]
	err = json.Unmarshal(bodyBytes, &scheduled)
	require.NoError(t, err)
	assert.Equal(t, types.UpdateTreasuryTag.ToString(), scheduled.Data.OperationTag)
	// config-test.yml arms the lock for one hour
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), scheduled.Data.MaturesAt, 10)

	// The schedule exists but has not matured yet
	resp = postJSON(t, testServer.Server.URL+updateTreasuryPath, handlers.UpdateTreasuryRequestPayload{
		AdminAddress:    admin,
		TreasuryAddress: "treasury-next.test",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	errorResponse = decodeErrorResponse(t, resp)
	resp.Body.Close()
	assert.Equal(t, "TIMELOCK_NOT_MATURED", errorResponse.ErrorCode)
}

func TestMaturedTimelockIsConsumedOnUse(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	admin := "admin-matured.test"
	grantRoleDirectly(t, types.RoleAdmin, admin)

	matured := model.NewTimelockDocument(
		types.UpdateTreasuryTag.ToString(),
		testStartTimestamp()-60,
		testStartTimestamp()-3660,
		admin,
	)
	injectDbDocuments(t, model.TimelockCollection, *matured)

	resp := postJSON(t, testServer.Server.URL+updateTreasuryPath, handlers.UpdateTreasuryRequestPayload{
		AdminAddress:    admin,
		TreasuryAddress: "treasury-updated.test",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	params, err := inspectDbDocuments[model.GovernanceParamsDocument](t, model.GovernanceParamsCollection)
	require.NoError(t, err)
	require.Equal(t, 1, len(params))
	assert.Equal(t, "treasury-updated.test", params[0].TreasuryAddress)

	// The schedule was consumed by the update, so a second update needs a
	// fresh one
	resp = postJSON(t, testServer.Server.URL+updateTreasuryPath, handlers.UpdateTreasuryRequestPayload{
		AdminAddress:    admin,
		TreasuryAddress: "treasury-again.test",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	errorResponse := decodeErrorResponse(t, resp)
	resp.Body.Close()
	assert.Equal(t, "TIMELOCK_NOT_SCHEDULED", errorResponse.ErrorCode)
}

// The maturity check is inclusive: an update one second before maturity is
// rejected, an update at exactly the maturity timestamp goes through. Drives
// the db layer directly because the clock value is an explicit argument
// there.
func TestTimelockMaturityBoundary(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	maturesAt := testStartTimestamp() + 600
	scheduled := model.NewTimelockDocument(
		types.UpdateTreasuryTag.ToString(),
		maturesAt,
		testStartTimestamp(),
		"admin-boundary.test",
	)
	injectDbDocuments(t, model.TimelockCollection, *scheduled)

	database := directDbConnection(t)

	updateErr := database.UpdateTreasuryAddress(context.Background(), "treasury-early.test", maturesAt-1)
	require.Error(t, updateErr)
	assert.True(t, db.IsTimelockNotMaturedError(updateErr))

	updateErr = database.UpdateTreasuryAddress(context.Background(), "treasury-boundary.test", maturesAt)
	require.NoError(t, updateErr)

	params, err := inspectDbDocuments[model.GovernanceParamsDocument](t, model.GovernanceParamsCollection)
	require.NoError(t, err)
	require.Equal(t, 1, len(params))
	assert.Equal(t, "treasury-boundary.test", params[0].TreasuryAddress)
}

func TestThresholdUpdateBehindTimelock(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	admin := "admin-threshold.test"
	grantRoleDirectly(t, types.RoleAdmin, admin)

	matured := model.NewTimelockDocument(
		types.UpdateApprovalThresholdTag.ToString(),
		testStartTimestamp()-60,
		testStartTimestamp()-3660,
		admin,
	)
	injectDbDocuments(t, model.TimelockCollection, *matured)

	// Zero threshold is rejected before the timelock is even consulted
	resp := postJSON(t, testServer.Server.URL+updateThresholdPath, handlers.UpdateThresholdRequestPayload{
		AdminAddress: admin,
		Threshold:    0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, testServer.Server.URL+updateThresholdPath, handlers.UpdateThresholdRequestPayload{
		AdminAddress: admin,
		Threshold:    3,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	params, err := inspectDbDocuments[model.GovernanceParamsDocument](t, model.GovernanceParamsCollection)
	require.NoError(t, err)
	require.Equal(t, 1, len(params))
	assert.Equal(t, uint32(3), params[0].SlashApprovalThreshold)
}

func TestScheduleUnknownOperationRejected(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	admin := "admin-unknown-op.test"
	grantRoleDirectly(t, types.RoleAdmin, admin)

	resp := postJSON(t, testServer.Server.URL+scheduleTimelockPath, handlers.ScheduleTimelockRequestPayload{
		AdminAddress: admin,
		OperationTag: "drain_treasury",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errorResponse := decodeErrorResponse(t, resp)
	assert.Equal(t, "VALIDATION_ERROR", errorResponse.ErrorCode)
}

func TestGetGovernanceParams(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	resp, err := http.Get(testServer.Server.URL + governanceParamsPath)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var response handlers.PublicResponse[services.GovernanceParamsPublic]
	err = json.Unmarshal(bodyBytes, &response)
	require.NoError(t, err)

	// Values seeded from config-test.yml
	assert.Equal(t, uint32(2), response.Data.SlashApprovalThreshold)
	assert.Equal(t, "treasury.test", response.Data.TreasuryAddress)
	assert.Equal(t, int64(3600), response.Data.MinStakeDuration)
	assert.Equal(t, int64(2592000), response.Data.MaxStakeDuration)
	assert.Equal(t, uint64(1000000), response.Data.MaxStakeAmount)
}
