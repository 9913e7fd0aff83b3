package tests

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corestake/staking-governance-service/internal/api/handlers"
	"github.com/corestake/staking-governance-service/internal/db/model"
	"github.com/corestake/staking-governance-service/internal/services"
	"github.com/corestake/staking-governance-service/internal/types"
)

const (
	proposeSlashPath   = "/v1/slash/propose"
	approveSlashPath   = "/v1/slash/approve"
	slashProposalsPath = "/v1/slash/proposals"
)

func grantRoleDirectly(t *testing.T, role types.Role, accountAddress string) {
	injectDbDocuments(t, model.AccessRoleCollection, model.AccessRoleDocument{
		RoleID:         model.BuildAccessRoleID(role.ToString(), accountAddress),
		Role:           role.ToString(),
		AccountAddress: accountAddress,
		GrantedAt:      testStartTimestamp(),
	})
}

func stakeForSlashTest(t *testing.T, testServer *TestServer, staker, asset string, amount uint64) {
	events := buildBalanceUpdateEvents(staker, []string{asset}, amount*10)
	err := sendTestMessage(testServer.Queues.BalanceUpdateQueueClient, events)
	require.NoError(t, err)
	time.Sleep(2 * time.Second)

	resp := postJSON(t, testServer.Server.URL+stakePath, handlers.DepositRequestPayload{
		StakerAddress:   staker,
		AssetID:         asset,
		Amount:          amount,
		DurationSeconds: 7200,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func decodeProposalResponse(t *testing.T, resp *http.Response) services.SlashProposalPublic {
	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var response handlers.PublicResponse[services.SlashProposalPublic]
	err = json.Unmarshal(bodyBytes, &response)
	require.NoError(t, err)
	return response.Data
}

func TestProposeSlashRequiresValidatorRole(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	staker := "staker-slash.test"
	asset := "asset-gold"
	stakeForSlashTest(t, testServer, staker, asset, 1000)

	resp := postJSON(t, testServer.Server.URL+proposeSlashPath, handlers.ProposeSlashRequestPayload{
		ProposerAddress: "validator-unregistered.test",
		StakerAddress:   staker,
		AssetID:         asset,
		SlashAmount:     100,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	errorResponse := decodeErrorResponse(t, resp)
	assert.Equal(t, "UNAUTHORIZED", errorResponse.ErrorCode)
}

// Walks the full quorum path with the test threshold of 2: a proposal opens,
// the first approval leaves it open, the second approval executes the slash
// and reduces the staked amount.
func TestSlashProposalQuorumExecution(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	staker := "staker-quorum.test"
	asset := "asset-gold"
	validatorOne := "validator-one.test"
	validatorTwo := "validator-two.test"
	grantRoleDirectly(t, types.RoleValidator, validatorOne)
	grantRoleDirectly(t, types.RoleValidator, validatorTwo)

	stakeForSlashTest(t, testServer, staker, asset, 1000)

	// Open the proposal
	resp := postJSON(t, testServer.Server.URL+proposeSlashPath, handlers.ProposeSlashRequestPayload{
		ProposerAddress: validatorOne,
		StakerAddress:   staker,
		AssetID:         asset,
		SlashAmount:     400,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	proposal := decodeProposalResponse(t, resp)
	resp.Body.Close()
	assert.Equal(t, types.ProposalOpen, proposal.Status)
	assert.Equal(t, uint32(2), proposal.ApprovalThreshold, "threshold snapshot should match the seeded config value")

	// A second proposal for the same staker and asset is rejected while one is open
	resp = postJSON(t, testServer.Server.URL+proposeSlashPath, handlers.ProposeSlashRequestPayload{
		ProposerAddress: validatorTwo,
		StakerAddress:   staker,
		AssetID:         asset,
		SlashAmount:     100,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	errorResponse := decodeErrorResponse(t, resp)
	resp.Body.Close()
	assert.Equal(t, "PROPOSAL_ALREADY_OPEN", errorResponse.ErrorCode)

	// First approval: below threshold, proposal stays open
	resp = postJSON(t, testServer.Server.URL+approveSlashPath, handlers.ApproveSlashRequestPayload{
		ApproverAddress: validatorOne,
		ProposalID:      proposal.ProposalID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	approved := decodeProposalResponse(t, resp)
	resp.Body.Close()
	assert.Equal(t, types.ProposalOpen, approved.Status)
	assert.Equal(t, uint32(1), approved.Approvals)

	// The same validator approving twice is rejected
	resp = postJSON(t, testServer.Server.URL+approveSlashPath, handlers.ApproveSlashRequestPayload{
		ApproverAddress: validatorOne,
		ProposalID:      proposal.ProposalID,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	errorResponse = decodeErrorResponse(t, resp)
	resp.Body.Close()
	assert.Equal(t, "ALREADY_APPROVED", errorResponse.ErrorCode)

	// Second approval reaches the threshold and executes the slash
	resp = postJSON(t, testServer.Server.URL+approveSlashPath, handlers.ApproveSlashRequestPayload{
		ApproverAddress: validatorTwo,
		ProposalID:      proposal.ProposalID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	executed := decodeProposalResponse(t, resp)
	resp.Body.Close()
	assert.Equal(t, types.ProposalExecuted, executed.Status)
	assert.Equal(t, uint32(2), executed.Approvals)

	// The staked amount is reduced by the slash amount
	positions, err := inspectDbDocuments[model.StakePositionDocument](t, model.StakePositionCollection)
	require.NoError(t, err)
	require.Equal(t, 1, len(positions))
	assert.Equal(t, uint64(600), positions[0].Amount)
	assert.True(t, positions[0].Active)

	// Approving an executed proposal is rejected
	resp = postJSON(t, testServer.Server.URL+approveSlashPath, handlers.ApproveSlashRequestPayload{
		ApproverAddress: validatorOne,
		ProposalID:      proposal.ProposalID,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	errorResponse = decodeErrorResponse(t, resp)
	resp.Body.Close()
	assert.Equal(t, "PROPOSAL_ALREADY_EXECUTED", errorResponse.ErrorCode)
}

func TestProposeSlashExceedingStakeRejected(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	staker := "staker-overslash.test"
	asset := "asset-gold"
	validator := "validator-overslash.test"
	grantRoleDirectly(t, types.RoleValidator, validator)

	stakeForSlashTest(t, testServer, staker, asset, 500)

	resp := postJSON(t, testServer.Server.URL+proposeSlashPath, handlers.ProposeSlashRequestPayload{
		ProposerAddress: validator,
		StakerAddress:   staker,
		AssetID:         asset,
		SlashAmount:     600,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	errorResponse := decodeErrorResponse(t, resp)
	assert.Equal(t, "INSUFFICIENT_STAKED_AMOUNT", errorResponse.ErrorCode)
}

func TestSupersedeOpenProposal(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	staker := "staker-supersede.test"
	asset := "asset-gold"
	validator := "validator-supersede.test"
	grantRoleDirectly(t, types.RoleValidator, validator)

	stakeForSlashTest(t, testServer, staker, asset, 1000)

	resp := postJSON(t, testServer.Server.URL+proposeSlashPath, handlers.ProposeSlashRequestPayload{
		ProposerAddress: validator,
		StakerAddress:   staker,
		AssetID:         asset,
		SlashAmount:     100,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	first := decodeProposalResponse(t, resp)
	resp.Body.Close()

	// Supersede replaces the open proposal with a new one
	resp = postJSON(t, testServer.Server.URL+proposeSlashPath, handlers.ProposeSlashRequestPayload{
		ProposerAddress: validator,
		StakerAddress:   staker,
		AssetID:         asset,
		SlashAmount:     200,
		Supersede:       true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	second := decodeProposalResponse(t, resp)
	resp.Body.Close()
	assert.Greater(t, second.ProposalID, first.ProposalID)

	// Approvals against the superseded proposal are rejected with a code
	// callers can tell apart from an executed proposal
	resp = postJSON(t, testServer.Server.URL+approveSlashPath, handlers.ApproveSlashRequestPayload{
		ApproverAddress: validator,
		ProposalID:      first.ProposalID,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	errorResponse := decodeErrorResponse(t, resp)
	resp.Body.Close()
	assert.Equal(t, "PROPOSAL_SUPERSEDED", errorResponse.ErrorCode)
}

// Raising the threshold mid-vote must not move the goalposts: an open
// proposal keeps executing at the quorum it snapshotted when it was opened,
// while proposals opened after the change pick up the new value.
func TestOpenProposalKeepsSnapshottedThreshold(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	staker := "staker-snapshot.test"
	asset := "asset-gold"
	admin := "admin-snapshot.test"
	validatorOne := "validator-snap-one.test"
	validatorTwo := "validator-snap-two.test"
	grantRoleDirectly(t, types.RoleAdmin, admin)
	grantRoleDirectly(t, types.RoleValidator, validatorOne)
	grantRoleDirectly(t, types.RoleValidator, validatorTwo)

	stakeForSlashTest(t, testServer, staker, asset, 1000)

	// Open the proposal at the seeded threshold of 2
	resp := postJSON(t, testServer.Server.URL+proposeSlashPath, handlers.ProposeSlashRequestPayload{
		ProposerAddress: validatorOne,
		StakerAddress:   staker,
		AssetID:         asset,
		SlashAmount:     300,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	proposal := decodeProposalResponse(t, resp)
	resp.Body.Close()
	require.Equal(t, uint32(2), proposal.ApprovalThreshold)

	// Raise the threshold to 3 while the vote is running
	matured := model.NewTimelockDocument(
		types.UpdateApprovalThresholdTag.ToString(),
		testStartTimestamp()-60,
		testStartTimestamp()-3660,
		admin,
	)
	injectDbDocuments(t, model.TimelockCollection, *matured)
	resp = postJSON(t, testServer.Server.URL+updateThresholdPath, handlers.UpdateThresholdRequestPayload{
		AdminAddress: admin,
		Threshold:    3,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Two approvals still execute the pending proposal at its snapshot of 2
	resp = postJSON(t, testServer.Server.URL+approveSlashPath, handlers.ApproveSlashRequestPayload{
		ApproverAddress: validatorOne,
		ProposalID:      proposal.ProposalID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = postJSON(t, testServer.Server.URL+approveSlashPath, handlers.ApproveSlashRequestPayload{
		ApproverAddress: validatorTwo,
		ProposalID:      proposal.ProposalID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	executed := decodeProposalResponse(t, resp)
	resp.Body.Close()
	assert.Equal(t, types.ProposalExecuted, executed.Status)
	assert.Equal(t, uint32(2), executed.Approvals)
	assert.Equal(t, uint32(2), executed.ApprovalThreshold)

	// A proposal opened after the change snapshots the raised threshold
	resp = postJSON(t, testServer.Server.URL+proposeSlashPath, handlers.ProposeSlashRequestPayload{
		ProposerAddress: validatorOne,
		StakerAddress:   staker,
		AssetID:         asset,
		SlashAmount:     100,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	followUp := decodeProposalResponse(t, resp)
	resp.Body.Close()
	assert.Equal(t, uint32(3), followUp.ApprovalThreshold)
}

func TestGetSlashProposals(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	validator := "validator-listing.test"
	grantRoleDirectly(t, types.RoleValidator, validator)

	stakeForSlashTest(t, testServer, "staker-l1.test", "asset-gold", 500)
	stakeForSlashTest(t, testServer, "staker-l2.test", "asset-silver", 500)

	for _, target := range []struct {
		staker string
		asset  string
	}{
		{"staker-l1.test", "asset-gold"},
		{"staker-l2.test", "asset-silver"},
	} {
		resp := postJSON(t, testServer.Server.URL+proposeSlashPath, handlers.ProposeSlashRequestPayload{
			ProposerAddress: validator,
			StakerAddress:   target.staker,
			AssetID:         target.asset,
			SlashAmount:     100,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	// Filter by asset returns only the matching proposal
	resp, err := http.Get(testServer.Server.URL + slashProposalsPath + "?asset_id=asset-gold")
	require.NoError(t, err)
	bodyBytes, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	var response handlers.PublicResponse[[]services.SlashProposalPublic]
	err = json.Unmarshal(bodyBytes, &response)
	require.NoError(t, err)
	require.Equal(t, 1, len(response.Data))
	assert.Equal(t, "asset-gold", response.Data[0].AssetID)
}
