package rest

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/squadplay/squad-engine/internal/domain"
	"github.com/squadplay/squad-engine/internal/store/schema"
)

// balanceResponse is the current currency view for a player in a squad
type balanceResponse struct {
	Balance        int64 `json:"balance"`
	LifetimeEarned int64 `json:"lifetime_earned"`
}

// transactionResponse is one ledger entry
type transactionResponse struct {
	TxRef        string          `json:"tx_ref"`
	PlayerID     string          `json:"player_id"`
	SquadID      string          `json:"squad_id"`
	Amount       int64           `json:"amount"`
	BalanceAfter int64           `json:"balance_after"`
	Kind         string          `json:"kind"`
	Source       string          `json:"source"`
	ReferenceID  *string         `json:"reference_id,omitempty"`
	Metadata     json.RawMessage `json:"metadata,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toTransactionResponse(txn *schema.StarTransaction) *transactionResponse {
	if txn == nil {
		return nil
	}
	return &transactionResponse{
		TxRef:        txn.TxRef,
		PlayerID:     txn.PlayerID,
		SquadID:      txn.SquadID,
		Amount:       txn.Amount,
		BalanceAfter: txn.BalanceAfter,
		Kind:         string(txn.Kind),
		Source:       string(txn.Source),
		ReferenceID:  txn.ReferenceID,
		Metadata:     json.RawMessage(txn.Metadata),
		CreatedAt:    txn.CreatedAt,
	}
}

// listTransactionsResponse pages through the ledger history
type listTransactionsResponse struct {
	Transactions []transactionResponse `json:"transactions"`
	Total        uint64                `json:"total"`
}

// earnRequest credits a player; game-server only
type earnRequest struct {
	PlayerID    string          `json:"player_id" binding:"required"`
	Amount      int64           `json:"amount" binding:"required"`
	Source      string          `json:"source"`
	ReferenceID *string         `json:"reference_id"`
	Metadata    json.RawMessage `json:"metadata"`
}

// spendRequest debits the caller's balance
type spendRequest struct {
	PlayerID    string          `json:"player_id"`
	Amount      int64           `json:"amount" binding:"required"`
	Source      string          `json:"source"`
	ReferenceID *string         `json:"reference_id"`
	Metadata    json.RawMessage `json:"metadata"`
}

// spendResponse carries the decline as a field, not an error
type spendResponse struct {
	Success     bool                 `json:"success"`
	Balance     int64                `json:"balance"`
	Transaction *transactionResponse `json:"transaction,omitempty"`
}

// dailyLoginRequest claims the day's login reward
type dailyLoginRequest struct {
	PlayerID string `json:"player_id"`
}

// dailyLoginResponse reports the claim outcome
type dailyLoginResponse struct {
	AlreadyClaimed  bool  `json:"already_claimed"`
	ConsecutiveDays int   `json:"consecutive_days"`
	Amount          int64 `json:"amount"`
	Balance         int64 `json:"balance"`
}

// grantResponse is one power grant
type grantResponse struct {
	ID           int64           `json:"id"`
	Type         string          `json:"type"`
	OwnerID      string          `json:"owner_id"`
	SquadID      string          `json:"squad_id"`
	ExpiresAt    time.Time       `json:"expires_at"`
	ConsumedAt   *time.Time      `json:"consumed_at,omitempty"`
	CancelledAt  *time.Time      `json:"cancelled_at,omitempty"`
	CancelReason *string         `json:"cancel_reason,omitempty"`
	Metadata     json.RawMessage `json:"metadata,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toGrantResponse(grant *schema.PowerGrant) *grantResponse {
	if grant == nil {
		return nil
	}
	return &grantResponse{
		ID:           grant.ID,
		Type:         string(grant.Type),
		OwnerID:      grant.OwnerID,
		SquadID:      grant.SquadID,
		ExpiresAt:    grant.ExpiresAt,
		ConsumedAt:   grant.ConsumedAt,
		CancelledAt:  grant.CancelledAt,
		CancelReason: grant.CancelReason,
		Metadata:     json.RawMessage(grant.Metadata),
		CreatedAt:    grant.CreatedAt,
	}
}

// grantPowerRequest issues a new grant; game-server only
type grantPowerRequest struct {
	OwnerID   string          `json:"owner_id" binding:"required"`
	Type      string          `json:"type" binding:"required"`
	ExpiresAt time.Time       `json:"expires_at" binding:"required"`
	Metadata  json.RawMessage `json:"metadata"`
}

// consumePowerRequest consumes a grant; target_id only for target_lock
type consumePowerRequest struct {
	PlayerID string          `json:"player_id"`
	TargetID string          `json:"target_id"`
	Metadata json.RawMessage `json:"metadata"`
}

// targetResponse is one active targeting relation
type targetResponse struct {
	TargeterID string    `json:"targeter_id"`
	TargetID   string    `json:"target_id"`
	SquadID    string    `json:"squad_id"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func toTargetResponse(target *schema.ActiveTarget) *targetResponse {
	if target == nil {
		return nil
	}
	return &targetResponse{
		TargeterID: target.TargeterID,
		TargetID:   target.TargetID,
		SquadID:    target.SquadID,
		ExpiresAt:  target.ExpiresAt,
	}
}

// consumePowerResponse reports a successful consumption
type consumePowerResponse struct {
	Grant  *grantResponse  `json:"grant"`
	Target *targetResponse `json:"target,omitempty"`
}

// cancelPowerRequest cancels a grant administratively; game-server only
type cancelPowerRequest struct {
	CancelledBy string `json:"cancelled_by" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
}

// targetedResponse reports whether the player is currently targeted
type targetedResponse struct {
	Targeted bool `json:"targeted"`
}

// createChallengeRequest opens a challenge
type createChallengeRequest struct {
	PlayerID       string  `json:"player_id"`
	TargetID       string  `json:"target_id" binding:"required"`
	Kind           string  `json:"kind" binding:"required"`
	RelatedGrantID *int64  `json:"related_grant_id"`
	RelatedEventID *string `json:"related_event_id"`
}

// challengeResponse is one challenge with its vote tallies
type challengeResponse struct {
	ID             int64      `json:"id"`
	ChallengerID   string     `json:"challenger_id"`
	TargetID       string     `json:"target_id"`
	SquadID        string     `json:"squad_id"`
	Kind           string     `json:"kind"`
	RelatedGrantID *int64     `json:"related_grant_id,omitempty"`
	RelatedEventID *string    `json:"related_event_id,omitempty"`
	VotesFor       int        `json:"votes_for"`
	VotesAgainst   int        `json:"votes_against"`
	VotesNeeded    int        `json:"votes_needed"`
	Status         string     `json:"status"`
	ExpiresAt      time.Time  `json:"expires_at"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func toChallengeResponse(challenge *schema.Challenge) *challengeResponse {
	if challenge == nil {
		return nil
	}
	return &challengeResponse{
		ID:             challenge.ID,
		ChallengerID:   challenge.ChallengerID,
		TargetID:       challenge.TargetID,
		SquadID:        challenge.SquadID,
		Kind:           string(challenge.Kind),
		RelatedGrantID: challenge.RelatedGrantID,
		RelatedEventID: challenge.RelatedEventID,
		VotesFor:       challenge.VotesFor,
		VotesAgainst:   challenge.VotesAgainst,
		VotesNeeded:    challenge.VotesNeeded,
		Status:         string(challenge.Status),
		ExpiresAt:      challenge.ExpiresAt,
		ResolvedAt:     challenge.ResolvedAt,
		CreatedAt:      challenge.CreatedAt,
	}
}

// listChallengesResponse pages through a squad's challenges
type listChallengesResponse struct {
	Challenges []challengeResponse `json:"challenges"`
	Total      uint64              `json:"total"`
}

// voteRequest records a member's vote
type voteRequest struct {
	PlayerID string `json:"player_id"`
	Choice   string `json:"choice" binding:"required"`
}

// judgeAssignmentResponse is the day's judge for a squad
type judgeAssignmentResponse struct {
	ID             int64     `json:"id"`
	SquadID        string    `json:"squad_id"`
	UserID         string    `json:"user_id"`
	JudgeDate      string    `json:"judge_date"`
	BonusEarned    int64     `json:"bonus_earned"`
	PenaltyApplied int64     `json:"penalty_applied"`
	IsOverturned   bool      `json:"is_overturned"`
	CreatedAt      time.Time `json:"created_at"`
}

func toJudgeAssignmentResponse(assignment *schema.JudgeAssignment) *judgeAssignmentResponse {
	if assignment == nil {
		return nil
	}
	return &judgeAssignmentResponse{
		ID:             assignment.ID,
		SquadID:        assignment.SquadID,
		UserID:         assignment.UserID,
		JudgeDate:      assignment.JudgeDate.Format("2006-01-02"),
		BonusEarned:    assignment.BonusEarned,
		PenaltyApplied: assignment.PenaltyApplied,
		IsOverturned:   assignment.IsOverturned,
		CreatedAt:      assignment.CreatedAt,
	}
}

// assignJudgeRequest records the day's judge; game-server only
type assignJudgeRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// judgeAdjustmentRequest applies a bonus or penalty; game-server only
type judgeAdjustmentRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// toMetadata converts a raw request payload to the storage JSON type
func toMetadata(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}
	return datatypes.JSON(raw)
}

// parseSource returns the transaction source, defaulting to event_reward
func parseSource(source string) domain.TransactionSource {
	if source == "" {
		return domain.SourceEventReward
	}
	return domain.TransactionSource(source)
}
