package store

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"github.com/squadplay/squad-engine/internal/domain"
	"github.com/squadplay/squad-engine/internal/store/schema"
)

// AwardStarsInput holds the parameters for a credit to a player's balance
type AwardStarsInput struct {
	PlayerID    string
	SquadID     string
	Amount      int64 // must be > 0
	Kind        domain.TransactionKind
	Source      domain.TransactionSource
	ReferenceID *string
	Metadata    datatypes.JSON
}

// SpendStarsInput holds the parameters for a debit from a player's balance
type SpendStarsInput struct {
	PlayerID    string
	SquadID     string
	Amount      int64 // must be > 0
	Source      domain.TransactionSource
	ReferenceID *string
	Metadata    datatypes.JSON
}

// SpendStarsResult reports the outcome of a conditional debit.
// An insufficient balance is a decline, not an error: Success is false,
// Balance is unchanged, and no transaction row exists.
type SpendStarsResult struct {
	Success     bool
	Balance     int64
	Transaction *schema.StarTransaction
}

// ClaimDailyLoginInput holds the parameters for a daily login claim
type ClaimDailyLoginInput struct {
	PlayerID        string
	SquadID         string
	ClaimDate       time.Time // date, normalized to midnight UTC
	ConsecutiveDays int
	Amount          int64
}

// ClaimDailyLoginResult reports the outcome of a daily login claim.
// AlreadyClaimed means a claim for the same day existed and nothing was written.
type ClaimDailyLoginResult struct {
	AlreadyClaimed bool
	Claim          *schema.DailyLoginClaim
	Transaction    *schema.StarTransaction
}

// CreateGrantInput holds the parameters for issuing a new power grant
type CreateGrantInput struct {
	Type      domain.PowerType
	OwnerID   string
	SquadID   string
	ExpiresAt time.Time
	Metadata  datatypes.JSON
}

// CreateTargetInput describes the ActiveTarget to create alongside a
// target_lock consumption
type CreateTargetInput struct {
	TargetID string
	TTL      time.Duration
}

// ConsumeGrantInput holds the parameters for consuming a power grant.
// Target is non-nil only for target_lock grants; the targeting relation is
// created in the same transaction as the consumption.
type ConsumeGrantInput struct {
	GrantID  int64
	CallerID string
	Now      time.Time
	Metadata datatypes.JSON
	Target   *CreateTargetInput
}

// ConsumeGrantResult reports a successful consumption
type ConsumeGrantResult struct {
	Grant  *schema.PowerGrant
	Target *schema.ActiveTarget // nil unless a target_lock was consumed
}

// CreateChallengeInput holds the parameters for opening a challenge
type CreateChallengeInput struct {
	ChallengerID   string
	TargetID       string
	SquadID        string
	Kind           domain.ChallengeKind
	RelatedGrantID *int64
	RelatedEventID *string
	VotesNeeded    int
	ExpiresAt      time.Time
}

// Store defines the interface for database operations.
// Every mutation that is subject to a concurrent-writer race (balances,
// grant consumption, vote counting, challenge resolution) is a single
// atomic conditional write at this boundary; the engine never performs
// read-then-write sequences on those values.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetBalance retrieves the star balance for a (player, squad) pair.
	// Returns nil when no record exists yet (zero balance).
	GetBalance(ctx context.Context, playerID, squadID string) (*schema.StarBalance, error)
	// AwardStars atomically credits a balance and appends the ledger entry
	AwardStars(ctx context.Context, input AwardStarsInput) (*schema.StarTransaction, error)
	// SpendStars atomically checks balance >= amount and debits if so
	SpendStars(ctx context.Context, input SpendStarsInput) (*SpendStarsResult, error)
	// ListTransactions retrieves the ledger history for a (player, squad) pair,
	// newest first
	ListTransactions(ctx context.Context, playerID, squadID string, limit int, offset uint64) ([]schema.StarTransaction, uint64, error)
	// GetLatestDailyLoginClaim retrieves the most recent claim for streak math.
	// Returns nil when the player has never claimed.
	GetLatestDailyLoginClaim(ctx context.Context, playerID, squadID string) (*schema.DailyLoginClaim, error)
	// ClaimDailyLogin inserts the claim and credits the reward in one
	// transaction; a duplicate claim for the same day writes nothing
	ClaimDailyLogin(ctx context.Context, input ClaimDailyLoginInput) (*ClaimDailyLoginResult, error)

	// CreateGrant issues a new power grant (external grant action)
	CreateGrant(ctx context.Context, input CreateGrantInput) (*schema.PowerGrant, error)
	// GetGrantByID retrieves a grant by id. Returns nil when not found.
	GetGrantByID(ctx context.Context, grantID int64) (*schema.PowerGrant, error)
	// ListActiveGrants retrieves the caller's usable grants (not consumed,
	// not cancelled, not expired)
	ListActiveGrants(ctx context.Context, ownerID, squadID string, now time.Time) ([]schema.PowerGrant, error)
	// ConsumeGrant marks a grant used via a conditional write; exactly one of
	// N concurrent calls wins. Losing calls receive the precise domain decline.
	ConsumeGrant(ctx context.Context, input ConsumeGrantInput) (*ConsumeGrantResult, error)
	// CancelGrant records a challenge-driven or administrative cancellation,
	// distinct from consumption, and removes any targeting relation the grant
	// created. Returns false when the grant was already cancelled (no-op).
	CancelGrant(ctx context.Context, grantID int64, cancelledBy, reason string, now time.Time) (bool, error)
	// GetActiveTargetByTargeter retrieves the live targeting relation created
	// by a player. Returns nil when none exists.
	GetActiveTargetByTargeter(ctx context.Context, targeterID, squadID string, now time.Time) (*schema.ActiveTarget, error)
	// IsTargeted reports whether any live targeting relation names the player
	IsTargeted(ctx context.Context, playerID, squadID string, now time.Time) (bool, error)
	// DeleteExpiredTargets removes dead targeting relations (sweeper)
	DeleteExpiredTargets(ctx context.Context, now time.Time, limit int) (int64, error)

	// CreateChallenge opens a challenge with the challenger's auto-vote
	// already counted, in one transaction
	CreateChallenge(ctx context.Context, input CreateChallengeInput) (*schema.Challenge, error)
	// GetChallengeByID retrieves a challenge by id. Returns nil when not found.
	GetChallengeByID(ctx context.Context, challengeID int64) (*schema.Challenge, error)
	// ListChallenges retrieves challenges for a squad, newest first
	ListChallenges(ctx context.Context, squadID string, status *domain.ChallengeStatus, limit int, offset uint64) ([]schema.Challenge, uint64, error)
	// CastVote inserts the vote and increments the matching counter as one
	// logical operation; duplicates and non-active challenges are declines.
	// Returns the challenge with post-vote counts.
	CastVote(ctx context.Context, challengeID int64, userID string, choice domain.VoteChoice) (*schema.Challenge, error)
	// ResolveChallenge transitions active -> passed|failed iff the vote
	// threshold holds; returns true only for the call that performed the
	// transition, which drives at-most-once side effects
	ResolveChallenge(ctx context.Context, challengeID int64, outcome domain.ChallengeStatus, now time.Time) (bool, error)
	// ExpireChallenge transitions active -> expired iff past the deadline
	ExpireChallenge(ctx context.Context, challengeID int64, now time.Time) (bool, error)
	// ListExpirableChallenges retrieves active challenges past their deadline (sweeper)
	ListExpirableChallenges(ctx context.Context, now time.Time, limit int) ([]schema.Challenge, error)

	// GetJudgeAssignment retrieves the judge for a (squad, day).
	// Returns nil when none exists.
	GetJudgeAssignment(ctx context.Context, squadID string, judgeDate time.Time) (*schema.JudgeAssignment, error)
	// CreateJudgeAssignment records the day's judge; at most one per (squad, day)
	CreateJudgeAssignment(ctx context.Context, squadID, userID string, judgeDate time.Time) (*schema.JudgeAssignment, error)
	// ApplyJudgeBonus records the bonus on the assignment and credits the
	// judge's ledger in one transaction
	ApplyJudgeBonus(ctx context.Context, assignmentID int64, amount int64) (*schema.StarTransaction, error)
	// ApplyJudgePenalty records the penalty, marks the assignment overturned,
	// and debits the judge's ledger (clamped at the available balance) in one
	// transaction
	ApplyJudgePenalty(ctx context.Context, assignmentID int64, amount int64) (*schema.StarTransaction, error)
}
