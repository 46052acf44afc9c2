package domain

import (
	"time"
)

// PowerType represents the kind of rule modifier a power grant carries
type PowerType string

const (
	// PowerTypeDoubleChance doubles the owner's win probability in the next scored event
	PowerTypeDoubleChance PowerType = "double_chance"
	// PowerTypeTargetLock creates a directed, time-limited targeting relation against another player
	PowerTypeTargetLock PowerType = "target_lock"
	// PowerTypeChaosCard activates a randomly chosen global rule modifier for the current event
	PowerTypeChaosCard PowerType = "chaos_card"
	// PowerTypeStreakShield protects the owner's login/participation streak from breaking once
	PowerTypeStreakShield PowerType = "streak_shield"
)

// IsValidPowerType checks if a power type is one of the known rule modifiers
func IsValidPowerType(t PowerType) bool {
	return t == PowerTypeDoubleChance ||
		t == PowerTypeTargetLock ||
		t == PowerTypeChaosCard ||
		t == PowerTypeStreakShield
}

// TransactionKind represents the ledger entry classification
type TransactionKind string

const (
	TransactionKindEarn   TransactionKind = "earn"
	TransactionKindSpend  TransactionKind = "spend"
	TransactionKindBonus  TransactionKind = "bonus"
	TransactionKindRefund TransactionKind = "refund"
)

// TransactionSource identifies what produced a ledger entry
type TransactionSource string

const (
	SourceDailyLogin   TransactionSource = "daily_login"
	SourceEventReward  TransactionSource = "event_reward"
	SourcePowerCost    TransactionSource = "power_cost"
	SourceJudgeBonus   TransactionSource = "judge_bonus"
	SourceJudgePenalty TransactionSource = "judge_penalty"
)

// ChallengeKind represents what a challenge contests
type ChallengeKind string

const (
	// ChallengeKindJudgeDecision contests the day's judge ruling
	ChallengeKindJudgeDecision ChallengeKind = "judge_decision"
	// ChallengeKindPowerActivation contests a consumed power grant
	ChallengeKindPowerActivation ChallengeKind = "power_activation"
)

// IsValidChallengeKind checks if a challenge kind is known
func IsValidChallengeKind(k ChallengeKind) bool {
	return k == ChallengeKindJudgeDecision || k == ChallengeKindPowerActivation
}

// ChallengeStatus represents the challenge state machine.
// Transitions out of "active" happen exactly once: active -> passed | failed | expired.
type ChallengeStatus string

const (
	ChallengeStatusActive  ChallengeStatus = "active"
	ChallengeStatusPassed  ChallengeStatus = "passed"
	ChallengeStatusFailed  ChallengeStatus = "failed"
	ChallengeStatusExpired ChallengeStatus = "expired"
)

// Terminal reports whether the status is a final state
func (s ChallengeStatus) Terminal() bool {
	return s != ChallengeStatusActive
}

// VoteChoice represents a member's vote on a challenge
type VoteChoice string

const (
	VoteFor     VoteChoice = "for"
	VoteAgainst VoteChoice = "against"
)

// IsValidVoteChoice checks if a vote choice is known
func IsValidVoteChoice(v VoteChoice) bool {
	return v == VoteFor || v == VoteAgainst
}

// Caller is the explicit caller identity threaded through every engine
// operation. It is supplied by the external auth layer per request; the
// engine never reads identity from ambient state.
type Caller struct {
	PlayerID string
	// Trusted marks calls made by the game server itself (API key auth)
	// rather than a player session. Trusted callers may act on behalf of
	// other players for administrative operations.
	Trusted bool
}

const (
	// ChallengeVotingWindow is how long a challenge accepts votes
	ChallengeVotingWindow = time.Hour
	// DefaultTargetLockTTL is the lifetime of a targeting relation
	DefaultTargetLockTTL = 24 * time.Hour
)

// DailyRewardSchedule is the 7-day cyclical login reward, indexed by
// (consecutiveDays-1) mod 7.
var DailyRewardSchedule = [7]int64{10, 15, 20, 25, 35, 40, 50}

// DailyRewardAmount returns the reward for the given consecutive-day streak.
// Day 8 wraps back to the start of the cycle.
func DailyRewardAmount(consecutiveDays int) int64 {
	if consecutiveDays < 1 {
		consecutiveDays = 1
	}
	return DailyRewardSchedule[(consecutiveDays-1)%7]
}

// VotesNeeded computes the majority threshold for a squad: ceil(memberCount/2).
// A squad always needs at least one vote.
func VotesNeeded(memberCount int) int {
	if memberCount < 1 {
		return 1
	}
	return (memberCount + 1) / 2
}

// DateOf normalizes a timestamp to its calendar day at midnight UTC.
// Claim dates and judge dates compare by day, never by clock time.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
