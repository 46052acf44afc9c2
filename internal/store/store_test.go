package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squadplay/squad-engine/internal/domain"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestAward creates a credit input for a player
func buildTestAward(playerID, squadID string, amount int64) AwardStarsInput {
	return AwardStarsInput{
		PlayerID: playerID,
		SquadID:  squadID,
		Amount:   amount,
		Kind:     domain.TransactionKindEarn,
		Source:   domain.SourceEventReward,
	}
}

// buildTestGrant creates a grant input expiring in the future
func buildTestGrant(powerType domain.PowerType, ownerID, squadID string, expiresAt time.Time) CreateGrantInput {
	return CreateGrantInput{
		Type:      powerType,
		OwnerID:   ownerID,
		SquadID:   squadID,
		ExpiresAt: expiresAt,
	}
}

// buildTestChallenge creates a challenge input with a one-hour voting window
func buildTestChallenge(challengerID, targetID, squadID string, kind domain.ChallengeKind, votesNeeded int, now time.Time) CreateChallengeInput {
	return CreateChallengeInput{
		ChallengerID: challengerID,
		TargetID:     targetID,
		SquadID:      squadID,
		Kind:         kind,
		VotesNeeded:  votesNeeded,
		ExpiresAt:    now.Add(domain.ChallengeVotingWindow),
	}
}

// =============================================================================
// Test: AwardStars / GetBalance
// =============================================================================

func testAwardStars(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("first award creates the balance", func(t *testing.T) {
		txn, err := store.AwardStars(ctx, buildTestAward("alice", "squad-1", 25))
		require.NoError(t, err)
		require.NotNil(t, txn)
		assert.Equal(t, int64(25), txn.Amount)
		assert.Equal(t, int64(25), txn.BalanceAfter)
		assert.NotEmpty(t, txn.TxRef)

		balance, err := store.GetBalance(ctx, "alice", "squad-1")
		require.NoError(t, err)
		require.NotNil(t, balance)
		assert.Equal(t, int64(25), balance.Balance)
		assert.Equal(t, int64(25), balance.LifetimeEarned)
	})

	t.Run("second award accumulates", func(t *testing.T) {
		_, err := store.AwardStars(ctx, buildTestAward("bob", "squad-1", 10))
		require.NoError(t, err)

		txn, err := store.AwardStars(ctx, buildTestAward("bob", "squad-1", 15))
		require.NoError(t, err)
		assert.Equal(t, int64(25), txn.BalanceAfter)

		balance, err := store.GetBalance(ctx, "bob", "squad-1")
		require.NoError(t, err)
		assert.Equal(t, int64(25), balance.Balance)
		assert.Equal(t, int64(25), balance.LifetimeEarned)
	})

	t.Run("balances are scoped per squad", func(t *testing.T) {
		_, err := store.AwardStars(ctx, buildTestAward("carol", "squad-1", 10))
		require.NoError(t, err)
		_, err = store.AwardStars(ctx, buildTestAward("carol", "squad-2", 40))
		require.NoError(t, err)

		b1, err := store.GetBalance(ctx, "carol", "squad-1")
		require.NoError(t, err)
		assert.Equal(t, int64(10), b1.Balance)

		b2, err := store.GetBalance(ctx, "carol", "squad-2")
		require.NoError(t, err)
		assert.Equal(t, int64(40), b2.Balance)
	})

	t.Run("missing balance reads as nil", func(t *testing.T) {
		balance, err := store.GetBalance(ctx, "nobody", "squad-1")
		require.NoError(t, err)
		assert.Nil(t, balance)
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		_, err := store.AwardStars(ctx, buildTestAward("alice", "squad-1", 0))
		require.Error(t, err)
		_, err = store.AwardStars(ctx, buildTestAward("alice", "squad-1", -5))
		require.Error(t, err)
	})
}

// =============================================================================
// Test: SpendStars
// =============================================================================

func testSpendStars(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("sufficient balance debits and records the entry", func(t *testing.T) {
		_, err := store.AwardStars(ctx, buildTestAward("alice", "squad-1", 100))
		require.NoError(t, err)

		result, err := store.SpendStars(ctx, SpendStarsInput{
			PlayerID: "alice",
			SquadID:  "squad-1",
			Amount:   30,
			Source:   domain.SourcePowerCost,
		})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, int64(70), result.Balance)
		require.NotNil(t, result.Transaction)
		assert.Equal(t, int64(-30), result.Transaction.Amount)
		assert.Equal(t, int64(70), result.Transaction.BalanceAfter)
		assert.Equal(t, domain.TransactionKindSpend, result.Transaction.Kind)

		// Spending never touches lifetime earnings
		balance, err := store.GetBalance(ctx, "alice", "squad-1")
		require.NoError(t, err)
		assert.Equal(t, int64(100), balance.LifetimeEarned)
	})

	t.Run("insufficient balance declines without writing", func(t *testing.T) {
		_, err := store.AwardStars(ctx, buildTestAward("bob", "squad-1", 20))
		require.NoError(t, err)

		result, err := store.SpendStars(ctx, SpendStarsInput{
			PlayerID: "bob",
			SquadID:  "squad-1",
			Amount:   21,
			Source:   domain.SourcePowerCost,
		})
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, int64(20), result.Balance)
		assert.Nil(t, result.Transaction)

		// No ledger entry for the declined spend
		txns, total, err := store.ListTransactions(ctx, "bob", "squad-1", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		assert.Len(t, txns, 1)
	})

	t.Run("spending the exact balance drains it to zero", func(t *testing.T) {
		_, err := store.AwardStars(ctx, buildTestAward("carol", "squad-1", 50))
		require.NoError(t, err)

		result, err := store.SpendStars(ctx, SpendStarsInput{
			PlayerID: "carol",
			SquadID:  "squad-1",
			Amount:   50,
			Source:   domain.SourcePowerCost,
		})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, int64(0), result.Balance)
	})

	t.Run("spend with no balance record declines", func(t *testing.T) {
		result, err := store.SpendStars(ctx, SpendStarsInput{
			PlayerID: "nobody",
			SquadID:  "squad-1",
			Amount:   1,
			Source:   domain.SourcePowerCost,
		})
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, int64(0), result.Balance)
	})
}

// =============================================================================
// Test: ListTransactions
// =============================================================================

func testListTransactions(t *testing.T, store Store) {
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.AwardStars(ctx, buildTestAward("alice", "squad-1", int64(10+i)))
		require.NoError(t, err)
	}

	t.Run("newest first with pagination", func(t *testing.T) {
		txns, total, err := store.ListTransactions(ctx, "alice", "squad-1", 2, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(5), total)
		require.Len(t, txns, 2)
		assert.Equal(t, int64(14), txns[0].Amount)
		assert.Equal(t, int64(13), txns[1].Amount)

		txns, _, err = store.ListTransactions(ctx, "alice", "squad-1", 2, 4)
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Equal(t, int64(10), txns[0].Amount)
	})

	t.Run("other players see nothing", func(t *testing.T) {
		txns, total, err := store.ListTransactions(ctx, "bob", "squad-1", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), total)
		assert.Empty(t, txns)
	})
}

// =============================================================================
// Test: ClaimDailyLogin
// =============================================================================

func testClaimDailyLogin(t *testing.T, store Store) {
	ctx := context.Background()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("first claim writes the claim and credits the reward", func(t *testing.T) {
		result, err := store.ClaimDailyLogin(ctx, ClaimDailyLoginInput{
			PlayerID:        "alice",
			SquadID:         "squad-1",
			ClaimDate:       day,
			ConsecutiveDays: 1,
			Amount:          10,
		})
		require.NoError(t, err)
		assert.False(t, result.AlreadyClaimed)
		require.NotNil(t, result.Claim)
		require.NotNil(t, result.Transaction)
		assert.Equal(t, int64(10), result.Transaction.Amount)
		assert.Equal(t, domain.SourceDailyLogin, result.Transaction.Source)

		balance, err := store.GetBalance(ctx, "alice", "squad-1")
		require.NoError(t, err)
		assert.Equal(t, int64(10), balance.Balance)
	})

	t.Run("duplicate claim for the same day writes nothing", func(t *testing.T) {
		_, err := store.ClaimDailyLogin(ctx, ClaimDailyLoginInput{
			PlayerID: "bob", SquadID: "squad-1", ClaimDate: day, ConsecutiveDays: 1, Amount: 10,
		})
		require.NoError(t, err)

		result, err := store.ClaimDailyLogin(ctx, ClaimDailyLoginInput{
			PlayerID: "bob", SquadID: "squad-1", ClaimDate: day, ConsecutiveDays: 1, Amount: 10,
		})
		require.NoError(t, err)
		assert.True(t, result.AlreadyClaimed)
		assert.Nil(t, result.Transaction)

		balance, err := store.GetBalance(ctx, "bob", "squad-1")
		require.NoError(t, err)
		assert.Equal(t, int64(10), balance.Balance)
	})

	t.Run("latest claim reflects the newest day", func(t *testing.T) {
		_, err := store.ClaimDailyLogin(ctx, ClaimDailyLoginInput{
			PlayerID: "carol", SquadID: "squad-1", ClaimDate: day, ConsecutiveDays: 1, Amount: 10,
		})
		require.NoError(t, err)
		_, err = store.ClaimDailyLogin(ctx, ClaimDailyLoginInput{
			PlayerID: "carol", SquadID: "squad-1", ClaimDate: day.AddDate(0, 0, 1), ConsecutiveDays: 2, Amount: 15,
		})
		require.NoError(t, err)

		latest, err := store.GetLatestDailyLoginClaim(ctx, "carol", "squad-1")
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, 2, latest.ConsecutiveDays)
		assert.Equal(t, int64(15), latest.Amount)
	})

	t.Run("no claims reads as nil", func(t *testing.T) {
		latest, err := store.GetLatestDailyLoginClaim(ctx, "nobody", "squad-1")
		require.NoError(t, err)
		assert.Nil(t, latest)
	})
}

// =============================================================================
// Test: Grants
// =============================================================================

func testGrants(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("create and fetch", func(t *testing.T) {
		grant, err := store.CreateGrant(ctx, buildTestGrant(domain.PowerTypeDoubleChance, "alice", "squad-1", now.Add(time.Hour)))
		require.NoError(t, err)
		require.NotZero(t, grant.ID)

		fetched, err := store.GetGrantByID(ctx, grant.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, domain.PowerTypeDoubleChance, fetched.Type)
		assert.Equal(t, "alice", fetched.OwnerID)
		assert.Nil(t, fetched.ConsumedAt)
		assert.Nil(t, fetched.CancelledAt)
	})

	t.Run("missing grant reads as nil", func(t *testing.T) {
		fetched, err := store.GetGrantByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, fetched)
	})

	t.Run("active list excludes consumed, cancelled, and expired", func(t *testing.T) {
		live, err := store.CreateGrant(ctx, buildTestGrant(domain.PowerTypeChaosCard, "bob", "squad-1", now.Add(time.Hour)))
		require.NoError(t, err)

		consumed, err := store.CreateGrant(ctx, buildTestGrant(domain.PowerTypeDoubleChance, "bob", "squad-1", now.Add(time.Hour)))
		require.NoError(t, err)
		_, err = store.ConsumeGrant(ctx, ConsumeGrantInput{GrantID: consumed.ID, CallerID: "bob", Now: now})
		require.NoError(t, err)

		cancelled, err := store.CreateGrant(ctx, buildTestGrant(domain.PowerTypeStreakShield, "bob", "squad-1", now.Add(time.Hour)))
		require.NoError(t, err)
		_, err = store.CancelGrant(ctx, cancelled.ID, "admin", "revoked", now)
		require.NoError(t, err)

		_, err = store.CreateGrant(ctx, buildTestGrant(domain.PowerTypeTargetLock, "bob", "squad-1", now.Add(-time.Minute)))
		require.NoError(t, err)

		grants, err := store.ListActiveGrants(ctx, "bob", "squad-1", now)
		require.NoError(t, err)
		require.Len(t, grants, 1)
		assert.Equal(t, live.ID, grants[0].ID)
	})
}

// =============================================================================
// Test: ConsumeGrant
// =============================================================================

func testConsumeGrant(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("successful consumption marks the grant used", func(t *testing.T) {
		grant, err := store.CreateGrant(ctx, buildTestGrant(domain.PowerTypeDoubleChance, "alice", "squad-1", now.Add(time.Hour)))
		require.NoError(t, err)

		result, err := store.ConsumeGrant(ctx, ConsumeGrantInput{GrantID: grant.ID, CallerID: "alice", Now: now})
		require.NoError(t, err)
		require.NotNil(t, result.Grant)
		require.NotNil(t, result.Grant.ConsumedAt)
		assert.Nil(t, result.Target)
	})

	t.Run("second consumption declines as already used", func(t *testing.T) {
		grant, err := store.CreateGrant(ctx, buildTestGrant(domain.PowerTypeDoubleChance, "alice", "squad-1", now.Add(time.Hour)))
		require.NoError(t, err)

		_, err = store.ConsumeGrant(ctx, ConsumeGrantInput{GrantID: grant.ID, CallerID: "alice", Now: now})
		require.NoError(t, err)

		_, err = store.ConsumeGrant(ctx, ConsumeGrantInput{GrantID: grant.ID, CallerID: "alice", Now: now})
		require.ErrorIs(t, err, domain.ErrGrantAlreadyUsed)
		assert.True(t, domain.IsDecline(err))
	})

	t.Run("wrong owner declines", func(t *testing.T) {
		grant, err := store.CreateGrant(ctx, buildTestGrant(domain.PowerTypeDoubleChance, "alice", "squad-1", now.Add(time.Hour)))
		require.NoError(t, err)

		_, err = store.ConsumeGrant(ctx, ConsumeGrantInput{GrantID: grant.ID, CallerID: "mallory", Now: now})
		require.ErrorIs(t, err, domain.ErrGrantNotOwned)
	})

	t.Run("expired grant declines", func(t *testing.T) {
		grant, err := store.CreateGrant(ctx, buildTestGrant(domain.PowerTypeDoubleChance, "alice", "squad-1", now.Add(-time.Minute)))
		require.NoError(t, err)

		_, err = store.ConsumeGrant(ctx, ConsumeGrantInput{GrantID: grant.ID, CallerID: "alice", Now: now})
		require.ErrorIs(t, err, domain.ErrGrantExpired)
	})

	t.Run("cancelled grant declines", func(t *testing.T) {
		grant, err := store.CreateGrant(ctx, buildTestGrant(domain.PowerTypeDoubleChance, "alice", "squad-1", now.Add(time.Hour)))
		require.NoError(t, err)
		_, err = store.CancelGrant(ctx, grant.ID, "judge", "overturned", now)
		require.NoError(t, err)

		_, err = store.ConsumeGrant(ctx, ConsumeGrantInput{GrantID: grant.ID, CallerID: "alice", Now: now})
		require.ErrorIs(t, err, domain.ErrGrantCancelled)
	})

	t.Run("missing grant declines", func(t *testing.T) {
		_, err := store.ConsumeGrant(ctx, ConsumeGrantInput{GrantID: 999999, CallerID: "alice", Now: now})
		require.ErrorIs(t, err, domain.ErrGrantNotFound)
	})
}

// =============================================================================
// Test: Target lock
// =============================================================================

func testTargetLock(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	consumeTargetLock := func(t *testing.T, owner, target string) *ConsumeGrantResult {
		grant, err := store.CreateGrant(ctx, buildTestGrant(domain.PowerTypeTargetLock, owner, "squad-1", now.Add(time.Hour)))
		require.NoError(t, err)
		result, err := store.ConsumeGrant(ctx, ConsumeGrantInput{
			GrantID:  grant.ID,
			CallerID: owner,
			Now:      now,
			Target:   &CreateTargetInput{TargetID: target, TTL: domain.DefaultTargetLockTTL},
		})
		require.NoError(t, err)
		return result
	}

	t.Run("consumption creates the targeting relation", func(t *testing.T) {
		result := consumeTargetLock(t, "alice", "victor")
		require.NotNil(t, result.Target)
		assert.Equal(t, "victor", result.Target.TargetID)

		targeted, err := store.IsTargeted(ctx, "victor", "squad-1", now)
		require.NoError(t, err)
		assert.True(t, targeted)

		active, err := store.GetActiveTargetByTargeter(ctx, "alice", "squad-1", now)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, "victor", active.TargetID)
	})

	t.Run("relation lives until the TTL boundary", func(t *testing.T) {
		consumeTargetLock(t, "bob", "victor")

		targeted, err := store.IsTargeted(ctx, "victor", "squad-1", now.Add(23*time.Hour+59*time.Minute))
		require.NoError(t, err)
		assert.True(t, targeted)

		targeted, err = store.IsTargeted(ctx, "victor", "squad-1", now.Add(24*time.Hour+time.Minute))
		require.NoError(t, err)
		assert.False(t, targeted)
	})

	t.Run("a new lock replaces the targeter's previous relation", func(t *testing.T) {
		consumeTargetLock(t, "carol", "victor")
		consumeTargetLock(t, "carol", "wendy")

		active, err := store.GetActiveTargetByTargeter(ctx, "carol", "squad-1", now)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, "wendy", active.TargetID)

		targeted, err := store.IsTargeted(ctx, "victor", "squad-1", now)
		require.NoError(t, err)
		assert.False(t, targeted)
	})

	t.Run("sweeping removes only dead relations", func(t *testing.T) {
		consumeTargetLock(t, "dave", "victor")

		removed, err := store.DeleteExpiredTargets(ctx, now, 100)
		require.NoError(t, err)
		assert.Zero(t, removed)

		removed, err = store.DeleteExpiredTargets(ctx, now.Add(25*time.Hour), 100)
		require.NoError(t, err)
		assert.Positive(t, removed)

		active, err := store.GetActiveTargetByTargeter(ctx, "dave", "squad-1", now)
		require.NoError(t, err)
		assert.Nil(t, active)
	})
}

// =============================================================================
// Test: CancelGrant
// =============================================================================

func testCancelGrant(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("cancellation records who and why", func(t *testing.T) {
		grant, err := store.CreateGrant(ctx, buildTestGrant(domain.PowerTypeChaosCard, "alice", "squad-1", now.Add(time.Hour)))
		require.NoError(t, err)

		performed, err := store.CancelGrant(ctx, grant.ID, "bob", "overturned by vote", now)
		require.NoError(t, err)
		assert.True(t, performed)

		fetched, err := store.GetGrantByID(ctx, grant.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched.CancelledAt)
		require.NotNil(t, fetched.CancelledBy)
		assert.Equal(t, "bob", *fetched.CancelledBy)
		require.NotNil(t, fetched.CancelReason)
		assert.Equal(t, "overturned by vote", *fetched.CancelReason)
	})

	t.Run("repeated cancellation is a no-op", func(t *testing.T) {
		grant, err := store.CreateGrant(ctx, buildTestGrant(domain.PowerTypeChaosCard, "alice", "squad-1", now.Add(time.Hour)))
		require.NoError(t, err)

		performed, err := store.CancelGrant(ctx, grant.ID, "bob", "first", now)
		require.NoError(t, err)
		assert.True(t, performed)

		performed, err = store.CancelGrant(ctx, grant.ID, "carol", "second", now)
		require.NoError(t, err)
		assert.False(t, performed)

		fetched, err := store.GetGrantByID(ctx, grant.ID)
		require.NoError(t, err)
		assert.Equal(t, "bob", *fetched.CancelledBy)
	})

	t.Run("a consumed grant can still be cancelled", func(t *testing.T) {
		grant, err := store.CreateGrant(ctx, buildTestGrant(domain.PowerTypeDoubleChance, "alice", "squad-1", now.Add(time.Hour)))
		require.NoError(t, err)
		_, err = store.ConsumeGrant(ctx, ConsumeGrantInput{GrantID: grant.ID, CallerID: "alice", Now: now})
		require.NoError(t, err)

		performed, err := store.CancelGrant(ctx, grant.ID, "bob", "overturned by vote", now)
		require.NoError(t, err)
		assert.True(t, performed)
	})

	t.Run("cancelling a target lock removes its relation", func(t *testing.T) {
		grant, err := store.CreateGrant(ctx, buildTestGrant(domain.PowerTypeTargetLock, "erin", "squad-1", now.Add(time.Hour)))
		require.NoError(t, err)
		_, err = store.ConsumeGrant(ctx, ConsumeGrantInput{
			GrantID:  grant.ID,
			CallerID: "erin",
			Now:      now,
			Target:   &CreateTargetInput{TargetID: "victor", TTL: domain.DefaultTargetLockTTL},
		})
		require.NoError(t, err)

		_, err = store.CancelGrant(ctx, grant.ID, "bob", "overturned by vote", now)
		require.NoError(t, err)

		active, err := store.GetActiveTargetByTargeter(ctx, "erin", "squad-1", now)
		require.NoError(t, err)
		assert.Nil(t, active)
	})

	t.Run("missing grant declines", func(t *testing.T) {
		_, err := store.CancelGrant(ctx, 999999, "bob", "nope", now)
		require.ErrorIs(t, err, domain.ErrGrantNotFound)
	})
}

// =============================================================================
// Test: Challenges
// =============================================================================

func testCreateChallenge(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("creation counts the challenger's auto-vote", func(t *testing.T) {
		challenge, err := store.CreateChallenge(ctx, buildTestChallenge("alice", "judge-1", "squad-1", domain.ChallengeKindJudgeDecision, 3, now))
		require.NoError(t, err)
		assert.Equal(t, domain.ChallengeStatusActive, challenge.Status)
		assert.Equal(t, 1, challenge.VotesFor)
		assert.Equal(t, 0, challenge.VotesAgainst)
		assert.Equal(t, 3, challenge.VotesNeeded)

		// The auto-vote blocks a second vote from the challenger
		_, err = store.CastVote(ctx, challenge.ID, "alice", domain.VoteFor)
		require.ErrorIs(t, err, domain.ErrAlreadyVoted)
	})

	t.Run("missing challenge reads as nil", func(t *testing.T) {
		fetched, err := store.GetChallengeByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, fetched)
	})
}

func testCastVote(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("votes increment the matching counter", func(t *testing.T) {
		challenge, err := store.CreateChallenge(ctx, buildTestChallenge("alice", "judge-1", "squad-1", domain.ChallengeKindJudgeDecision, 3, now))
		require.NoError(t, err)

		updated, err := store.CastVote(ctx, challenge.ID, "bob", domain.VoteFor)
		require.NoError(t, err)
		assert.Equal(t, 2, updated.VotesFor)
		assert.Equal(t, 0, updated.VotesAgainst)

		updated, err = store.CastVote(ctx, challenge.ID, "carol", domain.VoteAgainst)
		require.NoError(t, err)
		assert.Equal(t, 2, updated.VotesFor)
		assert.Equal(t, 1, updated.VotesAgainst)
	})

	t.Run("duplicate vote declines and counts nothing", func(t *testing.T) {
		challenge, err := store.CreateChallenge(ctx, buildTestChallenge("alice", "judge-1", "squad-1", domain.ChallengeKindJudgeDecision, 3, now))
		require.NoError(t, err)

		_, err = store.CastVote(ctx, challenge.ID, "bob", domain.VoteFor)
		require.NoError(t, err)

		_, err = store.CastVote(ctx, challenge.ID, "bob", domain.VoteAgainst)
		require.ErrorIs(t, err, domain.ErrAlreadyVoted)
		assert.True(t, domain.IsDecline(err))

		fetched, err := store.GetChallengeByID(ctx, challenge.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, fetched.VotesFor)
		assert.Equal(t, 0, fetched.VotesAgainst)
	})

	t.Run("voting on a resolved challenge declines", func(t *testing.T) {
		challenge, err := store.CreateChallenge(ctx, buildTestChallenge("alice", "judge-1", "squad-1", domain.ChallengeKindJudgeDecision, 1, now))
		require.NoError(t, err)

		performed, err := store.ResolveChallenge(ctx, challenge.ID, domain.ChallengeStatusPassed, now)
		require.NoError(t, err)
		require.True(t, performed)

		_, err = store.CastVote(ctx, challenge.ID, "bob", domain.VoteFor)
		require.ErrorIs(t, err, domain.ErrChallengeNotActive)
	})

	t.Run("voting on a missing challenge declines", func(t *testing.T) {
		_, err := store.CastVote(ctx, 999999, "bob", domain.VoteFor)
		require.ErrorIs(t, err, domain.ErrChallengeNotFound)
	})
}

func testResolveChallenge(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("below threshold does not transition", func(t *testing.T) {
		challenge, err := store.CreateChallenge(ctx, buildTestChallenge("alice", "judge-1", "squad-1", domain.ChallengeKindJudgeDecision, 3, now))
		require.NoError(t, err)

		performed, err := store.ResolveChallenge(ctx, challenge.ID, domain.ChallengeStatusPassed, now)
		require.NoError(t, err)
		assert.False(t, performed)

		fetched, err := store.GetChallengeByID(ctx, challenge.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ChallengeStatusActive, fetched.Status)
	})

	t.Run("exactly one resolution wins", func(t *testing.T) {
		challenge, err := store.CreateChallenge(ctx, buildTestChallenge("alice", "judge-1", "squad-1", domain.ChallengeKindJudgeDecision, 2, now))
		require.NoError(t, err)
		_, err = store.CastVote(ctx, challenge.ID, "bob", domain.VoteFor)
		require.NoError(t, err)

		performed, err := store.ResolveChallenge(ctx, challenge.ID, domain.ChallengeStatusPassed, now)
		require.NoError(t, err)
		assert.True(t, performed)

		performed, err = store.ResolveChallenge(ctx, challenge.ID, domain.ChallengeStatusPassed, now)
		require.NoError(t, err)
		assert.False(t, performed)

		fetched, err := store.GetChallengeByID(ctx, challenge.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ChallengeStatusPassed, fetched.Status)
		require.NotNil(t, fetched.ResolvedAt)
	})

	t.Run("failure requires the against threshold", func(t *testing.T) {
		challenge, err := store.CreateChallenge(ctx, buildTestChallenge("alice", "judge-1", "squad-1", domain.ChallengeKindJudgeDecision, 2, now))
		require.NoError(t, err)
		_, err = store.CastVote(ctx, challenge.ID, "bob", domain.VoteAgainst)
		require.NoError(t, err)

		performed, err := store.ResolveChallenge(ctx, challenge.ID, domain.ChallengeStatusFailed, now)
		require.NoError(t, err)
		assert.False(t, performed)

		_, err = store.CastVote(ctx, challenge.ID, "carol", domain.VoteAgainst)
		require.NoError(t, err)

		performed, err = store.ResolveChallenge(ctx, challenge.ID, domain.ChallengeStatusFailed, now)
		require.NoError(t, err)
		assert.True(t, performed)
	})

	t.Run("only passed and failed are valid outcomes", func(t *testing.T) {
		challenge, err := store.CreateChallenge(ctx, buildTestChallenge("alice", "judge-1", "squad-1", domain.ChallengeKindJudgeDecision, 1, now))
		require.NoError(t, err)

		_, err = store.ResolveChallenge(ctx, challenge.ID, domain.ChallengeStatusExpired, now)
		require.Error(t, err)
	})
}

func testExpireChallenge(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("expiry only past the deadline", func(t *testing.T) {
		challenge, err := store.CreateChallenge(ctx, buildTestChallenge("alice", "judge-1", "squad-1", domain.ChallengeKindJudgeDecision, 3, now))
		require.NoError(t, err)

		performed, err := store.ExpireChallenge(ctx, challenge.ID, now.Add(30*time.Minute))
		require.NoError(t, err)
		assert.False(t, performed)

		performed, err = store.ExpireChallenge(ctx, challenge.ID, now.Add(domain.ChallengeVotingWindow+time.Minute))
		require.NoError(t, err)
		assert.True(t, performed)

		// Idempotent on repeat
		performed, err = store.ExpireChallenge(ctx, challenge.ID, now.Add(2*domain.ChallengeVotingWindow))
		require.NoError(t, err)
		assert.False(t, performed)

		fetched, err := store.GetChallengeByID(ctx, challenge.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ChallengeStatusExpired, fetched.Status)
	})

	t.Run("expirable listing skips live and resolved challenges", func(t *testing.T) {
		stale, err := store.CreateChallenge(ctx, buildTestChallenge("bob", "judge-1", "squad-2", domain.ChallengeKindJudgeDecision, 3, now.Add(-2*time.Hour)))
		require.NoError(t, err)
		_, err = store.CreateChallenge(ctx, buildTestChallenge("carol", "judge-1", "squad-2", domain.ChallengeKindJudgeDecision, 3, now))
		require.NoError(t, err)

		expirable, err := store.ListExpirableChallenges(ctx, now, 100)
		require.NoError(t, err)
		ids := make([]int64, 0, len(expirable))
		for _, c := range expirable {
			ids = append(ids, c.ID)
		}
		assert.Contains(t, ids, stale.ID)
		assert.Len(t, expirable, 1)
	})
}

func testListChallenges(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	first, err := store.CreateChallenge(ctx, buildTestChallenge("alice", "judge-1", "squad-1", domain.ChallengeKindJudgeDecision, 1, now))
	require.NoError(t, err)
	second, err := store.CreateChallenge(ctx, buildTestChallenge("bob", "judge-1", "squad-1", domain.ChallengeKindPowerActivation, 2, now))
	require.NoError(t, err)

	performed, err := store.ResolveChallenge(ctx, first.ID, domain.ChallengeStatusPassed, now)
	require.NoError(t, err)
	require.True(t, performed)

	t.Run("newest first", func(t *testing.T) {
		challenges, total, err := store.ListChallenges(ctx, "squad-1", nil, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, challenges, 2)
		assert.Equal(t, second.ID, challenges[0].ID)
	})

	t.Run("status filter", func(t *testing.T) {
		active := domain.ChallengeStatusActive
		challenges, total, err := store.ListChallenges(ctx, "squad-1", &active, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, challenges, 1)
		assert.Equal(t, second.ID, challenges[0].ID)
	})
}

// =============================================================================
// Test: Judge assignments
// =============================================================================

func testJudgeAssignment(t *testing.T, store Store) {
	ctx := context.Background()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("one judge per squad per day", func(t *testing.T) {
		assignment, err := store.CreateJudgeAssignment(ctx, "squad-1", "alice", day)
		require.NoError(t, err)
		assert.Equal(t, "alice", assignment.UserID)

		_, err = store.CreateJudgeAssignment(ctx, "squad-1", "bob", day)
		require.ErrorIs(t, err, domain.ErrJudgeAlreadyAssigned)

		// Different day and different squad are fine
		_, err = store.CreateJudgeAssignment(ctx, "squad-1", "bob", day.AddDate(0, 0, 1))
		require.NoError(t, err)
		_, err = store.CreateJudgeAssignment(ctx, "squad-2", "bob", day)
		require.NoError(t, err)
	})

	t.Run("fetch by squad and day", func(t *testing.T) {
		_, err := store.CreateJudgeAssignment(ctx, "squad-3", "carol", day)
		require.NoError(t, err)

		fetched, err := store.GetJudgeAssignment(ctx, "squad-3", day)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, "carol", fetched.UserID)

		fetched, err = store.GetJudgeAssignment(ctx, "squad-3", day.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Nil(t, fetched)
	})
}

func testJudgeBonusAndPenalty(t *testing.T, store Store) {
	ctx := context.Background()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("bonus credits the judge's ledger", func(t *testing.T) {
		assignment, err := store.CreateJudgeAssignment(ctx, "squad-1", "alice", day)
		require.NoError(t, err)

		txn, err := store.ApplyJudgeBonus(ctx, assignment.ID, 20)
		require.NoError(t, err)
		require.NotNil(t, txn)
		assert.Equal(t, int64(20), txn.Amount)
		assert.Equal(t, domain.TransactionKindBonus, txn.Kind)
		assert.Equal(t, domain.SourceJudgeBonus, txn.Source)

		fetched, err := store.GetJudgeAssignment(ctx, "squad-1", day)
		require.NoError(t, err)
		assert.Equal(t, int64(20), fetched.BonusEarned)

		balance, err := store.GetBalance(ctx, "alice", "squad-1")
		require.NoError(t, err)
		assert.Equal(t, int64(20), balance.Balance)
	})

	t.Run("penalty debits and marks overturned", func(t *testing.T) {
		assignment, err := store.CreateJudgeAssignment(ctx, "squad-2", "bob", day)
		require.NoError(t, err)
		_, err = store.AwardStars(ctx, buildTestAward("bob", "squad-2", 50))
		require.NoError(t, err)

		txn, err := store.ApplyJudgePenalty(ctx, assignment.ID, 30)
		require.NoError(t, err)
		require.NotNil(t, txn)
		assert.Equal(t, int64(-30), txn.Amount)
		assert.Equal(t, domain.SourceJudgePenalty, txn.Source)

		fetched, err := store.GetJudgeAssignment(ctx, "squad-2", day)
		require.NoError(t, err)
		assert.Equal(t, int64(30), fetched.PenaltyApplied)
		assert.True(t, fetched.IsOverturned)

		balance, err := store.GetBalance(ctx, "bob", "squad-2")
		require.NoError(t, err)
		assert.Equal(t, int64(20), balance.Balance)
	})

	t.Run("penalty is clamped at the available balance", func(t *testing.T) {
		assignment, err := store.CreateJudgeAssignment(ctx, "squad-3", "carol", day)
		require.NoError(t, err)
		_, err = store.AwardStars(ctx, buildTestAward("carol", "squad-3", 10))
		require.NoError(t, err)

		txn, err := store.ApplyJudgePenalty(ctx, assignment.ID, 25)
		require.NoError(t, err)
		require.NotNil(t, txn)
		assert.Equal(t, int64(-10), txn.Amount)
		assert.Equal(t, int64(0), txn.BalanceAfter)

		balance, err := store.GetBalance(ctx, "carol", "squad-3")
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance.Balance)

		// The assignment still records the full requested penalty
		fetched, err := store.GetJudgeAssignment(ctx, "squad-3", day)
		require.NoError(t, err)
		assert.Equal(t, int64(25), fetched.PenaltyApplied)
	})

	t.Run("penalty with no balance still marks overturned", func(t *testing.T) {
		assignment, err := store.CreateJudgeAssignment(ctx, "squad-4", "dave", day)
		require.NoError(t, err)

		txn, err := store.ApplyJudgePenalty(ctx, assignment.ID, 25)
		require.NoError(t, err)
		assert.Nil(t, txn)

		fetched, err := store.GetJudgeAssignment(ctx, "squad-4", day)
		require.NoError(t, err)
		assert.True(t, fetched.IsOverturned)
	})

	t.Run("missing assignment declines", func(t *testing.T) {
		_, err := store.ApplyJudgeBonus(ctx, 999999, 10)
		require.ErrorIs(t, err, domain.ErrNoJudgeAssigned)
		_, err = store.ApplyJudgePenalty(ctx, 999999, 10)
		require.ErrorIs(t, err, domain.ErrNoJudgeAssigned)
	})
}

// =============================================================================
// Test Suite Runner
// =============================================================================

// RunStoreTests runs the complete store test suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"AwardStars", testAwardStars},
		{"SpendStars", testSpendStars},
		{"ListTransactions", testListTransactions},
		{"ClaimDailyLogin", testClaimDailyLogin},
		{"Grants", testGrants},
		{"ConsumeGrant", testConsumeGrant},
		{"TargetLock", testTargetLock},
		{"CancelGrant", testCancelGrant},
		{"CreateChallenge", testCreateChallenge},
		{"CastVote", testCastVote},
		{"ResolveChallenge", testResolveChallenge},
		{"ExpireChallenge", testExpireChallenge},
		{"ListChallenges", testListChallenges},
		{"JudgeAssignment", testJudgeAssignment},
		{"JudgeBonusAndPenalty", testJudgeBonusAndPenalty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
