package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/squadplay/squad-engine/internal/domain"
	"github.com/squadplay/squad-engine/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// RegisterReadReplica routes read queries to a replica via dbresolver.
// Writes (and everything inside transactions) stay on the primary.
func RegisterReadReplica(db *gorm.DB, readDSN string) error {
	return db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{postgres.Open(readDSN)},
	}))
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings
// into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// newTxRef generates a time-ordered ledger transaction reference
func newTxRef() string {
	return ulid.Make().String()
}

// GetBalance retrieves the star balance for a (player, squad) pair
func (s *pgStore) GetBalance(ctx context.Context, playerID, squadID string) (*schema.StarBalance, error) {
	var balance schema.StarBalance
	err := s.db.WithContext(ctx).
		Where("player_id = ? AND squad_id = ?", playerID, squadID).
		First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return &balance, nil
}

// AwardStars atomically credits a balance and appends the ledger entry.
// The upsert increments balance and lifetime_earned in a single statement so
// concurrent awards never lose updates; the returned row carries the
// post-update values, and the ledger insert happens in the same transaction
// while the upsert still holds the row lock.
func (s *pgStore) AwardStars(ctx context.Context, input AwardStarsInput) (*schema.StarTransaction, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("award amount must be positive, got %d", input.Amount)
	}

	var txn *schema.StarTransaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		txn, err = awardStarsTx(tx, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	return txn, nil
}

// awardStarsTx performs the credit inside an existing transaction
func awardStarsTx(tx *gorm.DB, input AwardStarsInput) (*schema.StarTransaction, error) {
	balance := schema.StarBalance{
		PlayerID:       input.PlayerID,
		SquadID:        input.SquadID,
		Balance:        input.Amount,
		LifetimeEarned: input.Amount,
	}

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "player_id"}, {Name: "squad_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"balance":         gorm.Expr("star_balances.balance + ?", input.Amount),
			"lifetime_earned": gorm.Expr("star_balances.lifetime_earned + ?", input.Amount),
			"updated_at":      gorm.Expr("now()"),
		}),
	}).Clauses(clause.Returning{}).Create(&balance).Error
	if err != nil {
		return nil, fmt.Errorf("failed to credit balance: %w", err)
	}

	txn := schema.StarTransaction{
		TxRef:        newTxRef(),
		PlayerID:     input.PlayerID,
		SquadID:      input.SquadID,
		Amount:       input.Amount,
		BalanceAfter: balance.Balance,
		Kind:         input.Kind,
		Source:       input.Source,
		ReferenceID:  input.ReferenceID,
		Metadata:     input.Metadata,
	}
	if err := tx.Create(&txn).Error; err != nil {
		return nil, fmt.Errorf("failed to append transaction: %w", err)
	}

	return &txn, nil
}

// SpendStars atomically checks balance >= amount and debits if so. The
// check-and-decrement is one conditional UPDATE; RowsAffected == 0 means the
// balance did not cover the amount and nothing was written.
func (s *pgStore) SpendStars(ctx context.Context, input SpendStarsInput) (*SpendStarsResult, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("spend amount must be positive, got %d", input.Amount)
	}

	var result SpendStarsResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&schema.StarBalance{}).
			Where("player_id = ? AND squad_id = ? AND balance >= ?", input.PlayerID, input.SquadID, input.Amount).
			Updates(map[string]interface{}{
				"balance":    gorm.Expr("balance - ?", input.Amount),
				"updated_at": gorm.Expr("now()"),
			})
		if res.Error != nil {
			return fmt.Errorf("failed to debit balance: %w", res.Error)
		}

		if res.RowsAffected == 0 {
			// Declined: report the unchanged balance
			var balance schema.StarBalance
			err := tx.Where("player_id = ? AND squad_id = ?", input.PlayerID, input.SquadID).First(&balance).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to read balance: %w", err)
			}
			result = SpendStarsResult{Success: false, Balance: balance.Balance}
			return nil
		}

		// The conditional update still holds the row lock; this read sees
		// the post-debit value.
		var balance schema.StarBalance
		if err := tx.Where("player_id = ? AND squad_id = ?", input.PlayerID, input.SquadID).First(&balance).Error; err != nil {
			return fmt.Errorf("failed to read balance after debit: %w", err)
		}

		txn := schema.StarTransaction{
			TxRef:        newTxRef(),
			PlayerID:     input.PlayerID,
			SquadID:      input.SquadID,
			Amount:       -input.Amount,
			BalanceAfter: balance.Balance,
			Kind:         domain.TransactionKindSpend,
			Source:       input.Source,
			ReferenceID:  input.ReferenceID,
			Metadata:     input.Metadata,
		}
		if err := tx.Create(&txn).Error; err != nil {
			return fmt.Errorf("failed to append transaction: %w", err)
		}

		result = SpendStarsResult{Success: true, Balance: balance.Balance, Transaction: &txn}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// ListTransactions retrieves the ledger history for a (player, squad) pair, newest first
func (s *pgStore) ListTransactions(ctx context.Context, playerID, squadID string, limit int, offset uint64) ([]schema.StarTransaction, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.StarTransaction{}).
		Where("player_id = ? AND squad_id = ?", playerID, squadID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	var txns []schema.StarTransaction
	err := query.Order("id DESC").Limit(limit).Offset(int(offset)).Find(&txns).Error //nolint:gosec,G115
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return txns, uint64(total), nil //nolint:gosec,G115
}

// GetLatestDailyLoginClaim retrieves the most recent claim for streak math
func (s *pgStore) GetLatestDailyLoginClaim(ctx context.Context, playerID, squadID string) (*schema.DailyLoginClaim, error) {
	var claim schema.DailyLoginClaim
	err := s.db.WithContext(ctx).
		Where("player_id = ? AND squad_id = ?", playerID, squadID).
		Order("claim_date DESC").
		First(&claim).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest daily login claim: %w", err)
	}
	return &claim, nil
}

// ClaimDailyLogin inserts the claim and credits the reward in one transaction.
// The unique (player, squad, claim_date) index makes the claim idempotent:
// a concurrent duplicate inserts nothing and is reported as AlreadyClaimed.
func (s *pgStore) ClaimDailyLogin(ctx context.Context, input ClaimDailyLoginInput) (*ClaimDailyLoginResult, error) {
	var result ClaimDailyLoginResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		claim := schema.DailyLoginClaim{
			PlayerID:        input.PlayerID,
			SquadID:         input.SquadID,
			ClaimDate:       input.ClaimDate,
			ConsecutiveDays: input.ConsecutiveDays,
			Amount:          input.Amount,
		}

		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "player_id"}, {Name: "squad_id"}, {Name: "claim_date"}},
			DoNothing: true,
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&claim).Error
		if err != nil {
			return fmt.Errorf("failed to insert daily login claim: %w", err)
		}

		// ID == 0 means the claim already existed for this day
		if claim.ID == 0 {
			result = ClaimDailyLoginResult{AlreadyClaimed: true}
			return nil
		}

		refID := fmt.Sprintf("daily_login_claim:%d", claim.ID)
		txn, err := awardStarsTx(tx, AwardStarsInput{
			PlayerID:    input.PlayerID,
			SquadID:     input.SquadID,
			Amount:      input.Amount,
			Kind:        domain.TransactionKindEarn,
			Source:      domain.SourceDailyLogin,
			ReferenceID: &refID,
		})
		if err != nil {
			return err
		}

		result = ClaimDailyLoginResult{Claim: &claim, Transaction: txn}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// CreateGrant issues a new power grant
func (s *pgStore) CreateGrant(ctx context.Context, input CreateGrantInput) (*schema.PowerGrant, error) {
	grant := schema.PowerGrant{
		Type:      input.Type,
		OwnerID:   input.OwnerID,
		SquadID:   input.SquadID,
		ExpiresAt: input.ExpiresAt,
		Metadata:  input.Metadata,
	}
	if err := s.db.WithContext(ctx).Create(&grant).Error; err != nil {
		return nil, fmt.Errorf("failed to create grant: %w", err)
	}
	return &grant, nil
}

// GetGrantByID retrieves a grant by id
func (s *pgStore) GetGrantByID(ctx context.Context, grantID int64) (*schema.PowerGrant, error) {
	var grant schema.PowerGrant
	err := s.db.WithContext(ctx).Where("id = ?", grantID).First(&grant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get grant: %w", err)
	}
	return &grant, nil
}

// ListActiveGrants retrieves the caller's usable grants
func (s *pgStore) ListActiveGrants(ctx context.Context, ownerID, squadID string, now time.Time) ([]schema.PowerGrant, error) {
	var grants []schema.PowerGrant
	err := s.db.WithContext(ctx).
		Where("owner_id = ? AND squad_id = ? AND consumed_at IS NULL AND cancelled_at IS NULL AND expires_at > ?",
			ownerID, squadID, now).
		Order("expires_at ASC").
		Find(&grants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active grants: %w", err)
	}
	return grants, nil
}

// ConsumeGrant marks a grant used via a single conditional write:
// "set consumed_at where consumed_at is null". Two concurrent consumption
// attempts can never both succeed; the loser's zero-row update is diagnosed
// into the precise domain decline.
func (s *pgStore) ConsumeGrant(ctx context.Context, input ConsumeGrantInput) (*ConsumeGrantResult, error) {
	var result ConsumeGrantResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"consumed_at": input.Now}
		if input.Metadata != nil {
			updates["metadata"] = input.Metadata
		}

		res := tx.Model(&schema.PowerGrant{}).
			Where("id = ? AND owner_id = ? AND consumed_at IS NULL AND cancelled_at IS NULL AND expires_at > ?",
				input.GrantID, input.CallerID, input.Now).
			Updates(updates)
		if res.Error != nil {
			return fmt.Errorf("failed to consume grant: %w", res.Error)
		}

		if res.RowsAffected == 0 {
			return s.diagnoseConsumeDecline(tx, input)
		}

		var grant schema.PowerGrant
		if err := tx.Where("id = ?", input.GrantID).First(&grant).Error; err != nil {
			return fmt.Errorf("failed to read consumed grant: %w", err)
		}
		result.Grant = &grant

		if input.Target != nil {
			// Replace policy: a new target_lock supersedes the targeter's
			// previous relation, live or not.
			if err := tx.Where("targeter_id = ? AND squad_id = ?", grant.OwnerID, grant.SquadID).
				Delete(&schema.ActiveTarget{}).Error; err != nil {
				return fmt.Errorf("failed to remove prior target: %w", err)
			}

			target := schema.ActiveTarget{
				TargeterID: grant.OwnerID,
				TargetID:   input.Target.TargetID,
				SquadID:    grant.SquadID,
				GrantID:    grant.ID,
				ExpiresAt:  input.Now.Add(input.Target.TTL),
			}
			if err := tx.Create(&target).Error; err != nil {
				return fmt.Errorf("failed to create target: %w", err)
			}
			result.Target = &target
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// diagnoseConsumeDecline turns a zero-row conditional consume into the
// precise domain decline
func (s *pgStore) diagnoseConsumeDecline(tx *gorm.DB, input ConsumeGrantInput) error {
	var grant schema.PowerGrant
	err := tx.Where("id = ?", input.GrantID).First(&grant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGrantNotFound
		}
		return fmt.Errorf("failed to diagnose consume decline: %w", err)
	}

	switch {
	case grant.OwnerID != input.CallerID:
		return domain.ErrGrantNotOwned
	case grant.ConsumedAt != nil:
		return domain.ErrGrantAlreadyUsed
	case grant.CancelledAt != nil:
		return domain.ErrGrantCancelled
	default:
		return domain.ErrGrantExpired
	}
}

// CancelGrant records a cancellation marker distinct from consumption and
// removes any targeting relation the grant created. The conditional write on
// cancelled_at makes repeated cancellation a no-op, which keeps the
// challenge-resolution side effect idempotent.
func (s *pgStore) CancelGrant(ctx context.Context, grantID int64, cancelledBy, reason string, now time.Time) (bool, error) {
	var cancelled bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&schema.PowerGrant{}).
			Where("id = ? AND cancelled_at IS NULL", grantID).
			Updates(map[string]interface{}{
				"cancelled_at":  now,
				"cancelled_by":  cancelledBy,
				"cancel_reason": reason,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to cancel grant: %w", res.Error)
		}

		if res.RowsAffected == 0 {
			var exists int64
			if err := tx.Model(&schema.PowerGrant{}).Where("id = ?", grantID).Count(&exists).Error; err != nil {
				return fmt.Errorf("failed to check grant existence: %w", err)
			}
			if exists == 0 {
				return domain.ErrGrantNotFound
			}
			// Already cancelled: no-op on repeat
			cancelled = false
			return nil
		}
		cancelled = true

		// A cancelled target_lock loses its targeting relation
		if err := tx.Where("grant_id = ?", grantID).Delete(&schema.ActiveTarget{}).Error; err != nil {
			return fmt.Errorf("failed to remove target of cancelled grant: %w", err)
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	return cancelled, nil
}

// GetActiveTargetByTargeter retrieves the live targeting relation created by a player
func (s *pgStore) GetActiveTargetByTargeter(ctx context.Context, targeterID, squadID string, now time.Time) (*schema.ActiveTarget, error) {
	var target schema.ActiveTarget
	err := s.db.WithContext(ctx).
		Where("targeter_id = ? AND squad_id = ? AND expires_at > ?", targeterID, squadID, now).
		First(&target).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active target: %w", err)
	}
	return &target, nil
}

// IsTargeted reports whether any live targeting relation names the player
func (s *pgStore) IsTargeted(ctx context.Context, playerID, squadID string, now time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.ActiveTarget{}).
		Where("target_id = ? AND squad_id = ? AND expires_at > ?", playerID, squadID, now).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check targeted: %w", err)
	}
	return count > 0, nil
}

// DeleteExpiredTargets removes dead targeting relations
func (s *pgStore) DeleteExpiredTargets(ctx context.Context, now time.Time, limit int) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("id IN (?)", s.db.Model(&schema.ActiveTarget{}).
			Select("id").
			Where("expires_at <= ?", now).
			Limit(limit)).
		Delete(&schema.ActiveTarget{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete expired targets: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// CreateChallenge opens a challenge with the challenger's auto-vote already
// counted, in one transaction
func (s *pgStore) CreateChallenge(ctx context.Context, input CreateChallengeInput) (*schema.Challenge, error) {
	var challenge schema.Challenge
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		challenge = schema.Challenge{
			ChallengerID:   input.ChallengerID,
			TargetID:       input.TargetID,
			SquadID:        input.SquadID,
			Kind:           input.Kind,
			RelatedGrantID: input.RelatedGrantID,
			RelatedEventID: input.RelatedEventID,
			VotesFor:       1, // challenger's auto-vote
			VotesNeeded:    input.VotesNeeded,
			Status:         domain.ChallengeStatusActive,
			ExpiresAt:      input.ExpiresAt,
		}
		if err := tx.Create(&challenge).Error; err != nil {
			return fmt.Errorf("failed to create challenge: %w", err)
		}

		vote := schema.ChallengeVote{
			ChallengeID: challenge.ID,
			UserID:      input.ChallengerID,
			Vote:        domain.VoteFor,
		}
		if err := tx.Create(&vote).Error; err != nil {
			return fmt.Errorf("failed to record auto-vote: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &challenge, nil
}

// GetChallengeByID retrieves a challenge by id
func (s *pgStore) GetChallengeByID(ctx context.Context, challengeID int64) (*schema.Challenge, error) {
	var challenge schema.Challenge
	err := s.db.WithContext(ctx).Where("id = ?", challengeID).First(&challenge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}
	return &challenge, nil
}

// ListChallenges retrieves challenges for a squad, newest first
func (s *pgStore) ListChallenges(ctx context.Context, squadID string, status *domain.ChallengeStatus, limit int, offset uint64) ([]schema.Challenge, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Challenge{}).Where("squad_id = ?", squadID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count challenges: %w", err)
	}

	var challenges []schema.Challenge
	err := query.Order("id DESC").Limit(limit).Offset(int(offset)).Find(&challenges).Error //nolint:gosec,G115
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list challenges: %w", err)
	}

	return challenges, uint64(total), nil //nolint:gosec,G115
}

// CastVote inserts the vote and increments the matching counter as one
// logical operation. The unique vote index rejects duplicates and the
// counter increment is conditional on status = 'active'; either failure
// rolls back the whole vote.
func (s *pgStore) CastVote(ctx context.Context, challengeID int64, userID string, choice domain.VoteChoice) (*schema.Challenge, error) {
	var challenge schema.Challenge
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vote := schema.ChallengeVote{
			ChallengeID: challengeID,
			UserID:      userID,
			Vote:        choice,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "challenge_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&vote).Error
		if err != nil {
			return fmt.Errorf("failed to insert vote: %w", err)
		}

		// ID == 0 means the (challenge, user) vote already existed
		if vote.ID == 0 {
			return domain.ErrAlreadyVoted
		}

		column := "votes_for"
		if choice == domain.VoteAgainst {
			column = "votes_against"
		}

		res := tx.Model(&schema.Challenge{}).
			Where("id = ? AND status = ?", challengeID, domain.ChallengeStatusActive).
			Update(column, gorm.Expr(column+" + 1"))
		if res.Error != nil {
			return fmt.Errorf("failed to increment vote count: %w", res.Error)
		}

		if res.RowsAffected == 0 {
			var exists int64
			if err := tx.Model(&schema.Challenge{}).Where("id = ?", challengeID).Count(&exists).Error; err != nil {
				return fmt.Errorf("failed to check challenge existence: %w", err)
			}
			if exists == 0 {
				return domain.ErrChallengeNotFound
			}
			return domain.ErrChallengeNotActive
		}

		if err := tx.Where("id = ?", challengeID).First(&challenge).Error; err != nil {
			return fmt.Errorf("failed to read challenge after vote: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &challenge, nil
}

// ResolveChallenge transitions active -> passed|failed. The WHERE clause
// re-validates both the status and the vote threshold, so concurrent
// resolvers race on a single conditional update and exactly one wins.
func (s *pgStore) ResolveChallenge(ctx context.Context, challengeID int64, outcome domain.ChallengeStatus, now time.Time) (bool, error) {
	if outcome != domain.ChallengeStatusPassed && outcome != domain.ChallengeStatusFailed {
		return false, fmt.Errorf("invalid resolution outcome: %s", outcome)
	}

	threshold := "votes_for >= votes_needed"
	if outcome == domain.ChallengeStatusFailed {
		threshold = "votes_against >= votes_needed"
	}

	res := s.db.WithContext(ctx).Model(&schema.Challenge{}).
		Where("id = ? AND status = ? AND "+threshold, challengeID, domain.ChallengeStatusActive).
		Updates(map[string]interface{}{
			"status":      outcome,
			"resolved_at": now,
		})
	if res.Error != nil {
		return false, fmt.Errorf("failed to resolve challenge: %w", res.Error)
	}

	return res.RowsAffected > 0, nil
}

// ExpireChallenge transitions active -> expired iff past the deadline
func (s *pgStore) ExpireChallenge(ctx context.Context, challengeID int64, now time.Time) (bool, error) {
	res := s.db.WithContext(ctx).Model(&schema.Challenge{}).
		Where("id = ? AND status = ? AND expires_at <= ?", challengeID, domain.ChallengeStatusActive, now).
		Updates(map[string]interface{}{
			"status":      domain.ChallengeStatusExpired,
			"resolved_at": now,
		})
	if res.Error != nil {
		return false, fmt.Errorf("failed to expire challenge: %w", res.Error)
	}

	return res.RowsAffected > 0, nil
}

// ListExpirableChallenges retrieves active challenges past their deadline
func (s *pgStore) ListExpirableChallenges(ctx context.Context, now time.Time, limit int) ([]schema.Challenge, error) {
	var challenges []schema.Challenge
	err := s.db.WithContext(ctx).
		Where("status = ? AND expires_at <= ?", domain.ChallengeStatusActive, now).
		Order("expires_at ASC").
		Limit(limit).
		Find(&challenges).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expirable challenges: %w", err)
	}
	return challenges, nil
}

// GetJudgeAssignment retrieves the judge for a (squad, day)
func (s *pgStore) GetJudgeAssignment(ctx context.Context, squadID string, judgeDate time.Time) (*schema.JudgeAssignment, error) {
	var assignment schema.JudgeAssignment
	err := s.db.WithContext(ctx).
		Where("squad_id = ? AND judge_date = ?", squadID, judgeDate).
		First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get judge assignment: %w", err)
	}
	return &assignment, nil
}

// CreateJudgeAssignment records the day's judge; at most one per (squad, day)
func (s *pgStore) CreateJudgeAssignment(ctx context.Context, squadID, userID string, judgeDate time.Time) (*schema.JudgeAssignment, error) {
	assignment := schema.JudgeAssignment{
		SquadID:   squadID,
		JudgeDate: judgeDate,
		UserID:    userID,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "squad_id"}, {Name: "judge_date"}},
		DoNothing: true,
	}).Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&assignment).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create judge assignment: %w", err)
	}

	if assignment.ID == 0 {
		return nil, domain.ErrJudgeAlreadyAssigned
	}

	return &assignment, nil
}

// ApplyJudgeBonus records the bonus on the assignment and credits the judge's
// ledger in one transaction
func (s *pgStore) ApplyJudgeBonus(ctx context.Context, assignmentID int64, amount int64) (*schema.StarTransaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("bonus amount must be positive, got %d", amount)
	}

	var txn *schema.StarTransaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assignment schema.JudgeAssignment
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", assignmentID).
			First(&assignment).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNoJudgeAssigned
			}
			return fmt.Errorf("failed to lock judge assignment: %w", err)
		}

		if err := tx.Model(&assignment).Updates(map[string]interface{}{
			"bonus_earned": gorm.Expr("bonus_earned + ?", amount),
			"updated_at":   gorm.Expr("now()"),
		}).Error; err != nil {
			return fmt.Errorf("failed to record judge bonus: %w", err)
		}

		refID := fmt.Sprintf("judge_assignment:%d", assignment.ID)
		txn, err = awardStarsTx(tx, AwardStarsInput{
			PlayerID:    assignment.UserID,
			SquadID:     assignment.SquadID,
			Amount:      amount,
			Kind:        domain.TransactionKindBonus,
			Source:      domain.SourceJudgeBonus,
			ReferenceID: &refID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return txn, nil
}

// ApplyJudgePenalty records the penalty, marks the assignment overturned, and
// debits the judge's ledger in one transaction. The debit is clamped at the
// available balance so the balance >= 0 invariant holds; the assignment
// records the full requested penalty for audit.
func (s *pgStore) ApplyJudgePenalty(ctx context.Context, assignmentID int64, amount int64) (*schema.StarTransaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("penalty amount must be positive, got %d", amount)
	}

	var txn *schema.StarTransaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assignment schema.JudgeAssignment
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", assignmentID).
			First(&assignment).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNoJudgeAssigned
			}
			return fmt.Errorf("failed to lock judge assignment: %w", err)
		}

		if err := tx.Model(&assignment).Updates(map[string]interface{}{
			"penalty_applied": gorm.Expr("penalty_applied + ?", amount),
			"is_overturned":   true,
			"updated_at":      gorm.Expr("now()"),
		}).Error; err != nil {
			return fmt.Errorf("failed to record judge penalty: %w", err)
		}

		// Lock the balance row so the clamp and the debit see the same value
		var balance schema.StarBalance
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("player_id = ? AND squad_id = ?", assignment.UserID, assignment.SquadID).
			First(&balance).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// No balance record: nothing to debit
				return nil
			}
			return fmt.Errorf("failed to lock balance: %w", err)
		}

		debit := amount
		if debit > balance.Balance {
			debit = balance.Balance
		}
		if debit == 0 {
			return nil
		}

		if err := tx.Model(&balance).Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance - ?", debit),
			"updated_at": gorm.Expr("now()"),
		}).Error; err != nil {
			return fmt.Errorf("failed to debit penalty: %w", err)
		}

		refID := fmt.Sprintf("judge_assignment:%d", assignment.ID)
		record := schema.StarTransaction{
			TxRef:        newTxRef(),
			PlayerID:     assignment.UserID,
			SquadID:      assignment.SquadID,
			Amount:       -debit,
			BalanceAfter: balance.Balance - debit,
			Kind:         domain.TransactionKindSpend,
			Source:       domain.SourceJudgePenalty,
			ReferenceID:  &refID,
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to append penalty transaction: %w", err)
		}
		txn = &record

		return nil
	})
	if err != nil {
		return nil, err
	}

	return txn, nil
}
