package ledger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/squadplay/squad-engine/internal/adapter"
	"github.com/squadplay/squad-engine/internal/domain"
	"github.com/squadplay/squad-engine/internal/logger"
	"github.com/squadplay/squad-engine/internal/messaging"
	"github.com/squadplay/squad-engine/internal/store"
	"github.com/squadplay/squad-engine/internal/store/schema"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// Balance is the derived view of a player's currency in a squad
type Balance struct {
	Balance        int64
	LifetimeEarned int64
}

// SpendResult reports the outcome of a spend. Insufficient balance is a
// decline carried in the result, not an error.
type SpendResult struct {
	Success     bool
	Balance     int64
	Transaction *schema.StarTransaction
}

// DailyLoginResult reports the outcome of a daily login claim
type DailyLoginResult struct {
	AlreadyClaimed  bool
	ConsecutiveDays int
	Amount          int64
	Balance         int64
}

// Ledger owns star balances and the append-only transaction history
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// GetBalance returns the current balance view; zero values when no record exists
	GetBalance(ctx context.Context, playerID, squadID string) (*Balance, error)
	// Earn credits the balance and appends an earn transaction
	Earn(ctx context.Context, playerID, squadID string, amount int64, source domain.TransactionSource, referenceID *string, metadata datatypes.JSON) (*schema.StarTransaction, error)
	// Spend debits the balance iff it covers the amount
	Spend(ctx context.Context, playerID, squadID string, amount int64, source domain.TransactionSource, referenceID *string, metadata datatypes.JSON) (*SpendResult, error)
	// History returns the transaction history, newest first
	History(ctx context.Context, playerID, squadID string, limit int, offset uint64) ([]schema.StarTransaction, uint64, error)
	// DailyLoginReward claims the day's cyclical login reward
	DailyLoginReward(ctx context.Context, playerID, squadID string) (*DailyLoginResult, error)
}

type ledger struct {
	store     store.Store
	clock     adapter.Clock
	publisher messaging.Publisher
}

// NewLedger creates the currency ledger service
func NewLedger(s store.Store, clock adapter.Clock, publisher messaging.Publisher) Ledger {
	return &ledger{
		store:     s,
		clock:     clock,
		publisher: publisher,
	}
}

// GetBalance returns the current balance view; zero values when no record exists
func (l *ledger) GetBalance(ctx context.Context, playerID, squadID string) (*Balance, error) {
	balance, err := l.store.GetBalance(ctx, playerID, squadID)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	if balance == nil {
		return &Balance{}, nil
	}
	return &Balance{Balance: balance.Balance, LifetimeEarned: balance.LifetimeEarned}, nil
}

// Earn credits the balance and appends an earn transaction
func (l *ledger) Earn(ctx context.Context, playerID, squadID string, amount int64, source domain.TransactionSource, referenceID *string, metadata datatypes.JSON) (*schema.StarTransaction, error) {
	if amount <= 0 {
		return nil, domain.NewInvalidInput("earn amount must be positive, got %d", amount)
	}

	txn, err := l.store.AwardStars(ctx, store.AwardStarsInput{
		PlayerID:    playerID,
		SquadID:     squadID,
		Amount:      amount,
		Kind:        domain.TransactionKindEarn,
		Source:      source,
		ReferenceID: referenceID,
		Metadata:    metadata,
	})
	if err != nil {
		return nil, err
	}

	l.publish(ctx, domain.EventStarsEarned, squadID, playerID, map[string]interface{}{
		"amount":        amount,
		"balance_after": txn.BalanceAfter,
		"source":        source,
		"tx_ref":        txn.TxRef,
	})

	return txn, nil
}

// Spend debits the balance iff it covers the amount
func (l *ledger) Spend(ctx context.Context, playerID, squadID string, amount int64, source domain.TransactionSource, referenceID *string, metadata datatypes.JSON) (*SpendResult, error) {
	if amount <= 0 {
		return nil, domain.NewInvalidInput("spend amount must be positive, got %d", amount)
	}

	result, err := l.store.SpendStars(ctx, store.SpendStarsInput{
		PlayerID:    playerID,
		SquadID:     squadID,
		Amount:      amount,
		Source:      source,
		ReferenceID: referenceID,
		Metadata:    metadata,
	})
	if err != nil {
		return nil, err
	}

	if result.Success {
		l.publish(ctx, domain.EventStarsSpent, squadID, playerID, map[string]interface{}{
			"amount":        amount,
			"balance_after": result.Balance,
			"source":        source,
			"tx_ref":        result.Transaction.TxRef,
		})
	}

	return &SpendResult{
		Success:     result.Success,
		Balance:     result.Balance,
		Transaction: result.Transaction,
	}, nil
}

// History returns the transaction history, newest first
func (l *ledger) History(ctx context.Context, playerID, squadID string, limit int, offset uint64) ([]schema.StarTransaction, uint64, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return l.store.ListTransactions(ctx, playerID, squadID, limit, offset)
}

// DailyLoginReward claims the day's cyclical login reward. The streak
// increments only when the previous claim was exactly yesterday; any gap
// resets the cycle to day one.
func (l *ledger) DailyLoginReward(ctx context.Context, playerID, squadID string) (*DailyLoginResult, error) {
	today := domain.DateOf(l.clock.Now())

	latest, err := l.store.GetLatestDailyLoginClaim(ctx, playerID, squadID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest claim: %w", err)
	}

	consecutiveDays := 1
	if latest != nil {
		lastDay := domain.DateOf(latest.ClaimDate)
		switch {
		case lastDay.Equal(today):
			// Already claimed today; report the standing streak without writing
			balance, err := l.GetBalance(ctx, playerID, squadID)
			if err != nil {
				return nil, err
			}
			return &DailyLoginResult{
				AlreadyClaimed:  true,
				ConsecutiveDays: latest.ConsecutiveDays,
				Balance:         balance.Balance,
			}, nil
		case lastDay.Equal(today.AddDate(0, 0, -1)):
			consecutiveDays = latest.ConsecutiveDays + 1
		}
	}

	amount := domain.DailyRewardAmount(consecutiveDays)

	result, err := l.store.ClaimDailyLogin(ctx, store.ClaimDailyLoginInput{
		PlayerID:        playerID,
		SquadID:         squadID,
		ClaimDate:       today,
		ConsecutiveDays: consecutiveDays,
		Amount:          amount,
	})
	if err != nil {
		return nil, err
	}

	// A concurrent claim may have won the insert race
	if result.AlreadyClaimed {
		balance, err := l.GetBalance(ctx, playerID, squadID)
		if err != nil {
			return nil, err
		}
		return &DailyLoginResult{
			AlreadyClaimed:  true,
			ConsecutiveDays: consecutiveDays,
			Balance:         balance.Balance,
		}, nil
	}

	l.publish(ctx, domain.EventStarsEarned, squadID, playerID, map[string]interface{}{
		"amount":           amount,
		"balance_after":    result.Transaction.BalanceAfter,
		"source":           domain.SourceDailyLogin,
		"consecutive_days": consecutiveDays,
	})

	return &DailyLoginResult{
		ConsecutiveDays: consecutiveDays,
		Amount:          amount,
		Balance:         result.Transaction.BalanceAfter,
	}, nil
}

// publish sends an engine event; delivery failures are logged, never
// propagated, because the ledger mutation has already committed
func (l *ledger) publish(ctx context.Context, eventType domain.EventType, squadID, playerID string, payload map[string]interface{}) {
	if l.publisher == nil {
		return
	}
	event := domain.NewEvent(eventType, squadID, playerID, payload, l.clock.Now())
	if err := l.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish event",
			zap.Error(err),
			zap.String("event_type", string(eventType)),
			zap.String("squad_id", squadID))
	}
}
