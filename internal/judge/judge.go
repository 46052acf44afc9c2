package judge

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/squadplay/squad-engine/internal/adapter"
	"github.com/squadplay/squad-engine/internal/domain"
	"github.com/squadplay/squad-engine/internal/logger"
	"github.com/squadplay/squad-engine/internal/messaging"
	"github.com/squadplay/squad-engine/internal/store"
	"github.com/squadplay/squad-engine/internal/store/schema"
)

// Judge tracks the daily rotating judge role and posts its ledger adjustments
//
//go:generate mockgen -source=judge.go -destination=../mocks/judge.go -package=mocks -mock_names=Judge=MockJudge
type Judge interface {
	// GetToday returns the squad's judge for the current day; nil when none
	GetToday(ctx context.Context, squadID string) (*schema.JudgeAssignment, error)
	// Assign records the day's judge; at most one per (squad, day)
	Assign(ctx context.Context, squadID, userID string) (*schema.JudgeAssignment, error)
	// ApplyBonus credits the day's judge and records the bonus
	ApplyBonus(ctx context.Context, squadID string, amount int64) (*schema.StarTransaction, error)
	// ApplyPenalty debits the day's judge (clamped at balance), records the
	// penalty, and marks the assignment overturned
	ApplyPenalty(ctx context.Context, squadID string, amount int64) (*schema.StarTransaction, error)
}

type judge struct {
	store     store.Store
	clock     adapter.Clock
	publisher messaging.Publisher
}

// NewJudge creates the judge assignment service
func NewJudge(s store.Store, clock adapter.Clock, publisher messaging.Publisher) Judge {
	return &judge{
		store:     s,
		clock:     clock,
		publisher: publisher,
	}
}

// GetToday returns the squad's judge for the current day; nil when none
func (j *judge) GetToday(ctx context.Context, squadID string) (*schema.JudgeAssignment, error) {
	return j.store.GetJudgeAssignment(ctx, squadID, domain.DateOf(j.clock.Now()))
}

// Assign records the day's judge; at most one per (squad, day)
func (j *judge) Assign(ctx context.Context, squadID, userID string) (*schema.JudgeAssignment, error) {
	today := domain.DateOf(j.clock.Now())

	assignment, err := j.store.CreateJudgeAssignment(ctx, squadID, userID, today)
	if err != nil {
		return nil, err
	}

	j.publish(ctx, domain.EventJudgeAssigned, squadID, userID, map[string]interface{}{
		"assignment_id": assignment.ID,
		"judge_date":    today.Format("2006-01-02"),
	})

	return assignment, nil
}

// ApplyBonus credits the day's judge and records the bonus
func (j *judge) ApplyBonus(ctx context.Context, squadID string, amount int64) (*schema.StarTransaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("bonus amount must be positive, got %d", amount)
	}

	assignment, err := j.GetToday(ctx, squadID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, domain.ErrNoJudgeAssigned
	}

	return j.store.ApplyJudgeBonus(ctx, assignment.ID, amount)
}

// ApplyPenalty debits the day's judge, records the penalty, and marks the
// assignment overturned. The debit is clamped at the available balance so
// the balance never goes negative.
func (j *judge) ApplyPenalty(ctx context.Context, squadID string, amount int64) (*schema.StarTransaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("penalty amount must be positive, got %d", amount)
	}

	assignment, err := j.GetToday(ctx, squadID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, domain.ErrNoJudgeAssigned
	}

	return j.store.ApplyJudgePenalty(ctx, assignment.ID, amount)
}

// publish sends an engine event; delivery failures are logged, never
// propagated
func (j *judge) publish(ctx context.Context, eventType domain.EventType, squadID, playerID string, payload map[string]interface{}) {
	if j.publisher == nil {
		return
	}
	event := domain.NewEvent(eventType, squadID, playerID, payload, j.clock.Now())
	if err := j.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish event",
			zap.Error(err),
			zap.String("event_type", string(eventType)),
			zap.String("squad_id", squadID))
	}
}
