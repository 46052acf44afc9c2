package power

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/squadplay/squad-engine/internal/adapter"
	"github.com/squadplay/squad-engine/internal/domain"
	"github.com/squadplay/squad-engine/internal/ledger"
	"github.com/squadplay/squad-engine/internal/logger"
	"github.com/squadplay/squad-engine/internal/messaging"
	"github.com/squadplay/squad-engine/internal/store"
	"github.com/squadplay/squad-engine/internal/store/schema"
)

// Config holds registry tunables
type Config struct {
	// TargetLockTTL is the lifetime of a targeting relation
	TargetLockTTL time.Duration
	// GrantCosts maps power type to the star cost charged on granting.
	// Absent or zero means the grant is free.
	GrantCosts map[domain.PowerType]int64
}

// GrantInput holds the parameters for issuing a new power grant
type GrantInput struct {
	Type      domain.PowerType
	OwnerID   string
	SquadID   string
	ExpiresAt time.Time
	Metadata  datatypes.JSON
}

// ConsumeInput holds the parameters for consuming a grant.
// TargetID is required for target_lock and forbidden otherwise.
type ConsumeInput struct {
	GrantID  int64
	SquadID  string
	TargetID string
	Metadata datatypes.JSON
}

// ConsumeResult reports a successful consumption
type ConsumeResult struct {
	Grant  *schema.PowerGrant
	Target *schema.ActiveTarget
}

// Registry owns issued power grants and active targeting relations
//
//go:generate mockgen -source=power.go -destination=../mocks/power.go -package=mocks -mock_names=Registry=MockRegistry
type Registry interface {
	// ListActive returns the caller's usable grants in the squad
	ListActive(ctx context.Context, caller domain.Caller, squadID string) ([]schema.PowerGrant, error)
	// Consume marks a grant used; exactly one of N concurrent calls wins
	Consume(ctx context.Context, caller domain.Caller, input ConsumeInput) (*ConsumeResult, error)
	// IsTargeted reports whether any live targeting relation names the player
	IsTargeted(ctx context.Context, playerID, squadID string) (bool, error)
	// HasUnusedPower reports whether the player holds a usable grant of the type
	HasUnusedPower(ctx context.Context, playerID, squadID string, powerType domain.PowerType) (bool, error)
	// Cancel records a challenge-driven or administrative cancellation,
	// distinct from consumption. Repeat cancellation is a no-op.
	Cancel(ctx context.Context, grantID int64, cancelledBy, reason string) (bool, error)
	// Grant issues a new power grant, charging the configured cost if any
	Grant(ctx context.Context, input GrantInput) (*schema.PowerGrant, error)
}

type registry struct {
	store     store.Store
	clock     adapter.Clock
	publisher messaging.Publisher
	ledger    ledger.Ledger
	cfg       Config
}

// NewRegistry creates the power registry service
func NewRegistry(s store.Store, clock adapter.Clock, publisher messaging.Publisher, l ledger.Ledger, cfg Config) Registry {
	if cfg.TargetLockTTL == 0 {
		cfg.TargetLockTTL = domain.DefaultTargetLockTTL
	}
	return &registry{
		store:     s,
		clock:     clock,
		publisher: publisher,
		ledger:    l,
		cfg:       cfg,
	}
}

// ListActive returns the caller's usable grants in the squad.
// Grants are always filtered by the caller's own id; one player can never
// see or act on another player's powers.
func (r *registry) ListActive(ctx context.Context, caller domain.Caller, squadID string) ([]schema.PowerGrant, error) {
	return r.store.ListActiveGrants(ctx, caller.PlayerID, squadID, r.clock.Now())
}

// Consume marks a grant used via the store's conditional write. For
// target_lock the targeting relation is created in the same transaction, and
// it replaces the caller's previous relation in the squad.
func (r *registry) Consume(ctx context.Context, caller domain.Caller, input ConsumeInput) (*ConsumeResult, error) {
	now := r.clock.Now()

	grant, err := r.store.GetGrantByID(ctx, input.GrantID)
	if err != nil {
		return nil, err
	}
	if grant == nil {
		return nil, domain.ErrGrantNotFound
	}
	if grant.OwnerID != caller.PlayerID {
		return nil, domain.ErrGrantNotOwned
	}

	var target *store.CreateTargetInput
	if grant.Type == domain.PowerTypeTargetLock {
		if input.TargetID == "" {
			return nil, domain.ErrTargetRequired
		}
		if input.TargetID == caller.PlayerID {
			return nil, domain.ErrSelfTarget
		}
		target = &store.CreateTargetInput{
			TargetID: input.TargetID,
			TTL:      r.cfg.TargetLockTTL,
		}
	}

	result, err := r.store.ConsumeGrant(ctx, store.ConsumeGrantInput{
		GrantID:  input.GrantID,
		CallerID: caller.PlayerID,
		Now:      now,
		Metadata: input.Metadata,
		Target:   target,
	})
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"grant_id":   result.Grant.ID,
		"power_type": result.Grant.Type,
	}
	if result.Target != nil {
		payload["target_id"] = result.Target.TargetID
		payload["target_expires_at"] = result.Target.ExpiresAt
	}
	r.publish(ctx, domain.EventPowerConsumed, result.Grant.SquadID, caller.PlayerID, payload)

	return &ConsumeResult{Grant: result.Grant, Target: result.Target}, nil
}

// IsTargeted reports whether any live targeting relation names the player
func (r *registry) IsTargeted(ctx context.Context, playerID, squadID string) (bool, error) {
	return r.store.IsTargeted(ctx, playerID, squadID, r.clock.Now())
}

// HasUnusedPower reports whether the player holds a usable grant of the type
func (r *registry) HasUnusedPower(ctx context.Context, playerID, squadID string, powerType domain.PowerType) (bool, error) {
	grants, err := r.store.ListActiveGrants(ctx, playerID, squadID, r.clock.Now())
	if err != nil {
		return false, err
	}
	for _, g := range grants {
		if g.Type == powerType {
			return true, nil
		}
	}
	return false, nil
}

// Cancel records a cancellation marker distinct from consumption so that
// "cancelled by challenge" stays distinguishable from "used by owner" in the
// audit history. Returns false when the grant was already cancelled.
func (r *registry) Cancel(ctx context.Context, grantID int64, cancelledBy, reason string) (bool, error) {
	performed, err := r.store.CancelGrant(ctx, grantID, cancelledBy, reason, r.clock.Now())
	if err != nil {
		return false, err
	}
	if !performed {
		return false, nil
	}

	grant, err := r.store.GetGrantByID(ctx, grantID)
	if err != nil {
		logger.WarnCtx(ctx, "failed to read cancelled grant for event", zap.Error(err), zap.Int64("grant_id", grantID))
		return true, nil
	}

	r.publish(ctx, domain.EventPowerCancelled, grant.SquadID, grant.OwnerID, map[string]interface{}{
		"grant_id":     grant.ID,
		"power_type":   grant.Type,
		"cancelled_by": cancelledBy,
		"reason":       reason,
	})

	return true, nil
}

// Grant issues a new power grant. When a cost is configured for the type,
// the owner's balance is debited first; an uncovered cost declines the grant.
func (r *registry) Grant(ctx context.Context, input GrantInput) (*schema.PowerGrant, error) {
	if !domain.IsValidPowerType(input.Type) {
		return nil, domain.NewInvalidInput("unknown power type: %s", input.Type)
	}
	if !input.ExpiresAt.After(r.clock.Now()) {
		return nil, domain.NewInvalidInput("grant expiry must be in the future")
	}

	if cost := r.cfg.GrantCosts[input.Type]; cost > 0 {
		refID := fmt.Sprintf("power_grant:%s", input.Type)
		result, err := r.ledger.Spend(ctx, input.OwnerID, input.SquadID, cost, domain.SourcePowerCost, &refID, nil)
		if err != nil {
			return nil, err
		}
		if !result.Success {
			return nil, domain.ErrInsufficientBalance
		}
	}

	return r.store.CreateGrant(ctx, store.CreateGrantInput{
		Type:      input.Type,
		OwnerID:   input.OwnerID,
		SquadID:   input.SquadID,
		ExpiresAt: input.ExpiresAt,
		Metadata:  input.Metadata,
	})
}

// publish sends an engine event; delivery failures are logged, never
// propagated, because the registry mutation has already committed
func (r *registry) publish(ctx context.Context, eventType domain.EventType, squadID, playerID string, payload map[string]interface{}) {
	if r.publisher == nil {
		return
	}
	event := domain.NewEvent(eventType, squadID, playerID, payload, r.clock.Now())
	if err := r.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish event",
			zap.Error(err),
			zap.String("event_type", string(eventType)),
			zap.String("squad_id", squadID))
	}
}
