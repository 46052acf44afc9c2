package court

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/squadplay/squad-engine/internal/adapter"
	"github.com/squadplay/squad-engine/internal/domain"
	"github.com/squadplay/squad-engine/internal/judge"
	"github.com/squadplay/squad-engine/internal/logger"
	"github.com/squadplay/squad-engine/internal/membership"
	"github.com/squadplay/squad-engine/internal/messaging"
	"github.com/squadplay/squad-engine/internal/power"
	"github.com/squadplay/squad-engine/internal/store"
	"github.com/squadplay/squad-engine/internal/store/schema"
)

const overturnReason = "overturned by vote"

// Config holds court tunables
type Config struct {
	// VotingWindow is how long a challenge accepts votes
	VotingWindow time.Duration
	// JudgePenalty is the star penalty applied when a judge decision is overturned
	JudgePenalty int64
}

// CreateInput holds the parameters for opening a challenge
type CreateInput struct {
	SquadID        string
	TargetID       string
	Kind           domain.ChallengeKind
	RelatedGrantID *int64
	RelatedEventID *string
}

// Court owns the challenge lifecycle: creation, voting, resolution, expiry
//
//go:generate mockgen -source=court.go -destination=../mocks/court.go -package=mocks -mock_names=Court=MockCourt
type Court interface {
	// Create opens a challenge with the challenger's auto-vote counted
	Create(ctx context.Context, caller domain.Caller, input CreateInput) (*schema.Challenge, error)
	// Vote records a member's vote and resolves the challenge if a threshold
	// is crossed
	Vote(ctx context.Context, caller domain.Caller, challengeID int64, choice domain.VoteChoice) (*schema.Challenge, error)
	// Expire transitions an overdue active challenge to expired, with no
	// winner and no side effects
	Expire(ctx context.Context, challengeID int64) (bool, error)
	// Get retrieves a challenge by id
	Get(ctx context.Context, challengeID int64) (*schema.Challenge, error)
	// List retrieves challenges for a squad, newest first
	List(ctx context.Context, squadID string, status *domain.ChallengeStatus, limit int, offset uint64) ([]schema.Challenge, uint64, error)
}

type court struct {
	store      store.Store
	clock      adapter.Clock
	publisher  messaging.Publisher
	membership membership.Membership
	powers     power.Registry
	judges     judge.Judge
	cfg        Config
}

// NewCourt creates the challenge court service
func NewCourt(
	s store.Store,
	clock adapter.Clock,
	publisher messaging.Publisher,
	m membership.Membership,
	powers power.Registry,
	judges judge.Judge,
	cfg Config,
) Court {
	if cfg.VotingWindow == 0 {
		cfg.VotingWindow = domain.ChallengeVotingWindow
	}
	return &court{
		store:      s,
		clock:      clock,
		publisher:  publisher,
		membership: m,
		powers:     powers,
		judges:     judges,
		cfg:        cfg,
	}
}

// Create opens a challenge. The majority threshold is ceil(memberCount/2)
// against the roster at creation time, the deadline is one voting window out,
// and the challenger's own "for" vote is counted immediately. A threshold of
// one resolves the challenge on the spot.
func (c *court) Create(ctx context.Context, caller domain.Caller, input CreateInput) (*schema.Challenge, error) {
	if !domain.IsValidChallengeKind(input.Kind) {
		return nil, domain.NewInvalidInput("unknown challenge kind: %s", input.Kind)
	}
	if input.TargetID == "" {
		return nil, domain.NewInvalidInput("challenge target is required")
	}

	if input.Kind == domain.ChallengeKindPowerActivation {
		if input.RelatedGrantID == nil {
			return nil, domain.NewInvalidInput("power activation challenge requires a related grant")
		}
		grant, err := c.store.GetGrantByID(ctx, *input.RelatedGrantID)
		if err != nil {
			return nil, err
		}
		if grant == nil {
			return nil, domain.ErrGrantNotFound
		}
		if grant.SquadID != input.SquadID {
			return nil, domain.NewInvalidInput("grant %d does not belong to squad %s", *input.RelatedGrantID, input.SquadID)
		}
	}

	memberCount, err := c.membership.MemberCount(ctx, input.SquadID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve member count: %w", err)
	}

	now := c.clock.Now()
	challenge, err := c.store.CreateChallenge(ctx, store.CreateChallengeInput{
		ChallengerID:   caller.PlayerID,
		TargetID:       input.TargetID,
		SquadID:        input.SquadID,
		Kind:           input.Kind,
		RelatedGrantID: input.RelatedGrantID,
		RelatedEventID: input.RelatedEventID,
		VotesNeeded:    domain.VotesNeeded(memberCount),
		ExpiresAt:      now.Add(c.cfg.VotingWindow),
	})
	if err != nil {
		return nil, err
	}

	c.publish(ctx, domain.EventChallengeCreated, challenge.SquadID, caller.PlayerID, map[string]interface{}{
		"challenge_id": challenge.ID,
		"kind":         challenge.Kind,
		"target_id":    challenge.TargetID,
		"votes_needed": challenge.VotesNeeded,
		"expires_at":   challenge.ExpiresAt,
	})

	// A one-member threshold is crossed by the auto-vote alone
	return c.maybeResolve(ctx, challenge)
}

// Vote records a member's vote. Duplicates and votes on non-active
// challenges decline; a vote that crosses a threshold resolves the
// challenge idempotently.
func (c *court) Vote(ctx context.Context, caller domain.Caller, challengeID int64, choice domain.VoteChoice) (*schema.Challenge, error) {
	if !domain.IsValidVoteChoice(choice) {
		return nil, domain.NewInvalidInput("unknown vote choice: %s", choice)
	}

	challenge, err := c.store.CastVote(ctx, challengeID, caller.PlayerID, choice)
	if err != nil {
		return nil, err
	}

	return c.maybeResolve(ctx, challenge)
}

// Expire transitions an overdue active challenge to expired. Neither side
// wins and no side effects run.
func (c *court) Expire(ctx context.Context, challengeID int64) (bool, error) {
	now := c.clock.Now()
	performed, err := c.store.ExpireChallenge(ctx, challengeID, now)
	if err != nil {
		return false, err
	}
	if !performed {
		return false, nil
	}

	challenge, err := c.store.GetChallengeByID(ctx, challengeID)
	if err != nil {
		logger.WarnCtx(ctx, "failed to read expired challenge for event", zap.Error(err), zap.Int64("challenge_id", challengeID))
		return true, nil
	}

	c.publish(ctx, domain.EventChallengeResolved, challenge.SquadID, "", map[string]interface{}{
		"challenge_id": challenge.ID,
		"kind":         challenge.Kind,
		"status":       domain.ChallengeStatusExpired,
	})

	return true, nil
}

// Get retrieves a challenge by id
func (c *court) Get(ctx context.Context, challengeID int64) (*schema.Challenge, error) {
	challenge, err := c.store.GetChallengeByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		return nil, domain.ErrChallengeNotFound
	}
	return challenge, nil
}

// List retrieves challenges for a squad, newest first
func (c *court) List(ctx context.Context, squadID string, status *domain.ChallengeStatus, limit int, offset uint64) ([]schema.Challenge, uint64, error) {
	if limit <= 0 {
		limit = 50
	}
	return c.store.ListChallenges(ctx, squadID, status, limit, offset)
}

// maybeResolve transitions the challenge to passed or failed when a vote
// threshold is crossed. The transition is a conditional update guarded by
// status = 'active', so concurrent callers observing the same crossed
// threshold race on one CAS and exactly one runs the side effects.
func (c *court) maybeResolve(ctx context.Context, challenge *schema.Challenge) (*schema.Challenge, error) {
	var outcome domain.ChallengeStatus
	switch {
	case challenge.VotesFor >= challenge.VotesNeeded:
		outcome = domain.ChallengeStatusPassed
	case challenge.VotesAgainst >= challenge.VotesNeeded:
		outcome = domain.ChallengeStatusFailed
	default:
		return challenge, nil
	}

	now := c.clock.Now()
	performed, err := c.store.ResolveChallenge(ctx, challenge.ID, outcome, now)
	if err != nil {
		return nil, err
	}

	resolved, err := c.store.GetChallengeByID(ctx, challenge.ID)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		return nil, domain.ErrChallengeNotFound
	}

	// Only the call that performed the transition runs side effects
	if performed {
		if outcome == domain.ChallengeStatusPassed {
			if err := c.applyPassEffects(ctx, resolved); err != nil {
				return nil, err
			}
		}

		c.publish(ctx, domain.EventChallengeResolved, resolved.SquadID, resolved.ChallengerID, map[string]interface{}{
			"challenge_id":  resolved.ID,
			"kind":          resolved.Kind,
			"status":        resolved.Status,
			"votes_for":     resolved.VotesFor,
			"votes_against": resolved.VotesAgainst,
		})
	}

	return resolved, nil
}

// applyPassEffects runs the overturn side effect of a passed challenge.
// Both branches are idempotent: Cancel no-ops on a repeat, and the penalty
// only runs behind the resolve CAS.
func (c *court) applyPassEffects(ctx context.Context, challenge *schema.Challenge) error {
	switch challenge.Kind {
	case domain.ChallengeKindPowerActivation:
		if challenge.RelatedGrantID == nil {
			return nil
		}
		if _, err := c.powers.Cancel(ctx, *challenge.RelatedGrantID, challenge.ChallengerID, overturnReason); err != nil {
			return fmt.Errorf("failed to cancel overturned grant: %w", err)
		}

	case domain.ChallengeKindJudgeDecision:
		if c.cfg.JudgePenalty <= 0 {
			return nil
		}
		_, err := c.judges.ApplyPenalty(ctx, challenge.SquadID, c.cfg.JudgePenalty)
		if err != nil {
			// The day may have rolled over since the contested ruling
			if errors.Is(err, domain.ErrNoJudgeAssigned) {
				logger.WarnCtx(ctx, "no judge assignment to penalize",
					zap.String("squad_id", challenge.SquadID),
					zap.Int64("challenge_id", challenge.ID))
				return nil
			}
			return fmt.Errorf("failed to apply judge penalty: %w", err)
		}
	}

	return nil
}

// publish sends an engine event; delivery failures are logged, never
// propagated
func (c *court) publish(ctx context.Context, eventType domain.EventType, squadID, playerID string, payload map[string]interface{}) {
	if c.publisher == nil {
		return
	}
	event := domain.NewEvent(eventType, squadID, playerID, payload, c.clock.Now())
	if err := c.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish event",
			zap.Error(err),
			zap.String("event_type", string(eventType)),
			zap.String("squad_id", squadID))
	}
}
