package schema

import (
	"time"

	"github.com/squadplay/squad-engine/internal/domain"
)

// Challenge represents the challenges table - a squad-wide majority vote to
// overturn a judge ruling or cancel a power activation. Status leaves
// "active" exactly once; the transition is a conditional update guarded by
// status = 'active' so concurrent resolvers cannot both win.
type Challenge struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ChallengerID is the player who opened the challenge
	ChallengerID string `gorm:"column:challenger_id;not null;type:text"`
	// TargetID is the player whose ruling or power is being contested
	TargetID string `gorm:"column:target_id;not null;type:text"`
	// SquadID scopes the challenge to one squad
	SquadID string `gorm:"column:squad_id;not null;type:text;index:idx_challenges_squad_status,priority:1"`
	// Kind is what the challenge contests (judge_decision, power_activation)
	Kind domain.ChallengeKind `gorm:"column:kind;not null;type:text"`
	// RelatedGrantID links a power_activation challenge to the contested grant
	RelatedGrantID *int64 `gorm:"column:related_grant_id"`
	// RelatedEventID links a judge_decision challenge to the contested event
	RelatedEventID *string `gorm:"column:related_event_id;type:text"`
	// VotesFor counts votes to overturn, including the challenger's auto-vote
	VotesFor int `gorm:"column:votes_for;not null;default:0"`
	// VotesAgainst counts votes to uphold
	VotesAgainst int `gorm:"column:votes_against;not null;default:0"`
	// VotesNeeded is ceil(memberCount/2) captured at creation time
	VotesNeeded int `gorm:"column:votes_needed;not null"`
	// Status is the state machine value (active, passed, failed, expired)
	Status domain.ChallengeStatus `gorm:"column:status;not null;type:text;default:'active';index:idx_challenges_squad_status,priority:2"`
	// ExpiresAt is the absolute voting deadline
	ExpiresAt time.Time `gorm:"column:expires_at;not null;type:timestamptz"`
	// ResolvedAt is when the status left active
	ResolvedAt *time.Time `gorm:"column:resolved_at;type:timestamptz"`
	// CreatedAt is when the challenge was opened
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Votes []ChallengeVote `gorm:"foreignKey:ChallengeID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Challenge model
func (Challenge) TableName() string {
	return "challenges"
}
