package schema

import (
	"time"

	"github.com/squadplay/squad-engine/internal/domain"
)

// ChallengeVote represents the challenge_votes table - one member's vote on a
// challenge. The unique index on (challenge_id, user_id) is what enforces
// at-most-one-vote-per-member; duplicate inserts are rejected at the storage
// boundary, not by an engine-side read.
type ChallengeVote struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ChallengeID references the challenge being voted on
	ChallengeID int64 `gorm:"column:challenge_id;not null;uniqueIndex:idx_challenge_votes_challenge_user,priority:1"`
	// UserID is the voting member
	UserID string `gorm:"column:user_id;not null;type:text;uniqueIndex:idx_challenge_votes_challenge_user,priority:2"`
	// Vote is the member's choice (for, against)
	Vote domain.VoteChoice `gorm:"column:vote;not null;type:text"`
	// CreatedAt is when the vote was cast
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Challenge Challenge `gorm:"foreignKey:ChallengeID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the ChallengeVote model
func (ChallengeVote) TableName() string {
	return "challenge_votes"
}
