package schema

import (
	"time"
)

// JudgeAssignment represents the judge_assignments table - the day's rotating
// judge for a squad. At most one assignment exists per (squad, judge_date).
type JudgeAssignment struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// SquadID scopes the assignment to one squad
	SquadID string `gorm:"column:squad_id;not null;type:text;uniqueIndex:idx_judge_assignments_squad_date,priority:1"`
	// JudgeDate is the calendar day of the assignment (date, not timestamp)
	JudgeDate time.Time `gorm:"column:judge_date;not null;type:date;uniqueIndex:idx_judge_assignments_squad_date,priority:2"`
	// UserID is the player serving as judge
	UserID string `gorm:"column:user_id;not null;type:text"`
	// BonusEarned is the total bonus stars posted to the judge's ledger
	BonusEarned int64 `gorm:"column:bonus_earned;not null;default:0"`
	// PenaltyApplied is the total penalty stars debited from the judge
	PenaltyApplied int64 `gorm:"column:penalty_applied;not null;default:0"`
	// IsOverturned marks that a challenge against this judge passed
	IsOverturned bool `gorm:"column:is_overturned;not null;default:false"`
	// CreatedAt is when the assignment was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is when the assignment was last mutated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the JudgeAssignment model
func (JudgeAssignment) TableName() string {
	return "judge_assignments"
}
