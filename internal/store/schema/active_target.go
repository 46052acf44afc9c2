package schema

import (
	"time"
)

// ActiveTarget represents the active_targets table - a directed, time-limited
// targeting relation created by consuming a target_lock grant. At most one
// live relation exists per (targeter, squad); consuming a new target_lock
// replaces the previous one. Expiry is absolute and never renewed.
type ActiveTarget struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TargeterID is the player who consumed the target_lock
	TargeterID string `gorm:"column:targeter_id;not null;type:text;uniqueIndex:idx_active_targets_targeter_squad,priority:1"`
	// TargetID is the player being targeted
	TargetID string `gorm:"column:target_id;not null;type:text;index:idx_active_targets_target_squad,priority:1"`
	// SquadID scopes the relation to one squad
	SquadID string `gorm:"column:squad_id;not null;type:text;uniqueIndex:idx_active_targets_targeter_squad,priority:2;index:idx_active_targets_target_squad,priority:2"`
	// GrantID references the target_lock grant that created this relation
	GrantID int64 `gorm:"column:grant_id;not null"`
	// ExpiresAt is the absolute end of the targeting relation
	ExpiresAt time.Time `gorm:"column:expires_at;not null;type:timestamptz"`
	// CreatedAt is when the relation was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Grant PowerGrant `gorm:"foreignKey:GrantID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the ActiveTarget model
func (ActiveTarget) TableName() string {
	return "active_targets"
}
