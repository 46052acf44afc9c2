package schema

import (
	"time"
)

// DailyLoginClaim represents the daily_login_claims table - one row per
// (player, squad, day) login reward claim. The unique index makes the claim
// idempotent: a second claim on the same day inserts nothing.
type DailyLoginClaim struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// PlayerID is the claiming player
	PlayerID string `gorm:"column:player_id;not null;type:text;uniqueIndex:idx_daily_login_claims_player_squad_date,priority:1"`
	// SquadID scopes the claim to one squad
	SquadID string `gorm:"column:squad_id;not null;type:text;uniqueIndex:idx_daily_login_claims_player_squad_date,priority:2"`
	// ClaimDate is the calendar day being claimed (date, not timestamp)
	ClaimDate time.Time `gorm:"column:claim_date;not null;type:date;uniqueIndex:idx_daily_login_claims_player_squad_date,priority:3"`
	// ConsecutiveDays is the streak length as of this claim (resets to 1 after a gap)
	ConsecutiveDays int `gorm:"column:consecutive_days;not null;default:1"`
	// Amount is the reward paid for this claim
	Amount int64 `gorm:"column:amount;not null"`
	// CreatedAt is when the claim was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the DailyLoginClaim model
func (DailyLoginClaim) TableName() string {
	return "daily_login_claims"
}
