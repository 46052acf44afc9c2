package schema

import (
	"time"
)

// StarBalance represents the star_balances table - the current spendable
// currency for a (player, squad) pair. Balance never goes negative and
// lifetime_earned only grows; both invariants are enforced by the
// conditional writes in the store, never by read-modify-write in Go.
type StarBalance struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// PlayerID is the player owning this balance
	PlayerID string `gorm:"column:player_id;not null;type:text;uniqueIndex:idx_star_balances_player_squad,priority:1"`
	// SquadID scopes the balance to one squad
	SquadID string `gorm:"column:squad_id;not null;type:text;uniqueIndex:idx_star_balances_player_squad,priority:2"`
	// Balance is the current spendable amount
	Balance int64 `gorm:"column:balance;not null;default:0"`
	// LifetimeEarned is the monotonically non-decreasing total ever earned
	LifetimeEarned int64 `gorm:"column:lifetime_earned;not null;default:0"`
	// CreatedAt is when the balance record was lazily created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is when the balance was last mutated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the StarBalance model
func (StarBalance) TableName() string {
	return "star_balances"
}
