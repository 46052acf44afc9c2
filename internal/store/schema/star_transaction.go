package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/squadplay/squad-engine/internal/domain"
)

// StarTransaction represents the star_transactions table - the append-only
// ledger. Rows are immutable once written; balance_after reflects the balance
// immediately following this specific write.
type StarTransaction struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TxRef is the external transaction reference (ULID, time-ordered)
	TxRef string `gorm:"column:tx_ref;not null;uniqueIndex;type:text"`
	// PlayerID is the player whose balance this entry mutated
	PlayerID string `gorm:"column:player_id;not null;type:text;index:idx_star_transactions_player_squad,priority:1"`
	// SquadID scopes the entry to one squad
	SquadID string `gorm:"column:squad_id;not null;type:text;index:idx_star_transactions_player_squad,priority:2"`
	// Amount is the signed delta applied to the balance
	Amount int64 `gorm:"column:amount;not null"`
	// BalanceAfter equals the prior balance plus Amount exactly
	BalanceAfter int64 `gorm:"column:balance_after;not null"`
	// Kind classifies the entry (earn, spend, bonus, refund)
	Kind domain.TransactionKind `gorm:"column:kind;not null;type:text"`
	// Source identifies what produced the entry (daily_login, event_reward, ...)
	Source domain.TransactionSource `gorm:"column:source;not null;type:text"`
	// ReferenceID optionally links the entry to an external object (event id, grant id)
	ReferenceID *string `gorm:"column:reference_id;type:text"`
	// Metadata holds arbitrary JSON context supplied by the caller
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	// CreatedAt is when the entry was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the StarTransaction model
func (StarTransaction) TableName() string {
	return "star_transactions"
}
