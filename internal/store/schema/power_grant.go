package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/squadplay/squad-engine/internal/domain"
)

// PowerGrant represents the power_grants table - a time-boxed, single-use
// rule modifier owned by one player. ConsumedAt, once set, is terminal.
// Cancellation (cancelled_at/cancelled_by/cancel_reason) is recorded
// separately from consumption so that "overturned by vote" stays
// distinguishable from "used by owner" in the audit history. Expired grants
// become inert but are never deleted.
type PowerGrant struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Type is the rule modifier this grant carries
	Type domain.PowerType `gorm:"column:type;not null;type:text"`
	// OwnerID is the player who owns the grant
	OwnerID string `gorm:"column:owner_id;not null;type:text;index:idx_power_grants_owner_squad,priority:1"`
	// SquadID scopes the grant to one squad
	SquadID string `gorm:"column:squad_id;not null;type:text;index:idx_power_grants_owner_squad,priority:2"`
	// ExpiresAt is the absolute expiry; the grant is usable only before it
	ExpiresAt time.Time `gorm:"column:expires_at;not null;type:timestamptz"`
	// ConsumedAt is set exactly once when the owner uses the grant
	ConsumedAt *time.Time `gorm:"column:consumed_at;type:timestamptz"`
	// CancelledAt is set when the grant is administratively cancelled
	CancelledAt *time.Time `gorm:"column:cancelled_at;type:timestamptz"`
	// CancelledBy records who triggered the cancellation
	CancelledBy *string `gorm:"column:cancelled_by;type:text"`
	// CancelReason records why the grant was cancelled (e.g. "overturned by vote")
	CancelReason *string `gorm:"column:cancel_reason;type:text"`
	// Metadata holds grant-specific JSON context (e.g. the chaos card drawn)
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	// CreatedAt is when the grant was issued
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PowerGrant model
func (PowerGrant) TableName() string {
	return "power_grants"
}

// Usable reports whether the grant can still be consumed at the given time
func (g *PowerGrant) Usable(now time.Time) bool {
	return g.ConsumedAt == nil && g.CancelledAt == nil && g.ExpiresAt.After(now)
}
