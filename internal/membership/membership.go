package membership

import (
	"context"
)

// Membership resolves squad roster facts from the membership service.
// The engine only needs the member count, which drives the majority
// threshold for challenge votes.
//
//go:generate mockgen -source=membership.go -destination=../mocks/membership.go -package=mocks -mock_names=Membership=MockMembership
type Membership interface {
	// MemberCount returns the number of members in the squad
	MemberCount(ctx context.Context, squadID string) (int, error)
}
