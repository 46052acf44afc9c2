package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPowerType(t *testing.T) {
	tests := []struct {
		name      string
		powerType PowerType
		expected  bool
	}{
		{
			name:      "valid double chance",
			powerType: PowerTypeDoubleChance,
			expected:  true,
		},
		{
			name:      "valid target lock",
			powerType: PowerTypeTargetLock,
			expected:  true,
		},
		{
			name:      "valid chaos card",
			powerType: PowerTypeChaosCard,
			expected:  true,
		},
		{
			name:      "valid streak shield",
			powerType: PowerTypeStreakShield,
			expected:  true,
		},
		{
			name:      "invalid empty type",
			powerType: PowerType(""),
			expected:  false,
		},
		{
			name:      "invalid random type",
			powerType: PowerType("mega_boost"),
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidPowerType(tt.powerType)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDailyRewardAmount(t *testing.T) {
	tests := []struct {
		name            string
		consecutiveDays int
		expected        int64
	}{
		{
			name:            "day 1",
			consecutiveDays: 1,
			expected:        10,
		},
		{
			name:            "day 3",
			consecutiveDays: 3,
			expected:        20,
		},
		{
			name:            "day 7 is the cycle peak",
			consecutiveDays: 7,
			expected:        50,
		},
		{
			name:            "day 8 wraps back to the start",
			consecutiveDays: 8,
			expected:        10,
		},
		{
			name:            "day 14 wraps to the peak",
			consecutiveDays: 14,
			expected:        50,
		},
		{
			name:            "zero is clamped to day 1",
			consecutiveDays: 0,
			expected:        10,
		},
		{
			name:            "negative is clamped to day 1",
			consecutiveDays: -5,
			expected:        10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DailyRewardAmount(tt.consecutiveDays)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestVotesNeeded(t *testing.T) {
	tests := []struct {
		name        string
		memberCount int
		expected    int
	}{
		{
			name:        "solo squad",
			memberCount: 1,
			expected:    1,
		},
		{
			name:        "two members",
			memberCount: 2,
			expected:    1,
		},
		{
			name:        "five members",
			memberCount: 5,
			expected:    3,
		},
		{
			name:        "six members",
			memberCount: 6,
			expected:    3,
		},
		{
			name:        "seven members",
			memberCount: 7,
			expected:    4,
		},
		{
			name:        "empty roster still needs one vote",
			memberCount: 0,
			expected:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := VotesNeeded(tt.memberCount)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDateOf(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)

	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "afternoon truncates to midnight",
			input:    time.Date(2025, 6, 1, 15, 42, 7, 123, time.UTC),
			expected: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "midnight stays put",
			input:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "non-UTC zone converts before truncating",
			input:    time.Date(2025, 6, 1, 22, 0, 0, 0, est),
			expected: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DateOf(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestChallengeStatus_Terminal(t *testing.T) {
	assert.False(t, ChallengeStatusActive.Terminal())
	assert.True(t, ChallengeStatusPassed.Terminal())
	assert.True(t, ChallengeStatusFailed.Terminal())
	assert.True(t, ChallengeStatusExpired.Terminal())
}

func TestIsValidVoteChoice(t *testing.T) {
	assert.True(t, IsValidVoteChoice(VoteFor))
	assert.True(t, IsValidVoteChoice(VoteAgainst))
	assert.False(t, IsValidVoteChoice(VoteChoice("abstain")))
	assert.False(t, IsValidVoteChoice(VoteChoice("")))
}

func TestIsDecline(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "insufficient balance is a decline",
			err:      ErrInsufficientBalance,
			expected: true,
		},
		{
			name:     "already voted is a decline",
			err:      ErrAlreadyVoted,
			expected: true,
		},
		{
			name:     "wrapped decline still matches",
			err:      fmt.Errorf("consume grant: %w", ErrGrantExpired),
			expected: true,
		},
		{
			name:     "plain error is not a decline",
			err:      errors.New("connection refused"),
			expected: false,
		},
		{
			name:     "nil is not a decline",
			err:      nil,
			expected: false,
		},
		{
			name:     "invalid input is a decline",
			err:      NewInvalidInput("unknown vote choice: abstain"),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsDecline(tt.err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNewInvalidInput(t *testing.T) {
	err := NewInvalidInput("unknown power type: %s", "invincibility")
	assert.EqualError(t, err, "unknown power type: invincibility")
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Matches through wrapping as well
	wrapped := fmt.Errorf("grant power: %w", err)
	assert.ErrorIs(t, wrapped, ErrInvalidInput)
	assert.True(t, IsDecline(wrapped))
}
