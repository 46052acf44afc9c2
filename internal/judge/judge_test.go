package judge_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squadplay/squad-engine/internal/domain"
	"github.com/squadplay/squad-engine/internal/judge"
	"github.com/squadplay/squad-engine/internal/logger"
	"github.com/squadplay/squad-engine/internal/mocks"
	"github.com/squadplay/squad-engine/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testJudgeMocks contains all the mocks needed for testing the judge service
type testJudgeMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	clock     *mocks.MockClock
	publisher *mocks.MockPublisher
	judge     judge.Judge
}

// setupTestJudge creates all the mocks and judge service for testing
func setupTestJudge(t *testing.T) *testJudgeMocks {
	ctrl := gomock.NewController(t)

	tm := &testJudgeMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		clock:     mocks.NewMockClock(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
	}

	tm.judge = judge.NewJudge(tm.store, tm.clock, tm.publisher)

	return tm
}

// tearDownTestJudge cleans up the test mocks
func tearDownTestJudge(tm *testJudgeMocks) {
	tm.ctrl.Finish()
}

func TestJudge_GetToday(t *testing.T) {
	tm := setupTestJudge(t)
	defer tearDownTestJudge(tm)

	now := time.Date(2025, 6, 1, 18, 45, 0, 0, time.UTC)
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)
	tm.store.
		EXPECT().
		GetJudgeAssignment(gomock.Any(), "squad-1", today).
		Return(&schema.JudgeAssignment{ID: 3, SquadID: "squad-1", UserID: "player-1", JudgeDate: today}, nil)

	assignment, err := tm.judge.GetToday(context.Background(), "squad-1")
	require.NoError(t, err)
	assert.Equal(t, "player-1", assignment.UserID)
}

func TestJudge_Assign(t *testing.T) {
	tm := setupTestJudge(t)
	defer tearDownTestJudge(tm)

	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.store.
		EXPECT().
		CreateJudgeAssignment(gomock.Any(), "squad-1", "player-1", today).
		Return(&schema.JudgeAssignment{ID: 3, SquadID: "squad-1", UserID: "player-1", JudgeDate: today}, nil)
	tm.publisher.
		EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.Event) error {
			assert.Equal(t, domain.EventJudgeAssigned, event.Type)
			assert.Equal(t, "2025-06-01", event.Payload["judge_date"])
			return nil
		})

	assignment, err := tm.judge.Assign(context.Background(), "squad-1", "player-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), assignment.ID)
}

func TestJudge_Assign_AlreadyAssigned(t *testing.T) {
	tm := setupTestJudge(t)
	defer tearDownTestJudge(tm)

	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)
	tm.store.
		EXPECT().
		CreateJudgeAssignment(gomock.Any(), "squad-1", "player-2", today).
		Return(nil, domain.ErrJudgeAlreadyAssigned)

	_, err := tm.judge.Assign(context.Background(), "squad-1", "player-2")
	assert.ErrorIs(t, err, domain.ErrJudgeAlreadyAssigned)
	assert.True(t, domain.IsDecline(err))
}

func TestJudge_ApplyBonus(t *testing.T) {
	tm := setupTestJudge(t)
	defer tearDownTestJudge(tm)

	now := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)
	tm.store.
		EXPECT().
		GetJudgeAssignment(gomock.Any(), "squad-1", today).
		Return(&schema.JudgeAssignment{ID: 3, SquadID: "squad-1", UserID: "player-1"}, nil)
	tm.store.
		EXPECT().
		ApplyJudgeBonus(gomock.Any(), int64(3), int64(15)).
		Return(&schema.StarTransaction{Amount: 15, BalanceAfter: 60, Kind: domain.TransactionKindBonus}, nil)

	txn, err := tm.judge.ApplyBonus(context.Background(), "squad-1", 15)
	require.NoError(t, err)
	assert.Equal(t, int64(15), txn.Amount)
}

func TestJudge_ApplyBonus_NoJudge(t *testing.T) {
	tm := setupTestJudge(t)
	defer tearDownTestJudge(tm)

	now := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)
	tm.store.
		EXPECT().
		GetJudgeAssignment(gomock.Any(), "squad-1", today).
		Return(nil, nil)

	_, err := tm.judge.ApplyBonus(context.Background(), "squad-1", 15)
	assert.ErrorIs(t, err, domain.ErrNoJudgeAssigned)
}

func TestJudge_ApplyPenalty(t *testing.T) {
	tm := setupTestJudge(t)
	defer tearDownTestJudge(tm)

	now := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)
	tm.store.
		EXPECT().
		GetJudgeAssignment(gomock.Any(), "squad-1", today).
		Return(&schema.JudgeAssignment{ID: 3, SquadID: "squad-1", UserID: "player-1"}, nil)
	tm.store.
		EXPECT().
		ApplyJudgePenalty(gomock.Any(), int64(3), int64(20)).
		Return(&schema.StarTransaction{Amount: -20, BalanceAfter: 5, Kind: domain.TransactionKindSpend}, nil)

	txn, err := tm.judge.ApplyPenalty(context.Background(), "squad-1", 20)
	require.NoError(t, err)
	assert.Equal(t, int64(-20), txn.Amount)
}

func TestJudge_AmountValidation(t *testing.T) {
	tm := setupTestJudge(t)
	defer tearDownTestJudge(tm)

	_, err := tm.judge.ApplyBonus(context.Background(), "squad-1", 0)
	assert.Error(t, err)

	_, err = tm.judge.ApplyPenalty(context.Background(), "squad-1", -5)
	assert.Error(t, err)
}
