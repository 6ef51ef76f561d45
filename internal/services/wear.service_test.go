package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
	"wardrobe/internal/models"
	"wardrobe/internal/utils"
	"wardrobe/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newWearService(repos mockRepos, transaction Transactor) *WearService {
	calendar := utils.NewCalendar(time.UTC).WithClock(func() time.Time {
		return today.Add(18 * time.Hour)
	})
	return NewWearService(repos.repository(), transaction, validation.New(), calendar, nil)
}

func TestWearService_LogItems(t *testing.T) {
	userID := uuid.New()
	shirt, jeans := uuid.New(), uuid.New()

	repos := newMockRepos()
	repos.wardrobe.On("CountOwnedItems", mock.Anything, mock.Anything, userID, []uuid.UUID{shirt, jeans}).
		Return(int64(2), nil)
	repos.wear.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(e *models.WearEvent) bool {
		return e.UserID == userID &&
			e.OccurredOn.Equal(daysAgo(1)) &&
			e.Source == models.WearSourceManualOutfit &&
			e.Notes == "rainy day"
	})).Return(nil)

	event, err := newWearService(repos, &fakeTransactor{}).Log(context.Background(), userID, LogWearRequest{
		ItemIDs:    []uuid.UUID{shirt, jeans, shirt},
		Source:     "manual_outfit",
		OccurredOn: "2026-10-13",
		Notes:      "  rainy day ",
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{shirt, jeans}, []uuid.UUID(event.ItemIDs))
	assert.Nil(t, event.OutfitID)
	repos.assertExpectations(t)
}

func TestWearService_LogOutfitCopiesItems(t *testing.T) {
	userID := uuid.New()
	shirt, jeans := uuid.New(), uuid.New()
	outfit := &models.Outfit{
		BaseUUIDModel: models.BaseUUIDModel{ID: uuid.New()},
		UserID:        userID,
		Name:          "Office",
		ItemIDs:       []uuid.UUID{shirt, jeans},
	}

	repos := newMockRepos()
	repos.wardrobe.On("GetOutfit", mock.Anything, mock.Anything, userID, outfit.ID).Return(outfit, nil)
	repos.wardrobe.On("CountOwnedItems", mock.Anything, mock.Anything, userID, []uuid.UUID{shirt, jeans}).
		Return(int64(2), nil)
	repos.wear.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	event, err := newWearService(repos, &fakeTransactor{}).Log(context.Background(), userID, LogWearRequest{
		OutfitID: &outfit.ID,
		Source:   "saved_outfit",
	})
	require.NoError(t, err)
	assert.Equal(t, outfit.ID, *event.OutfitID)
	assert.Equal(t, []uuid.UUID{shirt, jeans}, []uuid.UUID(event.ItemIDs))
	assert.Equal(t, today, event.OccurredOn)
	assert.Equal(t, models.WearSourceSavedOutfit, event.Source)
}

func TestWearService_LogRejects(t *testing.T) {
	userID := uuid.New()
	item := uuid.New()
	unknownOutfit := uuid.New()

	tests := []struct {
		name        string
		request     LogWearRequest
		setup       func(repos mockRepos)
		expectedErr error
	}{
		{
			name:        "no items and no outfit",
			request:     LogWearRequest{Source: "manual_outfit"},
			expectedErr: ErrValidation,
		},
		{
			name:        "unknown source",
			request:     LogWearRequest{ItemIDs: []uuid.UUID{item}, Source: "borrowed"},
			expectedErr: ErrValidation,
		},
		{
			name:        "bad date",
			request:     LogWearRequest{ItemIDs: []uuid.UUID{item}, Source: "manual_outfit", OccurredOn: "2026-13-01"},
			expectedErr: ErrValidation,
		},
		{
			name:        "future date",
			request:     LogWearRequest{ItemIDs: []uuid.UUID{item}, Source: "manual_outfit", OccurredOn: "2026-10-15"},
			expectedErr: ErrValidation,
		},
		{
			name: "notes too long",
			request: LogWearRequest{
				ItemIDs: []uuid.UUID{item},
				Source:  "manual_outfit",
				Notes:   string(make([]byte, 1001)),
			},
			expectedErr: ErrValidation,
		},
		{
			name:    "item not owned",
			request: LogWearRequest{ItemIDs: []uuid.UUID{item}, Source: "manual_outfit"},
			setup: func(repos mockRepos) {
				repos.wardrobe.On("CountOwnedItems", mock.Anything, mock.Anything, userID, []uuid.UUID{item}).
					Return(int64(0), nil)
			},
			expectedErr: ErrInvalidReference,
		},
		{
			name:    "outfit not owned",
			request: LogWearRequest{OutfitID: &unknownOutfit, Source: "saved_outfit"},
			setup: func(repos mockRepos) {
				repos.wardrobe.On("GetOutfit", mock.Anything, mock.Anything, userID, unknownOutfit).
					Return(nil, gorm.ErrRecordNotFound)
			},
			expectedErr: ErrInvalidReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := newMockRepos()
			if tt.setup != nil {
				tt.setup(repos)
			}

			_, err := newWearService(repos, &fakeTransactor{}).Log(context.Background(), userID, tt.request)
			assert.ErrorIs(t, err, tt.expectedErr)
			repos.wear.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestWearService_LogBatch(t *testing.T) {
	userID := uuid.New()
	shirt, jeans := uuid.New(), uuid.New()

	repos := newMockRepos()
	repos.wardrobe.On("CountOwnedItems", mock.Anything, mock.Anything, userID, mock.Anything).Return(int64(1), nil)
	repos.wear.On("CreateBatch", mock.Anything, mock.Anything, mock.MatchedBy(func(events []*models.WearEvent) bool {
		return len(events) == 2
	})).Return(nil)

	transaction := &fakeTransactor{}
	events, err := newWearService(repos, transaction).LogBatch(context.Background(), userID, LogWearBatchRequest{
		Entries: []LogWearRequest{
			{ItemIDs: []uuid.UUID{shirt}, Source: "ai_recommendation", OccurredOn: "2026-10-12"},
			{ItemIDs: []uuid.UUID{jeans}, Source: "manual_outfit", OccurredOn: "2026-10-13"},
		},
	})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 1, transaction.calls)
	assert.Equal(t, daysAgo(2), events[0].OccurredOn)
	assert.Equal(t, models.WearSourceAIRecommendation, events[0].Source)
	repos.assertExpectations(t)
}

func TestWearService_LogBatchFailsAtomically(t *testing.T) {
	userID := uuid.New()
	owned, foreign := uuid.New(), uuid.New()

	repos := newMockRepos()
	repos.wardrobe.On("CountOwnedItems", mock.Anything, mock.Anything, userID, []uuid.UUID{owned}).Return(int64(1), nil)
	repos.wardrobe.On("CountOwnedItems", mock.Anything, mock.Anything, userID, []uuid.UUID{foreign}).Return(int64(0), nil)

	_, err := newWearService(repos, &fakeTransactor{}).LogBatch(context.Background(), userID, LogWearBatchRequest{
		Entries: []LogWearRequest{
			{ItemIDs: []uuid.UUID{owned}, Source: "manual_outfit"},
			{ItemIDs: []uuid.UUID{foreign}, Source: "manual_outfit"},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.Contains(t, err.Error(), "entries[1]")
	repos.wear.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestWearService_LogBatchValidation(t *testing.T) {
	service := newWearService(newMockRepos(), &fakeTransactor{})

	_, err := service.LogBatch(context.Background(), uuid.New(), LogWearBatchRequest{})
	assert.ErrorIs(t, err, ErrValidation)

	var fieldsErr *validation.FieldsError
	_, err = service.LogBatch(context.Background(), uuid.New(), LogWearBatchRequest{
		Entries: []LogWearRequest{{ItemIDs: []uuid.UUID{uuid.New()}, Source: "gift"}},
	})
	require.True(t, errors.As(err, &fieldsErr))
	assert.Contains(t, fieldsErr.Fields, "entries[0].source")
}

func TestWearService_Retract(t *testing.T) {
	userID := uuid.New()
	eventID := uuid.New()

	tests := []struct {
		name        string
		repoErr     error
		expectedErr error
	}{
		{name: "retracted"},
		{name: "missing", repoErr: gorm.ErrRecordNotFound, expectedErr: ErrNotFound},
		{name: "store failure", repoErr: fmt.Errorf("disk full")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := newMockRepos()
			repos.wear.On("SoftDelete", mock.Anything, mock.Anything, userID, eventID).Return(tt.repoErr)

			err := newWearService(repos, &fakeTransactor{}).Retract(context.Background(), userID, eventID)
			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.repoErr != nil:
				assert.Equal(t, tt.repoErr, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestWearService_List(t *testing.T) {
	userID := uuid.New()
	repos := newMockRepos()
	repos.wear.On("ListRange", mock.Anything, mock.Anything, userID, daysAgo(7), today).Return(nil, nil)

	service := newWearService(repos, &fakeTransactor{})
	events, err := service.List(context.Background(), userID, daysAgo(7), today)
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)

	_, err = service.List(context.Background(), userID, today, daysAgo(1))
	assert.ErrorIs(t, err, ErrValidation)
}
