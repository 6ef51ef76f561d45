package handlers

import (
	"context"
	"wardrobe/internal/eligibility"
	"wardrobe/internal/models"
	"wardrobe/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, tx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, tx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, tx *gorm.DB, user *models.User) error {
	return m.Called(ctx, tx, user).Error(0)
}

func (m *MockUserRepository) ClearUserCache(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

type MockPreferenceController struct {
	mock.Mock
}

func (m *MockPreferenceController) GetNoRepeat(ctx context.Context, user *models.User) (models.NoRepeatPolicy, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(models.NoRepeatPolicy), args.Error(1)
}

func (m *MockPreferenceController) UpdateNoRepeat(
	ctx context.Context,
	user *models.User,
	request *services.UpdatePreferenceRequest,
) (models.NoRepeatPolicy, error) {
	args := m.Called(ctx, user, request)
	return args.Get(0).(models.NoRepeatPolicy), args.Error(1)
}

func (m *MockPreferenceController) EnsureDefaults(ctx context.Context, user *models.User) (models.NoRepeatPolicy, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(models.NoRepeatPolicy), args.Error(1)
}

type MockWearController struct {
	mock.Mock
}

func (m *MockWearController) LogWear(
	ctx context.Context,
	user *models.User,
	request *services.LogWearRequest,
) (*models.WearEvent, error) {
	args := m.Called(ctx, user, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WearEvent), args.Error(1)
}

func (m *MockWearController) LogWearBatch(
	ctx context.Context,
	user *models.User,
	request *services.LogWearBatchRequest,
) ([]*models.WearEvent, error) {
	args := m.Called(ctx, user, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.WearEvent), args.Error(1)
}

func (m *MockWearController) ListWear(
	ctx context.Context,
	user *models.User,
	since string,
	until string,
) ([]*models.WearEvent, error) {
	args := m.Called(ctx, user, since, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.WearEvent), args.Error(1)
}

func (m *MockWearController) RetractWear(ctx context.Context, user *models.User, eventID uuid.UUID) error {
	return m.Called(ctx, user, eventID).Error(0)
}

type MockWardrobeController struct {
	mock.Mock
}

func (m *MockWardrobeController) CreateItem(
	ctx context.Context,
	user *models.User,
	request *services.CreateItemRequest,
) (*models.Item, error) {
	args := m.Called(ctx, user, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockWardrobeController) CreateOutfit(
	ctx context.Context,
	user *models.User,
	request *services.CreateOutfitRequest,
) (*models.Outfit, error) {
	args := m.Called(ctx, user, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Outfit), args.Error(1)
}

func (m *MockWardrobeController) ListOutfits(ctx context.Context, user *models.User) ([]*models.Outfit, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Outfit), args.Error(1)
}

type MockEligibilityController struct {
	mock.Mock
}

func (m *MockEligibilityController) Check(
	ctx context.Context,
	user *models.User,
	request *services.CheckRequest,
	date string,
) (*services.CheckResult, error) {
	args := m.Called(ctx, user, request, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.CheckResult), args.Error(1)
}

func (m *MockEligibilityController) Filter(
	ctx context.Context,
	user *models.User,
	request *services.FilterRequest,
	date string,
) (*eligibility.FilterResult, error) {
	args := m.Called(ctx, user, request, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*eligibility.FilterResult), args.Error(1)
}

func (m *MockEligibilityController) Rank(
	ctx context.Context,
	user *models.User,
	request *services.FilterRequest,
	date string,
) ([]eligibility.ScoredCandidate, error) {
	args := m.Called(ctx, user, request, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]eligibility.ScoredCandidate), args.Error(1)
}

func (m *MockEligibilityController) SavedOutfits(
	ctx context.Context,
	user *models.User,
	date string,
) (*eligibility.FilterResult, error) {
	args := m.Called(ctx, user, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*eligibility.FilterResult), args.Error(1)
}
