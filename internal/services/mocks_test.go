package services

import (
	"context"
	"time"
	"wardrobe/internal/models"
	"wardrobe/internal/repositories"

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
	args := m.Called(ctx, tx, user)
	return args.Error(0)
}

func (m *MockUserRepository) ClearUserCache(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) GetByUserID(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
) (*models.Preference, error) {
	args := m.Called(ctx, tx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Preference), args.Error(1)
}

func (m *MockPreferenceRepository) Upsert(ctx context.Context, tx *gorm.DB, preference *models.Preference) error {
	args := m.Called(ctx, tx, preference)
	return args.Error(0)
}

func (m *MockPreferenceRepository) CreateDefaults(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, tx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPreferenceRepository) ClearCache(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockWearEventRepository struct {
	mock.Mock
}

func (m *MockWearEventRepository) Create(ctx context.Context, tx *gorm.DB, event *models.WearEvent) error {
	args := m.Called(ctx, tx, event)
	return args.Error(0)
}

func (m *MockWearEventRepository) CreateBatch(ctx context.Context, tx *gorm.DB, events []*models.WearEvent) error {
	args := m.Called(ctx, tx, events)
	return args.Error(0)
}

func (m *MockWearEventRepository) ListSince(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
	since time.Time,
) ([]*models.WearEvent, error) {
	args := m.Called(ctx, tx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.WearEvent), args.Error(1)
}

func (m *MockWearEventRepository) ListRange(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
	since time.Time,
	until time.Time,
) ([]*models.WearEvent, error) {
	args := m.Called(ctx, tx, userID, since, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.WearEvent), args.Error(1)
}

func (m *MockWearEventRepository) SoftDelete(ctx context.Context, tx *gorm.DB, userID uuid.UUID, eventID uuid.UUID) error {
	args := m.Called(ctx, tx, userID, eventID)
	return args.Error(0)
}

func (m *MockWearEventRepository) PurgeDeletedBefore(ctx context.Context, tx *gorm.DB, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, tx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWearEventRepository) ClearCache(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockWardrobeRepository struct {
	mock.Mock
}

func (m *MockWardrobeRepository) CreateItem(ctx context.Context, tx *gorm.DB, item *models.Item) error {
	args := m.Called(ctx, tx, item)
	return args.Error(0)
}

func (m *MockWardrobeRepository) CreateOutfit(ctx context.Context, tx *gorm.DB, outfit *models.Outfit) error {
	args := m.Called(ctx, tx, outfit)
	return args.Error(0)
}

func (m *MockWardrobeRepository) GetOutfit(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
	outfitID uuid.UUID,
) (*models.Outfit, error) {
	args := m.Called(ctx, tx, userID, outfitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Outfit), args.Error(1)
}

func (m *MockWardrobeRepository) ListOutfits(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*models.Outfit, error) {
	args := m.Called(ctx, tx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Outfit), args.Error(1)
}

func (m *MockWardrobeRepository) CountOwnedItems(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
	ids []uuid.UUID,
) (int64, error) {
	args := m.Called(ctx, tx, userID, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWardrobeRepository) CountOwnedOutfits(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
	ids []uuid.UUID,
) (int64, error) {
	args := m.Called(ctx, tx, userID, ids)
	return args.Get(0).(int64), args.Error(1)
}

// fakeTransactor runs fn directly with the provided handle.
type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) Execute(ctx context.Context, fn func(context.Context, *gorm.DB) error) error {
	f.calls++
	return fn(ctx, nil)
}

type mockRepos struct {
	user       *MockUserRepository
	preference *MockPreferenceRepository
	wear       *MockWearEventRepository
	wardrobe   *MockWardrobeRepository
}

func newMockRepos() mockRepos {
	return mockRepos{
		user:       new(MockUserRepository),
		preference: new(MockPreferenceRepository),
		wear:       new(MockWearEventRepository),
		wardrobe:   new(MockWardrobeRepository),
	}
}

func (m mockRepos) repository() repositories.Repository {
	return repositories.Repository{
		User:       m.user,
		Preference: m.preference,
		WearEvent:  m.wear,
		Wardrobe:   m.wardrobe,
	}
}

func (m mockRepos) assertExpectations(t mock.TestingT) {
	m.user.AssertExpectations(t)
	m.preference.AssertExpectations(t)
	m.wear.AssertExpectations(t)
	m.wardrobe.AssertExpectations(t)
}
