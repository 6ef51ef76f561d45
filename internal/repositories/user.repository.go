package repositories

import (
	"context"
	"errors"
	"time"
	"wardrobe/internal/database"
	. "wardrobe/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	USER_CACHE_EXPIRY = 7 * 24 * time.Hour
	USER_CACHE_PREFIX = "user"
)

type UserRepository interface {
	GetByID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*User, error)
	Exists(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (bool, error)
	Create(ctx context.Context, tx *gorm.DB, user *User) error
	ClearUserCache(ctx context.Context, userID uuid.UUID) error
}

type userRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewUserRepository(cache database.CacheClient) UserRepository {
	return &userRepository{
		cache: cache,
		log:   logger.New("userRepository"),
	}
}

func (r *userRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
) (*User, error) {
	log := r.log.Function("GetByID")

	var cached User
	found, err := database.NewCacheBuilder(r.cache, userID).
		WithContext(ctx).
		WithHash(USER_CACHE_PREFIX).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get user from cache", "userID", userID, "error", err)
	}

	if found {
		return &cached, nil
	}

	user, err := gorm.G[User](tx).Where("id = ?", userID).First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, log.Err("failed to get user", err, "userID", userID)
	}

	err = database.NewCacheBuilder(r.cache, userID).
		WithContext(ctx).
		WithHash(USER_CACHE_PREFIX).
		WithStruct(user).
		WithTTL(USER_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to set user in cache", "userID", userID, "error", err)
	}

	return &user, nil
}

// Exists reports whether userID resolves to an active user.
func (r *userRepository) Exists(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, nil
	}

	user, err := r.GetByID(ctx, tx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return user.IsActive, nil
}

func (r *userRepository) Create(ctx context.Context, tx *gorm.DB, user *User) error {
	log := r.log.Function("Create")

	if err := gorm.G[User](tx).Create(ctx, user); err != nil {
		return log.Err("failed to create user", err, "displayName", user.DisplayName)
	}

	return nil
}

func (r *userRepository) ClearUserCache(ctx context.Context, userID uuid.UUID) error {
	return database.NewCacheBuilder(r.cache, userID).
		WithContext(ctx).
		WithHash(USER_CACHE_PREFIX).
		Delete()
}
