package services

import (
	"context"
	"fmt"
	"wardrobe/internal/models"
	"wardrobe/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdatePreferenceRequest is a partial update; nil fields keep their current value.
type UpdatePreferenceRequest struct {
	Days *int    `json:"noRepeatDays"`
	Mode *string `json:"noRepeatMode"`
}

type PreferenceService struct {
	userRepo       repositories.UserRepository
	preferenceRepo repositories.PreferenceRepository
	db             *gorm.DB
	log            logger.Logger
}

func NewPreferenceService(repos repositories.Repository, db *gorm.DB) *PreferenceService {
	return &PreferenceService{
		userRepo:       repos.User,
		preferenceRepo: repos.Preference,
		db:             db,
		log:            logger.New("preferenceService"),
	}
}

// Resolve returns the user's effective no-repeat policy. A missing row yields
// the defaults; stored values outside the valid range are clamped.
func (s *PreferenceService) Resolve(ctx context.Context, userID uuid.UUID) (models.NoRepeatPolicy, error) {
	log := s.log.TraceFromContext(ctx).Function("Resolve")

	if err := s.requireUser(ctx, userID); err != nil {
		return models.NoRepeatPolicy{}, err
	}

	preference, err := s.preferenceRepo.GetByUserID(ctx, s.db, userID)
	if err != nil {
		return models.NoRepeatPolicy{}, log.Err("failed to load preference", err, "userID", userID)
	}

	if preference == nil {
		return models.DefaultPolicy(userID), nil
	}

	policy := preference.Policy()
	policy.UserID = userID
	if clamped, changed := policy.Clamp(); changed {
		log.Warn(
			"stored no-repeat preference is invalid, clamping",
			"userID", userID,
			"days", policy.Days,
			"mode", policy.Mode,
		)
		policy = clamped
	}

	return policy, nil
}

func (s *PreferenceService) Update(
	ctx context.Context,
	userID uuid.UUID,
	request UpdatePreferenceRequest,
) (models.NoRepeatPolicy, error) {
	log := s.log.TraceFromContext(ctx).Function("Update")

	if request.Days == nil && request.Mode == nil {
		return models.NoRepeatPolicy{}, fmt.Errorf(
			"%w: noRepeatDays or noRepeatMode is required",
			ErrValidation,
		)
	}

	current, err := s.Resolve(ctx, userID)
	if err != nil {
		return models.NoRepeatPolicy{}, err
	}

	next := current
	if request.Days != nil {
		next.Days = *request.Days
	}
	if request.Mode != nil {
		next.Mode = models.NoRepeatMode(*request.Mode)
	}

	if err := next.Validate(); err != nil {
		return models.NoRepeatPolicy{}, err
	}

	if err := s.preferenceRepo.Upsert(ctx, s.db, next.Preference()); err != nil {
		return models.NoRepeatPolicy{}, log.Err("failed to save preference", err, "userID", userID)
	}

	log.Info("No-repeat preference updated", "userID", userID, "days", next.Days, "mode", next.Mode)
	return next, nil
}

// EnsureDefaults writes the default row for a new account. Existing rows are left alone.
func (s *PreferenceService) EnsureDefaults(ctx context.Context, userID uuid.UUID) error {
	log := s.log.TraceFromContext(ctx).Function("EnsureDefaults")

	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}

	created, err := s.preferenceRepo.CreateDefaults(ctx, s.db, userID)
	if err != nil {
		return log.Err("failed to create default preference", err, "userID", userID)
	}

	if created {
		log.Info("Default no-repeat preference created", "userID", userID)
	}
	return nil
}

func (s *PreferenceService) requireUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := s.userRepo.Exists(ctx, s.db, userID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: unknown user %s", ErrInvalidReference, userID)
	}
	return nil
}
