package services

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wardrobe/internal/models"
	"wardrobe/internal/repositories"
	"wardrobe/internal/utils"
	"wardrobe/internal/validation"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LogWearRequest struct {
	OutfitID   *uuid.UUID  `json:"outfitId,omitempty"`
	ItemIDs    []uuid.UUID `json:"itemIds"              validate:"required_without=OutfitID,max=50"`
	Source     string      `json:"source"               validate:"required,oneof=ai_recommendation saved_outfit manual_outfit"`
	OccurredOn string      `json:"occurredOn,omitempty" validate:"omitempty,calendardate"`
	Notes      string      `json:"notes,omitempty"      validate:"max=1000"`
}

type LogWearBatchRequest struct {
	Entries []LogWearRequest `json:"entries" validate:"required,min=1,max=100,dive"`
}

type WearService struct {
	wearRepo     repositories.WearEventRepository
	wardrobeRepo repositories.WardrobeRepository
	transaction  Transactor
	validator    *validation.Validator
	calendar     *utils.Calendar
	db           *gorm.DB
	log          logger.Logger
}

func NewWearService(
	repos repositories.Repository,
	transaction Transactor,
	validator *validation.Validator,
	calendar *utils.Calendar,
	db *gorm.DB,
) *WearService {
	return &WearService{
		wearRepo:     repos.WearEvent,
		wardrobeRepo: repos.Wardrobe,
		transaction:  transaction,
		validator:    validator,
		calendar:     calendar,
		db:           db,
		log:          logger.New("wearService"),
	}
}

// Log records a single wear. When only an outfit is given, the outfit's current
// items are copied onto the event.
func (s *WearService) Log(
	ctx context.Context,
	userID uuid.UUID,
	request LogWearRequest,
) (*models.WearEvent, error) {
	log := s.log.TraceFromContext(ctx).Function("Log")

	if err := s.validator.Validate(request); err != nil {
		return nil, err
	}

	event, err := s.buildEvent(ctx, s.db, userID, request)
	if err != nil {
		return nil, err
	}

	if err := s.wearRepo.Create(ctx, s.db, event); err != nil {
		return nil, log.Err("failed to log wear", err, "userID", userID)
	}

	log.Info(
		"Wear logged",
		"userID", userID,
		"eventID", event.ID,
		"occurredOn", event.OccurredOn.Format(time.DateOnly),
		"source", event.Source,
		"items", len(event.ItemIDs),
	)
	return event, nil
}

// LogBatch records several wears atomically, as sent by a device catching up
// after being offline. Either every entry is stored or none is.
func (s *WearService) LogBatch(
	ctx context.Context,
	userID uuid.UUID,
	request LogWearBatchRequest,
) ([]*models.WearEvent, error) {
	log := s.log.TraceFromContext(ctx).Function("LogBatch")

	if err := s.validator.Validate(request); err != nil {
		return nil, err
	}

	events := make([]*models.WearEvent, 0, len(request.Entries))
	err := s.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		for i, entry := range request.Entries {
			event, err := s.buildEvent(ctx, tx, userID, entry)
			if err != nil {
				return fmt.Errorf("entries[%d]: %w", i, err)
			}
			events = append(events, event)
		}
		return s.wearRepo.CreateBatch(ctx, tx, events)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Wear batch logged", "userID", userID, "count", len(events))
	return events, nil
}

// Retract soft-deletes a wear so it stops counting toward any cooldown.
func (s *WearService) Retract(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) error {
	log := s.log.TraceFromContext(ctx).Function("Retract")

	err := s.wearRepo.SoftDelete(ctx, s.db, userID, eventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: wear event %s", ErrNotFound, eventID)
	}
	if err != nil {
		return log.Err("failed to retract wear", err, "userID", userID, "eventID", eventID)
	}

	log.Info("Wear retracted", "userID", userID, "eventID", eventID)
	return nil
}

// List returns live wear events between since and until inclusive. Zero bounds
// are open.
func (s *WearService) List(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
	until time.Time,
) ([]*models.WearEvent, error) {
	if !since.IsZero() && !until.IsZero() && until.Before(since) {
		return nil, fmt.Errorf("%w: until must not be before since", ErrValidation)
	}

	events, err := s.wearRepo.ListRange(ctx, s.db, userID, since, until)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []*models.WearEvent{}
	}
	return events, nil
}

func (s *WearService) buildEvent(
	ctx context.Context,
	tx *gorm.DB,
	userID uuid.UUID,
	request LogWearRequest,
) (*models.WearEvent, error) {
	occurredOn, err := s.calendar.DateOrToday(request.OccurredOn)
	if err != nil {
		return nil, fmt.Errorf("%w: occurredOn %v", ErrValidation, err)
	}
	if s.calendar.IsFuture(occurredOn) {
		return nil, fmt.Errorf(
			"%w: occurredOn %s is after today",
			ErrValidation,
			utils.FormatDate(occurredOn),
		)
	}

	itemIDs := models.UniqueItemIDs(request.ItemIDs)

	if request.OutfitID != nil {
		outfit, err := s.wardrobeRepo.GetOutfit(ctx, tx, userID, *request.OutfitID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unknown outfit %s", ErrInvalidReference, *request.OutfitID)
		}
		if err != nil {
			return nil, err
		}
		if len(itemIDs) == 0 {
			itemIDs = models.UniqueItemIDs(outfit.ItemIDs)
		}
	}

	if len(itemIDs) == 0 {
		return nil, fmt.Errorf("%w: itemIds must reference at least one item", ErrValidation)
	}

	owned, err := s.wardrobeRepo.CountOwnedItems(ctx, tx, userID, itemIDs)
	if err != nil {
		return nil, err
	}
	if owned != int64(len(itemIDs)) {
		return nil, fmt.Errorf(
			"%w: %d of %d items are not owned by the user",
			ErrInvalidReference,
			int64(len(itemIDs))-owned,
			len(itemIDs),
		)
	}

	return &models.WearEvent{
		UserID:     userID,
		OccurredOn: occurredOn,
		OutfitID:   request.OutfitID,
		Source:     models.WearSource(request.Source),
		ItemIDs:    itemIDs,
		Notes:      utils.CleanText(request.Notes),
	}, nil
}
