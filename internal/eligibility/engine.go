package eligibility

import (
	"bytes"
	"time"
	"wardrobe/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
)

type CandidateKind string

const (
	KindItem   CandidateKind = "item"
	KindOutfit CandidateKind = "outfit"
)

// Cooldown describes why a candidate is currently ineligible, based on its most
// recent wear inside the window.
type Cooldown struct {
	CandidateID   uuid.UUID         `json:"candidateId"`
	Kind          CandidateKind     `json:"kind"`
	LastWornOn    time.Time         `json:"lastWornOn"`
	EligibleOn    time.Time         `json:"eligibleOn"`
	RemainingDays int               `json:"remainingDays"`
	EventID       uuid.UUID         `json:"eventId"`
	Source        models.WearSource `json:"source"`
}

// Engine answers eligibility queries for one policy, history snapshot and
// reference date. The history is scanned once in New.
type Engine struct {
	policy    models.NoRepeatPolicy
	today     time.Time
	cutoff    time.Time
	cooldowns map[uuid.UUID]Cooldown
}

func New(
	policy models.NoRepeatPolicy,
	history []*models.WearEvent,
	today time.Time,
) *Engine {
	log := logger.New("eligibility").Function("New")

	clamped, changed := policy.Clamp()
	if changed {
		log.Warn(
			"no-repeat policy out of range, clamping",
			"userID", policy.UserID,
			"days", policy.Days,
			"mode", policy.Mode,
			"clampedDays", clamped.Days,
			"clampedMode", clamped.Mode,
		)
	}

	today = models.DateOf(today)
	e := &Engine{
		policy:    clamped,
		today:     today,
		cutoff:    today.AddDate(0, 0, -clamped.Days),
		cooldowns: make(map[uuid.UUID]Cooldown),
	}

	if clamped.Disabled() {
		return e
	}

	for _, event := range history {
		if !e.counts(event) {
			continue
		}

		switch clamped.Mode {
		case models.NoRepeatModeOutfit:
			if event.OutfitID != nil {
				e.record(*event.OutfitID, KindOutfit, event)
			}
		default:
			for _, itemID := range event.ItemIDs {
				e.record(itemID, KindItem, event)
			}
		}
	}

	return e
}

// counts reports whether an event falls inside (cutoff, ∞). Dates after today
// still count, a future-dated wear never makes something eligible again.
func (e *Engine) counts(event *models.WearEvent) bool {
	if event == nil || event.IsRetracted() {
		return false
	}
	if event.UserID != uuid.Nil && e.policy.UserID != uuid.Nil && event.UserID != e.policy.UserID {
		return false
	}
	return models.DateOf(event.OccurredOn).After(e.cutoff)
}

func (e *Engine) record(candidateID uuid.UUID, kind CandidateKind, event *models.WearEvent) {
	wornOn := models.DateOf(event.OccurredOn)

	existing, ok := e.cooldowns[candidateID]
	if ok {
		if wornOn.Before(existing.LastWornOn) {
			return
		}
		if wornOn.Equal(existing.LastWornOn) &&
			bytes.Compare(event.ID[:], existing.EventID[:]) >= 0 {
			return
		}
	}

	eligibleOn := wornOn.AddDate(0, 0, e.policy.Days)
	e.cooldowns[candidateID] = Cooldown{
		CandidateID:   candidateID,
		Kind:          kind,
		LastWornOn:    wornOn,
		EligibleOn:    eligibleOn,
		RemainingDays: daysBetween(e.today, eligibleOn),
		EventID:       event.ID,
		Source:        event.Source,
	}
}

func (e *Engine) IsEligible(candidate uuid.UUID) bool {
	_, cooling := e.cooldowns[candidate]
	return !cooling
}

func (e *Engine) Cooldown(candidate uuid.UUID) (Cooldown, bool) {
	cooldown, ok := e.cooldowns[candidate]
	return cooldown, ok
}

// IneligibleSet returns the cooldown of every candidate that is not eligible.
func (e *Engine) IneligibleSet(candidates []uuid.UUID) map[uuid.UUID]Cooldown {
	ineligible := make(map[uuid.UUID]Cooldown)
	for _, candidate := range candidates {
		if cooldown, ok := e.cooldowns[candidate]; ok {
			ineligible[candidate] = cooldown
		}
	}
	return ineligible
}

func (e *Engine) Policy() models.NoRepeatPolicy {
	return e.policy
}

func (e *Engine) Today() time.Time {
	return e.today
}

// Cutoff is the last date that no longer counts toward a cooldown.
func (e *Engine) Cutoff() time.Time {
	return e.cutoff
}

func IsEligible(
	candidate uuid.UUID,
	policy models.NoRepeatPolicy,
	history []*models.WearEvent,
	today time.Time,
) bool {
	return New(policy, history, today).IsEligible(candidate)
}

func ComputeIneligibleSet(
	candidates []uuid.UUID,
	policy models.NoRepeatPolicy,
	history []*models.WearEvent,
	today time.Time,
) map[uuid.UUID]Cooldown {
	return New(policy, history, today).IneligibleSet(candidates)
}

// HistorySince is the earliest occurred_on a collaborator must return for the
// policy to be evaluated at today. The zero time means no history is needed.
func HistorySince(policy models.NoRepeatPolicy, today time.Time) time.Time {
	clamped, _ := policy.Clamp()
	if clamped.Disabled() {
		return time.Time{}
	}
	return models.DateOf(today).AddDate(0, 0, -clamped.Days+1)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
