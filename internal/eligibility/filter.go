package eligibility

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"wardrobe/internal/models"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// CandidateOutfit is a recommendation candidate. OutfitID is nil for outfits
// assembled on the fly that were never persisted.
type CandidateOutfit struct {
	OutfitID *uuid.UUID  `json:"outfitId,omitempty"`
	ItemIDs  []uuid.UUID `json:"itemIds"`
	Label    string      `json:"label,omitempty"`
}

type Exclusion struct {
	Candidate CandidateOutfit `json:"candidate"`
	Reason    string          `json:"reason"`
	Cooldowns []Cooldown      `json:"cooldowns"`
}

type FilterResult struct {
	Eligible []CandidateOutfit `json:"eligible"`
	Excluded []Exclusion       `json:"excluded"`
}

type ScoredCandidate struct {
	Candidate CandidateOutfit `json:"candidate"`
	Eligible  bool            `json:"eligible"`
	Penalty   float64         `json:"penalty"`
	Reason    string          `json:"reason,omitempty"`
	Cooldowns []Cooldown      `json:"cooldowns,omitempty"`
}

// Filter partitions candidates into eligible and excluded, preserving input
// order in both lists.
func Filter(
	candidates []CandidateOutfit,
	policy models.NoRepeatPolicy,
	history []*models.WearEvent,
	today time.Time,
) FilterResult {
	return New(policy, history, today).Filter(candidates)
}

// Penalize keeps every candidate and scores it by how much of its cooldown is
// left, from 0 (eligible) to 1 (worn today).
func Penalize(
	candidates []CandidateOutfit,
	policy models.NoRepeatPolicy,
	history []*models.WearEvent,
	today time.Time,
) []ScoredCandidate {
	return New(policy, history, today).Penalize(candidates)
}

func (e *Engine) Filter(candidates []CandidateOutfit) FilterResult {
	result := FilterResult{
		Eligible: make([]CandidateOutfit, 0, len(candidates)),
		Excluded: make([]Exclusion, 0),
	}

	for _, candidate := range candidates {
		cooldowns := e.taint(candidate)
		if len(cooldowns) == 0 {
			result.Eligible = append(result.Eligible, candidate)
			continue
		}

		result.Excluded = append(result.Excluded, Exclusion{
			Candidate: candidate,
			Reason:    e.reason(cooldowns),
			Cooldowns: cooldowns,
		})
	}

	return result
}

func (e *Engine) Penalize(candidates []CandidateOutfit) []ScoredCandidate {
	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		cooldowns := e.taint(candidate)
		entry := ScoredCandidate{
			Candidate: candidate,
			Eligible:  len(cooldowns) == 0,
		}
		if !entry.Eligible {
			entry.Penalty = e.penalty(cooldowns)
			entry.Reason = e.reason(cooldowns)
			entry.Cooldowns = cooldowns
		}
		scored = append(scored, entry)
	}

	slices.SortStableFunc(scored, func(a, b ScoredCandidate) int {
		switch {
		case a.Penalty < b.Penalty:
			return -1
		case a.Penalty > b.Penalty:
			return 1
		}
		return 0
	})

	return scored
}

// taint returns the cooldowns that make a candidate ineligible. In item mode a
// single cooling item taints the outfit; in outfit mode only the outfit's own
// identity is checked.
func (e *Engine) taint(candidate CandidateOutfit) []Cooldown {
	if e.policy.Disabled() {
		return nil
	}

	if e.policy.Mode == models.NoRepeatModeOutfit {
		if candidate.OutfitID == nil {
			return nil
		}
		if cooldown, ok := e.cooldowns[*candidate.OutfitID]; ok {
			return []Cooldown{cooldown}
		}
		return nil
	}

	var cooldowns []Cooldown
	seen := make(map[uuid.UUID]struct{}, len(candidate.ItemIDs))
	for _, itemID := range candidate.ItemIDs {
		if _, dup := seen[itemID]; dup {
			continue
		}
		seen[itemID] = struct{}{}
		if cooldown, ok := e.cooldowns[itemID]; ok {
			cooldowns = append(cooldowns, cooldown)
		}
	}
	return cooldowns
}

func (e *Engine) penalty(cooldowns []Cooldown) float64 {
	if e.policy.Days == 0 {
		return 0
	}

	remaining := 0
	for _, cooldown := range cooldowns {
		remaining = max(remaining, cooldown.RemainingDays)
	}
	return min(float64(remaining)/float64(e.policy.Days), 1)
}

func (e *Engine) reason(cooldowns []Cooldown) string {
	parts := make([]string, 0, len(cooldowns))
	for _, cooldown := range cooldowns {
		parts = append(parts, fmt.Sprintf(
			"%s %s worn on %s, cooldown %d days (eligible again on %s)",
			cooldown.Kind,
			cooldown.CandidateID,
			cooldown.LastWornOn.Format(dateLayout),
			e.policy.Days,
			cooldown.EligibleOn.Format(dateLayout),
		))
	}
	return strings.Join(parts, "; ")
}
