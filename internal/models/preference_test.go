package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoRepeatPolicy_Validate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name        string
		policy      NoRepeatPolicy
		expectError bool
	}{
		{name: "defaults", policy: DefaultPolicy(userID)},
		{name: "disabled", policy: NoRepeatPolicy{UserID: userID, Days: 0, Mode: NoRepeatModeItem}},
		{name: "upper bound outfit", policy: NoRepeatPolicy{UserID: userID, Days: 180, Mode: NoRepeatModeOutfit}},
		{name: "negative days", policy: NoRepeatPolicy{UserID: userID, Days: -1, Mode: NoRepeatModeItem}, expectError: true},
		{name: "above max", policy: NoRepeatPolicy{UserID: userID, Days: 181, Mode: NoRepeatModeItem}, expectError: true},
		{name: "unknown mode", policy: NoRepeatPolicy{UserID: userID, Days: 7, Mode: "garment"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNoRepeatPolicy_Clamp(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		policy   NoRepeatPolicy
		expected NoRepeatPolicy
		changed  bool
	}{
		{
			name:     "valid unchanged",
			policy:   NoRepeatPolicy{UserID: userID, Days: 14, Mode: NoRepeatModeOutfit},
			expected: NoRepeatPolicy{UserID: userID, Days: 14, Mode: NoRepeatModeOutfit},
		},
		{
			name:     "negative clamps to zero",
			policy:   NoRepeatPolicy{UserID: userID, Days: -3, Mode: NoRepeatModeItem},
			expected: NoRepeatPolicy{UserID: userID, Days: 0, Mode: NoRepeatModeItem},
			changed:  true,
		},
		{
			name:     "large clamps to max",
			policy:   NoRepeatPolicy{UserID: userID, Days: 400, Mode: NoRepeatModeItem},
			expected: NoRepeatPolicy{UserID: userID, Days: 180, Mode: NoRepeatModeItem},
			changed:  true,
		},
		{
			name:     "unknown mode becomes item",
			policy:   NoRepeatPolicy{UserID: userID, Days: 7, Mode: ""},
			expected: NoRepeatPolicy{UserID: userID, Days: 7, Mode: NoRepeatModeItem},
			changed:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clamped, changed := tt.policy.Clamp()
			assert.Equal(t, tt.expected, clamped)
			assert.Equal(t, tt.changed, changed)
			assert.NoError(t, clamped.Validate())
		})
	}
}

func TestPreference_DefaultsAndPolicy(t *testing.T) {
	userID := uuid.New()

	pref := &Preference{UserID: userID}
	require.NoError(t, pref.BeforeCreate(nil))
	assert.Equal(t, DefaultPolicy(userID), pref.Policy())

	zero := 0
	mode := NoRepeatModeOutfit
	explicit := &Preference{UserID: userID, NoRepeatDays: &zero, NoRepeatMode: &mode}
	require.NoError(t, explicit.BeforeCreate(nil))
	assert.Equal(t, NoRepeatPolicy{UserID: userID, Days: 0, Mode: NoRepeatModeOutfit}, explicit.Policy())
	assert.True(t, explicit.Policy().Disabled())

	assert.Error(t, (&Preference{}).BeforeCreate(nil))
}

func TestNoRepeatPolicy_PreferenceRoundTrip(t *testing.T) {
	policy := NoRepeatPolicy{UserID: uuid.New(), Days: 30, Mode: NoRepeatModeOutfit}
	assert.Equal(t, policy, policy.Preference().Policy())
}
