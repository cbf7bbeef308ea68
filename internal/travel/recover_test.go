package travel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partysheet/internal/game"
)

func TestPlanRecovery(t *testing.T) {
	a := &game.Actor{
		Attributes: map[string]game.Attribute{
			game.AttributeStrength: {Value: 0, Max: 5},
			game.AttributeAgility:  {Value: 3, Max: 5},
			game.AttributeWits:     {Value: 4, Max: 4},
		},
		Conditions: game.Conditions{Sleepless: true},
	}

	rest := PlanRecovery(a, false)
	assert.True(t, rest.Broken)
	assert.Equal(t, map[string]int{game.AttributeAgility: 5}, rest.Attributes)
	assert.False(t, rest.ClearSleepless)
	assert.True(t, rest.Changed())

	sleep := PlanRecovery(a, true)
	assert.True(t, sleep.ClearSleepless)

	rest.Apply(a)
	assert.Equal(t, 0, a.Attributes[game.AttributeStrength].Value)
	assert.Equal(t, 5, a.Attributes[game.AttributeAgility].Value)
	assert.Equal(t, 4, a.Attributes[game.AttributeWits].Value)
	assert.True(t, a.Conditions.Sleepless)
}

func TestRecover_BrokenCharacter(t *testing.T) {
	ylva := &game.Actor{
		ID:     "ylva",
		Name:   "Ylva",
		Owners: []string{"anna"},
		Attributes: map[string]game.Attribute{
			game.AttributeStrength: {Value: 0, Max: 5},
			game.AttributeAgility:  {Value: 3, Max: 5},
		},
	}
	h := newHarness(ylva)

	res, err := h.d.Press(context.Background(), h.context(player("anna", "ylva")), party(nil), ActionRest, "travel-rest")
	require.NoError(t, err)
	assert.Equal(t, StatusRecovered, res.Status)

	require.Len(t, h.actors.updates, 1)
	saved := h.actors.updates[0]
	assert.Equal(t, 0, saved.Attributes[game.AttributeStrength].Value)
	assert.Equal(t, 5, saved.Attributes[game.AttributeAgility].Value)

	require.Len(t, h.chat.messages, 1)
	assert.Equal(t, "FLPS.CHAT.BROKEN|Ylva", h.chat.messages[0].Content)
	assert.Equal(t, "Rest", h.chat.messages[0].Journal)
}

func TestRecover_Messages(t *testing.T) {
	cases := []struct {
		name      string
		attr      game.Attribute
		sleepless bool
		action    string
		button    string
		updates   int
		message   string
	}{
		{"already rested", game.Attribute{Value: 4, Max: 4}, false, ActionRest, "travel-rest", 0, "FLPS.CHAT.WELL_RESTED|Ylva"},
		{"recovers", game.Attribute{Value: 2, Max: 4}, false, ActionRest, "travel-rest", 1, "FLPS.CHAT.RECOVERED|Ylva"},
		{"rest keeps sleepless", game.Attribute{Value: 4, Max: 4}, true, ActionRest, "travel-rest", 0, "FLPS.CHAT.WELL_RESTED|Ylva"},
		{"sleep clears sleepless", game.Attribute{Value: 4, Max: 4}, true, ActionSleep, "travel-sleep", 1, "FLPS.CHAT.RECOVERED|Ylva"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ylva := &game.Actor{
				ID:         "ylva",
				Name:       "Ylva",
				Owners:     []string{"anna"},
				Attributes: map[string]game.Attribute{game.AttributeWits: tc.attr},
				Conditions: game.Conditions{Sleepless: tc.sleepless},
			}
			h := newHarness(ylva)

			_, err := h.d.Press(context.Background(), h.context(player("anna", "ylva")), party(nil), tc.action, tc.button)
			require.NoError(t, err)
			assert.Len(t, h.actors.updates, tc.updates)
			require.Len(t, h.chat.messages, 1)
			assert.Equal(t, tc.message, h.chat.messages[0].Content)
			if tc.action == ActionSleep {
				assert.False(t, h.actors.actors["ylva"].Conditions.Sleepless)
			}
		})
	}
}

func TestRecover_NoCharacter(t *testing.T) {
	h := newHarness()
	res, err := h.d.Press(context.Background(), h.context(player("cai", "")), party(nil), ActionSleep, "travel-sleep")
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, res.Status)
	assert.Empty(t, h.chat.messages)
}
