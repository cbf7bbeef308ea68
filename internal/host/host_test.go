package host

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partysheet/internal/game"
	"partysheet/internal/travel"
)

func testRoster() *game.Roster {
	return &game.Roster{
		Users: []game.User{
			{ID: "anna", Name: "Anna", CharacterID: "ylva"},
			{ID: "gm", Name: "Game Master", Role: game.RoleGamemaster},
		},
		Actors: []game.Actor{
			{ID: "ylva", Name: "Ylva", Owners: []string{"anna"}, Attributes: map[string]game.Attribute{
				game.AttributeWits: {Value: 2, Max: 3},
			}},
			{ID: "borr", Name: "Borr"},
		},
		Parties: []game.Party{{ID: "wolves", Name: "The Wolves"}},
	}
}

func TestRegistry_ReadsAreCopies(t *testing.T) {
	reg := NewRegistry(testRoster())
	ctx := context.Background()

	a, ok, err := reg.Actor(ctx, "ylva")
	require.NoError(t, err)
	require.True(t, ok)
	a.Attributes[game.AttributeWits] = game.Attribute{Value: 3, Max: 3}

	again, _, _ := reg.Actor(ctx, "ylva")
	assert.Equal(t, 2, again.Attributes[game.AttributeWits].Value)

	require.NoError(t, reg.Update(ctx, a))
	again, _, _ = reg.Actor(ctx, "ylva")
	assert.Equal(t, 3, again.Attributes[game.AttributeWits].Value)

	assert.Error(t, reg.Update(ctx, &game.Actor{ID: "ghost"}))

	_, ok, err = reg.Actor(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistry_UsersAndParties(t *testing.T) {
	reg := NewRegistry(testRoster())
	ctx := context.Background()

	u, ok := reg.User(ctx, "anna")
	require.True(t, ok)
	assert.Equal(t, game.RolePlayer, u.Role, "empty role defaults to player")
	assert.Len(t, reg.Users(ctx), 2)
	assert.Equal(t, "Borr", reg.Actors(ctx)[0].Name)

	require.NoError(t, reg.Assign(ctx, "wolves", travel.ActionHunt, []string{"ylva", "borr"}))
	p, ok := reg.DefaultParty(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"ylva", "borr"}, p.Assigned(travel.ActionHunt))

	assert.Error(t, reg.Assign(ctx, "wolves", travel.ActionHunt, []string{"ghost"}))
	assert.Error(t, reg.Assign(ctx, "bears", travel.ActionHunt, nil))

	_, ok = NewRegistry(nil).DefaultParty(ctx)
	assert.False(t, ok)
}

func TestSheets(t *testing.T) {
	sheets := NewSheets(nil)
	ctx := context.Background()

	_, ok := sheets.DiceRoller(ctx, "ylva")
	assert.False(t, ok)

	sheets.Open("ylva")
	first, ok := sheets.DiceRoller(ctx, "ylva")
	require.True(t, ok)
	sheets.Open("ylva")
	second, _ := sheets.DiceRoller(ctx, "ylva")
	assert.Same(t, first, second)
	assert.True(t, sheets.IsOpen("ylva"))
}

type fixedRoller struct {
	pools []game.Pool
}

func (f *fixedRoller) Roll(p game.Pool) game.RollResult {
	f.pools = append(f.pools, p)
	return game.RollResult{Base: []int{6, 1}, Skill: []int{6}}
}

func TestAutoRollDialog(t *testing.T) {
	chat := NewMemoryChat()
	dialog := &AutoRollDialog{Chat: chat}
	roller := &fixedRoller{}
	ctx := context.Background()

	out, err := dialog.Prepare(ctx, travel.RollRequest{
		Title:     "Find Food",
		Attribute: travel.Stat{Name: "Wits", Value: 3},
		Skill:     travel.Stat{Name: "Survival", Value: 2},
		Modifiers: travel.Modifiers{Gear: 1, Artifact: 1},
		UserID:    "anna",
		Journal:   "Forage",
	}, roller)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Swords())
	assert.Equal(t, []game.Pool{{Base: 3, Skill: 2, Gear: 2}}, roller.pools)

	msgs, err := chat.List(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "<b>Find Food</b> (Wits 3 + Survival 2): 2 swords, 1 skulls", msgs[0].Content)
	assert.Equal(t, "Forage", msgs[0].Journal)
	assert.NotEmpty(t, msgs[0].ID)

	_, err = dialog.Prepare(ctx, travel.RollRequest{Title: "x"}, nil)
	assert.Error(t, err)
}

func TestTables_Draw(t *testing.T) {
	tables := NewTables([]game.RollTable{{
		Name: travel.FindPreyTable,
		Entries: []game.RollTableEntry{
			{Text: "Hare", Weight: 3},
			{Text: "Deer"},
		},
	}})
	ctx := context.Background()

	_, ok := tables.Lookup(ctx, "Missing")
	assert.False(t, ok)

	for n, want := range map[int]string{0: "Hare", 2: "Hare", 3: "Deer"} {
		tables.Intn = func(int) int { return n }
		d, ok := tables.Lookup(ctx, travel.FindPreyTable)
		require.True(t, ok)
		got, err := d.Draw(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got, "intn=%d", n)
	}

	tables.Put(game.RollTable{Name: "Empty"})
	tables.Intn = nil
	d, ok := tables.Lookup(ctx, "Empty")
	require.True(t, ok)
	_, err := d.Draw(ctx)
	assert.Error(t, err)
}

func TestTables_DrawDefaultRandom(t *testing.T) {
	tables := NewTables([]game.RollTable{{Name: "T", Entries: []game.RollTableEntry{{Text: "a"}, {Text: "b"}}}})
	d, ok := tables.Lookup(context.Background(), "T")
	require.True(t, ok)
	for i := 0; i < 20; i++ {
		got, err := d.Draw(context.Background())
		require.NoError(t, err)
		assert.Contains(t, []string{"a", "b"}, got)
	}
}

func TestInfoLog_RecordsOnContext(t *testing.T) {
	ctx, notices := WithNotices(context.Background())
	var info travel.InfoDialog = InfoLog{}

	info.Show(ctx, "Attention", "Open your sheet")
	info.Show(context.Background(), "Dropped", "no collector")

	assert.Equal(t, []Notice{{Title: "Attention", Message: "Open your sheet"}}, notices.List())
}
