package travel

import (
	"context"
	"fmt"
	"strings"
	"time"

	"partysheet/internal/game"
)

type fakeActors struct {
	actors  map[string]*game.Actor
	updates []*game.Actor
}

func newFakeActors(actors ...*game.Actor) *fakeActors {
	f := &fakeActors{actors: map[string]*game.Actor{}}
	for _, a := range actors {
		f.actors[a.ID] = a
	}
	return f
}

func (f *fakeActors) Actor(_ context.Context, id string) (*game.Actor, bool, error) {
	a, ok := f.actors[id]
	if !ok {
		return nil, false, nil
	}
	return a.Clone(), true, nil
}

func (f *fakeActors) Update(_ context.Context, a *game.Actor) error {
	f.updates = append(f.updates, a.Clone())
	f.actors[a.ID] = a.Clone()
	return nil
}

// fakeLang echoes keys so tests can assert on them.
type fakeLang struct{}

func (fakeLang) Localize(key string) string { return key }

func (fakeLang) Format(key string, args ...any) string {
	parts := []string{key}
	for _, a := range args {
		parts = append(parts, fmt.Sprint(a))
	}
	return strings.Join(parts, "|")
}

type fakeSheets map[string]game.DiceRoller

func (f fakeSheets) DiceRoller(_ context.Context, id string) (game.DiceRoller, bool) {
	r, ok := f[id]
	return r, ok
}

type fakeRolls struct {
	requests []RollRequest
	result   game.RollResult
}

func (f *fakeRolls) Prepare(_ context.Context, req RollRequest, roller game.DiceRoller) (RollOutcome, error) {
	if roller == nil {
		return RollOutcome{}, fmt.Errorf("no roller")
	}
	f.requests = append(f.requests, req)
	return RollOutcome{Result: f.result}, nil
}

type fakeChat struct {
	messages []ChatMessage
}

func (f *fakeChat) Post(_ context.Context, msg ChatMessage) error {
	f.messages = append(f.messages, msg)
	return nil
}

type fakeDrawer string

func (f fakeDrawer) Draw(context.Context) (string, error) { return string(f), nil }

type fakeTables map[string]string

func (f fakeTables) Lookup(_ context.Context, name string) (Drawer, bool) {
	text, ok := f[name]
	if !ok {
		return nil, false
	}
	return fakeDrawer(text), true
}

type fakeInfo struct {
	shown []string
}

func (f *fakeInfo) Show(_ context.Context, title, message string) {
	f.shown = append(f.shown, title+": "+message)
}

type fakePicker struct {
	choose  string
	err     error
	prompts []Prompt
}

func (f *fakePicker) Pick(_ context.Context, p Prompt) (string, error) {
	f.prompts = append(f.prompts, p)
	return f.choose, f.err
}

type harness struct {
	actors *fakeActors
	rolls  *fakeRolls
	chat   *fakeChat
	info   *fakeInfo
	picker *fakePicker
	d      *Dispatcher
}

func newHarness(actors ...*game.Actor) *harness {
	h := &harness{
		actors: newFakeActors(actors...),
		rolls:  &fakeRolls{},
		chat:   &fakeChat{},
		info:   &fakeInfo{},
		picker: &fakePicker{},
	}
	sheets := fakeSheets{}
	for _, a := range actors {
		sheets[a.ID] = game.NewDice()
	}
	h.d = &Dispatcher{
		Sheets: sheets,
		Rolls:  h.rolls,
		Chat:   h.chat,
		Tables: fakeTables{},
		Info:   h.info,
		Picker: h.picker,
		Now:    func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
	}
	return h
}

func (h *harness) context(u game.User) Context {
	c := Context{User: u, Actors: h.actors, Lang: fakeLang{}}
	if a, ok := h.actors.actors[u.CharacterID]; ok {
		c.Character = a.Clone()
	}
	return c
}

func character(id, owner string) *game.Actor {
	return &game.Actor{
		ID:     id,
		Name:   strings.ToUpper(id[:1]) + id[1:],
		Owners: []string{owner},
		Attributes: map[string]game.Attribute{
			game.AttributeStrength: {Label: "ATTRIBUTE.STRENGTH", Value: 4, Max: 4},
			game.AttributeAgility:  {Label: "ATTRIBUTE.AGILITY", Value: 3, Max: 3},
			game.AttributeWits:     {Label: "ATTRIBUTE.WITS", Value: 3, Max: 3},
			game.AttributeEmpathy:  {Label: "ATTRIBUTE.EMPATHY", Value: 2, Max: 2},
		},
		Skills: map[string]game.Skill{
			game.SkillSurvival:     {Label: "SKILL.SURVIVAL", Value: 2, Attribute: game.AttributeWits},
			game.SkillMarksmanship: {Label: "SKILL.MARKSMANSHIP", Value: 1, Attribute: game.AttributeAgility},
		},
	}
}

func player(id, characterID string) game.User {
	return game.User{ID: id, Name: id, Role: game.RolePlayer, CharacterID: characterID}
}

func gamemaster() game.User {
	return game.User{ID: "gm", Name: "GM", Role: game.RoleGamemaster}
}

func party(travel map[string]game.Assignment) *game.Party {
	return &game.Party{ID: "wolves", Name: "The Wolves", Travel: travel}
}

var swordRoll = game.RollResult{Base: []int{6, 2}, Skill: []int{3}}
var blankRoll = game.RollResult{Base: []int{2, 2}, Skill: []int{3}}
