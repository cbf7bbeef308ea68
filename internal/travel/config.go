package travel

import (
	"context"

	"partysheet/internal/game"
)

// Travel action keys.
const (
	ActionHike   = "hike"
	ActionLead   = "lead"
	ActionWatch  = "watch"
	ActionRest   = "rest"
	ActionSleep  = "sleep"
	ActionForage = "forage"
	ActionHunt   = "hunt"
	ActionFish   = "fish"
	ActionCamp   = "camp"
)

// FindPreyTable is the roll table drawn from after a successful Find Prey.
const FindPreyTable = "Find a Prey"

// FollowUp is what happens after a roll resolves.
type FollowUp int

const (
	FollowUpNone FollowUp = iota
	FollowUpFindPrey
)

// Roller says who rolls for a button.
type Roller int

const (
	// RollerAssigned rolls for a party member assigned to the action.
	RollerAssigned Roller = iota
	// RollerSelf rolls for the current user's own character.
	RollerSelf
)

// RollSpec describes the skill roll behind a button.
type RollSpec struct {
	Name     string
	Skill    string
	Roller   Roller
	FollowUp FollowUp
}

// Handler runs a button press.
type Handler func(ctx context.Context, d *Dispatcher, c Context, party *game.Party) (Result, error)

// Button is one clickable travel roll. Roll is nil for buttons that do
// not roll.
type Button struct {
	Name    string
	Class   string
	Roll    *RollSpec
	Handler Handler
}

// TravelAction is one travel activity of the party sheet.
type TravelAction struct {
	Key              string
	JournalEntryName string
	Name             string
	Buttons          []Button
}

// Button returns the button with the given class.
func (a TravelAction) Button(class string) (Button, bool) {
	for _, b := range a.Buttons {
		if b.Class == class {
			return b, true
		}
	}
	return Button{}, false
}

// actions is filled in init: the button handlers look actions up by key.
var actions []TravelAction

func init() {
	actions = buildActions()
}

// Actions returns a copy of the travel actions in sheet order.
func Actions() []TravelAction {
	out := make([]TravelAction, len(actions))
	for i, a := range actions {
		out[i] = a.clone()
	}
	return out
}

// Lookup returns a copy of the travel action with the given key.
func Lookup(key string) (TravelAction, bool) {
	for _, a := range actions {
		if a.Key == key {
			return a.clone(), true
		}
	}
	return TravelAction{}, false
}

func (a TravelAction) clone() TravelAction {
	a.Buttons = append([]Button(nil), a.Buttons...)
	for i, b := range a.Buttons {
		if b.Roll != nil {
			r := *b.Roll
			a.Buttons[i].Roll = &r
		}
	}
	return a
}

func buildActions() []TravelAction {
	return []TravelAction{
		{
			Key:              ActionHike,
			JournalEntryName: "Hike",
			Name:             "FLPS.TRAVEL.HIKE",
			Buttons: []Button{
				assignedRoll(ActionHike, "travel-forced-march", RollSpec{Name: "FLPS.TRAVEL_ROLL.FORCED_MARCH", Skill: game.SkillEndurance}),
				assignedRoll(ActionHike, "travel-hike-in-darkness", RollSpec{Name: "FLPS.TRAVEL_ROLL.HIKE_IN_DARKNESS", Skill: game.SkillScouting}),
			},
		},
		{
			Key:              ActionLead,
			JournalEntryName: "Lead the Way",
			Name:             "FLPS.TRAVEL.LEAD",
			Buttons: []Button{
				assignedRoll(ActionLead, "travel-navigate", RollSpec{Name: "FLPS.TRAVEL_ROLL.NAVIGATE", Skill: game.SkillSurvival}),
			},
		},
		{
			Key:              ActionWatch,
			JournalEntryName: "Keep Watch",
			Name:             "FLPS.TRAVEL.WATCH",
			Buttons: []Button{
				assignedRoll(ActionWatch, "travel-keep-watch", RollSpec{Name: "FLPS.TRAVEL_ROLL.KEEP_WATCH", Skill: game.SkillScouting}),
			},
		},
		{
			Key:              ActionRest,
			JournalEntryName: "Rest",
			Name:             "FLPS.TRAVEL.REST",
			Buttons: []Button{
				recoverButton(ActionRest, "travel-rest", "FLPS.TRAVEL_ROLL.REST", false),
			},
		},
		{
			Key:              ActionSleep,
			JournalEntryName: "Sleep",
			Name:             "FLPS.TRAVEL.SLEEP",
			Buttons: []Button{
				recoverButton(ActionSleep, "travel-sleep", "FLPS.TRAVEL_ROLL.SLEEP", true),
			},
		},
		{
			Key:              ActionForage,
			JournalEntryName: "Forage",
			Name:             "FLPS.TRAVEL.FORAGE",
			Buttons: []Button{
				assignedRoll(ActionForage, "travel-find-food", RollSpec{Name: "FLPS.TRAVEL_ROLL.FIND_FOOD", Skill: game.SkillSurvival}),
			},
		},
		{
			Key:              ActionHunt,
			JournalEntryName: "Hunt",
			Name:             "FLPS.TRAVEL.HUNT",
			Buttons: []Button{
				assignedRoll(ActionHunt, "travel-find-prey", RollSpec{Name: "FLPS.TRAVEL_ROLL.FIND_PREY", Skill: game.SkillSurvival, FollowUp: FollowUpFindPrey}),
				selfRoll(ActionHunt, "travel-kill-prey", RollSpec{Name: "FLPS.TRAVEL_ROLL.KILL_PREY", Skill: game.SkillMarksmanship, Roller: RollerSelf}),
			},
		},
		{
			Key:              ActionFish,
			JournalEntryName: "Fish",
			Name:             "FLPS.TRAVEL.FISH",
			Buttons: []Button{
				assignedRoll(ActionFish, "travel-catch-fish", RollSpec{Name: "FLPS.TRAVEL_ROLL.CATCH_FISH", Skill: game.SkillSurvival}),
			},
		},
		{
			Key:              ActionCamp,
			JournalEntryName: "Make Camp",
			Name:             "FLPS.TRAVEL.CAMP",
			Buttons: []Button{
				assignedRoll(ActionCamp, "travel-make-camp", RollSpec{Name: "FLPS.TRAVEL_ROLL.MAKE_CAMP", Skill: game.SkillSurvival}),
			},
		},
	}
}

// The handlers close over spec; Roll points at a separate copy.
func assignedRoll(key, class string, spec RollSpec) Button {
	roll := spec
	return Button{
		Name:  spec.Name,
		Class: class,
		Roll:  &roll,
		Handler: func(ctx context.Context, d *Dispatcher, c Context, party *game.Party) (Result, error) {
			act, _ := Lookup(key)
			return d.RollTravelAction(ctx, c, act, class, party, spec)
		},
	}
}

func selfRoll(key, class string, spec RollSpec) Button {
	roll := spec
	return Button{
		Name:  spec.Name,
		Class: class,
		Roll:  &roll,
		Handler: func(ctx context.Context, d *Dispatcher, c Context, _ *game.Party) (Result, error) {
			act, _ := Lookup(key)
			return d.rollFor(ctx, c, act, nil, spec)
		},
	}
}

func recoverButton(key, class, name string, sleep bool) Button {
	return Button{
		Name:  name,
		Class: class,
		Handler: func(ctx context.Context, d *Dispatcher, c Context, _ *game.Party) (Result, error) {
			act, _ := Lookup(key)
			return d.Recover(ctx, c, act, sleep)
		},
	}
}
