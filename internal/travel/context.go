// Package travel dispatches the travel action buttons of a party sheet to
// skill rolls and chat messages. Everything it touches (actors, chat,
// roll tables, dialogs) is reached through the capabilities below.
package travel

import (
	"context"
	"errors"
	"time"

	"partysheet/internal/game"
)

var (
	// ErrNoCharacter means there is no character to act with.
	ErrNoCharacter = errors.New("travel: no character")
	// ErrSheetNotOpen means the character's sheet has never been opened,
	// so it has no dice roller yet.
	ErrSheetNotOpen = errors.New("travel: character sheet not open")
	// ErrPickDeferred is returned by a Picker that will answer later
	// through Dispatcher.Resume.
	ErrPickDeferred = errors.New("travel: pick deferred")
	// ErrPickDismissed is returned by a Picker when nobody was chosen.
	ErrPickDismissed = errors.New("travel: pick dismissed")
	// ErrUnknownAction means no travel action has the requested key.
	ErrUnknownAction = errors.New("travel: unknown action")
	// ErrUnknownButton means the travel action has no button of that class.
	ErrUnknownButton = errors.New("travel: unknown button")
	// ErrNotACandidate means the picked actor was not offered by the prompt.
	ErrNotACandidate = errors.New("travel: actor is not a candidate")
	// ErrNotResumable means the prompt's button does not roll for an assignee.
	ErrNotResumable = errors.New("travel: button cannot be resumed")
)

// ActorRegistry resolves and persists actors.
type ActorRegistry interface {
	Actor(ctx context.Context, id string) (*game.Actor, bool, error)
	Update(ctx context.Context, a *game.Actor) error
}

// Localizer turns message keys into display strings.
type Localizer interface {
	Localize(key string) string
	Format(key string, args ...any) string
}

// CharacterSheetProvider hands out the dice roller of an open character sheet.
type CharacterSheetProvider interface {
	DiceRoller(ctx context.Context, characterID string) (game.DiceRoller, bool)
}

// Stat is a localized name and a value shown in the roll dialog.
type Stat struct {
	Name  string
	Value int
}

// Modifiers adjust a roll before it is made.
type Modifiers struct {
	Base     int
	Skill    int
	Gear     int
	Artifact int
}

// RollRequest is what the roll dialog is prepared with.
type RollRequest struct {
	Title     string
	Attribute Stat
	Skill     Stat
	Modifiers Modifiers
	ActorID   string
	UserID    string
	Journal   string
}

// RollOutcome is the typed result of a roll.
type RollOutcome struct {
	Result game.RollResult
}

func (o RollOutcome) Swords() int { return o.Result.Swords() }

func (o RollOutcome) Success() bool { return o.Result.Success() }

// RollDialog prepares and resolves a skill roll.
type RollDialog interface {
	Prepare(ctx context.Context, req RollRequest, roller game.DiceRoller) (RollOutcome, error)
}

// ChatMessage is one entry of the shared chat log. Content may carry
// simple markup (<b>, <i>, <br>).
type ChatMessage struct {
	ID        string
	UserID    string
	Content   string
	Journal   string
	CreatedAt time.Time
}

// ChatLog appends messages to the shared log.
type ChatLog interface {
	Post(ctx context.Context, msg ChatMessage) error
}

// Drawer draws one result from a roll table.
type Drawer interface {
	Draw(ctx context.Context) (string, error)
}

// RollTables looks up roll tables by name.
type RollTables interface {
	Lookup(ctx context.Context, name string) (Drawer, bool)
}

// InfoDialog shows a blocking notice to the current user.
type InfoDialog interface {
	Show(ctx context.Context, title, message string)
}

// Candidate is an actor offered by the character picker.
type Candidate struct {
	ID   string
	Name string
}

// Prompt asks the user which character rolls.
type Prompt struct {
	Title      string
	Action     string
	Button     string
	PartyID    string
	Candidates []Candidate
}

func (p Prompt) has(id string) bool {
	for _, c := range p.Candidates {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Picker chooses one candidate of a prompt and returns its id.
type Picker interface {
	Pick(ctx context.Context, p Prompt) (string, error)
}

// DeferredPicker never answers in place; the caller shows the prompt and
// later calls Dispatcher.Resume.
type DeferredPicker struct{}

func (DeferredPicker) Pick(context.Context, Prompt) (string, error) {
	return "", ErrPickDeferred
}

// Context is who is pressing the button and what they can reach.
type Context struct {
	User      game.User
	Character *game.Actor
	Actors    ActorRegistry
	Lang      Localizer
}

// character re-reads the current user's character from the registry.
func (c Context) character(ctx context.Context) (*game.Actor, error) {
	id := c.User.CharacterID
	if c.Character != nil {
		id = c.Character.ID
	}
	if id == "" || c.Actors == nil {
		return c.Character, nil
	}
	a, ok, err := c.Actors.Actor(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return a, nil
}

func (c Context) localize(key string) string {
	if c.Lang == nil {
		return key
	}
	return c.Lang.Localize(key)
}

func (c Context) format(key string, args ...any) string {
	if c.Lang == nil {
		return key
	}
	return c.Lang.Format(key, args...)
}
