package travel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"partysheet/internal/game"
)

// Status is how a button press ended.
type Status int

const (
	StatusSkipped Status = iota
	StatusRolled
	StatusPrompted
	StatusNotified
	StatusRecovered
)

func (s Status) String() string {
	switch s {
	case StatusSkipped:
		return "skipped"
	case StatusRolled:
		return "rolled"
	case StatusPrompted:
		return "prompted"
	case StatusNotified:
		return "notified"
	case StatusRecovered:
		return "recovered"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result reports what a button press did. Outcome is set for rolls,
// Prompt when the user still has to pick who rolls, Message for the chat
// text the dispatcher posted itself.
type Result struct {
	Status  Status
	Action  string
	Button  string
	ActorID string
	Outcome *RollOutcome
	Prompt  *Prompt
	Message string
}

// Dispatcher runs travel action buttons against the host capabilities.
// With NotifyGM set, a gamemaster pressing an assigned roll posts a chat
// notice naming who should roll instead of rolling.
type Dispatcher struct {
	Sheets   CharacterSheetProvider
	Rolls    RollDialog
	Chat     ChatLog
	Tables   RollTables
	Info     InfoDialog
	Picker   Picker
	NotifyGM bool
	Now      func() time.Time
}

// Press runs the button with the given class of a travel action.
func (d *Dispatcher) Press(ctx context.Context, c Context, party *game.Party, actionKey, class string) (Result, error) {
	act, ok := Lookup(actionKey)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAction, actionKey)
	}
	btn, ok := act.Button(class)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q on %s", ErrUnknownButton, class, actionKey)
	}
	res, err := btn.Handler(ctx, d, c, party)
	if err != nil {
		return Result{}, err
	}
	res.Action, res.Button = act.Key, btn.Class
	return res, nil
}

// RollTravelAction rolls the button for the party member assigned to act. With
// several owned members the picker decides who rolls.
func (d *Dispatcher) RollTravelAction(ctx context.Context, c Context, act TravelAction, class string, party *game.Party, spec RollSpec) (Result, error) {
	ids := NormalizeIDs(party.Assigned(act.Key)...)
	if d.NotifyGM && c.User.IsGM() {
		return d.notifyGM(ctx, c, act, ids, spec)
	}

	members, err := OwnedCharacters(ctx, c, ids...)
	if err != nil {
		return Result{}, err
	}
	switch len(members) {
	case 0:
		return Result{Status: StatusSkipped}, nil
	case 1:
		return d.rollFor(ctx, c, act, members[0], spec)
	}

	prompt := Prompt{
		Title:  c.format("FLPS.UI.WHO_ROLLS", c.localize(spec.Name)),
		Action: act.Key,
		Button: class,
	}
	if party != nil {
		prompt.PartyID = party.ID
	}
	for _, m := range members {
		prompt.Candidates = append(prompt.Candidates, Candidate{ID: m.ID, Name: m.Name})
	}

	picker := d.Picker
	if picker == nil {
		picker = DeferredPicker{}
	}
	id, err := picker.Pick(ctx, prompt)
	switch {
	case errors.Is(err, ErrPickDeferred):
		return Result{Status: StatusPrompted, Prompt: &prompt}, nil
	case errors.Is(err, ErrPickDismissed):
		return Result{Status: StatusSkipped}, nil
	case err != nil:
		return Result{}, fmt.Errorf("pick character: %w", err)
	}
	return d.Resume(ctx, c, prompt, id)
}

// Resume rolls for the actor picked in answer to prompt.
func (d *Dispatcher) Resume(ctx context.Context, c Context, prompt Prompt, actorID string) (Result, error) {
	if !prompt.has(actorID) {
		return Result{}, fmt.Errorf("%w: %q", ErrNotACandidate, actorID)
	}
	act, ok := Lookup(prompt.Action)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAction, prompt.Action)
	}
	btn, ok := act.Button(prompt.Button)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q on %s", ErrUnknownButton, prompt.Button, prompt.Action)
	}
	if btn.Roll == nil || btn.Roll.Roller != RollerAssigned {
		return Result{}, fmt.Errorf("%w: %s", ErrNotResumable, btn.Class)
	}

	members, err := OwnedCharacters(ctx, c, actorID)
	if err != nil {
		return Result{}, err
	}
	res := Result{Status: StatusSkipped}
	if len(members) == 1 {
		res, err = d.rollFor(ctx, c, act, members[0], *btn.Roll)
		if err != nil {
			return Result{}, err
		}
	}
	res.Action, res.Button = act.Key, btn.Class
	return res, nil
}

// rollFor prepares the roll dialog for actor, or for the current user's
// character when actor is nil, then runs the roll's follow-up.
func (d *Dispatcher) rollFor(ctx context.Context, c Context, act TravelAction, actor *game.Actor, spec RollSpec) (Result, error) {
	if actor == nil {
		var err error
		if actor, err = c.character(ctx); err != nil {
			return Result{}, err
		}
	}
	roller, err := d.DiceRollerFor(ctx, c, actor)
	if errors.Is(err, ErrNoCharacter) || errors.Is(err, ErrSheetNotOpen) {
		return Result{Status: StatusSkipped}, nil
	}
	if err != nil {
		return Result{}, err
	}
	if d.Rolls == nil {
		return Result{Status: StatusSkipped}, nil
	}

	attr, skill := actor.SkillCheck(spec.Skill)
	req := RollRequest{
		Title:     c.localize(spec.Name),
		Attribute: Stat{Name: c.localize(attr.Label), Value: attr.Value},
		Skill:     Stat{Name: c.localize(skill.Label), Value: skill.Value},
		ActorID:   actor.ID,
		UserID:    c.User.ID,
		Journal:   act.JournalEntryName,
	}
	out, err := d.Rolls.Prepare(ctx, req, roller)
	if err != nil {
		return Result{}, fmt.Errorf("roll %s for %s: %w", spec.Skill, actor.ID, err)
	}

	res := Result{Status: StatusRolled, ActorID: actor.ID, Outcome: &out}
	switch spec.FollowUp {
	case FollowUpFindPrey:
		if res.Message, err = d.findPrey(ctx, c, act, out); err != nil {
			return Result{}, err
		}
	}
	return res, nil
}

func (d *Dispatcher) notifyGM(ctx context.Context, c Context, act TravelAction, ids []string, spec RollSpec) (Result, error) {
	var names []string
	if c.Actors != nil {
		for _, id := range ids {
			a, ok, err := c.Actors.Actor(ctx, id)
			if err != nil {
				return Result{}, fmt.Errorf("resolve actor %s: %w", id, err)
			}
			if ok {
				names = append(names, a.Name)
			}
		}
	}

	var content string
	if len(names) == 0 {
		content = c.format("FLPS.CHAT.GM_UNASSIGNED", c.localize(act.Name), c.localize(spec.Name))
	} else {
		content = c.format("FLPS.CHAT.GM_ASSIGNED", c.localize(act.Name), strings.Join(names, ", "), c.localize(spec.Name))
	}
	if err := d.post(ctx, c, act.JournalEntryName, content); err != nil {
		return Result{}, err
	}
	return Result{Status: StatusNotified, Message: content}, nil
}

func (d *Dispatcher) post(ctx context.Context, c Context, journal, content string) error {
	if d.Chat == nil {
		return nil
	}
	msg := ChatMessage{
		UserID:    c.User.ID,
		Content:   content,
		Journal:   journal,
		CreatedAt: d.now(),
	}
	if err := d.Chat.Post(ctx, msg); err != nil {
		return fmt.Errorf("post chat message: %w", err)
	}
	return nil
}

func (d *Dispatcher) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}
