package travel

import (
	"context"
	"fmt"

	"partysheet/internal/game"
)

// Recovery is the change a rest or a sleep makes to a character.
// Attributes holds only the attributes that change. Broken is set when
// any attribute is at zero; those stay at zero.
type Recovery struct {
	Attributes     map[string]int
	ClearSleepless bool
	Broken         bool
}

func (r Recovery) Changed() bool {
	return len(r.Attributes) > 0 || r.ClearSleepless
}

// PlanRecovery works out what resting (or sleeping) does for a.
func PlanRecovery(a *game.Actor, sleep bool) Recovery {
	r := Recovery{Attributes: map[string]int{}}
	for key, attr := range a.Attributes {
		switch {
		case attr.Value == 0:
			r.Broken = true
		case attr.Value > 0 && attr.Value < attr.Max:
			r.Attributes[key] = attr.Max
		}
	}
	if sleep && a.Conditions.Sleepless {
		r.ClearSleepless = true
	}
	return r
}

// Apply writes the recovery onto a.
func (r Recovery) Apply(a *game.Actor) {
	for key, v := range r.Attributes {
		attr := a.Attributes[key]
		attr.Value = v
		a.Attributes[key] = attr
	}
	if r.ClearSleepless {
		a.Conditions.Sleepless = false
	}
}

// Recover rests (or sleeps) the current user's character, persists the
// change and reports it in chat.
func (d *Dispatcher) Recover(ctx context.Context, c Context, act TravelAction, sleep bool) (Result, error) {
	ch, err := c.character(ctx)
	if err != nil {
		return Result{}, err
	}
	if ch == nil {
		return Result{Status: StatusSkipped}, nil
	}
	ch = ch.Clone()

	plan := PlanRecovery(ch, sleep)
	if plan.Changed() {
		plan.Apply(ch)
		if c.Actors != nil {
			if err := c.Actors.Update(ctx, ch); err != nil {
				return Result{}, fmt.Errorf("update %s: %w", ch.ID, err)
			}
		}
	}

	key := "FLPS.CHAT.WELL_RESTED"
	switch {
	case plan.Broken:
		key = "FLPS.CHAT.BROKEN"
	case plan.Changed():
		key = "FLPS.CHAT.RECOVERED"
	}
	content := c.format(key, ch.Name)
	if err := d.post(ctx, c, act.JournalEntryName, content); err != nil {
		return Result{}, err
	}
	return Result{Status: StatusRecovered, ActorID: ch.ID, Message: content}, nil
}
