package travel

import (
	"context"
	"fmt"
	"strings"

	"partysheet/internal/game"
)

// NormalizeIDs trims the ids and drops blanks. A single id comes back as
// a one-element list.
func NormalizeIDs(ids ...string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		out = append(out, id)
	}
	return out
}

// OwnedCharacters resolves ids through the actor registry and keeps the
// actors the current user owns. Unknown ids are dropped.
func OwnedCharacters(ctx context.Context, c Context, ids ...string) ([]*game.Actor, error) {
	ids = NormalizeIDs(ids...)
	if c.Actors == nil {
		return nil, nil
	}
	out := make([]*game.Actor, 0, len(ids))
	for _, id := range ids {
		a, ok, err := c.Actors.Actor(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolve actor %s: %w", id, err)
		}
		if !ok || !a.IsOwner(c.User) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// DiceRollerFor returns the dice roller of character's open sheet. A nil
// character falls back to the current user's. ErrNoCharacter is returned
// when there is nobody to roll for; ErrSheetNotOpen after telling the user
// to open their sheet.
func (d *Dispatcher) DiceRollerFor(ctx context.Context, c Context, character *game.Actor) (game.DiceRoller, error) {
	if character == nil {
		character = c.Character
	}
	if character == nil {
		return nil, ErrNoCharacter
	}
	if d.Sheets != nil {
		if roller, ok := d.Sheets.DiceRoller(ctx, character.ID); ok && roller != nil {
			return roller, nil
		}
	}
	if d.Info != nil {
		d.Info.Show(ctx, c.localize("FLPS.UI.ATTENTION"), c.localize("FLPS.UI.OPEN_SHEET"))
	}
	return nil, ErrSheetNotOpen
}
