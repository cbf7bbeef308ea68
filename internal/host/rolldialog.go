package host

import (
	"context"
	"fmt"
	"time"

	"partysheet/internal/game"
	"partysheet/internal/travel"
)

// AutoRollDialog resolves a roll as soon as it is prepared and posts the
// result to chat. Artifact modifiers count as extra gear dice.
type AutoRollDialog struct {
	Chat travel.ChatLog
	Lang travel.Localizer
	Now  func() time.Time
}

func (d *AutoRollDialog) Prepare(ctx context.Context, req travel.RollRequest, roller game.DiceRoller) (travel.RollOutcome, error) {
	if roller == nil {
		return travel.RollOutcome{}, fmt.Errorf("prepare %q: no dice roller", req.Title)
	}
	pool := game.Pool{
		Base:  req.Attribute.Value + req.Modifiers.Base,
		Skill: req.Skill.Value + req.Modifiers.Skill,
		Gear:  req.Modifiers.Gear + req.Modifiers.Artifact,
	}
	out := travel.RollOutcome{Result: roller.Roll(pool)}

	if d.Chat != nil {
		msg := travel.ChatMessage{
			UserID:    req.UserID,
			Content:   d.summary(req, out),
			Journal:   req.Journal,
			CreatedAt: d.now(),
		}
		if err := d.Chat.Post(ctx, msg); err != nil {
			return out, fmt.Errorf("post roll result: %w", err)
		}
	}
	return out, nil
}

func (d *AutoRollDialog) summary(req travel.RollRequest, out travel.RollOutcome) string {
	args := []any{
		req.Title,
		req.Attribute.Name, req.Attribute.Value,
		req.Skill.Name, req.Skill.Value,
		out.Swords(), out.Result.Skulls(),
	}
	if d.Lang == nil {
		return fmt.Sprintf("<b>%s</b> (%s %d + %s %d): %d swords, %d skulls", args...)
	}
	return d.Lang.Format("FLPS.CHAT.ROLL_RESULT", args...)
}

func (d *AutoRollDialog) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}
