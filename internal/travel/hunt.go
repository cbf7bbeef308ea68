package travel

import (
	"context"
	"fmt"
)

// findPrey draws the spotted creature after a successful Find Prey roll.
// Without a "Find a Prey" table the chat suggests creating one.
func (d *Dispatcher) findPrey(ctx context.Context, c Context, act TravelAction, out RollOutcome) (string, error) {
	if !out.Success() {
		return "", nil
	}
	var content string
	table, ok := d.lookupTable(ctx, FindPreyTable)
	if ok {
		drawn, err := table.Draw(ctx)
		if err != nil {
			return "", fmt.Errorf("draw %q: %w", FindPreyTable, err)
		}
		content = c.format("FLPS.CHAT.PREY_FOUND", drawn)
	} else {
		content = c.format("FLPS.CHAT.PREY_NO_TABLE", FindPreyTable)
	}
	if err := d.post(ctx, c, act.JournalEntryName, content); err != nil {
		return "", err
	}
	return content, nil
}

func (d *Dispatcher) lookupTable(ctx context.Context, name string) (Drawer, bool) {
	if d.Tables == nil {
		return nil, false
	}
	return d.Tables.Lookup(ctx, name)
}
