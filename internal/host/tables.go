package host

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"

	"partysheet/internal/game"
	"partysheet/internal/travel"
)

// Tables is the set of roll tables, looked up by name.
type Tables struct {
	mu     sync.RWMutex
	tables map[string]game.RollTable
	// Intn returns a number in [0, n); nil uses crypto/rand.
	Intn func(n int) int
}

func NewTables(tables []game.RollTable) *Tables {
	t := &Tables{tables: map[string]game.RollTable{}}
	for _, tb := range tables {
		t.tables[tb.Name] = tb
	}
	return t
}

// Put adds or replaces a table.
func (t *Tables) Put(tb game.RollTable) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tables[tb.Name] = tb
}

func (t *Tables) Lookup(_ context.Context, name string) (travel.Drawer, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	tb, ok := t.tables[name]
	if !ok {
		return nil, false
	}
	intn := t.Intn
	if intn == nil {
		intn = cryptoIntn
	}
	return tableDrawer{table: tb, intn: intn}, true
}

type tableDrawer struct {
	table game.RollTable
	intn  func(n int) int
}

// Draw picks an entry with probability proportional to its weight.
// Entries without a weight count once.
func (d tableDrawer) Draw(context.Context) (string, error) {
	total := 0
	for _, e := range d.table.Entries {
		total += weight(e)
	}
	if total == 0 {
		return "", fmt.Errorf("roll table %q is empty", d.table.Name)
	}
	n := d.intn(total)
	for _, e := range d.table.Entries {
		n -= weight(e)
		if n < 0 {
			return e.Text, nil
		}
	}
	return d.table.Entries[len(d.table.Entries)-1].Text, nil
}

func weight(e game.RollTableEntry) int {
	if e.Weight <= 0 {
		return 1
	}
	return e.Weight
}

func cryptoIntn(n int) int {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return int(binary.LittleEndian.Uint64(b[:]) % uint64(n))
}
