package host

import (
	"context"
	"sync"

	"partysheet/internal/game"
)

// Sheets tracks which character sheets have been opened. Opening a sheet
// binds a dice roller to the character.
type Sheets struct {
	mu      sync.Mutex
	open    map[string]game.DiceRoller
	NewDice func() game.DiceRoller
}

func NewSheets(newDice func() game.DiceRoller) *Sheets {
	if newDice == nil {
		newDice = func() game.DiceRoller { return game.NewDice() }
	}
	return &Sheets{open: map[string]game.DiceRoller{}, NewDice: newDice}
}

// Open opens the sheet of characterID. Opening it again keeps its roller.
func (s *Sheets) Open(characterID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.open[characterID]; !ok {
		s.open[characterID] = s.NewDice()
	}
}

func (s *Sheets) IsOpen(characterID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.open[characterID]
	return ok
}

func (s *Sheets) DiceRoller(_ context.Context, characterID string) (game.DiceRoller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.open[characterID]
	return r, ok
}
