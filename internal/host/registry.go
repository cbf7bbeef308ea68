// Package host is an in-process stand-in for the virtual tabletop: the
// actor registry, open character sheets, the roll dialog, roll tables and
// the chat log that the travel dispatcher talks to.
package host

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"partysheet/internal/game"
)

// Registry holds actors, users and parties. Reads return copies.
type Registry struct {
	mu      sync.RWMutex
	actors  map[string]*game.Actor
	users   map[string]game.User
	parties map[string]*game.Party
}

func NewRegistry(r *game.Roster) *Registry {
	reg := &Registry{
		actors:  map[string]*game.Actor{},
		users:   map[string]game.User{},
		parties: map[string]*game.Party{},
	}
	if r == nil {
		return reg
	}
	for i := range r.Actors {
		a := r.Actors[i]
		reg.actors[a.ID] = a.Clone()
	}
	for _, u := range r.Users {
		if u.Role == "" {
			u.Role = game.RolePlayer
		}
		reg.users[u.ID] = u
	}
	for i := range r.Parties {
		p := r.Parties[i]
		reg.parties[p.ID] = p.Clone()
	}
	return reg
}

func (r *Registry) Actor(_ context.Context, id string) (*game.Actor, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.actors[id]
	if !ok {
		return nil, false, nil
	}
	return a.Clone(), true, nil
}

func (r *Registry) Update(_ context.Context, a *game.Actor) error {
	if a == nil || a.ID == "" {
		return fmt.Errorf("update actor: missing id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.actors[a.ID]; !ok {
		return fmt.Errorf("update actor: unknown actor %q", a.ID)
	}
	r.actors[a.ID] = a.Clone()
	return nil
}

// Actors returns every actor sorted by name.
func (r *Registry) Actors(_ context.Context) []*game.Actor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*game.Actor, 0, len(r.actors))
	for _, a := range r.actors {
		out = append(out, a.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Registry) User(_ context.Context, id string) (game.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	return u, ok
}

// Users returns every user sorted by name.
func (r *Registry) Users(_ context.Context) []game.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]game.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Registry) Party(_ context.Context, id string) (*game.Party, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.parties[id]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

// DefaultParty returns the party with the lowest id.
func (r *Registry) DefaultParty(ctx context.Context) (*game.Party, bool) {
	r.mu.RLock()
	ids := make([]string, 0, len(r.parties))
	for id := range r.parties {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	if len(ids) == 0 {
		return nil, false
	}
	sort.Strings(ids)
	return r.Party(ctx, ids[0])
}

// Assign replaces the actors assigned to a travel action of a party.
func (r *Registry) Assign(_ context.Context, partyID, action string, actorIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.parties[partyID]
	if !ok {
		return fmt.Errorf("assign: unknown party %q", partyID)
	}
	for _, id := range actorIDs {
		if _, ok := r.actors[id]; !ok {
			return fmt.Errorf("assign: unknown actor %q", id)
		}
	}
	if p.Travel == nil {
		p.Travel = map[string]game.Assignment{}
	}
	p.Travel[action] = append(game.Assignment(nil), actorIDs...)
	return nil
}
