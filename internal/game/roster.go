package game

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRoster loads users, actors, parties and roll tables from a YAML file.
func LoadRoster(path string) (*Roster, error) {
	cleanPath := filepath.Clean(path)
	b, err := os.ReadFile(cleanPath) //nolint:gosec // path is cleaned and comes from configuration
	if err != nil {
		return nil, err
	}
	return ParseRoster(b)
}

// ParseRoster decodes a roster document and checks its references.
func ParseRoster(b []byte) (*Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Roster) validate() error {
	actors := make(map[string]bool, len(r.Actors))
	for _, a := range r.Actors {
		if a.ID == "" {
			return fmt.Errorf("actor %q has no id", a.Name)
		}
		if actors[a.ID] {
			return fmt.Errorf("duplicate actor id %q", a.ID)
		}
		actors[a.ID] = true
	}
	users := make(map[string]bool, len(r.Users))
	for _, u := range r.Users {
		if u.ID == "" {
			return fmt.Errorf("user %q has no id", u.Name)
		}
		if users[u.ID] {
			return fmt.Errorf("duplicate user id %q", u.ID)
		}
		users[u.ID] = true
		switch u.Role {
		case "", RolePlayer, RoleGamemaster:
		default:
			return fmt.Errorf("user %q: unknown role %q", u.ID, u.Role)
		}
		if u.CharacterID != "" && !actors[u.CharacterID] {
			return fmt.Errorf("user %q: unknown character %q", u.ID, u.CharacterID)
		}
	}
	for _, p := range r.Parties {
		if p.ID == "" {
			return fmt.Errorf("party %q has no id", p.Name)
		}
	}
	for _, t := range r.Tables {
		if t.Name == "" {
			return fmt.Errorf("roll table without a name")
		}
	}
	return nil
}
