package game

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Role is the permission level of a connected user.
type Role string

const (
	RolePlayer     Role = "player"
	RoleGamemaster Role = "gamemaster"
)

// User is a person connected to the table. CharacterID names the actor
// assigned to them, if any.
type User struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Role        Role   `yaml:"role"`
	CharacterID string `yaml:"character"`
}

func (u User) IsGM() bool {
	return u.Role == RoleGamemaster
}

// Attribute is one of the four core attributes. Value drops as the
// character takes damage; Max is the undamaged rating.
type Attribute struct {
	Label string `yaml:"label"`
	Value int    `yaml:"value"`
	Max   int    `yaml:"max"`
}

// Skill is a trained skill and the attribute that governs it.
type Skill struct {
	Label     string `yaml:"label"`
	Value     int    `yaml:"value"`
	Attribute string `yaml:"attribute"`
}

// Conditions tracks the conditions a night's sleep can clear.
type Conditions struct {
	Sleepless bool `yaml:"sleepless"`
}

// Actor is a character sheet: who owns it and what it can roll.
type Actor struct {
	ID         string               `yaml:"id"`
	Name       string               `yaml:"name"`
	Owners     []string             `yaml:"owners"`
	Portrait   string               `yaml:"portrait"`
	Attributes map[string]Attribute `yaml:"attributes"`
	Skills     map[string]Skill     `yaml:"skills"`
	Conditions Conditions           `yaml:"conditions"`
}

// Assignment is the list of actor ids assigned to one travel action. In
// YAML it may be written as a single id or as a list of ids.
type Assignment []string

func (a *Assignment) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var id string
		if err := value.Decode(&id); err != nil {
			return err
		}
		if id == "" {
			*a = Assignment{}
			return nil
		}
		*a = Assignment{id}
		return nil
	case yaml.SequenceNode:
		var ids []string
		if err := value.Decode(&ids); err != nil {
			return err
		}
		*a = Assignment(ids)
		return nil
	default:
		return fmt.Errorf("assignment: unexpected yaml kind %d at line %d", value.Kind, value.Line)
	}
}

// Party is the travelling group. Travel maps a travel action key to the
// party members assigned to it.
type Party struct {
	ID      string                `yaml:"id"`
	Name    string                `yaml:"name"`
	Members []string              `yaml:"members"`
	Travel  map[string]Assignment `yaml:"travel"`
}

// Assigned returns the ids assigned to the travel action key.
func (p *Party) Assigned(key string) []string {
	if p == nil || p.Travel == nil {
		return nil
	}
	return append([]string(nil), p.Travel[key]...)
}

// RollTableEntry is one weighted row of a roll table.
type RollTableEntry struct {
	Text   string `yaml:"text"`
	Weight int    `yaml:"weight"`
}

// RollTable is a named random table.
type RollTable struct {
	Name    string           `yaml:"name"`
	Entries []RollTableEntry `yaml:"entries"`
}

// Roster is everything a table session starts from.
type Roster struct {
	Users   []User      `yaml:"users"`
	Actors  []Actor     `yaml:"actors"`
	Parties []Party     `yaml:"parties"`
	Tables  []RollTable `yaml:"tables"`
}
