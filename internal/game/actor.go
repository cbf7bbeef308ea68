package game

import (
	"slices"
	"strings"
)

// Attribute keys.
const (
	AttributeStrength = "strength"
	AttributeAgility  = "agility"
	AttributeWits     = "wits"
	AttributeEmpathy  = "empathy"
)

// Skill keys used by the travel actions.
const (
	SkillEndurance    = "endurance"
	SkillMarksmanship = "marksmanship"
	SkillScouting     = "scouting"
	SkillSurvival     = "survival"
)

// AttributeKeys lists the core attributes in sheet order.
var AttributeKeys = []string{AttributeStrength, AttributeAgility, AttributeWits, AttributeEmpathy}

// skillAttributes is the governing attribute of every skill on the sheet.
var skillAttributes = map[string]string{
	"might":           AttributeStrength,
	SkillEndurance:    AttributeStrength,
	"melee":           AttributeStrength,
	"crafting":        AttributeStrength,
	"stealth":         AttributeAgility,
	"sleightOfHand":   AttributeAgility,
	"move":            AttributeAgility,
	SkillMarksmanship: AttributeAgility,
	SkillScouting:     AttributeWits,
	"lore":            AttributeWits,
	SkillSurvival:     AttributeWits,
	"insight":         AttributeWits,
	"manipulation":    AttributeEmpathy,
	"performance":     AttributeEmpathy,
	"healing":         AttributeEmpathy,
	"animalHandling":  AttributeEmpathy,
}

// GoverningAttribute returns the attribute key a skill is rolled with.
func GoverningAttribute(skill string) string {
	return skillAttributes[skill]
}

// IsOwner reports whether u may act for the actor. Gamemasters own every actor.
func (a *Actor) IsOwner(u User) bool {
	if a == nil {
		return false
	}
	if u.IsGM() {
		return true
	}
	return slices.Contains(a.Owners, u.ID)
}

// SkillCheck returns the skill and its governing attribute as written on
// the sheet. Missing entries come back zero-valued with the sheet's
// default labels so a roll can still be prepared.
func (a *Actor) SkillCheck(skillKey string) (Attribute, Skill) {
	skill, ok := a.Skills[skillKey]
	if !ok {
		skill = Skill{Attribute: GoverningAttribute(skillKey)}
	}
	if skill.Attribute == "" {
		skill.Attribute = GoverningAttribute(skillKey)
	}
	if skill.Label == "" {
		skill.Label = "SKILL." + strings.ToUpper(skillKey)
	}
	attr := a.Attributes[skill.Attribute]
	if attr.Label == "" {
		attr.Label = "ATTRIBUTE." + strings.ToUpper(skill.Attribute)
	}
	return attr, skill
}

// Clone returns a deep copy, so callers can mutate it before persisting.
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}
	c := *a
	c.Owners = slices.Clone(a.Owners)
	if a.Attributes != nil {
		c.Attributes = make(map[string]Attribute, len(a.Attributes))
		for k, v := range a.Attributes {
			c.Attributes[k] = v
		}
	}
	if a.Skills != nil {
		c.Skills = make(map[string]Skill, len(a.Skills))
		for k, v := range a.Skills {
			c.Skills[k] = v
		}
	}
	return &c
}

// Clone returns a deep copy of the party.
func (p *Party) Clone() *Party {
	if p == nil {
		return nil
	}
	c := *p
	c.Members = slices.Clone(p.Members)
	if p.Travel != nil {
		c.Travel = make(map[string]Assignment, len(p.Travel))
		for k, v := range p.Travel {
			c.Travel[k] = slices.Clone(v)
		}
	}
	return &c
}
