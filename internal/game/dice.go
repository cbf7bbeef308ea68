package game

import (
	"crypto/rand"
	"encoding/binary"
)

// Pool is the number of base, skill and gear dice in one roll. A negative
// Skill means the character rolls that many negative dice instead.
type Pool struct {
	Base  int
	Skill int
	Gear  int
}

// RollResult holds the faces rolled for each kind of die.
type RollResult struct {
	Base     []int
	Skill    []int
	Gear     []int
	Negative []int
}

// Swords counts sixes on base, skill and gear dice, minus sixes on
// negative dice. It never drops below zero.
func (r RollResult) Swords() int {
	n := count(r.Base, 6) + count(r.Skill, 6) + count(r.Gear, 6) - count(r.Negative, 6)
	if n < 0 {
		return 0
	}
	return n
}

// Skulls counts ones on base dice (attribute damage when pushed).
func (r RollResult) Skulls() int {
	return count(r.Base, 1)
}

// BrokenGear counts ones on gear dice.
func (r RollResult) BrokenGear() int {
	return count(r.Gear, 1)
}

func (r RollResult) Success() bool {
	return r.Swords() > 0
}

// DiceRoller resolves a dice pool.
type DiceRoller interface {
	Roll(p Pool) RollResult
}

// Dice is the default DiceRoller. Face returns 1-6; nil uses crypto/rand.
type Dice struct {
	Face func() int
}

func NewDice() *Dice {
	return &Dice{Face: d6}
}

func (d *Dice) Roll(p Pool) RollResult {
	face := d6
	if d != nil && d.Face != nil {
		face = d.Face
	}
	res := RollResult{
		Base: rollN(face, p.Base),
		Gear: rollN(face, p.Gear),
	}
	if p.Skill >= 0 {
		res.Skill = rollN(face, p.Skill)
	} else {
		res.Negative = rollN(face, -p.Skill)
	}
	return res
}

func rollN(face func() int, n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = face()
	}
	return out
}

func count(faces []int, v int) int {
	n := 0
	for _, f := range faces {
		if f == v {
			n++
		}
	}
	return n
}

func d6() int {
	var b [8]byte
	_, _ = rand.Read(b[:])
	n := binary.LittleEndian.Uint64(b[:])
	return int(n%6) + 1
}
