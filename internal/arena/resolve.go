package arena

import (
	"math/rand"

	"trainer/internal/battle"
)

// Attacks hit when a roll beats the defender's counter stat and scale with
// one of the attacker's stats:
//
//	Heavy:    strength vs intellect
//	Quick:    dexterity vs strength
//	Standard: intellect vs dexterity
func attack(rng *rand.Rand, a, d *Fighter, m battle.Move) int {
	var power, guard float64
	switch m {
	case battle.Heavy:
		power, guard = a.Strength, d.Intellect
	case battle.Quick:
		power, guard = a.Dexterity, d.Strength
	case battle.Standard:
		power, guard = a.Intellect, d.Dexterity
	default:
		return 0
	}
	if rng.Float64() <= guard {
		return 0
	}
	return int(float64(rng.Intn(21))*power + 1.5)
}

// defend rolls a defensive move. Block, Parry and Evade key off strength,
// dexterity and intellect. A failed parry returns a negative value.
func defend(rng *rand.Rand, f *Fighter, m battle.Move) int {
	var stat float64
	switch m {
	case battle.Block:
		stat = f.Strength
	case battle.Parry:
		stat = f.Dexterity
	case battle.Evade:
		stat = f.Intellect
	default:
		return 0
	}
	scale := int(stat*10 + .5)
	if scale < 1 {
		return 0
	}
	if rng.Float64() < stat {
		return rng.Intn(scale)
	}
	if m == battle.Parry {
		return -rng.Intn(scale)
	}
	return 0
}

func act(rng *rand.Rand, self, other *Fighter, m battle.Move) int {
	if m.Attack() {
		return attack(rng, self, other, m)
	}
	return defend(rng, self, m)
}

// Resolve plays one turn: p1 uses m1 and p2 uses m2. Fighters are mutated in
// place and the returned events describe what happened.
func Resolve(rng *rand.Rand, turn int, p1, p2 *Fighter, m1, m2 battle.Move) []Event {
	a1 := act(rng, p1, p2, m1)
	a2 := act(rng, p2, p1, m2)

	var evs []Event
	emit := func(typ string, actor *Fighter, amount int) {
		evs = append(evs, Event{Turn: turn, Type: typ, Payload: map[string]any{"actor": actor.ID(), "amount": amount}})
	}
	evs = append(evs, Event{Turn: turn, Type: "Moves", Payload: map[string]any{
		p1.ID(): string(m1),
		p2.ID(): string(m2),
	}})

	switch {
	case m1.Attack() && m2.Attack():
		if a1 > 0 {
			p2.takeDamage(a1)
			emit("Damage", p1, a1)
		}
		if a2 > 0 {
			p1.takeDamage(a2)
			emit("Damage", p2, a2)
		}
		if a1 <= 0 && a2 <= 0 {
			emit("Miss", p1, 0)
		}
	case m1.Attack():
		counter(p2, p1, m2, a2, a1, emit)
	case m2.Attack():
		counter(p1, p2, m1, a1, a2, emit)
	default:
		emit("Nothing", p1, 0)
	}
	return evs
}

// counter resolves a defender (d, using dm for dv) against an attacker hitting
// for av.
func counter(d, a *Fighter, dm battle.Move, dv, av int, emit func(string, *Fighter, int)) {
	switch dm {
	case battle.Block:
		if dv > 0 {
			d.Armor += dv
			emit("Repair", d, dv)
		} else if av > 0 {
			d.takeDamage(av)
			emit("Damage", a, av)
		}
	case battle.Parry:
		if dv > 0 {
			a.takeDamage(av + dv)
			emit("Damage", d, av+dv)
		} else if av-dv > 0 {
			d.takeDamage(av - dv)
			emit("Damage", a, av-dv)
		}
	case battle.Evade:
		if dv > 0 {
			d.Health += dv
			emit("Heal", d, dv)
		} else if av > 0 {
			d.takeDamage(av)
			emit("Damage", a, av)
		}
	}
}
