package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trainer/internal/battle"
	"trainer/internal/util"
)

func fighter(name string, hp, armor int, str, dex, intel float64) *Fighter {
	return &Fighter{Name: name, Class: "Knight", Health: hp, MaxHealth: hp, Armor: armor, Strength: str, Dexterity: dex, Intellect: intel}
}

func TestTakeDamageArmorSoaksFirst(t *testing.T) {
	f := fighter("a", 50, 5, 0, 0, 0)
	f.takeDamage(8)
	assert.Equal(t, 0, f.Armor)
	assert.Equal(t, 50, f.Health)
	f.takeDamage(8)
	assert.Equal(t, 42, f.Health)
	f.takeDamage(-3)
	assert.Equal(t, 42, f.Health)
}

func TestAttackGuardExtremes(t *testing.T) {
	rng := util.New(11)
	a := fighter("a", 50, 0, 1, 1, 1)
	wall := fighter("w", 50, 0, 1, 1, 1)
	open := fighter("o", 50, 0, 0, 0, 0)
	for _, m := range []battle.Move{battle.Heavy, battle.Quick, battle.Standard} {
		for i := 0; i < 50; i++ {
			assert.Zero(t, attack(rng, a, wall, m), m)
			assert.GreaterOrEqual(t, attack(rng, a, open, m), 1, m)
		}
	}
	assert.Zero(t, attack(rng, a, open, battle.Block))
}

func TestDefendZeroStatDoesNothing(t *testing.T) {
	rng := util.New(5)
	f := fighter("f", 50, 0, 0, 0, 0)
	for _, m := range []battle.Move{battle.Block, battle.Parry, battle.Evade} {
		assert.Zero(t, defend(rng, f, m), m)
	}
}

func TestParryStaysWithinScale(t *testing.T) {
	rng := util.New(9)
	f := fighter("f", 50, 0, 0, 0.5, 0)
	for i := 0; i < 200; i++ {
		v := defend(rng, f, battle.Parry)
		assert.GreaterOrEqual(t, v, -5)
		assert.Less(t, v, 5)
	}
}

func TestResolveBothDefendIsNoop(t *testing.T) {
	rng := util.New(1)
	p1 := fighter("p1", 50, 3, 0.5, 0.5, 0.5)
	p2 := fighter("p2", 60, 4, 0.5, 0.5, 0.5)

	evs := Resolve(rng, 1, p1, p2, battle.Block, battle.Evade)
	assert.Equal(t, 50, p1.Health)
	assert.Equal(t, 60, p2.Health)
	assert.Equal(t, 3, p1.Armor)
	assert.Equal(t, 4, p2.Armor)
	assert.Equal(t, "Nothing", evs[len(evs)-1].Type)
}

func TestResolveFailedDefenseTakesHit(t *testing.T) {
	for _, dm := range []battle.Move{battle.Block, battle.Parry, battle.Evade} {
		rng := util.New(2)
		attacker := fighter("a", 50, 0, 0.5, 0.5, 0.5)
		defender := fighter("d", 50, 0, 0, 0, 0)

		evs := Resolve(rng, 1, attacker, defender, battle.Standard, dm)
		assert.Less(t, defender.Health, 50, dm)
		assert.Equal(t, 50, attacker.Health, dm)
		assert.Equal(t, "Moves", evs[0].Type)
		assert.Equal(t, "Damage", evs[len(evs)-1].Type, dm)
	}
}

func TestResolveDefenderOnEitherSide(t *testing.T) {
	rng := util.New(4)
	defender := fighter("d", 50, 0, 0, 0, 0)
	attacker := fighter("a", 50, 0, 0.5, 0.5, 0.5)

	Resolve(rng, 1, defender, attacker, battle.Evade, battle.Heavy)
	assert.Less(t, defender.Health, 50)
	assert.Equal(t, 50, attacker.Health)
}
