package arena

import (
	"math"
	"math/rand"

	"trainer/internal/battle"
	"trainer/internal/config"
	"trainer/internal/util"
)

// AI picks the enemy's move each turn and may learn from the outcome. The
// arena calls it with its lock held.
type AI interface {
	Move(rng *rand.Rand, player, enemy *Fighter) battle.Move
	Learn(before, after State, move battle.Move)
}

func NewAI(cfg *config.ArenaConfig) AI {
	switch cfg.AI {
	case config.AIRand:
		return randomAI{}
	case config.AIReinforcement:
		return newQLearner(cfg.Learning)
	default:
		return minMaxAI{}
	}
}

func moveIndex(m battle.Move) int {
	for i, mv := range battle.Moves {
		if mv == m {
			return i
		}
	}
	return -1
}

type randomAI struct{}

func (randomAI) Move(rng *rand.Rand, _, _ *Fighter) battle.Move { return util.Pick(rng, battle.Moves) }
func (randomAI) Learn(State, State, battle.Move)               {}

// minMaxAI draws the enemy move from weights built out of the expected
// damage to the player and the expected change of the enemy's health and
// armor for every move.
type minMaxAI struct{}

func (minMaxAI) Move(rng *rand.Rand, player, enemy *Fighter) battle.Move {
	r := rng.Float64()
	w := minMaxWeights(player, enemy)
	for i, v := range w {
		r -= v
		if r <= 0 {
			return battle.Moves[i]
		}
	}
	return battle.Moves[len(battle.Moves)-1]
}

func (minMaxAI) Learn(State, State, battle.Move) {}

func scaled(stat, bias float64) float64 { return float64(int(10*stat + bias)) }

// expectedDamage is the mean damage e deals to p with each move.
func expectedDamage(p, e *Fighter) [6]float64 {
	return [6]float64{
		(1 - p.Intellect) * scaled(e.Strength, 1.5),
		(1 - p.Strength) * scaled(e.Dexterity, 1.5),
		(1 - p.Dexterity) * scaled(e.Intellect, 1.5),
		0,
		e.Dexterity * scaled(e.Dexterity, .5),
		0,
	}
}

// incoming is the mean damage e takes from p over all of p's moves.
func incoming(p, e *Fighter) float64 {
	var sum float64
	for _, v := range expectedDamage(e, p) {
		sum += v
	}
	return sum / 6
}

// expectedHealth is the mean change of e's health for each of e's moves.
func expectedHealth(p, e *Fighter) [6]float64 {
	in := incoming(p, e)
	return [6]float64{
		-in, -in, -in,
		-(1 - e.Strength) * in,
		-((1-e.Dexterity)*scaled(e.Dexterity, .5) + in),
		e.Intellect*scaled(e.Intellect, .5) - (1-e.Intellect)*in,
	}
}

// expectedArmor is the mean change of e's armor for each of e's moves.
func expectedArmor(p, e *Fighter) [6]float64 {
	in := incoming(p, e)
	return [6]float64{
		-in, -in, -in,
		e.Strength*scaled(e.Strength, .5) - (1-e.Strength)*in,
		-((1-e.Dexterity)*scaled(e.Dexterity, .5) + in),
		-(1 - e.Intellect) * in,
	}
}

// minMaxWeights min-max normalizes the three outcome tables together, scales
// them to sum to 1 and folds them into one weight per move.
func minMaxWeights(p, e *Fighter) [6]float64 {
	tables := [3][6]float64{expectedDamage(p, e), expectedHealth(p, e), expectedArmor(p, e)}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, t := range tables {
		for _, v := range t {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}

	var w [6]float64
	if hi == lo {
		for i := range w {
			w[i] = 1.0 / 6
		}
		return w
	}

	var sum float64
	for i := range tables {
		for j := range tables[i] {
			tables[i][j] = (tables[i][j] - lo) / (hi - lo)
			sum += tables[i][j]
		}
	}
	for _, t := range tables {
		for j, v := range t {
			w[j] += v / sum
		}
	}
	return w
}

// State buckets both fighters for the Q-table: class, health and armor of
// the player in the high bits, the same for the enemy in the low bits.
type State uint16

const (
	playerHealthMask State = 0x0300
	playerArmorMask  State = 0x00C0
	enemyHealthMask  State = 0x000C
	enemyArmorMask   State = 0x0003
)

func classBucket(class string) State {
	switch battle.Class(class) {
	case battle.Archer:
		return 1
	case battle.Wizard:
		return 2
	}
	return 0
}

func bucket(v, low, mid int) State {
	switch {
	case v < low:
		return 0
	case v < mid:
		return 1
	}
	return 2
}

func StateOf(player, enemy *Fighter) State {
	return classBucket(player.Class)<<10 |
		bucket(player.Health, 25, 50)<<8 |
		bucket(player.Armor, 5, 10)<<6 |
		classBucket(enemy.Class)<<4 |
		bucket(enemy.Health, 25, 50)<<2 |
		bucket(enemy.Armor, 5, 10)
}

// reward favours the player losing health or armor and the enemy keeping
// its own.
func reward(s, next State) float64 {
	field := func(st, mask State, shift uint) State { return (st & mask) >> shift }
	var r float64
	if field(next, playerHealthMask, 8) < field(s, playerHealthMask, 8) {
		r += 1.5
	}
	if field(next, playerArmorMask, 6) < field(s, playerArmorMask, 6) {
		r += 1.5
	}
	for _, f := range []struct {
		mask  State
		shift uint
	}{{enemyHealthMask, 2}, {enemyArmorMask, 0}} {
		before, after := field(s, f.mask, f.shift), field(next, f.mask, f.shift)
		switch {
		case after > before:
			r += 1
		case after < before:
			r -= .5
		}
	}
	return r
}

// qLearner explores with a random move while rng < explore, otherwise picks
// the best-scoring move for the current state. Exploration decays towards
// 0.25 with every explored move.
type qLearner struct {
	cfg      config.LearningConfig
	explore  float64
	explored int
	table    map[State]*[6]float64
}

func newQLearner(cfg config.LearningConfig) *qLearner {
	return &qLearner{cfg: cfg, explore: cfg.ExploreRate, table: map[State]*[6]float64{}}
}

func (q *qLearner) row(s State) *[6]float64 {
	r, ok := q.table[s]
	if !ok {
		r = &[6]float64{}
		q.table[s] = r
	}
	return r
}

func (q *qLearner) Move(rng *rand.Rand, player, enemy *Fighter) battle.Move {
	if rng.Float64() < q.explore {
		q.explored++
		if q.explore > .25 {
			q.explore = math.Max(.25, q.explore-float64(q.explored)*.001)
		}
		return util.Pick(rng, battle.Moves)
	}
	row := q.row(StateOf(player, enemy))
	best := 0
	for i, v := range row {
		if v > row[best] {
			best = i
		}
	}
	return battle.Moves[best]
}

func (q *qLearner) Learn(s, next State, move battle.Move) {
	i := moveIndex(move)
	if !q.cfg.Train || i < 0 {
		return
	}
	future := math.Inf(-1)
	for _, v := range q.row(next) {
		future = math.Max(future, v)
	}
	row := q.row(s)
	row[i] += q.cfg.LearningRate * (reward(s, next) + q.cfg.Discount*future - row[i])
}
