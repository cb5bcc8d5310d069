package arena

import (
	"math/rand"

	"trainer/internal/config"
)

type Event struct {
	Turn    int            `json:"turn"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Fighter is a registered character. Strength, Dexterity and Intellect are
// normalized to [0, 1].
type Fighter struct {
	Name      string  `json:"name"`
	Class     string  `json:"class"`
	Health    int     `json:"health"`
	MaxHealth int     `json:"max_health"`
	Stamina   int     `json:"stamina"`
	Armor     int     `json:"armor"`
	Strength  float64 `json:"strength"`
	Dexterity float64 `json:"dexterity"`
	Intellect float64 `json:"intellect"`
}

func roll(rng *rand.Rand, r config.StatRange) int {
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

func NewFighter(name string, cd config.ClassDef, rng *rand.Rand) *Fighter {
	hp := roll(rng, cd.Health)
	return &Fighter{
		Name:      name,
		Class:     cd.ID,
		Health:    hp,
		MaxHealth: hp,
		Stamina:   roll(rng, cd.Stamina),
		Armor:     roll(rng, cd.Armor),
		Strength:  float64(roll(rng, cd.Strength)) / 20,
		Dexterity: float64(roll(rng, cd.Dexterity)) / 20,
		Intellect: float64(roll(rng, cd.Intellect)) / 20,
	}
}

func (f *Fighter) ID() string  { return f.Name + "." + f.Class }
func (f *Fighter) Alive() bool { return f.Health > 0 }

// takeDamage lets armor soak the whole hit while any armor remains.
func (f *Fighter) takeDamage(d int) {
	if d <= 0 {
		return
	}
	if f.Armor > 0 {
		f.Armor -= d
		if f.Armor < 0 {
			f.Armor = 0
		}
		return
	}
	f.Health -= d
}
