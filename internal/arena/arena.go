package arena

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"trainer/internal/battle"
	"trainer/internal/config"
	"trainer/internal/util"
)

var (
	ErrUnknownFighter = errors.New("unknown fighter")
	ErrNoBattle       = errors.New("no such battle")
	ErrEmptyName      = errors.New("character name cannot be empty")
)

const Draw = "draw"

type Battle struct {
	ID     string  `json:"id"`
	P1     string  `json:"p1"`
	P2     string  `json:"p2"`
	Turns  int     `json:"turns"`
	Over   bool    `json:"over"`
	Winner string  `json:"winner,omitempty"`
	Events []Event `json:"events,omitempty"`
}

// Arena is an in-memory game server: it keeps fighters by "<name>.<class>"
// and battles by "<char1>/<char2>".
type Arena struct {
	cfg *config.ArenaConfig
	log zerolog.Logger

	mu       sync.Mutex
	rng      *rand.Rand
	ai       AI
	fighters map[string]*Fighter
	battles  map[string]*Battle
}

func New(cfg *config.ArenaConfig, log zerolog.Logger) *Arena {
	return &Arena{
		cfg:      cfg,
		log:      log,
		rng:      util.New(cfg.Seed),
		ai:       NewAI(cfg),
		fighters: map[string]*Fighter{},
		battles:  map[string]*Battle{},
	}
}

func battleKey(c1, c2 string) string { return c1 + "/" + c2 }

// Register rolls a new fighter. Re-registering a name/class pair replaces the
// old fighter and drops any battle it was part of.
func (a *Arena) Register(name, class string) (*Fighter, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	cd, ok := a.cfg.Class(class)
	if !ok {
		return nil, fmt.Errorf("%w: %q", battle.ErrUnknownClass, class)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	f := NewFighter(name, cd, a.rng)
	a.fighters[f.ID()] = f
	for k, b := range a.battles {
		if b.P1 == f.ID() || b.P2 == f.ID() {
			delete(a.battles, k)
		}
	}
	a.log.Debug().Str("fighter", f.ID()).Int("health", f.Health).Int("armor", f.Armor).Msg("registered")
	return f, nil
}

// Delete removes both fighters and their battle.
func (a *Arena) Delete(c1, c2 string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.fighters, c1)
	delete(a.fighters, c2)
	delete(a.battles, battleKey(c1, c2))
}

func (a *Arena) Fighters() []Fighter {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Fighter, 0, len(a.fighters))
	for _, f := range a.fighters {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Turn resolves one turn of c1 (playing move) against c2 (move chosen by the
// configured AI, which then learns from the outcome). It
// returns a snapshot of the battle afterwards. A battle that is already over
// is returned unchanged.
func (a *Arena) Turn(c1, c2 string, move battle.Move) (Battle, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p1, ok := a.fighters[c1]
	if !ok {
		return Battle{}, fmt.Errorf("%w: %s", ErrUnknownFighter, c1)
	}
	p2, ok := a.fighters[c2]
	if !ok {
		return Battle{}, fmt.Errorf("%w: %s", ErrUnknownFighter, c2)
	}

	key := battleKey(c1, c2)
	b, ok := a.battles[key]
	if !ok {
		b = &Battle{ID: uuid.NewString(), P1: c1, P2: c2}
		a.battles[key] = b
	}
	if b.Over {
		return *b, nil
	}

	b.Turns++
	before := StateOf(p1, p2)
	enemyMove := a.ai.Move(a.rng, p1, p2)
	b.Events = append(b.Events, Resolve(a.rng, b.Turns, p1, p2, move, enemyMove)...)
	a.ai.Learn(before, StateOf(p1, p2), enemyMove)

	switch {
	case !p1.Alive() && !p2.Alive():
		b.Over, b.Winner = true, Draw
	case !p2.Alive():
		b.Over, b.Winner = true, c1
	case !p1.Alive():
		b.Over, b.Winner = true, c2
	case a.cfg.MaxTurns > 0 && b.Turns >= a.cfg.MaxTurns:
		b.Over, b.Winner = true, Draw
	}
	if b.Over {
		b.Events = append(b.Events, Event{Turn: b.Turns, Type: "End", Payload: map[string]any{"winner": b.Winner}})
		a.log.Info().Str("battle_id", b.ID).Str("winner", b.Winner).Int("turns", b.Turns).Msg("battle over")
	}
	return *b, nil
}

// Battle returns a snapshot of the battle between c1 and c2.
func (a *Arena) Battle(c1, c2 string) (Battle, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	b, ok := a.battles[battleKey(c1, c2)]
	if !ok {
		return Battle{}, fmt.Errorf("%w: %s", ErrNoBattle, battleKey(c1, c2))
	}
	return *b, nil
}

// Status returns copies of both fighters.
func (a *Arena) Status(c1, c2 string) (Fighter, Fighter, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	p1, ok := a.fighters[c1]
	if !ok {
		return Fighter{}, Fighter{}, fmt.Errorf("%w: %s", ErrUnknownFighter, c1)
	}
	p2, ok := a.fighters[c2]
	if !ok {
		return Fighter{}, Fighter{}, fmt.Errorf("%w: %s", ErrUnknownFighter, c2)
	}
	return *p1, *p2, nil
}
