package battle

import (
	"errors"
	"fmt"
)

type Class string

const (
	Knight Class = "Knight"
	Archer Class = "Archer"
	Wizard Class = "Wizard"
)

// Classes is the fixed class enumeration, in wire order.
var Classes = []Class{Knight, Archer, Wizard}

type Move string

const (
	Heavy    Move = "Heavy"
	Quick    Move = "Quick"
	Standard Move = "Standard"
	Block    Move = "Block"
	Parry    Move = "Parry"
	Evade    Move = "Evade"
)

// Moves is the fixed move enumeration.
var Moves = []Move{Heavy, Quick, Standard, Block, Parry, Evade}

func (m Move) Attack() bool { return m == Heavy || m == Quick || m == Standard }

const (
	PlayerName = "Training"
	EnemyName  = "Training_enemy"
)

var (
	ErrUnknownClass = errors.New("unknown class")
	ErrUnknownMove  = errors.New("unknown move")
)

func ParseClass(s string) (Class, error) {
	for _, c := range Classes {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownClass, s)
}

func ParseMove(s string) (Move, error) {
	for _, m := range Moves {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMove, s)
}

// Character is what the game server knows a combatant by.
type Character struct {
	Name  string `json:"name"`
	Class Class  `json:"class"`
}

// ID is the "<name>.<class>" key used in turn paths.
func (c Character) ID() string { return c.Name + "." + string(c.Class) }

func Player(c Class) Character { return Character{Name: PlayerName, Class: c} }
func Enemy(c Class) Character  { return Character{Name: EnemyName, Class: c} }
