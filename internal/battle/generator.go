package battle

import (
	"context"
	"math/rand"

	"trainer/internal/util"
)

// Server is the slice of the game server API the trainer uses.
type Server interface {
	CreateCharacter(ctx context.Context, ch Character) error
	Turn(ctx context.Context, player, enemy Character, move Move) (string, error)
}

// GenerateCharacters rolls a class for the player and the enemy and registers
// both, player first. The first transport error aborts.
func GenerateCharacters(ctx context.Context, srv Server, rng *rand.Rand) (Class, Class, error) {
	player := util.Pick(rng, Classes)
	if err := srv.CreateCharacter(ctx, Player(player)); err != nil {
		return "", "", err
	}
	enemy := util.Pick(rng, Classes)
	if err := srv.CreateCharacter(ctx, Enemy(enemy)); err != nil {
		return "", "", err
	}
	return player, enemy, nil
}
