package battle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"trainer/internal/util"
)

// ErrTurnLimit is returned when MaxTurns is set and reached before the end marker.
var ErrTurnLimit = errors.New("turn limit reached")

type Result struct {
	BattleID string    `json:"battle_id"`
	Player   Character `json:"player"`
	Enemy    Character `json:"enemy"`
	Turns    int       `json:"turns"`
	EndURL   string    `json:"end_url"`
}

// Driver plays battles against a Server with random classes and moves.
// MaxTurns 0 keeps turning until the server ends the battle.
type Driver struct {
	Server   Server
	Rng      *rand.Rand
	MaxTurns int
	Log      zerolog.Logger
}

func NewDriver(srv Server, rng *rand.Rand, log zerolog.Logger) *Driver {
	return &Driver{Server: srv, Rng: rng, Log: log}
}

// Fight submits random moves until a resolved URL contains EndMarker.
func (d *Driver) Fight(ctx context.Context, playerClass, enemyClass Class) (Result, error) {
	res := Result{Player: Player(playerClass), Enemy: Enemy(enemyClass)}
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if d.MaxTurns > 0 && res.Turns >= d.MaxTurns {
			return res, fmt.Errorf("%w after %d turns", ErrTurnLimit, res.Turns)
		}
		move := util.Pick(d.Rng, Moves)
		final, err := d.Server.Turn(ctx, res.Player, res.Enemy, move)
		if err != nil {
			return res, err
		}
		res.Turns++
		d.Log.Trace().Int("turn", res.Turns).Str("move", string(move)).Str("url", final).Msg("turn")
		if Ended(final) {
			res.EndURL = final
			return res, nil
		}
	}
}

// PlayBattle creates a fresh pair of characters and fights until the end.
func (d *Driver) PlayBattle(ctx context.Context) (Result, error) {
	id := uuid.NewString()
	pc, ec, err := GenerateCharacters(ctx, d.Server, d.Rng)
	if err != nil {
		return Result{BattleID: id}, err
	}
	d.Log.Debug().Str("battle_id", id).Str("player", string(pc)).Str("enemy", string(ec)).Msg("battle started")

	res, err := d.Fight(ctx, pc, ec)
	res.BattleID = id
	if err != nil {
		return res, err
	}
	d.Log.Debug().Str("battle_id", id).Int("turns", res.Turns).Str("end_url", res.EndURL).Msg("battle ended")
	return res, nil
}

// Run plays battles back to back and writes the running count to out after
// each one. maxBattles 0 runs until an error. It returns the number of
// completed battles.
func (d *Driver) Run(ctx context.Context, maxBattles int, out io.Writer) (int, error) {
	played := 0
	for maxBattles == 0 || played < maxBattles {
		if _, err := d.PlayBattle(ctx); err != nil {
			return played, err
		}
		played++
		fmt.Fprintln(out, played)
	}
	return played, nil
}
