package game

import (
	"errors"
	"fmt"

	"crazyrules/pkg/rules"
)

// ErrRoundNotOver is returned when the next round is requested before the current one is done
var ErrRoundNotOver = errors.New("the round is not over")

// SeatError is an error on a seat id that does not exist
type SeatError rules.PlayerID

func (s SeatError) Error() string {
	return fmt.Sprintf("expected seats 0–%d, got %d", rules.NumPlayers-1, uint8(s))
}
