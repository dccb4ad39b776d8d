package centipede

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Player represents the identity of a player in the game.
type Player uint8

const (
	_ Player = iota
	PlayerA
	PlayerB
)

var playerStr = [...]string{
	"Invalid",
	"A",
	"B",
}

func (p Player) String() string {
	if int(p) >= len(playerStr) {
		return fmt.Sprintf("Player(%d)", uint8(p))
	}

	return playerStr[p]
}

// IsValid reports whether p is one of the two players.
func (p Player) IsValid() bool {
	return p == PlayerA || p == PlayerB
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if !p.IsValid() {
		panic(fmt.Sprintf("cannot call Opponent with player %v", p))
	}

	return PlayerA + PlayerB - p
}

// Actor identifies who moves at a decision node: a player and the round
// (cycle) in which they move. Leaves have the zero Actor.
type Actor struct {
	Player Player
	Round  int
}

// IsValid reports whether the Actor names a real player in a positive round.
func (a Actor) IsValid() bool {
	return a.Player.IsValid() && a.Round >= 1
}

// String formats the Actor as player followed by round, e.g. "A1" or "B3".
func (a Actor) String() string {
	if a == (Actor{}) {
		return ""
	}

	return a.Player.String() + strconv.Itoa(a.Round)
}

// ParseActor parses labels of the form produced by Actor.String.
func ParseActor(label string) (Actor, error) {
	if len(label) < 2 {
		return Actor{}, errors.Wrapf(ErrUnknownActor, "label %q", label)
	}

	var player Player
	switch label[0] {
	case 'A':
		player = PlayerA
	case 'B':
		player = PlayerB
	default:
		return Actor{}, errors.Wrapf(ErrUnknownActor, "label %q has no player prefix", label)
	}

	round, err := strconv.Atoi(label[1:])
	if err != nil || round < 1 {
		return Actor{}, errors.Wrapf(ErrUnknownActor, "label %q has invalid round", label)
	}

	return Actor{Player: player, Round: round}, nil
}
