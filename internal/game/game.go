package game

import (
	"errors"
	"fmt"
	"math/rand"

	"montyhall/internal/door"
	"montyhall/internal/events"
	"montyhall/internal/player"

	"github.com/sirupsen/logrus"
)

// ErrRevealInvariant means the host opened the prize door or the player's own
// pick. It can only come from a defect in the door arithmetic.
var ErrRevealInvariant = errors.New("revealed door breaks the host rules")

// Trial is the record of a single game. It lives only for one evaluation.
type Trial struct {
	Prize    door.Door
	Initial  door.Door
	Revealed door.Door
	Final    door.Door
	Strategy player.Strategy
	Won      bool
}

// reveal picks the door the host opens. When the player already holds the
// prize the host picks one of the two decoys at random; otherwise the only
// remaining decoy is forced and no draw is taken.
func reveal(prize, initial door.Door, p door.Picker) (door.Door, error) {
	var (
		revealed door.Door
		err      error
	)
	if initial == prize {
		revealed, err = door.RandomOtherThan(prize, p)
	} else {
		revealed, err = door.OtherOf(prize, initial)
	}
	if err != nil {
		return 0, err
	}
	if revealed == prize || revealed == initial {
		return 0, fmt.Errorf("%w: prize %d, initial %d, revealed %d", ErrRevealInvariant, prize, initial, revealed)
	}
	return revealed, nil
}

// EvaluateTrial plays one game with a fixed strategy and reports the outcome.
func EvaluateTrial(prize, initial door.Door, strategy player.Strategy, p door.Picker) (Trial, error) {
	t := Trial{Prize: prize, Initial: initial, Strategy: strategy}
	if !prize.Valid() || !initial.Valid() {
		return t, &door.InvalidDoorError{Op: "EvaluateTrial", Doors: []door.Door{prize, initial}}
	}

	revealed, err := reveal(prize, initial, p)
	if err != nil {
		return t, err
	}
	t.Revealed = revealed

	final, err := strategy.FinalChoice(initial, revealed)
	if err != nil {
		return t, err
	}
	t.Final = final
	t.Won = final == prize
	return t, nil
}

// Game is one interactive round with a single player, whose switch decision
// is made after the reveal rather than fixed in advance.
type Game struct {
	Player       player.Player
	EventManager *events.Manager
	log          *logrus.Logger
	rand         *rand.Rand
}

// Play hides the prize, lets the player pick, opens a decoy, asks the player
// whether to switch and resolves the round.
func (g *Game) Play() (Trial, error) {
	prize := door.Random(g.rand)
	initial := g.Player.ChooseDoor()
	g.log.Debugf("Prize hidden behind %s; %s picked %s", prize, g.Player.Name(), initial)

	if !initial.Valid() {
		return Trial{}, &door.InvalidDoorError{Op: "Play", Doors: []door.Door{initial}}
	}
	revealed, err := reveal(prize, initial, g.rand)
	if err != nil {
		return Trial{}, err
	}

	strategy := player.StrategyStay
	if g.Player.ShouldSwitch(initial, revealed) {
		strategy = player.StrategySwitch
	}
	final, err := strategy.FinalChoice(initial, revealed)
	if err != nil {
		return Trial{}, err
	}

	t := Trial{
		Prize:    prize,
		Initial:  initial,
		Revealed: revealed,
		Final:    final,
		Strategy: strategy,
		Won:      final == prize,
	}
	g.EventManager.Publish(trialEvent(1, t))
	return t, nil
}

func trialEvent(index int, t Trial) events.TrialResolvedEvent {
	return events.TrialResolvedEvent{
		Index:    index,
		Prize:    t.Prize,
		Initial:  t.Initial,
		Revealed: t.Revealed,
		Final:    t.Final,
		Strategy: t.Strategy,
		Won:      t.Won,
	}
}
