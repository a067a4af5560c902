package player

import (
	"fmt"
	"strings"

	"montyhall/internal/door"
)

// Strategy is the fixed policy a player follows after the host reveals a door.
type Strategy int

const (
	StrategySwitch Strategy = iota
	StrategyStay
)

// String returns the string representation of a Strategy.
func (s Strategy) String() string {
	return []string{"switch", "stay"}[s]
}

// ParseStrategy converts a name such as "switch" or "stay" into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "switch", "change":
		return StrategySwitch, nil
	case "stay", "keep":
		return StrategyStay, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", name)
	}
}

// Switches reports whether the strategy abandons the initial choice.
func (s Strategy) Switches() bool {
	return s == StrategySwitch
}

// FinalChoice applies the strategy once revealed has been opened.
func (s Strategy) FinalChoice(initial, revealed door.Door) (door.Door, error) {
	if !s.Switches() {
		return initial, nil
	}
	return door.OtherOf(revealed, initial)
}

// Expected is the theoretical win fraction of the strategy.
func (s Strategy) Expected() float64 {
	if s.Switches() {
		return 2.0 / 3.0
	}
	return 1.0 / 3.0
}

// Player is the interface for anything that takes part in a single game:
// it picks a door, then decides whether to switch after the reveal.
type Player interface {
	Name() string
	IsHuman() bool
	ChooseDoor() door.Door
	ShouldSwitch(initial, revealed door.Door) bool
}

// FixedPlayer plays a pre-drawn initial choice under a fixed strategy.
type FixedPlayer struct {
	Initial  door.Door
	Strategy Strategy
}

func (f *FixedPlayer) Name() string          { return "Player" }
func (f *FixedPlayer) IsHuman() bool         { return false }
func (f *FixedPlayer) ChooseDoor() door.Door { return f.Initial }
func (f *FixedPlayer) ShouldSwitch(initial, revealed door.Door) bool {
	return f.Strategy.Switches()
}
