package player

import (
	"fmt"

	"montyhall/internal/door"
)

// Prompter is what a HumanPlayer needs from the terminal.
type Prompter interface {
	PromptDoor(prompt string, options []door.Door) door.Door
	Confirm(prompt string) bool
}

// HumanPlayer represents a player controlled by a person.
type HumanPlayer struct {
	name     string
	prompter Prompter
}

// NewHumanPlayer creates a player whose decisions come from the prompter.
func NewHumanPlayer(name string, prompter Prompter) *HumanPlayer {
	return &HumanPlayer{name: name, prompter: prompter}
}

func (h *HumanPlayer) Name() string  { return h.name }
func (h *HumanPlayer) IsHuman() bool { return true }

func (h *HumanPlayer) ChooseDoor() door.Door {
	return h.prompter.PromptDoor("Pick a door:", door.All)
}

func (h *HumanPlayer) ShouldSwitch(initial, revealed door.Door) bool {
	other, err := door.OtherOf(revealed, initial)
	if err != nil {
		return false
	}
	return h.prompter.Confirm(fmt.Sprintf("The host opened %s. Switch from %s to %s?", revealed, initial, other))
}
