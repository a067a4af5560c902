package cli

import (
	"fmt"
	"io"

	"montyhall/internal/events"
)

// Narrator implements the events.Listener interface to tell the story of each
// trial on the console. It only reads events and never touches the outcome.
type Narrator struct {
	out io.Writer
}

// NewNarrator creates a narrator writing to out.
func NewNarrator(out io.Writer) *Narrator {
	return &Narrator{out: out}
}

// HandleEvent is the central dispatcher for rendering events.
func (n *Narrator) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.TrialResolvedEvent:
		lines := Narrate(event)
		for _, line := range lines[:len(lines)-1] {
			fmt.Fprintln(n.out, line)
		}
		outcome := C.No
		if event.Won {
			outcome = C.Yes
		}
		outcome.Fprintln(n.out, lines[len(lines)-1])
		fmt.Fprintln(n.out)
	case events.BatchFinishedEvent:
		C.Debug.Fprintf(n.out, "%s batch narrated %d trials.\n", event.Strategy, event.Trials)
	}
}

// Narrate returns the human-readable steps of one trial.
func Narrate(e events.TrialResolvedEvent) []string {
	lines := []string{
		fmt.Sprintf("Player chooses door %d (car behind door %d)", e.Initial, e.Prize),
		fmt.Sprintf("Door %d is revealed", e.Revealed),
	}
	if e.Strategy.Switches() {
		lines = append(lines, fmt.Sprintf("Player decides to change to door %d", e.Final))
	} else {
		lines = append(lines, fmt.Sprintf("Player stays with door %d", e.Final))
	}
	if e.Won {
		lines = append(lines, "Player wins!")
	} else {
		lines = append(lines, "Player loses!")
	}
	return lines
}
