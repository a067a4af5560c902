package door

import (
	"fmt"
	"strings"
)

// Door identifies one of the three doors on stage using a typed enum.
type Door int

const (
	One Door = iota + 1
	Two
	Three
)

// All lists every door in stage order.
var All = []Door{One, Two, Three}

// Valid reports whether d is one of the three doors.
func (d Door) Valid() bool {
	return d >= One && d <= Three
}

func (d Door) String() string {
	return fmt.Sprintf("door %d", int(d))
}

// InvalidDoorError reports a door-arithmetic call whose arguments break its
// contract: a value outside the three doors, or two doors that had to differ.
type InvalidDoorError struct {
	Op    string
	Doors []Door
}

func (e *InvalidDoorError) Error() string {
	parts := make([]string, len(e.Doors))
	for i, d := range e.Doors {
		parts[i] = fmt.Sprintf("%d", int(d))
	}
	return fmt.Sprintf("%s: invalid door arguments (%s)", e.Op, strings.Join(parts, ", "))
}

// OtherOf returns the door that is neither a nor b.
func OtherOf(a, b Door) (Door, error) {
	if !a.Valid() || !b.Valid() || a == b {
		return 0, &InvalidDoorError{Op: "OtherOf", Doors: []Door{a, b}}
	}
	// One+Two+Three == 6
	return 6 - a - b, nil
}

// RandomOtherThan returns one of the two doors other than a, each with
// probability 1/2. Exactly one draw is taken from p.
func RandomOtherThan(a Door, p Picker) (Door, error) {
	if !a.Valid() {
		return 0, &InvalidDoorError{Op: "RandomOtherThan", Doors: []Door{a}}
	}
	candidates := make([]Door, 0, 2)
	for _, d := range All {
		if d != a {
			candidates = append(candidates, d)
		}
	}
	return candidates[p.Intn(len(candidates))], nil
}

// Random draws a door uniformly from all three.
func Random(p Picker) Door {
	return All[p.Intn(len(All))]
}
