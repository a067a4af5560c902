package door

// Picker is the source of randomness for door draws.
// *rand.Rand satisfies it, which keeps the random source owned by the caller.
type Picker interface {
	Intn(n int) int
}

// FixedPicker implements the Picker interface by replaying a scripted list of
// indexes. This is used for predictable testing.
type FixedPicker struct {
	Script []int
	calls  int
}

// NewFixedPicker creates a picker that returns script values in order, wrapping
// around when the script runs out.
func NewFixedPicker(script ...int) *FixedPicker {
	return &FixedPicker{Script: script}
}

func (f *FixedPicker) Intn(n int) int {
	if len(f.Script) == 0 {
		f.calls++
		return 0
	}
	v := f.Script[f.calls%len(f.Script)]
	f.calls++
	return v % n
}

// Calls reports how many draws have been taken.
func (f *FixedPicker) Calls() int {
	return f.calls
}
