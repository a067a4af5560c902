package door

import (
	"errors"
	"math/rand"
	"testing"
)

func TestOtherOf(t *testing.T) {
	// GIVEN every ordered pair of distinct doors
	for _, a := range All {
		for _, b := range All {
			if a == b {
				continue
			}
			// WHEN we ask for the remaining door
			got, err := OtherOf(a, b)
			if err != nil {
				t.Fatalf("OtherOf(%d, %d) returned error: %v", a, b, err)
			}
			// THEN it is the unique third door
			if got == a || got == b || !got.Valid() {
				t.Errorf("OtherOf(%d, %d) = %d, want the third door", a, b, got)
			}
		}
	}

	t.Run("known pairs", func(t *testing.T) {
		cases := []struct{ a, b, want Door }{
			{One, Two, Three},
			{Two, One, Three},
			{One, Three, Two},
			{Three, Two, One},
		}
		for _, c := range cases {
			got, _ := OtherOf(c.a, c.b)
			if got != c.want {
				t.Errorf("OtherOf(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
			}
		}
	})
}

func TestOtherOf_InvalidArguments(t *testing.T) {
	cases := []struct {
		name string
		a, b Door
	}{
		{"equal doors", One, One},
		{"zero", 0, Two},
		{"out of range", Two, 4},
		{"negative", -1, Three},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := OtherOf(c.a, c.b)
			var invalid *InvalidDoorError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidDoorError, got %v", err)
			}
			if invalid.Op != "OtherOf" {
				t.Errorf("expected op OtherOf, got %q", invalid.Op)
			}
		})
	}
}

func TestRandomOtherThan_NeverReturnsExcluded(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, a := range All {
		for i := 0; i < 1000; i++ {
			got, err := RandomOtherThan(a, rng)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == a || !got.Valid() {
				t.Fatalf("RandomOtherThan(%d) returned %d", a, got)
			}
		}
	}
}

func TestRandomOtherThan_IsUniform(t *testing.T) {
	// GIVEN a seeded source and many draws per excluded door
	rng := rand.New(rand.NewSource(42))
	const draws = 20000

	for _, a := range All {
		counts := make(map[Door]int)
		for i := 0; i < draws; i++ {
			d, _ := RandomOtherThan(a, rng)
			counts[d]++
		}

		// THEN each of the two remaining doors shows up about half the time
		if len(counts) != 2 {
			t.Fatalf("expected 2 distinct doors for exclusion %d, got %v", a, counts)
		}
		for d, n := range counts {
			frac := float64(n) / draws
			if frac < 0.48 || frac > 0.52 {
				t.Errorf("door %d drawn with frequency %.4f when excluding %d", d, frac, a)
			}
		}
	}
}

func TestRandomOtherThan_InvalidDoor(t *testing.T) {
	picker := NewFixedPicker(0)
	_, err := RandomOtherThan(4, picker)
	var invalid *InvalidDoorError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidDoorError, got %v", err)
	}
	if picker.Calls() != 0 {
		t.Errorf("expected no draws on invalid input, got %d", picker.Calls())
	}
}

func TestRandomOtherThan_SingleDraw(t *testing.T) {
	picker := NewFixedPicker(1)
	got, _ := RandomOtherThan(One, picker)
	if got != Three {
		t.Errorf("expected second candidate %d, got %d", Three, got)
	}
	if picker.Calls() != 1 {
		t.Errorf("expected exactly one draw, got %d", picker.Calls())
	}
}

func TestRandom(t *testing.T) {
	picker := NewFixedPicker(0, 1, 2)
	for _, want := range All {
		if got := Random(picker); got != want {
			t.Errorf("expected %d, got %d", want, got)
		}
	}
}
