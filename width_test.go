package lomc

import "testing"

func TestClassifyWidth(t *testing.T) {
	for _, tc := range []struct {
		name string
		p    uint8
		n    int
		want Width
	}{
		{"all zero", 0, 256, Width0},
		{"single -1", 0, 0xFF, Width1},
		{"range -2..1", 1, 254, Width2}, // q = 256-254 = 2
		{"range -8..7", 7, 248, Width4}, // q = 256-248 = 8
		{"out of 4-bit range, positive", 8, 256, Width8},
		{"out of 4-bit range, negative", 0, 247, Width8}, // q = 9
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyWidth(tc.p, tc.n); got != tc.want {
				t.Fatalf("classifyWidth(%d, %d) = %d, want %d", tc.p, tc.n, got, tc.want)
			}
		})
	}
}

func TestDeltaRangeObserve(t *testing.T) {
	r := newDeltaRange()
	for _, d := range []uint8{0, 0, 0} {
		r.observe(d)
	}
	if got := r.width(); got != Width0 {
		t.Fatalf("all-zero deltas: got width %d, want 0", got)
	}

	r = newDeltaRange()
	r.observe(0xFF) // -1
	for i := 0; i < 15; i++ {
		r.observe(0)
	}
	if got := r.width(); got != Width1 {
		t.Fatalf("single -1 delta: got width %d, want 1", got)
	}

	r = newDeltaRange()
	r.observe(1)
	r.observe(0xFE) // -2
	if got := r.width(); got != Width2 {
		t.Fatalf("-2/+1 deltas: got width %d, want 2", got)
	}

	r = newDeltaRange()
	r.observe(7)
	r.observe(0xF8) // -8
	if got := r.width(); got != Width4 {
		t.Fatalf("-8/+7 deltas: got width %d, want 4", got)
	}

	r = newDeltaRange()
	r.observe(8) // outside [-8,7]
	if got := r.width(); got != Width8 {
		t.Fatalf("+8 delta: got width %d, want 8", got)
	}
}

func TestValueOffset(t *testing.T) {
	for w, want := range map[Width]uint8{
		Width0: 0,
		Width1: 1,
		Width2: 2,
		Width4: 8,
		Width8: 0,
	} {
		if got := valueOffset(w); got != want {
			t.Fatalf("valueOffset(%d) = %d, want %d", w, got, want)
		}
	}
}
