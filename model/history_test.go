package model

import "testing"

func TestHistoryDetectsOscillator(t *testing.T) {
	w := newTestWorld(t, 5, 5)
	if err := w.Place(Blinker, 1, 2); err != nil {
		t.Fatal(err)
	}

	var h History
	for gen := range 6 {
		hash := w.Hash()
		stagnant := h.IsStagnant(hash)
		if gen < 3 && stagnant {
			t.Fatalf("generation %d flagged stagnant with %d hashes", gen, h.Len())
		}
		if gen >= 3 && !stagnant {
			t.Fatalf("generation %d of a blinker not flagged stagnant", gen)
		}
		h.Push(hash)
		w.Step()
	}
	if h.Len() != historySize {
		t.Fatalf("history kept %d hashes", h.Len())
	}

	h.Reset()
	if h.IsStagnant(w.Hash()) {
		t.Fatal("reset history still reports stagnation")
	}
}

func TestHistoryGliderIsNotStagnant(t *testing.T) {
	w := newTestWorld(t, 20, 20)
	if err := w.Place(Glider, 0, 0); err != nil {
		t.Fatal(err)
	}
	var h History
	for range 12 {
		if hash := w.Hash(); h.IsStagnant(hash) {
			t.Fatalf("moving glider flagged stagnant at generation %d", w.Generation())
		} else {
			h.Push(hash)
		}
		w.Step()
	}
}
