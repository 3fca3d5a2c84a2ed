package model

import (
	"bytes"
	"testing"
)

func TestTextRendererDisplay(t *testing.T) {
	w := newTestWorld(t, 3, 2)
	setRowCol(t, w, [2]int{0, 0}, [2]int{1, 2})

	r := &TextRenderer{Alive: "#", Dead: "."}
	var buf bytes.Buffer
	if err := r.Display(&buf, w); err != nil {
		t.Fatal(err)
	}

	want := "|#..|\n|..#|\n"
	if buf.String() != want {
		t.Fatalf("rendered %q, want %q", buf.String(), want)
	}
}
