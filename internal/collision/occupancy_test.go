package collision

import (
	"testing"

	"cognitive-grid/internal/domain"
)

func TestBlockUnblock_RoundTrip(t *testing.T) {
	e := newTestEngine(t, "...")

	e.Block(1.5, 0.5, false)
	if got := e.TileAt(1, 0); got != domain.EntityOccupied {
		t.Fatalf("after Block tile = %v, want ENTITY", got)
	}
	e.Unblock(1.7, 0.2)
	if got := e.TileAt(1, 0); got != domain.Empty {
		t.Errorf("after Unblock tile = %v, want EMPTY", got)
	}

	e.Block(2.5, 0.5, true)
	if got := e.TileAt(2, 0); got != domain.AllyOccupied {
		t.Errorf("ally Block tile = %v, want ALLY", got)
	}
}

func TestBlock_NeverOverwrites(t *testing.T) {
	e := newTestEngine(t, "#~:ea")

	for x := 0; x < 5; x++ {
		before := e.TileAt(x, 0)
		e.Block(float64(x)+0.5, 0.5, x%2 == 0)
		if got := e.TileAt(x, 0); got != before {
			t.Errorf("Block changed tile %d from %v to %v", x, before, got)
		}
	}
}

func TestUnblock_OnlyClearsOccupancy(t *testing.T) {
	e := newTestEngine(t, "#~:.")

	for x := 0; x < 4; x++ {
		before := e.TileAt(x, 0)
		e.Unblock(float64(x)+0.5, 0.5)
		if got := e.TileAt(x, 0); got != before {
			t.Errorf("Unblock changed tile %d from %v to %v", x, before, got)
		}
	}
}

func TestBlockUnblock_OutsideMapIsNoop(t *testing.T) {
	e := newTestEngine(t, "..")

	e.Block(-1, 0.5, false)
	e.Block(5, 0.5, true)
	e.Unblock(-1, -1)

	for x := 0; x < 2; x++ {
		if got := e.TileAt(x, 0); got != domain.Empty {
			t.Errorf("tile %d = %v, want EMPTY", x, got)
		}
	}
}

func TestDoubleUnblock_IsAbsorbed(t *testing.T) {
	e := newTestEngine(t, ".")

	e.Block(0.5, 0.5, false)
	e.Unblock(0.5, 0.5)
	e.Unblock(0.5, 0.5)

	if got := e.TileAt(0, 0); got != domain.Empty {
		t.Errorf("tile = %v, want EMPTY", got)
	}
}

func TestUnblockGoal(t *testing.T) {
	e := newTestEngine(t, ".ea#")

	tests := []struct {
		name string
		p    domain.Point
		want domain.TileCode
	}{
		{"entity", domain.Point{X: 1, Y: 0}, domain.EntityOccupied},
		{"ally", domain.Point{X: 2, Y: 0}, domain.AllyOccupied},
		{"empty", domain.Point{X: 0, Y: 0}, domain.Empty},
		{"wall", domain.Point{X: 3, Y: 0}, domain.BlocksAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore := e.UnblockGoal(tt.p)
			if got := e.TileAt(tt.p.X, tt.p.Y); got.IsOccupied() {
				t.Errorf("tile still occupied during search: %v", got)
			}
			restore()
			if got := e.TileAt(tt.p.X, tt.p.Y); got != tt.want {
				t.Errorf("restored tile = %v, want %v", got, tt.want)
			}
		})
	}

	// Вне карты: no-op без паники.
	e.UnblockGoal(domain.Point{X: 10, Y: 10})()
}
