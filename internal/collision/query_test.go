package collision

import (
	"math"
	"testing"

	"cognitive-grid/internal/domain"
)

var (
	allMovement  = []domain.MovementClass{domain.MovementNormal, domain.MovementFlying, domain.MovementIntangible}
	allCollision = []domain.CollisionClass{domain.CollideWithAll, domain.CollideAsHero, domain.CollideNone}
	allTiles     = []domain.TileCode{
		domain.Empty, domain.BlocksAll, domain.BlocksMovementOnly, domain.BlocksAllHidden,
		domain.BlocksMovementHidden, domain.MapOnly, domain.MapOnlyAlternate,
		domain.EntityOccupied, domain.AllyOccupied,
	}
)

func TestBoundary_OutsideIsWallAndInvalid(t *testing.T) {
	e := newTestEngine(t,
		"....",
		"....",
		"....",
	)

	outside := []domain.Position{
		{X: -0.5, Y: 1.5},
		{X: 1.5, Y: -0.01},
		{X: 4.0, Y: 1.5},
		{X: 1.5, Y: 3.0},
		{X: 100, Y: 100},
		{X: -3, Y: -3},
	}

	for _, p := range outside {
		if !e.IsWall(p.X, p.Y) {
			t.Errorf("IsWall(%v) = false, want true", p)
		}
		for _, mc := range allMovement {
			for _, cc := range allCollision {
				if e.IsValidPosition(p.X, p.Y, mc, cc) {
					t.Errorf("IsValidPosition(%v, %v, %v) = true, want false", p, mc, cc)
				}
			}
		}
	}
}

func TestIsTileOutsideMap(t *testing.T) {
	e := newTestEngine(t,
		"...",
		"...",
	)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, false},
		{2, 1, false},
		{-1, 0, true},
		{0, -1, true},
		{3, 0, true},
		{0, 2, true},
	}

	for _, tt := range tests {
		if got := e.IsTileOutsideMap(tt.x, tt.y); got != tt.want {
			t.Errorf("IsTileOutsideMap(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestIsWall(t *testing.T) {
	// # % ~ = . e
	e := newTestEngine(t, "#%~=.e")

	tests := []struct {
		x    float64
		want bool
	}{
		{0.5, true},
		{1.5, true},
		{2.5, false},
		{3.5, false},
		{4.5, false},
		{5.5, false},
	}

	for _, tt := range tests {
		if got := e.IsWall(tt.x, 0.5); got != tt.want {
			t.Errorf("IsWall(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestIsValidTile(t *testing.T) {
	// Один ряд со всеми кодами: . # ~ % = : ; e a
	e := newTestEngine(t, ".#~%=:;ea")

	type want struct{ normal, flying, intangible bool }

	tests := []struct {
		name string
		x    int
		cc   domain.CollisionClass
		want want
	}{
		{"empty", 0, domain.CollideWithAll, want{true, true, true}},
		{"wall", 1, domain.CollideWithAll, want{false, false, true}},
		{"water", 2, domain.CollideWithAll, want{false, true, true}},
		{"hidden wall", 3, domain.CollideWithAll, want{false, false, true}},
		{"hidden water", 4, domain.CollideWithAll, want{false, true, true}},
		{"map only", 5, domain.CollideWithAll, want{true, true, true}},
		{"map only alt", 6, domain.CollideWithAll, want{true, true, true}},
		{"entity blocks all", 7, domain.CollideWithAll, want{false, false, false}},
		{"ally blocks all", 8, domain.CollideWithAll, want{false, false, false}},
		{"hero passes ally", 8, domain.CollideAsHero, want{true, true, true}},
		{"hero vs entity", 7, domain.CollideAsHero, want{false, true, true}},
		{"ghost collider vs entity", 7, domain.CollideNone, want{false, true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := want{
				normal:     e.IsValidTile(tt.x, 0, domain.MovementNormal, tt.cc),
				flying:     e.IsValidTile(tt.x, 0, domain.MovementFlying, tt.cc),
				intangible: e.IsValidTile(tt.x, 0, domain.MovementIntangible, tt.cc),
			}
			if got != tt.want {
				t.Errorf("IsValidTile(%d) = %+v, want %+v", tt.x, got, tt.want)
			}
		})
	}
}

func TestIsValidTile_MovementMonotonic(t *testing.T) {
	for _, code := range allTiles {
		e := newTestEngine(t, ".")
		e.grid.Set(0, 0, code)

		for _, cc := range allCollision {
			normal := e.IsValidTile(0, 0, domain.MovementNormal, cc)
			flying := e.IsValidTile(0, 0, domain.MovementFlying, cc)
			intangible := e.IsValidTile(0, 0, domain.MovementIntangible, cc)

			if normal && !flying {
				t.Errorf("%v/%v: normal valid but flying not", code, cc)
			}
			if flying && !intangible {
				t.Errorf("%v/%v: flying valid but intangible not", code, cc)
			}
		}
	}
}

func TestIsValidPosition(t *testing.T) {
	e := newTestEngine(t,
		"...",
		".#.",
		"...",
	)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"cell center", 0.5, 0.5, true},
		{"sub-tile offset", 2.99, 2.01, true},
		{"wall", 1.5, 1.5, false},
		{"wall edge", 1.0, 1.0, false},
		{"negative fraction", -0.2, 0.5, false},
		{"nan", math.NaN(), 0.5, false},
		{"inf", math.Inf(1), 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.IsValidPosition(tt.x, tt.y, domain.MovementNormal, domain.CollideWithAll)
			if got != tt.want {
				t.Errorf("IsValidPosition(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestIsEmpty(t *testing.T) {
	e := newTestEngine(t, ".#e:")

	tests := []struct {
		x    int
		want bool
	}{
		{0, true},
		{1, false},
		{2, false},
		{3, false},
		{4, false},
	}
	for _, tt := range tests {
		if got := e.IsEmpty(tt.x, 0); got != tt.want {
			t.Errorf("IsEmpty(%d) = %v, want %v", tt.x, got, tt.want)
		}
	}
}
