package domain

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyGrid         = errors.New("grid dimensions must be positive")
	ErrDimensionMismatch = errors.New("tile count does not match grid dimensions")
	ErrUnknownTileCode   = errors.New("unknown tile code")
	ErrGridTooLarge      = errors.New("grid dimensions overflow")
)

// Grid - прямоугольная таблица кодов клеток.
// Размеры неизменны после создания; смена размера = новая сетка.
type Grid struct {
	width  int
	height int
	tiles  []TileCode // индекс: y*width + x
}

// NewGrid создаёт сетку width x height, заполненную Empty.
// Нулевые и отрицательные размеры отклоняются, как и размеры,
// чьё произведение не помещается в int.
func NewGrid(width, height int) (*Grid, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]TileCode, width*height),
	}, nil
}

// NewGridFromTiles строит сетку из плоского среза (строка за строкой).
// Срез копируется.
// Размеры и длина проверяются до выделения памяти.
func NewGridFromTiles(width, height int, tiles []TileCode) (*Grid, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("%w: got %d, want %dx%d", ErrDimensionMismatch, len(tiles), width, height)
	}
	for i, c := range tiles {
		if !c.Valid() {
			return nil, fmt.Errorf("%w %d at index %d", ErrUnknownTileCode, c, i)
		}
	}
	g := &Grid{width: width, height: height, tiles: make([]TileCode, len(tiles))}
	copy(g.tiles, tiles)
	return g, nil
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	if width > math.MaxInt/height {
		return fmt.Errorf("%w: %dx%d", ErrGridTooLarge, width, height)
	}
	return nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// GetIndex переводит координаты клетки в индекс плоского массива.
func (g *Grid) GetIndex(x, y int) int {
	return y*g.width + x
}

// InBounds сообщает, лежит ли клетка внутри карты.
func (g *Grid) InBounds(x, y int) bool {
	return g != nil && x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At возвращает код клетки. Вне карты - BlocksAll: граница ведёт себя как стена.
func (g *Grid) At(x, y int) TileCode {
	if !g.InBounds(x, y) {
		return BlocksAll
	}
	return g.tiles[g.GetIndex(x, y)]
}

// Set записывает код клетки. Вне карты - no-op, возвращает false.
func (g *Grid) Set(x, y int, code TileCode) bool {
	if !g.InBounds(x, y) || !code.Valid() {
		return false
	}
	g.tiles[g.GetIndex(x, y)] = code
	return true
}

// Tiles возвращает копию плоского массива кодов.
func (g *Grid) Tiles() []TileCode {
	out := make([]TileCode, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// Clone возвращает независимую копию сетки.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	return &Grid{width: g.width, height: g.height, tiles: g.Tiles()}
}

// Count возвращает число клеток с данным кодом.
func (g *Grid) Count(code TileCode) int {
	n := 0
	for _, c := range g.tiles {
		if c == code {
			n++
		}
	}
	return n
}
