package domain

import "math"

// Position - непрерывная координата в единицах тайлов.
// Целая часть адресует клетку, дробная - смещение внутри клетки.
type Position struct {
	X float64 `json:"x" yaml:"x" msgpack:"x"`
	Y float64 `json:"y" yaml:"y" msgpack:"y"`
}

// Point - целочисленная координата клетки.
type Point struct {
	X int `json:"x" yaml:"x" msgpack:"x"`
	Y int `json:"y" yaml:"y" msgpack:"y"`
}

// Cell возвращает клетку, в которой лежит позиция (floor по обеим осям).
func (p Position) Cell() Point {
	return Point{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}

// DistanceTo возвращает евклидово расстояние до другой позиции.
func (p Position) DistanceTo(other Position) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Center возвращает центр клетки (x + 0.5, y + 0.5).
func (p Point) Center() Position {
	return Position{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}
}

// DistanceTo возвращает точное расстояние между центрами клеток.
func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(float64(p.X-other.X), float64(p.Y-other.Y))
}

// Shift возвращает соседнюю точку со смещением, не меняя текущую.
func (p Point) Shift(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Direction - одно из 8 направлений взгляда.
// Числовой порядок: SW=0, W, NW, N, NE, E, SE, S=7.
type Direction uint8

const (
	DirSouthWest Direction = iota
	DirWest
	DirNorthWest
	DirNorth
	DirNorthEast
	DirEast
	DirSouthEast
	DirSouth
)

var directionNames = [...]string{"SW", "W", "NW", "N", "NE", "E", "SE", "S"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "?"
}
