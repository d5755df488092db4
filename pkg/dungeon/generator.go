// Package dungeon генерирует карты коллизий из комнат и коридоров.
package dungeon

import (
	"math/rand"

	"cognitive-grid/internal/domain"
)

// Параметры генерации по умолчанию
const (
	MapWidth  = 40
	MapHeight = 25
	MaxRooms  = 8
	MinSize   = 4
	MaxSize   = 10
)

// Options задаёт размер карты и плотность декора.
type Options struct {
	Width, Height int
	MaxRooms      int
	// Water - доля комнат с лужей (BlocksMovementOnly) в центре.
	Water float64
	// Decor - вероятность пометить клетку пола как MapOnly.
	Decor float64
}

// DefaultOptions возвращает параметры по умолчанию.
func DefaultOptions() Options {
	return Options{
		Width:    MapWidth,
		Height:   MapHeight,
		MaxRooms: MaxRooms,
		Water:    0.3,
		Decor:    0.05,
	}
}

// Rect - Вспомогательная структура для комнаты
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() domain.Point {
	return domain.Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Generate строит карту: всё заполнено стенами, комнаты вырезаются
// и соединяются коридорами с предыдущей. Центры комнат и коридоры всегда
// проходимы пешком, поэтому любые две комнаты связаны.
// Карта меньше MaxSize+2 по любой оси получается без комнат.
func Generate(rng *rand.Rand, opts Options) (*domain.Grid, []Rect, error) {
	g, err := domain.NewGrid(opts.Width, opts.Height)
	if err != nil {
		return nil, nil, err
	}

	// 1. Заполняем стенами
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			g.Set(x, y, domain.BlocksAll)
		}
	}

	if opts.Width < MaxSize+2 || opts.Height < MaxSize+2 {
		return g, nil, nil
	}

	var rooms []Rect

	// 2. Генерируем комнаты
	for i := 0; i < opts.MaxRooms; i++ {
		w := randRange(rng, MinSize, MaxSize)
		h := randRange(rng, MinSize, MaxSize)
		x := randRange(rng, 1, opts.Width-w-1)
		y := randRange(rng, 1, opts.Height-h-1)

		newRoom := Rect{X: x, Y: y, W: w, H: h}
		failed := false

		for _, other := range rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		createRoom(g, rng, newRoom, opts)

		if len(rooms) > 0 {
			// Соединяем с предыдущей комнатой
			prev := rooms[len(rooms)-1].Center()
			curr := newRoom.Center()

			if rng.Intn(2) == 0 {
				createHCorridor(g, prev.X, curr.X, prev.Y)
				createVCorridor(g, prev.Y, curr.Y, curr.X)
			} else {
				createVCorridor(g, prev.Y, curr.Y, prev.X)
				createHCorridor(g, prev.X, curr.X, curr.Y)
			}
		}
		rooms = append(rooms, newRoom)
	}

	return g, rooms, nil
}

// --- Вспомогательные функции ---

func createRoom(g *domain.Grid, rng *rand.Rand, room Rect, opts Options) {
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			code := domain.Empty
			if rng.Float64() < opts.Decor {
				code = domain.MapOnly
			}
			g.Set(x, y, code)
		}
	}

	// Лужа не касается ни центра, ни стен комнаты.
	if room.W >= 7 && room.H >= 7 && rng.Float64() < opts.Water {
		c := room.Center()
		g.Set(c.X+1, c.Y+1, domain.BlocksMovementOnly)
		g.Set(c.X+2, c.Y+1, domain.BlocksMovementOnly)
	}
}

// Коридоры всегда Empty: декор и вода в них не попадают.
func createHCorridor(g *domain.Grid, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		g.Set(x, y, domain.Empty)
	}
}

func createVCorridor(g *domain.Grid, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		g.Set(x, y, domain.Empty)
	}
}

func randRange(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}
