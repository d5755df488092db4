package collision

import (
	"math"

	"cognitive-grid/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	// minTileGap: шаг меньше этого у самой границы клетки считается нулевым.
	minTileGap = 0.001
	// slideOvershoot - насколько обход угла заходит за границу соседней клетки.
	slideOvershoot = 0.01
)

// Move сдвигает pos на (stepX, stepY) с учётом коллизий.
//
// Смещение разбивается на подшаги, каждый из которых пересекает не более одной
// границы клетки по каждой оси. Подшаг, упёршийся в стену, пробует скользить
// вдоль неё (для диагонального запроса) или обойти угол (для запроса по одной оси).
// Если подшаг невозможен, Move возвращает false; pos остаётся в последней
// допустимой точке, пройденная часть пути не откатывается.
func (e *Engine) Move(pos *domain.Position, stepX, stepY float64, mc domain.MovementClass, cc domain.CollisionClass) bool {
	if pos == nil || !finite(stepX) || !finite(stepY) {
		return false
	}

	diagonal := stepX != 0 && stepY != 0
	restX, restY := stepX, stepY

	for restX != 0 || restY != 0 {
		dx := subStep(pos.X, restX)
		dy := subStep(pos.Y, restY)
		restX -= dx
		restY -= dy

		if e.smallStep(pos, dx, dy, diagonal, mc, cc) {
			continue
		}
		if !diagonal && e.ForceSlide && e.stepAround(pos, dx, dy, mc, cc) {
			continue
		}

		e.log.WithFields(logrus.Fields{
			"pos":  *pos,
			"step": domain.Position{X: stepX, Y: stepY},
		}).Debug("Move blocked")
		return false
	}
	return true
}

// subStep ограничивает шаг по оси расстоянием до следующей целой границы.
func subStep(coord, rest float64) float64 {
	switch {
	case rest > 0:
		d := math.Min(math.Ceil(coord)-coord, rest)
		if d <= minTileGap {
			d = math.Min(1, rest)
		}
		return d
	case rest < 0:
		d := math.Max(math.Floor(coord)-coord, rest)
		if d >= -minTileGap {
			d = math.Max(-1, rest)
		}
		return d
	}
	return 0
}

// smallStep пробует подшаг целиком, затем (для диагонали) по X, затем по Y.
func (e *Engine) smallStep(pos *domain.Position, dx, dy float64, diagonal bool, mc domain.MovementClass, cc domain.CollisionClass) bool {
	nx, ny := pos.X+dx, pos.Y+dy

	if e.IsValidPosition(nx, ny, mc, cc) {
		pos.X, pos.Y = nx, ny
		return true
	}
	if !diagonal {
		return false
	}

	if dx != 0 && e.IsValidPosition(nx, pos.Y, mc, cc) {
		pos.X = nx
		return true
	}
	if dy != 0 && e.IsValidPosition(pos.X, ny, mc, cc) {
		pos.Y = ny
		return true
	}
	return false
}

// stepAround обходит угол при движении по одной оси.
//
// Если соседняя клетка поперёк движения и клетка по диагонали за ней свободны,
// а смещение внутри клетки уже ближе к этой стороне, движущийся сдвигается
// поперёк (не больше чем на |шаг|) и повторяет подшаг на новой полосе.
func (e *Engine) stepAround(pos *domain.Position, dx, dy float64, mc domain.MovementClass, cc domain.CollisionClass) bool {
	cell := pos.Cell()

	switch {
	case dx != 0:
		sx := int(sign(dx))
		nudge, ok := laneNudge(pos.Y, math.Abs(dx), func(lane int) bool {
			return e.IsValidTile(cell.X, cell.Y+lane, mc, cc) &&
				e.IsValidTile(cell.X+sx, cell.Y+lane, mc, cc)
		})
		if !ok {
			return false
		}
		pos.Y += nudge
		if e.IsValidPosition(pos.X+dx, pos.Y, mc, cc) {
			pos.X += dx
		}
		return true

	case dy != 0:
		sy := int(sign(dy))
		nudge, ok := laneNudge(pos.X, math.Abs(dy), func(lane int) bool {
			return e.IsValidTile(cell.X+lane, cell.Y, mc, cc) &&
				e.IsValidTile(cell.X+lane, cell.Y+sy, mc, cc)
		})
		if !ok {
			return false
		}
		pos.X += nudge
		if e.IsValidPosition(pos.X, pos.Y+dy, mc, cc) {
			pos.Y += dy
		}
		return true
	}
	return false
}

// laneNudge выбирает полосу поперёк движения (+1 или -1) по смещению внутри
// клетки и возвращает величину сдвига к ней.
func laneNudge(coord, limit float64, laneFree func(lane int) bool) (float64, bool) {
	offset := coord - math.Floor(coord)
	switch {
	case offset > 0.5 && laneFree(1):
		return math.Min(1-offset+slideOvershoot, limit), true
	case offset < 0.5 && laneFree(-1):
		return -math.Min(offset+slideOvershoot, limit), true
	}
	return 0, false
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
