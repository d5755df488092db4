package collision

import (
	"math"

	"cognitive-grid/internal/domain"
	"github.com/sirupsen/logrus"
)

// LineOfSight проверяет прямую видимость между двумя позициями.
// Стартовая точка не проверяется. Конечная проверяется только при целом
// расстоянии по главной оси: шагов floor(max(|dx|, |dy|)), и при дробном
// расстоянии последняя точка не доходит до (x2, y2).
func (e *Engine) LineOfSight(x1, y1, x2, y2 float64) bool {
	return walkLine(x1, y1, x2, y2, func(x, y float64) bool {
		return !e.IsWall(x, y)
	})
}

// LineOfMovement проверяет, можно ли пройти по прямой до цели.
// Занятость самой целевой клетки на время проверки снимается, чтобы
// преследователь "видел путь" до занятой цели.
func (e *Engine) LineOfMovement(x1, y1, x2, y2 float64, mc domain.MovementClass) bool {
	tx, ty, ok := toCell(x2, y2)
	if !ok || e.IsTileOutsideMap(tx, ty) {
		return false
	}
	if mc == domain.MovementIntangible {
		return true
	}

	restore := e.UnblockGoal(domain.Point{X: tx, Y: ty})
	passable := walkLine(x1, y1, x2, y2, func(x, y float64) bool {
		return e.IsValidPosition(x, y, mc, domain.CollideWithAll)
	})
	restore()

	e.log.WithFields(logrus.Fields{
		"from":     domain.Position{X: x1, Y: y1},
		"to":       domain.Position{X: x2, Y: y2},
		"movement": mc,
		"passable": passable,
	}).Debug("Line of movement checked")
	return passable
}

// walkLine шагает от (x1, y1) к (x2, y2) единичным шагом по главной оси,
// steps = floor(max(|dx|, |dy|)), и вызывает check для каждой точки после старта.
// Точки считаются от старта умножением, а не накоплением, чтобы линия A->B
// проходила через те же клетки, что и B->A.
func walkLine(x1, y1, x2, y2 float64, check func(x, y float64) bool) bool {
	if !finite(x1) || !finite(y1) || !finite(x2) || !finite(y2) {
		return false
	}

	dx := math.Abs(x2 - x1)
	dy := math.Abs(y2 - y1)
	steps := int(math.Max(dx, dy))
	if steps == 0 {
		return true
	}

	var stepX, stepY float64
	if dx > dy {
		stepX = sign(x2 - x1)
		stepY = (y2 - y1) / dx
	} else {
		stepY = sign(y2 - y1)
		stepX = (x2 - x1) / dy
	}

	for i := 1; i <= steps; i++ {
		if !check(x1+float64(i)*stepX, y1+float64(i)*stepY) {
			return false
		}
	}
	return true
}

// IsFacing - грубая проверка поля зрения 180° для одного из 8 направлений.
// Без тригонометрии: только знак относительного вектора. Ось Y направлена на юг.
func IsFacing(x1, y1 float64, dir domain.Direction, x2, y2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1

	switch dir {
	case domain.DirSouthWest:
		return dx < dy && -dx > -dy
	case domain.DirWest:
		return dx < 0
	case domain.DirNorthWest:
		return dx < -dy && -dx > dy
	case domain.DirNorth:
		return dy < 0
	case domain.DirNorthEast:
		return -dx < -dy && dx > dy
	case domain.DirEast:
		return dx > 0
	case domain.DirSouthEast:
		return dx > -dy && -dx < dy
	case domain.DirSouth:
		return dy > 0
	}
	return false
}
