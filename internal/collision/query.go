package collision

import (
	"math"

	"cognitive-grid/internal/domain"
)

// CollisionClassFor выводит класс коллизии из флага "это игрок".
func CollisionClassFor(isHero bool) domain.CollisionClass {
	if isHero {
		return domain.CollideAsHero
	}
	return domain.CollideWithAll
}

// IsTileOutsideMap - клетка за пределами карты (или карта не загружена).
func (e *Engine) IsTileOutsideMap(x, y int) bool {
	return !e.grid.InBounds(x, y)
}

// IsWall - позиция вне карты или в стене. Граница карты считается стеной.
func (e *Engine) IsWall(x, y float64) bool {
	cx, cy, ok := toCell(x, y)
	if !ok || e.IsTileOutsideMap(cx, cy) {
		return true
	}
	return e.grid.At(cx, cy).IsSolid()
}

// IsEmpty - клетка внутри карты и ничем не занята.
func (e *Engine) IsEmpty(x, y int) bool {
	return !e.IsTileOutsideMap(x, y) && e.grid.At(x, y) == domain.Empty
}

// IsValidTile проверяет, может ли движущийся данного класса стоять на клетке.
func (e *Engine) IsValidTile(x, y int, mc domain.MovementClass, cc domain.CollisionClass) bool {
	if e.IsTileOutsideMap(x, y) {
		return false
	}
	tile := e.grid.At(x, y)

	switch cc {
	case domain.CollideWithAll:
		if tile.IsOccupied() {
			return false
		}
	case domain.CollideAsHero:
		// Герой проходит сквозь союзников независимо от типа передвижения.
		if tile == domain.AllyOccupied {
			return true
		}
	}

	switch mc {
	case domain.MovementIntangible:
		return true
	case domain.MovementFlying:
		return !tile.IsSolid()
	}

	return tile == domain.Empty || tile == domain.MapOnly || tile == domain.MapOnlyAlternate
}

// IsValidPosition - IsValidTile для клетки, содержащей непрерывную позицию.
// Отрицательные координаты отклоняются сразу.
func (e *Engine) IsValidPosition(x, y float64, mc domain.MovementClass, cc domain.CollisionClass) bool {
	if x < 0 || y < 0 {
		return false
	}
	cx, cy, ok := toCell(x, y)
	if !ok {
		return false
	}
	return e.IsValidTile(cx, cy, mc, cc)
}

// toCell округляет позицию вниз. NaN и бесконечности не адресуют клетку.
func toCell(x, y float64) (int, int, bool) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return 0, 0, false
	}
	return int(math.Floor(x)), int(math.Floor(y)), true
}
