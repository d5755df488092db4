package collision

import "cognitive-grid/internal/domain"

// RandomNeighbor выбирает случайную свободную клетку в квадрате радиуса radius
// вокруг target (центр исключён) и возвращает её центр.
// Если подходящих клеток нет, возвращается сам target.
// ignoreBlocked допускает любую клетку квадрата, даже стену или вне карты.
func (e *Engine) RandomNeighbor(target domain.Point, radius int, ignoreBlocked bool) domain.Position {
	var candidates []domain.Position
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			p := target.Shift(dx, dy).Center()
			if ignoreBlocked || e.IsValidPosition(p.X, p.Y, domain.MovementNormal, domain.CollideWithAll) {
				candidates = append(candidates, p)
			}
		}
	}

	if len(candidates) == 0 {
		return domain.Position{X: float64(target.X), Y: float64(target.Y)}
	}
	return candidates[e.rng.Intn(len(candidates))]
}
