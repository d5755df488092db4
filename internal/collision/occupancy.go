package collision

import (
	"cognitive-grid/internal/domain"
	"github.com/sirupsen/logrus"
)

// Block помечает клетку под позицией как занятую сущностью (или союзником).
// Блокируется только Empty: стены, декорации и чужая занятость не перезаписываются.
// Подсчёта ссылок нет: парность Block/Unblock - ответственность вызывающего.
func (e *Engine) Block(x, y float64, isAlly bool) {
	cx, cy, ok := toCell(x, y)
	if !ok || e.IsTileOutsideMap(cx, cy) {
		e.log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("Block outside map ignored")
		return
	}
	if e.grid.At(cx, cy) != domain.Empty {
		return
	}
	if isAlly {
		e.grid.Set(cx, cy, domain.AllyOccupied)
	} else {
		e.grid.Set(cx, cy, domain.EntityOccupied)
	}
}

// Unblock снимает временную занятость клетки. Остальные коды не трогает.
func (e *Engine) Unblock(x, y float64) {
	cx, cy, ok := toCell(x, y)
	if !ok || e.IsTileOutsideMap(cx, cy) {
		e.log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("Unblock outside map ignored")
		return
	}
	if e.grid.At(cx, cy).IsOccupied() {
		e.grid.Set(cx, cy, domain.Empty)
	}
}

// UnblockGoal снимает занятость клетки на время вычисления и возвращает
// функцию, восстанавливающую исходный код. Для незанятой клетки восстановление - no-op.
func (e *Engine) UnblockGoal(p domain.Point) (restore func()) {
	if e.IsTileOutsideMap(p.X, p.Y) {
		return func() {}
	}
	original := e.grid.At(p.X, p.Y)
	if !original.IsOccupied() {
		return func() {}
	}
	e.grid.Set(p.X, p.Y, domain.Empty)
	return func() {
		e.grid.Set(p.X, p.Y, original)
	}
}
