// Package pathfind ищет путь по 8-связной сетке клеток взвешенным A*
// с ограниченным числом раскрываемых узлов.
package pathfind

import (
	"container/heap"
	"math"

	"cognitive-grid/internal/domain"
	"cognitive-grid/pkg/logger"
	"github.com/sirupsen/logrus"
)

// defaultLimitDivisor: при limit == 0 бюджет = клетки карты / 10.
const defaultLimitDivisor = 10

// Map - то, что поиску нужно от карты коллизий. *collision.Engine подходит.
type Map interface {
	Size() (int, int)
	IsTileOutsideMap(x, y int) bool
	IsValidTile(x, y int, mc domain.MovementClass, cc domain.CollisionClass) bool
	UnblockGoal(p domain.Point) (restore func())
}

// Сначала ортогональные соседи, затем диагональные.
var neighborOffsets = [...]domain.Point{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: -1},
	{X: 1, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: -1},
}

// Result - итог одного поиска.
type Result struct {
	// Path - центры клеток от цели к старту (старт не входит).
	// Вызывающему для движения от старта нужно идти с конца.
	Path []domain.Position
	// Reached - цель действительно достигнута. При false Path ведёт
	// к раскрытой клетке, ближайшей к цели.
	Reached bool
	// Explored - размер closed на момент остановки.
	Explored int
}

// Finder ищет пути по карте. Не реентерабелен: временно снимает занятость
// целевой клетки, поэтому параллельные вызовы по одной карте запрещены.
type Finder struct {
	m   Map
	log logrus.FieldLogger
}

func New(m Map, log logrus.FieldLogger) *Finder {
	return &Finder{
		m:   m,
		log: logger.OrDiscard(log).WithField("component", "pathfind"),
	}
}

// ComputePath ищет путь от start до goal для класса движения mc.
//
// limit - максимум раскрытых узлов (и размер open); 0 - 10% клеток карты.
// path - буфер для результата, очищается в начале вызова.
// Занятость целевой клетки снимается на время поиска и восстанавливается в конце.
func (f *Finder) ComputePath(start, goal domain.Position, mc domain.MovementClass, limit int, path []domain.Position) Result {
	res := Result{Path: path[:0]}

	if !finitePos(start) || !finitePos(goal) {
		return res
	}
	startCell, goalCell := start.Cell(), goal.Cell()

	searchLog := f.log.WithFields(logrus.Fields{
		"start":    startCell,
		"goal":     goalCell,
		"movement": mc,
	})

	if f.m.IsTileOutsideMap(goalCell.X, goalCell.Y) || f.m.IsTileOutsideMap(startCell.X, startCell.Y) {
		searchLog.Debug("Path rejected: endpoint outside map")
		return res
	}

	if limit <= 0 {
		w, h := f.m.Size()
		limit = w * h / defaultLimitDivisor
		if limit < 1 {
			limit = 1
		}
	}

	restore := f.m.UnblockGoal(goalCell)
	defer restore()

	sr := newSearch(goalCell, limit)
	heap.Push(sr.open, sr.a.add(startCell, 0, startCell.DistanceTo(goalCell), noParent))

	target := noParent
	for sr.open.Len() > 0 && sr.closed.count < limit {
		current := heap.Pop(sr.open).(int)
		sr.closed.add(current)

		cur := *sr.a.at(current)
		if cur.cell == goalCell {
			target = current
			res.Reached = true
			break
		}

		for _, d := range neighborOffsets {
			nb := cur.cell.Shift(d.X, d.Y)
			if !f.m.IsValidTile(nb.X, nb.Y, mc, domain.CollideWithAll) {
				continue
			}
			sr.relax(current, nb, cur.g+cur.cell.DistanceTo(nb))
		}
	}

	if !res.Reached {
		target = sr.closed.best
	}
	res.Explored = sr.closed.count

	a := sr.a
	for i := target; i != noParent && a.at(i).parent != noParent; i = a.at(i).parent {
		res.Path = append(res.Path, a.at(i).cell.Center())
	}

	searchLog.WithFields(logrus.Fields{
		"reached":  res.Reached,
		"explored": res.Explored,
		"limit":    limit,
		"length":   len(res.Path),
	}).Debug("Path search finished")

	return res
}

// Reverse разворачивает путь на месте: от старта к цели.
func Reverse(path []domain.Position) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}

func finitePos(p domain.Position) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
