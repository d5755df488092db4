package pathfind

import (
	"container/heap"

	"cognitive-grid/internal/domain"
)

// heuristicWeight - вес h в порядке извлечения из open (g + 2h).
// Это взвешенный A*: поиск жаднее идёт к цели и не гарантирует кратчайший путь.
const heuristicWeight = 2

const noParent = -1

// node - узел поиска. Живёт только в арене одного вызова ComputePath.
type node struct {
	cell   domain.Point
	g      float64 // стоимость от старта
	h      float64 // оценка до цели
	parent int     // индекс родителя в арене
	index  int     // позиция в куче open, -1 если не в open
	closed bool
}

func (n *node) cost() float64 {
	return n.g + heuristicWeight*n.h
}

// arena владеет всеми узлами одного поиска; узлы адресуются индексом,
// поиск по клетке - через byCell.
type arena struct {
	nodes  []node
	byCell map[domain.Point]int
}

func newArena(capacity int) *arena {
	return &arena{
		nodes:  make([]node, 0, capacity),
		byCell: make(map[domain.Point]int, capacity),
	}
}

func (a *arena) add(cell domain.Point, g, h float64, parent int) int {
	i := len(a.nodes)
	a.nodes = append(a.nodes, node{cell: cell, g: g, h: h, parent: parent, index: -1})
	a.byCell[cell] = i
	return i
}

func (a *arena) lookup(cell domain.Point) (int, bool) {
	i, ok := a.byCell[cell]
	return i, ok
}

// at возвращает указатель на узел. Не хранить его после add: срез может переехать.
func (a *arena) at(i int) *node {
	return &a.nodes[i]
}

// openSet - min-куча индексов арены по g + 2h. Реализует heap.Interface.
type openSet struct {
	a     *arena
	items []int
}

func (o *openSet) Len() int { return len(o.items) }

func (o *openSet) Less(i, j int) bool {
	return o.a.at(o.items[i]).cost() < o.a.at(o.items[j]).cost()
}

func (o *openSet) Swap(i, j int) {
	o.items[i], o.items[j] = o.items[j], o.items[i]
	o.a.at(o.items[i]).index = i
	o.a.at(o.items[j]).index = j
}

func (o *openSet) Push(x interface{}) {
	i := x.(int)
	o.a.at(i).index = len(o.items)
	o.items = append(o.items, i)
}

func (o *openSet) Pop() interface{} {
	old := o.items
	n := len(old)
	i := old[n-1]
	o.a.at(i).index = -1
	o.items = old[:n-1]
	return i
}

func (o *openSet) contains(i int) bool {
	return o.a.at(i).index >= 0
}

// update перевешивает узел на более дешёвого родителя и восстанавливает кучу.
func (o *openSet) update(i int, g float64, parent int) {
	n := o.a.at(i)
	n.g = g
	n.parent = parent
	heap.Fix(o, n.index)
}

// closedSet отмечает раскрытые узлы и помнит узел с минимальной h -
// запасную цель, если до настоящей цели не дошли.
type closedSet struct {
	a     *arena
	count int
	best  int
}

func newClosedSet(a *arena) *closedSet {
	return &closedSet{a: a, best: noParent}
}

func (c *closedSet) add(i int) {
	n := c.a.at(i)
	n.closed = true
	c.count++
	if c.best == noParent || n.h < c.a.at(c.best).h {
		c.best = i
	}
}

func (c *closedSet) contains(i int) bool {
	return c.a.at(i).closed
}

// search - состояние одного вызова ComputePath.
type search struct {
	a      *arena
	open   *openSet
	closed *closedSet
	goal   domain.Point
	limit  int
}

func newSearch(goal domain.Point, limit int) *search {
	a := newArena(limit)
	return &search{
		a:      a,
		open:   &openSet{a: a},
		closed: newClosedSet(a),
		goal:   goal,
		limit:  limit,
	}
}

// relax предлагает клетке nb путь через current стоимостью g.
// Бюджет ограничивает только добавление новых узлов в open:
// удешевление уже открытого узла выполняется и при полном open.
func (s *search) relax(current int, nb domain.Point, g float64) {
	i, seen := s.a.lookup(nb)
	switch {
	case !seen:
		if s.open.Len() < s.limit {
			heap.Push(s.open, s.a.add(nb, g, nb.DistanceTo(s.goal), current))
		}
	case s.closed.contains(i):
	case s.open.contains(i) && g < s.a.at(i).g:
		s.open.update(i, g, current)
	}
}
