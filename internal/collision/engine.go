// Package collision отвечает за карту коллизий уровня: классификацию клеток,
// проверки допустимости позиций, разрешение движения со скольжением вдоль стен,
// линии видимости и временную блокировку клеток живыми сущностями.
//
// Engine не потокобезопасен: все запросы и мутации одного тика выполняются
// последовательно из одного игрового цикла.
package collision

import (
	"errors"
	"math/rand"
	"time"

	"cognitive-grid/internal/domain"
	"cognitive-grid/pkg/logger"
	"github.com/sirupsen/logrus"
)

var ErrNilGrid = errors.New("collision: nil grid")

// Rand - источник случайности для RandomNeighbor. *rand.Rand подходит.
type Rand interface {
	Intn(n int) int
}

// Engine хранит собственную копию сетки и отвечает на запросы к ней.
type Engine struct {
	grid *domain.Grid
	log  logrus.FieldLogger
	rng  Rand

	// ForceSlide включает обход угла при упоре в стену по одной оси.
	ForceSlide bool
}

// New создаёт движок без карты. До SetMap любая клетка считается вне карты.
// nil вместо логгера или rng заменяется значениями по умолчанию.
func New(log logrus.FieldLogger, rng Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		log:        logger.OrDiscard(log).WithField("component", "collision"),
		rng:        rng,
		ForceSlide: true,
	}
}

// SetMap забирает копию сетки. Исходная сетка после вызова не читается.
func (e *Engine) SetMap(g *domain.Grid) error {
	if g == nil {
		e.log.Warn("SetMap called with nil grid")
		return ErrNilGrid
	}
	e.grid = g.Clone()
	e.log.WithFields(logrus.Fields{
		"width":  g.Width(),
		"height": g.Height(),
	}).Debug("Collision map loaded")
	return nil
}

// Grid возвращает копию текущей сетки (nil, если карта не загружена).
func (e *Engine) Grid() *domain.Grid {
	return e.grid.Clone()
}

// Size возвращает размеры карты; (0, 0) до SetMap.
func (e *Engine) Size() (int, int) {
	if e.grid == nil {
		return 0, 0
	}
	return e.grid.Width(), e.grid.Height()
}

// TileAt возвращает код клетки; вне карты - BlocksAll.
func (e *Engine) TileAt(x, y int) domain.TileCode {
	return e.grid.At(x, y)
}

// Logger отдаёт логгер движка для зависимых систем (поиск пути).
func (e *Engine) Logger() logrus.FieldLogger {
	return e.log
}
