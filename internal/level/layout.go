// Package level загружает карты коллизий из файлов уровней и сохраняет их обратно.
//
// Два формата: YAML-документ с ASCII-раскладкой для карт, нарисованных вручную,
// и компактный бинарный снимок (.grid) для карт из генераторов.
package level

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"cognitive-grid/internal/domain"
)

var (
	ErrEmptyLayout  = errors.New("layout has no rows")
	ErrRaggedLayout = errors.New("layout rows differ in width")
	ErrUnknownGlyph = errors.New("unknown layout glyph")
)

// Legend сопоставляет символ раскладки коду клетки.
type Legend map[rune]domain.TileCode

var defaultLegend = Legend{
	'.': domain.Empty,
	'#': domain.BlocksAll,
	'~': domain.BlocksMovementOnly,
	'%': domain.BlocksAllHidden,
	'=': domain.BlocksMovementHidden,
	':': domain.MapOnly,
	';': domain.MapOnlyAlternate,
	'e': domain.EntityOccupied,
	'a': domain.AllyOccupied,
}

// DefaultLegend возвращает копию встроенной легенды.
func DefaultLegend() Legend {
	out := make(Legend, len(defaultLegend))
	for k, v := range defaultLegend {
		out[k] = v
	}
	return out
}

// ParseLayout строит сетку из ASCII-строк: одна строка = один ряд клеток.
// nil вместо легенды - DefaultLegend.
func ParseLayout(rows []string, legend Legend) (*domain.Grid, error) {
	if legend == nil {
		legend = defaultLegend
	}
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyLayout
	}

	width := utf8.RuneCountInString(rows[0])
	g, err := domain.NewGrid(width, len(rows))
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrRaggedLayout, y, n, width)
		}
		x := 0
		for _, ch := range row {
			code, ok := legend[ch]
			if !ok {
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrUnknownGlyph, ch, x, y)
			}
			g.Set(x, y, code)
			x++
		}
	}
	return g, nil
}

// Render - обратное к ParseLayout с легендой по умолчанию.
// Коды без символа выводятся как '?'.
func Render(g *domain.Grid) []string {
	if g == nil {
		return nil
	}
	glyphs := make(map[domain.TileCode]rune, len(defaultLegend))
	for ch, code := range defaultLegend {
		glyphs[code] = ch
	}

	rows := make([]string, g.Height())
	buf := make([]rune, g.Width())
	for y := range rows {
		for x := range buf {
			ch, ok := glyphs[g.At(x, y)]
			if !ok {
				ch = '?'
			}
			buf[x] = ch
		}
		rows[y] = string(buf)
	}
	return rows
}
