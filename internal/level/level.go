package level

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"cognitive-grid/internal/domain"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported level format")

// Level - именованная карта коллизий.
type Level struct {
	Name string
	Grid *domain.Grid
}

// document - YAML-представление уровня.
//
//	name: crypt
//	legend:
//	  "o": BLOCKS_ALL
//	layout:
//	  - "#####"
//	  - "#.o.#"
type document struct {
	Name   string            `yaml:"name"`
	Legend map[string]string `yaml:"legend,omitempty"`
	Layout []string          `yaml:"layout"`
}

// ParseYAML разбирает YAML-уровень. Записи legend дополняют или переопределяют легенду по умолчанию.
func ParseYAML(data []byte) (*Level, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}

	legend := DefaultLegend()
	for glyph, name := range doc.Legend {
		if utf8.RuneCountInString(glyph) != 1 {
			return nil, fmt.Errorf("legend key %q must be a single character", glyph)
		}
		code, ok := domain.ParseTileCode(name)
		if !ok {
			return nil, fmt.Errorf("legend %q: %w %q", glyph, domain.ErrUnknownTileCode, name)
		}
		ch, _ := utf8.DecodeRuneInString(glyph)
		legend[ch] = code
	}

	g, err := ParseLayout(doc.Layout, legend)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", doc.Name, err)
	}
	return &Level{Name: doc.Name, Grid: g}, nil
}

// MarshalYAML сохраняет уровень с легендой по умолчанию.
func (l *Level) MarshalYAML() (interface{}, error) {
	return document{Name: l.Name, Layout: Render(l.Grid)}, nil
}

// Load читает файл уровня, формат выбирается по расширению.
// Уровень без имени получает имя файла.
func Load(path string) (*Level, error) {
	var (
		lvl *Level
		err error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		var data []byte
		if data, err = os.ReadFile(path); err != nil {
			return nil, err
		}
		lvl, err = ParseYAML(data)
	case ".grid":
		var f *os.File
		if f, err = os.Open(path); err != nil {
			return nil, err
		}
		defer f.Close()
		lvl, err = Decode(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return lvl, nil
}

// Save пишет файл уровня, формат выбирается по расширению.
func Save(path string, l *Level) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" && ext != ".grid" {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if ext == ".grid" {
		err = Encode(f, l)
	} else {
		enc := yaml.NewEncoder(f)
		enc.SetIndent(2)
		if err = enc.Encode(l); err == nil {
			err = enc.Close()
		}
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return f.Close()
}
