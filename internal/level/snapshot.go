package level

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"cognitive-grid/internal/domain"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	SnapshotMagic   string = `CGRD`
	SnapshotVersion uint32 = 1
)

var ErrBadSnapshot = errors.New("invalid grid snapshot")

// snapshotHeader пишется binary.Write целиком: фиксированный размер, без слайсов.
type snapshotHeader struct {
	Magic   [4]byte
	Version uint32
}

// snapshot - msgpack-тело после заголовка.
type snapshot struct {
	Name   string `msgpack:"name"`
	Width  int    `msgpack:"w"`
	Height int    `msgpack:"h"`
	Tiles  []byte `msgpack:"tiles"`
}

// Encode пишет уровень бинарным снимком.
func Encode(w io.Writer, l *Level) error {
	if l == nil || l.Grid == nil {
		return fmt.Errorf("%w: no grid", ErrBadSnapshot)
	}

	header := snapshotHeader{Version: SnapshotVersion}
	copy(header.Magic[:], SnapshotMagic)
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	codes := l.Grid.Tiles()
	tiles := make([]byte, len(codes))
	for i, c := range codes {
		tiles[i] = byte(c)
	}

	body := snapshot{
		Name:   l.Name,
		Width:  l.Grid.Width(),
		Height: l.Grid.Height(),
		Tiles:  tiles,
	}
	if err := msgpack.NewEncoder(w).Encode(&body); err != nil {
		return fmt.Errorf("failed to write body: %w", err)
	}
	return nil
}

// Decode читает снимок, записанный Encode. Размеры проверяются до выделения памяти под сетку.
func Decode(r io.Reader) (*Level, error) {
	var header snapshotHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if string(header.Magic[:]) != SnapshotMagic {
		return nil, fmt.Errorf("%w: magic %q", ErrBadSnapshot, header.Magic[:])
	}
	if header.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d (expected %d)", ErrBadSnapshot, header.Version, SnapshotVersion)
	}

	var body snapshot
	if err := msgpack.NewDecoder(r).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	codes := make([]domain.TileCode, len(body.Tiles))
	for i, b := range body.Tiles {
		codes[i] = domain.TileCode(b)
	}
	g, err := domain.NewGridFromTiles(body.Width, body.Height, codes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	return &Level{Name: body.Name, Grid: g}, nil
}
