package level

import (
	"testing"

	"cognitive-grid/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	g, err := ParseLayout([]string{
		".#~",
		"%=:",
		";ea",
	}, nil)
	require.NoError(t, err)
	require.Equal(t, 3, g.Width())
	require.Equal(t, 3, g.Height())

	want := []domain.TileCode{
		domain.Empty, domain.BlocksAll, domain.BlocksMovementOnly,
		domain.BlocksAllHidden, domain.BlocksMovementHidden, domain.MapOnly,
		domain.MapOnlyAlternate, domain.EntityOccupied, domain.AllyOccupied,
	}
	assert.Equal(t, want, g.Tiles())
}

func TestParseLayout_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		err  error
	}{
		{"no rows", nil, ErrEmptyLayout},
		{"empty row", []string{""}, ErrEmptyLayout},
		{"ragged", []string{"...", ".."}, ErrRaggedLayout},
		{"unknown glyph", []string{"..x"}, ErrUnknownGlyph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLayout(tt.rows, nil)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParseLayout_CustomLegend(t *testing.T) {
	legend := Legend{'o': domain.Empty, 'X': domain.BlocksAll}
	g, err := ParseLayout([]string{"oX"}, legend)
	require.NoError(t, err)
	assert.Equal(t, domain.BlocksAll, g.At(1, 0))

	_, err = ParseLayout([]string{"."}, legend)
	assert.ErrorIs(t, err, ErrUnknownGlyph)
}

func TestRender_RoundTrip(t *testing.T) {
	rows := []string{
		"#####",
		"#.~e#",
		"#:;a#",
		"#%=.#",
	}
	g, err := ParseLayout(rows, nil)
	require.NoError(t, err)
	assert.Equal(t, rows, Render(g))
	assert.Nil(t, Render(nil))
}

func TestDefaultLegend_IsCopy(t *testing.T) {
	l := DefaultLegend()
	l['.'] = domain.BlocksAll

	g, err := ParseLayout([]string{"."}, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.Empty, g.At(0, 0))
}
