package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"cognitive-grid/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cryptMap = filepath.Join("..", "..", "internal", "level", "testdata", "crypt.yaml")

func runTool(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(args, &out)
	return out.String(), err
}

func TestRun_Render(t *testing.T) {
	out, err := runTool(t, "-map", cryptMap)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "#..~~..%.#", lines[3])
}

func TestRun_Path(t *testing.T) {
	out, err := runTool(t, "-map", cryptMap, "-from", "1,1", "-to", "8,8", "-limit", "200")
	require.NoError(t, err)

	assert.Contains(t, out, "sight:    false")
	assert.Contains(t, out, "reached=true")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "8,8"), "path should end at the goal:\n%s", out)
}

func TestRun_Move(t *testing.T) {
	out, err := runTool(t, "-map", cryptMap, "-from", "1,1", "-step", "-2,0")
	require.NoError(t, err)
	assert.Contains(t, out, "ok=false pos=1.000,1.500")
}

func TestRun_Convert(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "crypt.grid")
	out, err := runTool(t, "-map", cryptMap, "-convert", dst)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	out, err = runTool(t, "-map", dst)
	require.NoError(t, err)
	assert.Contains(t, out, "#..~~..%.#")
}

func TestRun_Generate(t *testing.T) {
	out, err := runTool(t, "-generate", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 25)
	assert.Len(t, lines[0], 40)
}

func TestRun_Version(t *testing.T) {
	out, err := runTool(t, "-version")
	require.NoError(t, err)
	assert.Contains(t, out, "gridtool build")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no map", nil},
		{"bad movement", []string{"-map", cryptMap, "-from", "1,1", "-to", "2,2", "-movement", "swim"}},
		{"bad point", []string{"-map", cryptMap, "-from", "1;1", "-to", "2,2"}},
		{"no target", []string{"-map", cryptMap, "-from", "1,1"}},
		{"bad step", []string{"-map", cryptMap, "-from", "1,1", "-step", "x,1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runTool(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint(" 3, 4")
	require.NoError(t, err)
	assert.Equal(t, domain.Point{X: 3, Y: 4}, p)

	_, err = parsePoint("3")
	assert.Error(t, err)
}
