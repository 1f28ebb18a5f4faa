package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willbeason/fractal-art/pkg/geometry"
	"github.com/willbeason/fractal-art/pkg/transforms"
)

func TestDefaults(t *testing.T) {
	s := defaults()

	cfg, err := s.Config()
	require.NoError(t, err)
	assert.Equal(t, transforms.Julia{C: complex(-0.7, 0.27015)}, cfg.Variant)
	assert.Equal(t, geometry.Around(geometry.XY{}, viewHeight, Width, Height), s.Viewport())
	assert.Empty(t, s.Out)
}

func TestOutName(t *testing.T) {
	now := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)

	assert.Equal(t, "out-20240305140709.png", outName(now))
}

func TestJulia_NamesOutputAtRunTime(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cmd := mainCmd()
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--width", "8", "--height", "6"})

	before := time.Now().Truncate(time.Second)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	after := time.Now()

	matches, err := filepath.Glob(filepath.Join(dir, "out-*.png"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	stamp := filepath.Base(matches[0])
	written, err := time.ParseInLocation("out-20060102150405.png", stamp, time.Local)
	require.NoError(t, err)
	assert.False(t, written.Before(before), "%s predates the run", stamp)
	assert.False(t, written.After(after), "%s postdates the run", stamp)
}

func TestJulia_WritesImage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "julia.png")

	cmd := mainCmd()
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--width", "32", "--height", "18", "--c-real", "0.285", "--c-imag", "0.01", "-o", out})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
