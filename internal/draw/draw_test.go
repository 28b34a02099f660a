package draw

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillRectScales(t *testing.T) {
	// 10 columns x 5 rows = 10x10 sub-pixels over a 100x100 logical field.
	c := NewScaledCanvas(10, 5, 100, 100)
	c.FillRect(20, 40, 20, 20)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := x >= 2 && x < 4 && y >= 4 && y < 6
			assert.Equal(t, want, c.Pixel(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestFillRectTinyStillVisible(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	c.FillRect(51, 51, 0.5, 0.5)
	assert.True(t, c.Pixel(5, 5))

	c.Clear()
	c.FillRect(10, 10, 0, 5)
	c.FillRect(-50, -50, 20, 20)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			assert.False(t, c.Pixel(x, y))
		}
	}
}

func TestRenderWritesOnlyChanges(t *testing.T) {
	c := NewCanvas(4, 2)
	c.FillRect(0, 0, 1, 2)
	c.FillRect(2, 1, 1, 1)

	var out bytes.Buffer
	c.Render(&out)
	assert.Equal(t, "\033[1;1H█\033[1;3H▄", out.String())

	out.Reset()
	c.Render(&out)
	assert.Empty(t, out.String(), "nothing changed")

	c.Clear()
	c.FillRect(2, 1, 1, 1)
	c.Render(&out)
	assert.Equal(t, "\033[1;1H ", out.String(), "vacated cell is blanked")

	out.Reset()
	c.ForceRedraw()
	c.Render(&out)
	assert.Equal(t, "\033[1;3H▄", out.String())
}

func TestRenderAppliesOffset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.SetOffset(3, 2)
	c.FillRect(1, 0, 1, 1)

	var out bytes.Buffer
	c.Render(&out)
	assert.Equal(t, "\033[3;5H▀", out.String())
}

func TestResizeInvalidates(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	c.Resize(20, 10)
	assert.Equal(t, 20, c.TerminalWidth())
	assert.Equal(t, 10, c.TerminalHeight())

	c.FillRect(0, 0, 100, 100)
	assert.True(t, c.Pixel(19, 19))

	col, row := c.LogicalToTerminal(50, 50)
	assert.Equal(t, 11, col)
	assert.Equal(t, 6, row)
}

func TestRenderBorder(t *testing.T) {
	c := NewCanvas(3, 1)
	c.SetOffset(2, 2)

	var out bytes.Buffer
	c.RenderBorder(&out)
	s := out.String()
	assert.Contains(t, s, "\033[2;2H┌───┐")
	assert.Contains(t, s, "\033[4;2H└───┘")
	assert.Contains(t, s, "\033[3;2H│\033[3;6H│")

	out.Reset()
	c.SetOffset(0, 0)
	c.RenderBorder(&out)
	assert.Empty(t, out.String())
}

func TestChunkWriter(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 2, 1)
	cw.WriteAt(1, 1, "hi")
	cw.ClearScreen()
	assert.Empty(t, out.String(), "buffered until flush")

	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[2;3Hhi\033[H\033[2J", out.String())

	out.Reset()
	big := strings.Repeat("x", 3*maxChunkSize+7)
	cw.WriteString(big)
	require.NoError(t, cw.Flush())
	assert.Equal(t, big, out.String())
}

func TestWriteCentered(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	cw.WriteCentered(10, 3, "ab\nabcd")
	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[3;4Hab\033[4;4Habcd", out.String())

	assert.Equal(t, 1, CenterCol(4, "too wide for four"))
	assert.Equal(t, 4, CenterCol(10, "Ouro"))
}

func TestSizeOrDefault(t *testing.T) {
	w, h := SizeOrDefault(func() (int, int, error) { return 100, 30, nil })
	assert.Equal(t, 100, w)
	assert.Equal(t, 30, h)

	w, h = SizeOrDefault(func() (int, int, error) { return 0, 0, errors.New("no tty") })
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)
}
