package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turing/internal/core"
)

func TestRenderLayout(t *testing.T) {
	r, err := NewRenderer(3, 2, 2, Builtin())
	require.NoError(t, err)
	assert.Equal(t, 18, r.FrameSize())

	cells := make([]core.Symbol, 6)
	cells[1] = 1 // (1,0) white
	cells[5] = 1 // (2,1) white

	frame := r.Render(cells)
	require.Len(t, frame, 18)

	for i := 0; i < 6; i++ {
		want := byte(0)
		if i == 1 || i == 5 {
			want = 255
		}
		assert.Equal(t, want, frame[i*3+0], "pixel %d red", i)
		assert.Equal(t, want, frame[i*3+1], "pixel %d green", i)
		assert.Equal(t, want, frame[i*3+2], "pixel %d blue", i)
	}
}

func TestRenderPure(t *testing.T) {
	r, err := NewRenderer(4, 4, 6, Builtin())
	require.NoError(t, err)

	cells := make([]core.Symbol, 16)
	for i := range cells {
		cells[i] = core.Symbol(i % 6)
	}

	first := append([]byte(nil), r.Render(cells)...)
	second := r.Render(cells)
	assert.Equal(t, first, second, "render must be a pure function of the cells")
}

func TestRenderRGBA(t *testing.T) {
	r, err := NewRenderer(2, 1, 2, Builtin())
	require.NoError(t, err)

	buf := r.RenderRGBA([]core.Symbol{0, 1})
	require.Len(t, buf, 8)
	assert.Equal(t, []byte{0, 0, 0, 255, 255, 255, 255, 255}, buf)
}

func TestPaletteUnderflow(t *testing.T) {
	_, err := NewRenderer(4, 4, 8, Builtin())
	assert.ErrorIs(t, err, ErrPaletteUnderflow)

	_, err = NewRenderer(4, 4, 8, Generate(8))
	assert.NoError(t, err)
}

func TestRendererInvalidDimensions(t *testing.T) {
	_, err := NewRenderer(0, 4, 2, Builtin())
	assert.ErrorIs(t, err, core.ErrInvalidDimensions)
}

func TestBuiltinPalette(t *testing.T) {
	p := Builtin()
	require.Len(t, p, 7)
	assert.Equal(t, color.RGBA{A: 255}, p[0], "blank renders black")
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, p[1])
	assert.Equal(t, color.RGBA{R: 255, G: 0, B: 0, A: 255}, p[4])
}

func TestGeneratePalette(t *testing.T) {
	p := Generate(12)
	require.Len(t, p, 12)
	assert.Equal(t, color.RGBA{A: 255}, p[0])

	seen := map[color.RGBA]bool{}
	for _, c := range p {
		assert.EqualValues(t, 255, c.A)
		assert.False(t, seen[c], "palette colors must be distinct: %v", c)
		seen[c] = true
	}
}
