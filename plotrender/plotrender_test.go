package plotrender

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libvisual/piecewise"
	"github.com/stretchr/testify/assert"
)

func TestMaximizeKeepsDataUntouched(t *testing.T) {
	c, err := piecewise.NewCurve([]float64{1, 0, 0}, []int{0, 3}, piecewise.TupleQuadratic)
	assert.Nil(t, err)

	maxAt := piecewise.Point{X: 3, Y: 9}

	plain, err := NewPiecewiseFigure(c, "ut", maxAt, &Config{}, false)
	assert.Nil(t, err)

	maximized, err := NewPiecewiseFigure(c, "ut", maxAt, &Config{}, true)
	assert.Nil(t, err)

	assert.EqualValues(t, plain.Scatter, maximized.Scatter)
	assert.EqualValues(t, plain.Overlay, maximized.Overlay)
	assert.EqualValues(t, plain.Marker, maximized.Marker)

	assert.NotEqual(t, plain.Width, maximized.Width)
}

func TestNewPiecewiseFigure(t *testing.T) {
	c, err := piecewise.NewCurve([]float64{1, 0, 0}, []int{0, 3}, piecewise.TupleQuadratic)
	assert.Nil(t, err)

	fig, err := NewPiecewiseFigure(c, "ut", piecewise.Point{X: 3, Y: 9}, nil, false)
	assert.Nil(t, err)

	assert.EqualValues(t, []piecewise.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 4}}, fig.Scatter)
	assert.EqualValues(t, []piecewise.Point{{X: 0, Y: 0}, {X: 3, Y: 9}}, fig.Overlay)
	assert.EqualValues(t, piecewise.Point{X: 3, Y: 9}, *fig.Marker)

	_, err = NewPiecewiseFigure(nil, "ut", piecewise.Point{}, nil, false)
	assert.ErrorIs(t, err, commerr.ErrInvalidArgument)
}

func TestNewScatterFigureEmpty(t *testing.T) {
	_, err := NewScatterFigure(nil, "ut", nil, false)
	assert.ErrorIs(t, err, commerr.ErrInvalidArgument)
}

func TestLoadConfig(t *testing.T) {
	name := filepath.Join(t.TempDir(), "visual.yaml")

	assert.Nil(t, os.WriteFile(name, []byte("outputDir: ./out\ncanvasWidth: 800\nxLabel: Focus Distance [mm]\n"), 0600))

	cfg, err := LoadConfig(name)
	assert.Nil(t, err)

	assert.EqualValues(t, "./out", cfg.OutputDir)
	assert.EqualValues(t, 800, cfg.CanvasWidth)
	assert.EqualValues(t, "Focus Distance [mm]", cfg.XLabel)

	// defaults
	assert.EqualValues(t, 480, cfg.CanvasHeight)
	assert.EqualValues(t, 36, cfg.TitleFontSize)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}

func TestFileNameByTitle(t *testing.T) {
	name := fileNameByTitle("Sharpness Curve #1")
	assert.True(t, strings.HasPrefix(name, "sharpness-curve-1-"))
	assert.True(t, strings.HasSuffix(name, ".png"))

	assert.True(t, strings.HasPrefix(fileNameByTitle("!!!"), "figure-"))
}
