package plotrender

import (
	"image"

	"github.com/nfnt/resize"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libvisual/piecewise"
)

type Figure struct {
	Title  string
	XLabel string
	YLabel string

	TitleFontSize float64
	LabelFontSize float64
	TickFontSize  float64

	Scatter []piecewise.Point
	Overlay []piecewise.Point
	Marker  *piecewise.Point

	HideTicks bool

	Width  int
	Height int
}

type ImageFigure struct {
	Title         string
	TitleFontSize float64

	Image     image.Image
	Grayscale bool

	Width  int
	Height int
}

// NewScatterFigure builds a scatter-only figure. The maximize flag resolves
// the canvas geometry from the configured display size and never touches
// the point data.
func NewScatterFigure(points []piecewise.Point, title string, cfg *Config, maximize bool) (*Figure, error) {
	if len(points) == 0 {
		return nil, commerr.ErrInvalidArgument
	}

	fig := newFigure(title, cfg, maximize)
	fig.Scatter = points

	return fig, nil
}

// NewPiecewiseFigure evaluates the curve and builds a figure with the
// integer-step scatter, the knot overlay line and the caller-supplied
// maximum marker.
func NewPiecewiseFigure(curve *piecewise.Curve, title string, maxAt piecewise.Point, cfg *Config, maximize bool) (*Figure, error) {
	if curve == nil {
		return nil, commerr.ErrInvalidArgument
	}

	tr, err := curve.Trace()
	if err != nil {
		return nil, err
	}

	fig := newFigure(title, cfg, maximize)
	fig.Scatter = tr.Scatter
	fig.Overlay = tr.Knots
	fig.Marker = &maxAt

	return fig, nil
}

func NewImageFigure(img image.Image, title string, grayscale bool, cfg *Config, maximize bool) (*ImageFigure, error) {
	if img == nil {
		return nil, commerr.ErrInvalidArgument
	}

	if cfg == nil {
		cfg = &Config{}
	}

	cfg.applyDefaults()

	if maximize {
		img = fitToDisplay(img, cfg.DisplayWidth, cfg.DisplayHeight)
	}

	b := img.Bounds()

	return &ImageFigure{
		Title:         title,
		TitleFontSize: cfg.TitleFontSize,
		Image:         img,
		Grayscale:     grayscale,
		Width:         b.Dx(),
		Height:        b.Dy(),
	}, nil
}

func newFigure(title string, cfg *Config, maximize bool) *Figure {
	if cfg == nil {
		cfg = &Config{}
	}

	cfg.applyDefaults()

	fig := &Figure{
		Title:         title,
		XLabel:        cfg.XLabel,
		YLabel:        cfg.YLabel,
		TitleFontSize: cfg.TitleFontSize,
		LabelFontSize: cfg.LabelFontSize,
		TickFontSize:  cfg.TickFontSize,
		Width:         cfg.CanvasWidth,
		Height:        cfg.CanvasHeight,
	}

	if maximize {
		fig.Width = cfg.DisplayWidth
		fig.Height = cfg.DisplayHeight
	}

	return fig
}

// fitToDisplay upscales or downscales to the display bounds, keeping the
// aspect ratio.
func fitToDisplay(img image.Image, displayWidth, displayHeight int) image.Image {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 || displayWidth <= 0 || displayHeight <= 0 {
		return img
	}

	if displayWidth*b.Dy() <= displayHeight*b.Dx() {
		return resize.Resize(uint(displayWidth), 0, img, resize.Lanczos3)
	}

	return resize.Resize(0, uint(displayHeight), img, resize.Lanczos3)
}
