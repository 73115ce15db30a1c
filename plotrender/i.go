package plotrender

import (
	"image"
	"io"

	"github.com/sgostarter/libvisual/piecewise"
)

type FigureRenderer interface {
	RenderFigure(fig *Figure, w io.Writer) error
}

// ImageRenderer is implemented by backends that can draw raster-image
// figures. Backends without the capability only satisfy FigureRenderer.
type ImageRenderer interface {
	RenderImageFigure(fig *ImageFigure, w io.Writer) error
}

type Plotter interface {
	PlotPoints(points []piecewise.Point, title string, maximize bool) (string, error)
	PlotPointsTo(w io.Writer, points []piecewise.Point, title string, maximize bool) error

	PlotPiecewise(curve *piecewise.Curve, title string, maxAt piecewise.Point, maximize bool) (string, error)
	PlotPiecewiseTo(w io.Writer, curve *piecewise.Curve, title string, maxAt piecewise.Point, maximize bool) error

	PlotImage(img image.Image, title string, grayscale, maximize bool) (string, error)
	PlotImageTo(w io.Writer, img image.Image, title string, grayscale, maximize bool) error
}
