package chartrender

import (
	"io"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libvisual/piecewise"
	"github.com/sgostarter/libvisual/plotrender"
	chart "github.com/wcharczuk/go-chart/v2"
)

// NewRenderer returns a go-chart backed renderer. Raster-image figures are
// not supported by this backend; use the gonum renderer for those.
func NewRenderer() plotrender.FigureRenderer {
	return &rendererImpl{}
}

type rendererImpl struct {
}

func (impl *rendererImpl) RenderFigure(fig *plotrender.Figure, w io.Writer) error {
	if fig == nil || len(fig.Scatter) == 0 {
		return commerr.ErrInvalidArgument
	}

	xs, ys := split(fig.Scatter)

	// go-chart needs at least two x values per series
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "data",
			XValues: xs,
			YValues: ys,
			// points only, no connecting line
			Style: chart.Style{
				StrokeWidth: 0,
				DotWidth:    4,
				DotColor:    chart.ColorAlternateGray,
			},
		},
	}

	if len(fig.Overlay) > 1 {
		oxs, oys := split(fig.Overlay)

		series = append(series, chart.ContinuousSeries{
			Name:    "fit",
			XValues: oxs,
			YValues: oys,
			Style: chart.Style{
				StrokeColor: chart.ColorRed,
				StrokeWidth: 2,
			},
		})
	}

	if fig.Marker != nil {
		series = append(series, chart.AnnotationSeries{
			Annotations: []chart.Value2{
				{XValue: fig.Marker.X, YValue: fig.Marker.Y, Label: "max"},
			},
			Style: chart.Style{
				StrokeColor: chart.ColorBlue,
				DotColor:    chart.ColorBlue,
				DotWidth:    6,
			},
		})
	}

	ch := chart.Chart{
		Title:      fig.Title,
		TitleStyle: chart.Style{FontSize: fig.TitleFontSize},
		Width:      fig.Width,
		Height:     fig.Height,
		XAxis: chart.XAxis{
			Name:      fig.XLabel,
			NameStyle: chart.Style{FontSize: fig.LabelFontSize},
			TickStyle: chart.Style{FontSize: fig.TickFontSize},
		},
		YAxis: chart.YAxis{
			Name:      fig.YLabel,
			NameStyle: chart.Style{FontSize: fig.LabelFontSize},
			TickStyle: chart.Style{FontSize: fig.TickFontSize},
		},
		Series: series,
	}

	if fig.HideTicks {
		ch.XAxis.Style.Hidden = true
		ch.YAxis.Style.Hidden = true
	}

	return ch.Render(chart.PNG, w)
}

func split(points []piecewise.Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))

	for idx, pt := range points {
		xs[idx] = pt.X
		ys[idx] = pt.Y
	}

	return
}
