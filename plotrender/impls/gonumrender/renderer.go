package gonumrender

import (
	"image"
	"image/color"
	"io"

	"github.com/disintegration/gift"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libvisual/piecewise"
	"github.com/sgostarter/libvisual/plotrender"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// NewRenderer returns a gonum.org/v1/plot backed renderer. It also
// implements plotrender.ImageRenderer.
func NewRenderer() plotrender.FigureRenderer {
	return &rendererImpl{}
}

type rendererImpl struct {
}

func (impl *rendererImpl) RenderFigure(fig *plotrender.Figure, w io.Writer) error {
	if fig == nil || len(fig.Scatter) == 0 {
		return commerr.ErrInvalidArgument
	}

	p := plot.New()
	p.Title.Text = fig.Title
	p.Title.TextStyle.Font.Size = vg.Points(fig.TitleFontSize)
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(fig.LabelFontSize)
	p.Y.Label.TextStyle.Font.Size = vg.Points(fig.LabelFontSize)
	p.X.Tick.Label.Font.Size = vg.Points(fig.TickFontSize)
	p.Y.Tick.Label.Font.Size = vg.Points(fig.TickFontSize)

	if fig.HideTicks {
		p.X.Tick.Marker = blankTicker{}
		p.Y.Tick.Marker = blankTicker{}
	}

	sc, err := plotter.NewScatter(toXYs(fig.Scatter))
	if err != nil {
		return err
	}

	p.Add(sc)

	if len(fig.Overlay) > 0 {
		var ln *plotter.Line

		ln, err = plotter.NewLine(toXYs(fig.Overlay))
		if err != nil {
			return err
		}

		ln.LineStyle.Color = color.RGBA{R: 0xff, A: 0xff}
		ln.LineStyle.Width = vg.Points(2)

		p.Add(ln)
	}

	if fig.Marker != nil {
		var mk *plotter.Scatter

		mk, err = plotter.NewScatter(plotter.XYs{{X: fig.Marker.X, Y: fig.Marker.Y}})
		if err != nil {
			return err
		}

		mk.GlyphStyle.Color = color.RGBA{B: 0xff, A: 0xff}
		mk.GlyphStyle.Radius = vg.Points(5)
		mk.GlyphStyle.Shape = draw.CircleGlyph{}

		p.Add(mk)
	}

	return writePNG(p, fig.Width, fig.Height, w)
}

func (impl *rendererImpl) RenderImageFigure(fig *plotrender.ImageFigure, w io.Writer) error {
	if fig == nil || fig.Image == nil {
		return commerr.ErrInvalidArgument
	}

	img := fig.Image

	if fig.Grayscale {
		g := gift.New(gift.Grayscale())

		dst := image.NewRGBA(g.Bounds(img.Bounds()))
		g.Draw(dst, img)

		img = dst
	}

	p := plot.New()
	p.Title.Text = fig.Title
	p.Title.TextStyle.Font.Size = vg.Points(fig.TitleFontSize)
	p.HideAxes()

	p.Add(&imagePlotter{img: img})

	return writePNG(p, fig.Width, fig.Height, w)
}

func writePNG(p *plot.Plot, width, height int, w io.Writer) error {
	wt, err := p.WriterTo(vg.Points(float64(width)), vg.Points(float64(height)), "png")
	if err != nil {
		return err
	}

	_, err = wt.WriteTo(w)

	return err
}

func toXYs(points []piecewise.Point) plotter.XYs {
	pts := make(plotter.XYs, len(points))

	for idx, pt := range points {
		pts[idx].X = pt.X
		pts[idx].Y = pt.Y
	}

	return pts
}

type blankTicker struct {
}

func (blankTicker) Ticks(_, _ float64) []plot.Tick {
	return nil
}

// imagePlotter stretches one raster image over the whole data area.
type imagePlotter struct {
	img image.Image
}

func (ip *imagePlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	b := ip.img.Bounds()

	rect := vg.Rectangle{
		Min: vg.Point{X: trX(0), Y: trY(0)},
		Max: vg.Point{X: trX(float64(b.Dx())), Y: trY(float64(b.Dy()))},
	}

	c.DrawImage(rect, ip.img)
}

func (ip *imagePlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	b := ip.img.Bounds()

	return 0, float64(b.Dx()), 0, float64(b.Dy())
}
