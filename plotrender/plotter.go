package plotrender

import (
	"image"
	"io"
	"os"
	"path"
	"strings"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/cuserror"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libvisual/piecewise"
	"github.com/spf13/cast"
)

func NewPlotter(renderer FigureRenderer, cfg *Config, logger l.Wrapper) Plotter {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if renderer == nil {
		logger.Error("no renderer")

		return nil
	}

	if cfg == nil {
		cfg = &Config{}
	}

	cfg.applyDefaults()

	imageRenderer, _ := renderer.(ImageRenderer)

	return &plotterImpl{
		logger:        logger.WithFields(l.StringField(l.ClsKey, "plotterImpl")),
		cfg:           cfg,
		renderer:      renderer,
		imageRenderer: imageRenderer,
	}
}

type plotterImpl struct {
	logger l.Wrapper
	cfg    *Config

	renderer      FigureRenderer
	imageRenderer ImageRenderer
}

func (impl *plotterImpl) PlotPoints(points []piecewise.Point, title string, maximize bool) (string, error) {
	return impl.renderToFile(title, func(w io.Writer) error {
		return impl.PlotPointsTo(w, points, title, maximize)
	})
}

func (impl *plotterImpl) PlotPointsTo(w io.Writer, points []piecewise.Point, title string, maximize bool) error {
	fig, err := NewScatterFigure(points, title, impl.cfg, maximize)
	if err != nil {
		return err
	}

	return impl.renderer.RenderFigure(fig, w)
}

func (impl *plotterImpl) PlotPiecewise(curve *piecewise.Curve, title string, maxAt piecewise.Point, maximize bool) (string, error) {
	return impl.renderToFile(title, func(w io.Writer) error {
		return impl.PlotPiecewiseTo(w, curve, title, maxAt, maximize)
	})
}

func (impl *plotterImpl) PlotPiecewiseTo(w io.Writer, curve *piecewise.Curve, title string, maxAt piecewise.Point, maximize bool) error {
	fig, err := NewPiecewiseFigure(curve, title, maxAt, impl.cfg, maximize)
	if err != nil {
		return err
	}

	return impl.renderer.RenderFigure(fig, w)
}

func (impl *plotterImpl) PlotImage(img image.Image, title string, grayscale, maximize bool) (string, error) {
	return impl.renderToFile(title, func(w io.Writer) error {
		return impl.PlotImageTo(w, img, title, grayscale, maximize)
	})
}

func (impl *plotterImpl) PlotImageTo(w io.Writer, img image.Image, title string, grayscale, maximize bool) error {
	if impl.imageRenderer == nil {
		return cuserror.NewWithErrorMsg("renderer has no image figure support")
	}

	fig, err := NewImageFigure(img, title, grayscale, impl.cfg, maximize)
	if err != nil {
		return err
	}

	return impl.imageRenderer.RenderImageFigure(fig, w)
}

func (impl *plotterImpl) renderToFile(title string, render func(w io.Writer) error) (string, error) {
	_ = pathutils.MustDirExists(impl.cfg.OutputDir)

	fileName := path.Join(impl.cfg.OutputDir, fileNameByTitle(title))

	f, err := os.Create(fileName)
	if err != nil {
		return "", err
	}

	err = render(f)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(fileName)

		return "", err
	}

	err = f.Close()
	if err != nil {
		return "", err
	}

	return fileName, nil
}

func fileNameByTitle(title string) string {
	var sb strings.Builder

	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			sb.WriteByte('-')
		}
	}

	base := strings.Trim(sb.String(), "-")
	if base == "" {
		base = "figure"
	}

	return base + "-" + cast.ToString(snowflake.ID()) + ".png"
}
