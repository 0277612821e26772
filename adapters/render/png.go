package render

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"masssize/domain/relation"
	"masssize/internal/errors"
	"masssize/ports"
)

const (
	figWidth  = 6 * vg.Inch
	figHeight = 5 * vg.Inch

	// samples along the fitted line
	lineSamples = 200
)

var seriesColors = []color.NRGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, // disk
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}, // spheroid
}

// PNG renders the diagnostic figures as raster images. Existing files at
// the target paths are overwritten.
type PNG struct {
	dpi int
	log zerolog.Logger
}

// NewPNG creates a renderer writing PNGs at the given DPI
func NewPNG(dpi int, log zerolog.Logger) *PNG {
	return &PNG{dpi: dpi, log: log}
}

// RenderRelation draws the cleaned sample and its fitted relation on a
// log-scaled size axis
func (r *PNG) RenderRelation(path string, sample ports.Series) error {
	p := newSizeMassPlot("Galaxy Stellar Mass-Size Relation (NSA)")

	sc, err := scatter(sample, color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0x20})
	if err != nil {
		return errors.RenderError(path, err)
	}
	ln, err := fitLine(sample, color.NRGBA{A: 0xff})
	if err != nil {
		return errors.RenderError(path, err)
	}
	ln.LineStyle.Width = vg.Points(2)

	p.Add(sc, ln)
	p.Legend.Add(sample.Label, sc)
	p.Legend.Add(fmt.Sprintf("Fit: alpha=%.2f", sample.Fit.Alpha), ln)

	if err := r.save(p, path); err != nil {
		return errors.RenderError(path, err)
	}
	r.log.Info().Str("path", path).Int("points", len(sample.LogM)).Msg("relation figure written")
	return nil
}

// RenderMorphology draws the disk and spheroid populations with one fit
// line per bin over the combined mass range
func (r *PNG) RenderMorphology(path string, disk, spheroid ports.Series) error {
	p := newSizeMassPlot("Mass-Size Relation by Morphology (NSA)")

	lo, hi := combinedRange(disk, spheroid)
	for i, s := range []ports.Series{disk, spheroid} {
		c := seriesColors[i%len(seriesColors)]
		sc, err := scatter(s, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0x20})
		if err != nil {
			return errors.RenderError(path, err)
		}
		ln, err := fitLineOver(s.Fit, lo, hi, c)
		if err != nil {
			return errors.RenderError(path, err)
		}
		p.Add(sc, ln)
		p.Legend.Add(s.Label, sc)
		p.Legend.Add(fmt.Sprintf("%s fit (alpha=%.2f)", s.Label, s.Fit.Alpha), ln)
	}

	if err := r.save(p, path); err != nil {
		return errors.RenderError(path, err)
	}
	r.log.Info().Str("path", path).Msg("morphology figure written")
	return nil
}

func newSizeMassPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "log10(M*/Msun)"
	p.Y.Label.Text = "Re [kpc]"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true
	p.Legend.Left = true
	return p
}

func scatter(s ports.Series, c color.NRGBA) (*plotter.Scatter, error) {
	pts := make(plotter.XYs, len(s.LogM))
	for i := range pts {
		pts[i].X = s.LogM[i]
		pts[i].Y = s.SizeKpc[i]
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Radius = vg.Points(1)
	sc.GlyphStyle.Color = c
	return sc, nil
}

func fitLine(s ports.Series, c color.Color) (*plotter.Line, error) {
	lo := floats.Min(s.LogM)
	hi := floats.Max(s.LogM)
	return fitLineOver(s.Fit, lo, hi, c)
}

func fitLineOver(fit relation.Fit, lo, hi float64, c color.Color) (*plotter.Line, error) {
	if hi <= lo {
		// degenerate mass range; widen so the line is still visible
		lo, hi = lo-0.5, hi+0.5
	}
	pts := make(plotter.XYs, lineSamples)
	step := (hi - lo) / float64(lineSamples-1)
	for i := range pts {
		logM := lo + float64(i)*step
		pts[i].X = logM
		pts[i].Y = math.Pow(10, fit.Predict(logM))
	}
	ln, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	ln.LineStyle.Width = vg.Points(1.5)
	ln.LineStyle.Color = c
	return ln, nil
}

func combinedRange(a, b ports.Series) (lo, hi float64) {
	lo = floats.Min(a.LogM)
	hi = floats.Max(a.LogM)
	if v := floats.Min(b.LogM); v < lo {
		lo = v
	}
	if v := floats.Max(b.LogM); v > hi {
		hi = v
	}
	return lo, hi
}

// save rasterizes the plot at the configured DPI and writes it out,
// replacing any existing file
func (r *PNG) save(p *plot.Plot, path string) error {
	img := vgimg.NewWith(vgimg.UseWH(figWidth, figHeight), vgimg.UseDPI(r.dpi))
	dc := draw.New(img)
	p.Draw(dc)

	w, err := os.Create(path)
	if err != nil {
		return err
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
