// Package plot renders a recorded mouse path as a scatter of raw
// per-event deltas over time, one series per axis. The geometry is
// generated as SVG, rasterized to a PNG, and labeled afterwards
// (the rasterizer handles shapes only, not text).
package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"mousetrack/internal/tracker"
)

// ErrNotEnoughData is returned when fewer than two path points were
// recorded, leaving no deltas to plot.
var ErrNotEnoughData = errors.New("not enough data points to plot")

// Colors
var (
	colorSeriesX    = color.RGBA{50, 100, 220, 255}  // blue for horizontal deltas
	colorSeriesY    = color.RGBA{220, 60, 50, 255}   // red for vertical deltas
	colorAxis       = color.RGBA{30, 30, 30, 255}
	colorGrid       = color.RGBA{200, 200, 200, 255}
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorText       = color.RGBA{30, 30, 30, 255}
)

// Plot area margins, leaving room for the title and axis labels drawn
// after rasterization.
const (
	marginLeft   = 70
	marginRight  = 25
	marginTop    = 40
	marginBottom = 50
)

// Options configures plot rendering.
type Options struct {
	Width  int
	Height int
	Title  string
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 1200
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	if o.Title == "" {
		o.Title = "Raw Mouse Movement Over Time"
	}
	return o
}

// sample is one plotted delta pair.
type sample struct {
	ms float64
	dx float64
	dy float64
}

// deltas converts a cumulative path into per-event delta samples
// relative to the session start time.
func deltas(points []tracker.Point) []sample {
	if len(points) < 2 {
		return nil
	}
	start := points[0].Time
	out := make([]sample, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		out = append(out, sample{
			ms: float64(points[i].Time.Sub(start).Microseconds()) / 1000,
			dx: float64(points[i].X - points[i-1].X),
			dy: float64(points[i].Y - points[i-1].Y),
		})
	}
	return out
}

// BuildSVG generates the plot geometry: background, grid, axes, zero
// line, and one circle per sample and series.
func BuildSVG(points []tracker.Point, o Options) (string, error) {
	o = o.withDefaults()
	samples := deltas(points)
	if len(samples) == 0 {
		return "", ErrNotEnoughData
	}

	maxT := samples[len(samples)-1].ms
	if maxT <= 0 {
		maxT = 1
	}
	minD, maxD := 0.0, 0.0
	for _, s := range samples {
		minD = min(minD, min(s.dx, s.dy))
		maxD = max(maxD, max(s.dx, s.dy))
	}
	// Pad the vertical range so extreme points are not clipped on
	// the border.
	if maxD == minD {
		maxD, minD = maxD+1, minD-1
	}
	pad := (maxD - minD) * 0.05
	maxD += pad
	minD -= pad

	plotW := float64(o.Width - marginLeft - marginRight)
	plotH := float64(o.Height - marginTop - marginBottom)
	toX := func(ms float64) float64 {
		return marginLeft + ms/maxT*plotW
	}
	toY := func(d float64) float64 {
		return marginTop + (maxD-d)/(maxD-minD)*plotH
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n", o.Width, o.Height)
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`+"\n", o.Width, o.Height, rgb(colorBackground))

	// Horizontal gridlines at quarter intervals
	for i := 1; i < 4; i++ {
		y := marginTop + plotH*float64(i)/4
		fmt.Fprintf(&b, `<line x1="%d" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="0.5"/>`+"\n",
			marginLeft, y, marginLeft+plotW, y, rgb(colorGrid))
	}

	// Zero line
	if minD < 0 && maxD > 0 {
		y := toY(0)
		fmt.Fprintf(&b, `<line x1="%d" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="0.75"/>`+"\n",
			marginLeft, y, marginLeft+plotW, y, rgb(colorAxis))
	}

	// Axes
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
		marginLeft, marginTop, marginLeft, marginTop+plotH, rgb(colorAxis))
	fmt.Fprintf(&b, `<line x1="%d" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
		marginLeft, marginTop+plotH, marginLeft+plotW, marginTop+plotH, rgb(colorAxis))

	// Samples, horizontal series then vertical
	for _, s := range samples {
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="2" fill="%s"/>`+"\n", toX(s.ms), toY(s.dx), rgb(colorSeriesX))
	}
	for _, s := range samples {
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="2" fill="%s"/>`+"\n", toX(s.ms), toY(s.dy), rgb(colorSeriesY))
	}

	// Legend swatches; labels are drawn post-rasterization
	fmt.Fprintf(&b, `<rect x="%.1f" y="%d" width="10" height="10" fill="%s"/>`+"\n", marginLeft+plotW-220, marginTop+8, rgb(colorSeriesX))
	fmt.Fprintf(&b, `<rect x="%.1f" y="%d" width="10" height="10" fill="%s"/>`+"\n", marginLeft+plotW-220, marginTop+24, rgb(colorSeriesY))

	b.WriteString("</svg>\n")
	return b.String(), nil
}

// Render rasterizes the plot SVG and draws the title, axis labels,
// range annotations, and legend text.
func Render(points []tracker.Point, o Options) (*image.RGBA, error) {
	o = o.withDefaults()
	svg, err := BuildSVG(points, o)
	if err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("parsing plot SVG: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{colorBackground}, image.Point{}, draw.Src)

	icon.SetTarget(0, 0, float64(o.Width), float64(o.Height))
	scanner := rasterx.NewScannerGV(o.Width, o.Height, img, img.Bounds())
	raster := rasterx.NewDasher(o.Width, o.Height, scanner)
	icon.Draw(raster, 1.0)

	samples := deltas(points)
	minD, maxD := 0.0, 0.0
	for _, s := range samples {
		minD = min(minD, min(s.dx, s.dy))
		maxD = max(maxD, max(s.dx, s.dy))
	}

	drawText(img, o.Title, marginLeft, 20, colorText)
	drawText(img, "Time (milliseconds)", o.Width/2-60, o.Height-15, colorText)
	drawText(img, fmt.Sprintf("Delta (counts)  %+.0f .. %+.0f", minD, maxD), 5, marginTop-8, colorText)
	drawText(img, "Horizontal (X)", o.Width-marginRight-200, marginTop+17, colorText)
	drawText(img, "Vertical (Y)", o.Width-marginRight-200, marginTop+33, colorText)
	drawText(img, "0 ms", marginLeft, o.Height-marginBottom+15, colorText)
	if len(samples) > 0 {
		drawText(img, fmt.Sprintf("%.0f ms", samples[len(samples)-1].ms), o.Width-marginRight-60, o.Height-marginBottom+15, colorText)
	}

	return img, nil
}

// WritePNG renders the plot and writes it to path.
func WritePNG(path string, points []tracker.Point, o Options) error {
	img, err := Render(points, o)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

// WriteSVG writes the intermediate SVG to path.
func WriteSVG(path string, points []tracker.Point, o Options) error {
	svg, err := BuildSVG(points, o)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(svg), 0o644)
}

// drawText draws text at the given position.
func drawText(img *image.RGBA, text string, x, y int, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

func rgb(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
