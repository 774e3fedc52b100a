// Package draw renders point sets before and after conversion, side by side,
// so a reference pair can be checked by eye.
package draw

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/equivcoord/geometry"
	"github.com/pkg/errors"
)

// Padding around each panel so that points on the bounds stay visible
const padding = 40

// Panel size used by the svg command unless --size is given
const DefaultPanelSize = 600

// A panel is one coordinate system: its shapes and its two reference points.
type Panel struct {
	Title      string
	Shapes     []geometry.PointList
	References [2]geometry.Point
}

// Comparison draws the panels left to right, each scaled to fit its own
// square, and returns the context so the caller can save or print it.
func Comparison(size int, panels ...Panel) *gg.Context {
	c := gg.NewContext(size*len(panels), size)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(c.Width()), float64(c.Height()))
	c.Fill()

	for i, panel := range panels {
		c.Push()
		c.Translate(float64(i*size), 0)
		panel.draw(c, float64(size))
		c.Pop()
	}
	return c
}

func (p Panel) bounds() (lower, upper geometry.Point) {
	var all geometry.PointList
	for _, shape := range p.Shapes {
		all = append(all, shape...)
	}
	all = append(all, p.References[:]...)
	return all.Bounds()
}

func (p Panel) draw(c *gg.Context, size float64) {
	lower, upper := p.bounds()
	extent := math.Max(upper.X-lower.X, upper.Y-lower.Y)
	scale := 1.0
	if extent > 0 {
		scale = (size - 2*padding) / extent
	}

	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(p.Title, size/2, padding/2, 0.5, 0.5)

	// Flip the context so the origin is at the bottom left, then pad, scale,
	// and translate to the minimum. Line widths and radii are divided by the
	// scale to stay constant on screen.
	c.Push()
	c.Translate(0, size)
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-lower.X, -lower.Y)

	c.SetLineWidth(2 / scale)
	for _, shape := range p.Shapes {
		if len(shape) == 0 {
			continue
		}
		c.MoveTo(shape[0].X, shape[0].Y)
		for _, pt := range shape[1:] {
			c.LineTo(pt.X, pt.Y)
		}
		c.ClosePath()
	}
	c.SetRGBA(0, 0.5, 0, 0.5)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	for i, ref := range p.References {
		if i == 0 {
			c.SetRGB(1, 0.3, 0.3)
		} else {
			c.SetRGB(1, 1, 0)
		}
		c.DrawCircle(ref.X, ref.Y, 5/scale)
		c.Fill()
	}
	c.Pop()
}

func Save(c *gg.Context, path string) error {
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %q", path)
	}
	return nil
}

// Print a saved image to the terminal. This only works in iTerm.
func Print(path string) {
	imgcat.CatFile(path, os.Stdout)
}
