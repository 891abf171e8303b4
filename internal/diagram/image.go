package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/tanishapritha/shaft-designer/internal/shaft"
)

// ExportShearDiagram exports the shear-force profile to an image file.
func ExportShearDiagram(p *shaft.Profile, filename string) error {
	return exportProfile(p.Positions, p.Shear, "Shear Force Diagram",
		"Position along Shaft (m)", "Shear Force V (N)",
		color.RGBA{R: 200, A: 255}, filename)
}

// ExportMomentDiagram exports the bending-moment profile to an image file.
func ExportMomentDiagram(p *shaft.Profile, filename string) error {
	return exportProfile(p.Positions, p.Moment, "Bending Moment Diagram",
		"Position along Shaft (m)", "Bending Moment M (N·m)",
		color.RGBA{B: 200, A: 255}, filename)
}

// ExportTorqueDiagram exports a torque step profile to an image file.
func ExportTorqueDiagram(positions, torque []float64, filename string) error {
	return exportProfile(positions, torque, "Torque Diagram",
		"Position along Shaft (m)", "Torque T (N·m)",
		color.RGBA{R: 160, B: 160, A: 255}, filename)
}

func exportProfile(xs, ys []float64, title, xLabel, yLabel string, c color.Color, filename string) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("profile sequences differ in length: %d vs %d", len(xs), len(ys))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = c
	p.Add(line)

	// Zero reference line
	if len(xs) > 0 {
		zero, err := plotter.NewLine(plotter.XYs{
			{X: xs[0], Y: 0},
			{X: xs[len(xs)-1], Y: 0},
		})
		if err != nil {
			return err
		}
		zero.LineStyle.Width = vg.Points(1)
		zero.LineStyle.Color = color.Gray{Y: 128}
		zero.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(zero)
	}

	return savePlot(p, 8*vg.Inch, 4*vg.Inch, filename)
}

// ExportShaftLayout exports the shaft span with its supports and point
// loads to an image file.
func ExportShaftLayout(length float64, loads []shaft.PointLoad, filename string) error {
	p := plot.New()
	p.Title.Text = "Shaft Layout"
	p.X.Label.Text = "Position along Shaft (m)"
	p.Y.Min = -1
	p.Y.Max = 1

	shaftLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: length, Y: 0},
	})
	if err != nil {
		return err
	}
	shaftLine.LineStyle.Width = vg.Points(4)
	shaftLine.LineStyle.Color = color.Black
	p.Add(shaftLine)

	supports, err := plotter.NewScatter(plotter.XYs{
		{X: 0, Y: 0},
		{X: length, Y: 0},
	})
	if err != nil {
		return err
	}
	supports.GlyphStyle.Color = color.RGBA{G: 150, A: 255}
	supports.GlyphStyle.Radius = vg.Points(6)
	supports.GlyphStyle.Shape = draw.PyramidGlyph{}
	p.Add(supports)

	for _, l := range loads {
		marker, err := plotter.NewScatter(plotter.XYs{{X: l.Position, Y: 0.2}})
		if err != nil {
			return err
		}
		marker.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
		marker.GlyphStyle.Radius = vg.Points(4)
		marker.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(marker)

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: l.Position, Y: 0.35}},
			Labels: []string{fmt.Sprintf("%+.0f N", l.Force)},
		})
		if err != nil {
			return err
		}
		p.Add(lbl)
	}

	return savePlot(p, 8*vg.Inch, 3*vg.Inch, filename)
}

func savePlot(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
