package report

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"facet/internal/domain"
)

// SavePlot writes a PNG with one bar chart per measure, bars labelled with
// the dataset names.
func SavePlot(path string, results []domain.Result, datasets []string) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to plot")
	}

	row := make([]*plot.Plot, len(results))
	for i, res := range results {
		p := plot.New()
		p.Title.Text = res.Title
		label := res.Title
		if res.Unit != "" {
			label += " in " + res.Unit
		}
		p.Y.Label.Text = label

		bars, err := plotter.NewBarChart(plotter.Values(res.Values), vg.Points(30))
		if err != nil {
			return fmt.Errorf("bar chart for %s: %w", res.Measure, err)
		}
		p.Add(bars)
		p.NominalX(datasets...)
		p.X.Tick.Label.Rotation = -0.7
		p.X.Tick.Label.XAlign = draw.XLeft
		row[i] = p
	}

	const tile = 5 * vg.Inch
	img := vgimg.New(vg.Length(len(results))*tile, tile)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1,
		Cols: len(results),
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}
	canvases := plot.Align([][]*plot.Plot{row}, tiles, dc)
	for i, p := range row {
		p.Draw(canvases[0][i])
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("write plot %s: %w", path, err)
	}
	return f.Close()
}
