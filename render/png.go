package render

import (
	"image/color"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg"

	"github.com/Motwg/RandomForest/metrics"
	"github.com/Motwg/RandomForest/pkg/errors"
	"github.com/Motwg/RandomForest/tree"
)

var (
	rootColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	nodeColor = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	edgeColor = color.Gray{Y: 128}
	barColor  = color.RGBA{R: 31, G: 119, B: 180, A: 255}
)

// Size of the images written by this package.
var (
	Width  = 12 * vg.Inch
	Height = 8 * vg.Inch
)

// TreePlot draws root as a layered graph: edges from every node to its
// children, a marker per node with the root in red, and each node's
// Label next to its marker.
func TreePlot[F any](root *tree.Node[F]) (*plot.Plot, error) {
	placed := Layout(root)

	p := plot.New()
	p.Title.Text = "Tree"
	p.HideAxes()

	for _, n := range placed {
		if n.Parent < 0 {
			continue
		}
		parent := placed[n.Parent]
		edge, err := plotter.NewLine(plotter.XYs{{X: parent.X, Y: parent.Y}, {X: n.X, Y: n.Y}})
		if err != nil {
			return nil, errors.Wrap(err, "tree edge")
		}
		edge.LineStyle.Color = edgeColor
		edge.LineStyle.Width = vg.Points(1)
		p.Add(edge)
	}

	xys := make(plotter.XYs, len(placed))
	labels := make([]string, len(placed))
	for i, n := range placed {
		xys[i] = plotter.XY{X: n.X, Y: n.Y}
		labels[i] = Label(n.Node)
	}

	nodes, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, errors.Wrap(err, "tree nodes")
	}
	nodes.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		style := draw.GlyphStyle{Shape: draw.CircleGlyph{}, Radius: vg.Points(6), Color: nodeColor}
		if placed[i].Parent < 0 {
			style.Color = rootColor
		}
		return style
	}
	p.Add(nodes)

	text, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, errors.Wrap(err, "tree labels")
	}
	for i := range text.TextStyle {
		text.TextStyle[i].XAlign = draw.XCenter
	}
	text.Offset = vg.Point{Y: vg.Points(8)}
	p.Add(text)

	p.X.Min, p.X.Max = -0.5, maxX(placed)+0.5
	p.Y.Min, p.Y.Max = minY(placed)-0.5, 0.75
	return p, nil
}

func maxX[F any](placed []Placed[F]) float64 {
	m := 0.0
	for _, n := range placed {
		m = max(m, n.X)
	}
	return m
}

func minY[F any](placed []Placed[F]) float64 {
	m := 0.0
	for _, n := range placed {
		m = min(m, n.Y)
	}
	return m
}

// StatsPlot draws the validation histogram as one bar per error bucket.
func StatsPlot(stats metrics.ErrorHistogram) (*plot.Plot, error) {
	values := make(plotter.Values, len(stats.Buckets))
	names := make([]string, len(stats.Buckets))
	for i, c := range stats.Buckets {
		values[i] = float64(c)
		names[i] = "diff=" + strconv.Itoa(i)
	}
	names[len(names)-1] += "+"

	p := plot.New()
	p.Title.Text = "Validation error (n=" + strconv.Itoa(stats.N) + ")"
	p.Y.Label.Text = "predictions"

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return nil, errors.Wrap(err, "validation bars")
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}

// WritePNG encodes p as a PNG image of the package size.
func WritePNG(w io.Writer, p *plot.Plot) error {
	wt, err := p.WriterTo(Width, Height, "png")
	if err != nil {
		return errors.Wrap(err, "png canvas")
	}
	_, err = wt.WriteTo(w)
	return errors.Wrap(err, "writing png")
}

// TreePNG renders root to a PNG file at path.
func TreePNG[F any](path string, root *tree.Node[F]) error {
	p, err := TreePlot(root)
	if err != nil {
		return err
	}
	return savePNG(path, p)
}

// StatsPNG renders stats to a PNG file at path.
func StatsPNG(path string, stats metrics.ErrorHistogram) error {
	p, err := StatsPlot(stats)
	if err != nil {
		return err
	}
	return savePNG(path, p)
}

func savePNG(path string, p *plot.Plot) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := WritePNG(file, p); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
