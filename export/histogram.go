package export

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/atomcluster/analysis"
)

// ErrNothingToPlot is returned when the histogram has no bins.
var ErrNothingToPlot = errors.New("export: no clusters to plot")

// WriteHistogramCSV writes the bins as "size,frequency" rows after a header.
func WriteHistogramCSV(w io.Writer, bins []analysis.Bin) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"size", "frequency"}); err != nil {
		return err
	}
	for _, b := range bins {
		if err := cw.Write([]string{strconv.Itoa(b.Size), strconv.Itoa(b.Frequency)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// PlotHistogram renders the bins as a bar chart, one bar per cluster size,
// and saves it to path. The image format follows the extension (pdf, png, svg, eps...).
func PlotHistogram(path string, bins []analysis.Bin) error {
	if len(bins) == 0 {
		return ErrNothingToPlot
	}

	p := plot.New()
	p.Title.Text = "Histogram of Cluster Sizes"
	p.X.Label.Text = "Cluster Size"
	p.Y.Label.Text = "Frequency"

	values := make(plotter.Values, len(bins))
	labels := make([]string, len(bins))
	for i, b := range bins {
		values[i] = float64(b.Frequency)
		labels[i] = strconv.Itoa(b.Size)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(16))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
