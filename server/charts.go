package server

import (
	"log"
	"math"
	"net/http"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// accent is the one color both charts use, matching the page's plotly
// traces.
var accent = drawing.Color{R: 0x1d, G: 0xb9, B: 0x54, A: 0xff}

// emptySVG stands in for a chart with no data points. go-chart refuses to
// render an empty series, but an empty selection is not an error here.
const emptySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="1100" height="400"><rect width="1100" height="400" fill="white"/></svg>`

// axisRange widens an axis whose values are all identical -- a one-artist
// view is an ordinary selection, but go-chart refuses a zero-delta range.
// Axes with spread keep go-chart's automatic range.
func axisRange(vs []float64) chart.Range {
	min, max := vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min != max {
		return nil
	}
	return &chart.ContinuousRange{Min: min - 1, Max: max + 1}
}

// handleArtistChart renders the artist summary scatter as a standalone SVG:
// artist popularity on x, mean track popularity on y, dot area scaled by
// track count.
func (s *server) handleArtistChart(w http.ResponseWriter, r *http.Request) {
	v, err := s.buildView(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")

	if len(v.Artists) == 0 {
		w.Write([]byte(emptySVG))
		return
	}

	xs := make([]float64, len(v.Artists))
	ys := make([]float64, len(v.Artists))
	counts := make([]float64, len(v.Artists))
	maxCount := 1.0
	for i, a := range v.Artists {
		xs[i] = a.ArtistPopularity
		ys[i] = a.AvgTrackPopularity
		counts[i] = float64(a.TrackCount)
		if counts[i] > maxCount {
			maxCount = counts[i]
		}
	}

	graph := chart.Chart{
		Title:  "Artist Popularity vs Average Track Popularity",
		Width:  1100,
		Height: 400,
		XAxis:  chart.XAxis{Name: "Artist Popularity", Range: axisRange(xs)},
		YAxis:  chart.YAxis{Name: "Average Track Popularity", Range: axisRange(ys)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotColor:    accent,
					DotWidthProvider: func(xrange, yrange chart.Range, index int, x, y float64) float64 {
						return 3 + 9*math.Sqrt(counts[index]/maxCount)
					},
				},
			},
		},
	}

	if err := graph.Render(chart.SVG, w); err != nil {
		log.Printf("error rendering artist chart: %v", err)
	}
}

// handleAlbumTypeChart renders the album-type summary bars as a standalone
// SVG.
func (s *server) handleAlbumTypeChart(w http.ResponseWriter, r *http.Request) {
	v, err := s.buildView(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")

	if len(v.AlbumTypes) == 0 {
		w.Write([]byte(emptySVG))
		return
	}

	bars := make([]chart.Value, len(v.AlbumTypes))
	maxMean := 0.0
	for i, t := range v.AlbumTypes {
		bars[i] = chart.Value{
			Label: t.AlbumType,
			Value: t.AvgTrackPopularity,
			Style: chart.Style{FillColor: accent, StrokeColor: accent},
		}
		if t.AvgTrackPopularity > maxMean {
			maxMean = t.AvgTrackPopularity
		}
	}

	graph := chart.BarChart{
		Title:    "Average Track Popularity by Album Type",
		Width:    1100,
		Height:   400,
		BarWidth: 80,
		Bars:     bars,
		// bars measure from zero, and a single bar has no spread for
		// go-chart to derive a range from.
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxMean + 1},
		},
	}

	if err := graph.Render(chart.SVG, w); err != nil {
		log.Printf("error rendering album-type chart: %v", err)
	}
}
