package export

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"hvsrweb/internal/model"
)

// Panel colors follow the original application's palette.
var (
	colorAccepted = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	colorRejected = color.RGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
	colorCentre   = color.RGBA{A: 0xff}
	colorF0Band   = color.RGBA{R: 0xff, G: 0x80, B: 0x80, A: 0xff}
	colorMCPeak   = color.RGBA{R: 0x66, G: 0xff, B: 0x33, A: 0xff}
)

var (
	windowLineWidth = vg.Points(0.4)
	centreLineWidth = vg.Points(1.3)
)

// Figure renders the calculation to a PNG: time-record panels and the
// combined curve before/after rejection, or an azimuth heat map for
// rotate results.
func Figure(calc *model.Calculation) ([]byte, error) {
	res := calc.Result
	if res == nil {
		return nil, ErrNoResult
	}
	if len(res.Frequency) == 0 {
		return nil, fmt.Errorf("result has an empty frequency axis")
	}
	if err := checkCurve(res); err != nil {
		return nil, err
	}

	if calc.Settings.Method == model.MethodRotate && res.Azimuthal != nil {
		return renderAzimuthal(calc)
	}
	return renderStandard(calc)
}

func renderStandard(calc *model.Calculation) ([]byte, error) {
	res := calc.Result

	plots := make([][]*plot.Plot, 3)
	for i := range plots {
		plots[i] = make([]*plot.Plot, 2)
	}

	rejected := rejectedWindows(res)
	for i, tr := range res.TimeRecords {
		if i >= len(plots) {
			break
		}
		plots[i][0] = timePanel(tr, calc.Settings.WindowLength, rejected)
	}

	centre := centreLabel(calc.Settings.CurveDistribution)
	if res.Rejection != nil && res.BeforeRejection != nil {
		before, err := curvePanel("Before Rejection", res, res.BeforeRejection.Curve, res.BeforeRejection.F0, false, centre, nil)
		if err != nil {
			return nil, err
		}
		after, err := curvePanel("After Rejection", res, res.Curve, res.F0, true, centre, nil)
		if err != nil {
			return nil, err
		}
		plots[0][1], plots[1][1] = before, after
	} else {
		single, err := curvePanel(centre+" Curve", res, res.Curve, res.F0, false, centre, nil)
		if err != nil {
			return nil, err
		}
		plots[1][1] = single
	}

	return render(plots, vg.Points(760), vg.Points(720))
}

func renderAzimuthal(calc *model.Calculation) ([]byte, error) {
	res := calc.Result
	centre := centreLabel(calc.Settings.CurveDistribution)

	surface, err := azimuthPanel(res, centre)
	if err != nil {
		return nil, err
	}
	combined, err := curvePanel(centre+" Curve, All Azimuths", res, res.Curve, res.F0, res.Rejection != nil, centre, res.Azimuthal.Curves)
	if err != nil {
		return nil, err
	}

	plots := [][]*plot.Plot{{surface, combined}}
	return render(plots, vg.Points(900), vg.Points(420))
}

// render lays the panel grid out on one canvas and encodes it as PNG.
// Nil cells stay blank.
func render(plots [][]*plot.Plot, width, height vg.Length) ([]byte, error) {
	img := vgimg.New(width, height)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows: len(plots),
		Cols: len(plots[0]),
		PadX: vg.Points(14), PadY: vg.Points(10),
		PadTop: vg.Points(6), PadBottom: vg.Points(6),
		PadLeft: vg.Points(6), PadRight: vg.Points(6),
	}

	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		for c := range plots[r] {
			if plots[r][c] != nil {
				plots[r][c].Draw(canvases[r][c])
			}
		}
	}

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode figure: %w", err)
	}
	return buf.Bytes(), nil
}

func centreLabel(distribution string) string {
	if distribution == model.DistributionLogNormal {
		return "Median"
	}
	return "Mean"
}

func rejectedWindows(res *model.Result) map[int]bool {
	rejected := make(map[int]bool)
	for _, win := range res.Windows {
		if win.Rejected {
			rejected[win.Index] = true
		}
	}
	return rejected
}

// curvePanel draws the per-window curves, the combined curve with its
// band, the window peaks, and the f0 interval. colorByRejection turns
// rejected windows cyan; the before panel keeps them gray. overlay
// carries the per-azimuth curves of a rotate result, drawn the way
// accepted windows are.
func curvePanel(title string, res *model.Result, curve model.CurveStats, f0 model.F0Stats, colorByRejection bool, centre string, overlay [][]float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "HVSR Amplitude"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}

	ymax := amplitudeExtent(res, curve)
	p.Y.Min, p.Y.Max = 0, ymax

	// f0 interval band sits behind everything else. Skip it when the
	// lower bound is not positive; the log axis cannot place it.
	if f0.Lower > 0 && f0.Upper > f0.Lower {
		band, err := plotter.NewPolygon(plotter.XYs{
			{X: f0.Lower, Y: 0}, {X: f0.Lower, Y: ymax},
			{X: f0.Upper, Y: ymax}, {X: f0.Upper, Y: 0},
		})
		if err != nil {
			return nil, err
		}
		band.Color = colorF0Band
		band.LineStyle.Color = colorF0Band
		p.Add(band)
		p.Legend.Add(centre+" f0 ± 1 STD", band)
	}

	var haveOverlay bool
	for _, amp := range overlay {
		if len(amp) < len(res.Frequency) {
			continue
		}
		line, err := plotter.NewLine(curveXYs(res.Frequency, amp))
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = windowLineWidth
		line.LineStyle.Color = colorAccepted
		p.Add(line)
		if !haveOverlay {
			p.Legend.Add("Azimuth Curve", line)
			haveOverlay = true
		}
	}

	var haveAccepted, haveRejected bool
	for _, win := range res.Windows {
		if len(win.Amplitude) < len(res.Frequency) {
			continue
		}
		line, err := plotter.NewLine(curveXYs(res.Frequency, win.Amplitude))
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = windowLineWidth
		if colorByRejection && win.Rejected {
			line.LineStyle.Color = colorRejected
			if !haveRejected {
				p.Legend.Add("Rejected", line)
				haveRejected = true
			}
		} else {
			line.LineStyle.Color = colorAccepted
			if !haveAccepted {
				p.Legend.Add("Accepted", line)
				haveAccepted = true
			}
		}
		p.Add(line)
	}

	for _, bound := range [][]float64{curve.Lower, curve.Upper} {
		if len(bound) < len(res.Frequency) {
			continue
		}
		line, err := plotter.NewLine(curveXYs(res.Frequency, bound))
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = centreLineWidth
		line.LineStyle.Color = colorCentre
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(line)
	}

	if len(curve.Amplitude) >= len(res.Frequency) {
		centreLine, err := plotter.NewLine(curveXYs(res.Frequency, curve.Amplitude))
		if err != nil {
			return nil, err
		}
		centreLine.LineStyle.Width = centreLineWidth
		centreLine.LineStyle.Color = colorCentre
		p.Add(centreLine)
		p.Legend.Add(centre+" Curve", centreLine)
	}

	if peaks := windowPeaks(res, colorByRejection); len(peaks) > 0 {
		scatter, err := plotter.NewScatter(peaks)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Shape = draw.RingGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(1.8)
		scatter.GlyphStyle.Color = color.Black
		p.Add(scatter)
		p.Legend.Add("Window f0", scatter)
	}

	if curve.PeakFrequency > 0 {
		peak, err := plotter.NewScatter(plotter.XYs{{X: curve.PeakFrequency, Y: curve.PeakAmplitude}})
		if err != nil {
			return nil, err
		}
		peak.GlyphStyle.Shape = draw.BoxGlyph{}
		peak.GlyphStyle.Radius = vg.Points(3)
		peak.GlyphStyle.Color = colorMCPeak
		p.Add(peak)
		p.Legend.Add(centre+" curve f0", peak)
	}

	if f0.Mean > 0 {
		mean, err := plotter.NewLine(plotter.XYs{{X: f0.Mean, Y: 0}, {X: f0.Mean, Y: ymax}})
		if err != nil {
			return nil, err
		}
		mean.LineStyle.Color = colorCentre
		mean.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(2), vg.Points(1), vg.Points(2)}
		p.Add(mean)
	}

	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}

// windowPeaks collects per-window peak points; rejected windows drop
// out once rejection coloring applies.
func windowPeaks(res *model.Result, excludeRejected bool) plotter.XYs {
	var pts plotter.XYs
	for _, win := range res.Windows {
		if excludeRejected && win.Rejected {
			continue
		}
		if win.PeakFrequency > 0 {
			pts = append(pts, plotter.XY{X: win.PeakFrequency, Y: win.PeakAmplitude})
		}
	}
	return pts
}

// timePanel draws one normalized component preview, splitting the
// trace at window boundaries so rejected windows show in cyan.
func timePanel(tr model.TimeRecord, windowLength float64, rejected map[int]bool) *plot.Plot {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Time Records (%s)", tr.Component)
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Normalized Amplitude"
	p.Y.Min, p.Y.Max = -1, 1

	n := len(tr.Time)
	if n > len(tr.Amplitude) {
		n = len(tr.Amplitude)
	}
	if n == 0 || windowLength <= 0 {
		return p
	}

	segStart := 0
	segWindow := int(tr.Time[0] / windowLength)
	flush := func(end int) {
		if end <= segStart {
			return
		}
		pts := make(plotter.XYs, 0, end-segStart)
		for i := segStart; i < end; i++ {
			pts = append(pts, plotter.XY{X: tr.Time[i], Y: tr.Amplitude[i]})
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return
		}
		line.LineStyle.Width = vg.Points(0.3)
		if rejected[segWindow] {
			line.LineStyle.Color = colorRejected
		} else {
			line.LineStyle.Color = colorAccepted
		}
		p.Add(line)
	}

	for i := 1; i < n; i++ {
		if w := int(tr.Time[i] / windowLength); w != segWindow {
			flush(i)
			segStart, segWindow = i, w
		}
	}
	flush(n)

	return p
}

// azimuthGrid adapts the per-azimuth curves to the heat map interface.
// X is log10 frequency so the cells are evenly spaced on the axis the
// way the curves are sampled.
type azimuthGrid struct {
	frq []float64
	azi []float64
	amp [][]float64
}

func (g *azimuthGrid) Dims() (c, r int)   { return len(g.frq), len(g.azi) }
func (g *azimuthGrid) Z(c, r int) float64 { return g.amp[r][c] }
func (g *azimuthGrid) X(c int) float64    { return math.Log10(g.frq[c]) }
func (g *azimuthGrid) Y(r int) float64    { return g.azi[r] }

func azimuthPanel(res *model.Result, centre string) (*plot.Plot, error) {
	az := res.Azimuthal
	for _, row := range az.Curves {
		if len(row) < len(res.Frequency) {
			return nil, fmt.Errorf("azimuthal curve shorter than frequency axis")
		}
	}
	if len(az.Curves) < len(az.Azimuths) {
		return nil, fmt.Errorf("azimuthal curves do not cover all azimuths")
	}

	p := plot.New()
	p.Title.Text = centre + " Curve by Azimuth"
	p.X.Label.Text = "log10 Frequency (Hz)"
	p.Y.Label.Text = "Azimuth (deg)"

	grid := &azimuthGrid{frq: res.Frequency, azi: az.Azimuths, amp: az.Curves}
	heat := plotter.NewHeatMap(grid, palette.Heat(12, 1))
	p.Add(heat)

	if len(az.PeakFrequencies) > 0 {
		pts := make(plotter.XYs, 0, len(az.PeakFrequencies))
		for i, f := range az.PeakFrequencies {
			if i >= len(az.Azimuths) || f <= 0 {
				continue
			}
			pts = append(pts, plotter.XY{X: math.Log10(f), Y: az.Azimuths[i]})
		}
		if len(pts) > 0 {
			scatter, err := plotter.NewScatter(pts)
			if err != nil {
				return nil, err
			}
			scatter.GlyphStyle.Shape = draw.SquareGlyph{}
			scatter.GlyphStyle.Radius = vg.Points(2)
			scatter.GlyphStyle.Color = color.White
			p.Add(scatter)
		}
	}

	return p, nil
}

// amplitudeExtent picks the panel's y-extent from the band and the
// window curves, with headroom for markers.
func amplitudeExtent(res *model.Result, curve model.CurveStats) float64 {
	max := 1.0
	if len(curve.Upper) > 0 {
		if m := floats.Max(curve.Upper); m > max {
			max = m
		}
	}
	for _, win := range res.Windows {
		if len(win.Amplitude) == 0 {
			continue
		}
		if m := floats.Max(win.Amplitude); m > max {
			max = m
		}
	}
	return max * 1.08
}

func curveXYs(frq, amp []float64) plotter.XYs {
	pts := make(plotter.XYs, len(frq))
	for i := range frq {
		pts[i] = plotter.XY{X: frq[i], Y: amp[i]}
	}
	return pts
}
