// Package export serializes a stored calculation into the formats the
// original desktop tooling understands, plus plain JSON and a rendered
// PNG figure. Writers only format what the processor returned; they
// never recompute statistics.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"hvsrweb/internal/model"
)

var (
	// ErrRotateUnsupported is returned for geopsy exports of rotate
	// results; geopsy has no multi-azimuth output file.
	ErrRotateUnsupported = errors.New("geopsy format does not support multi-azimuth results")
	// ErrNoResult is returned when the calculation holds no result.
	ErrNoResult = errors.New("calculation has no result")
)

// Version header written when the processor did not report one.
const defaultProcessorVersion = "0.2.0"

// BaseName strips the waveform extension off an uploaded filename for
// use in download names.
func BaseName(filename string) string {
	lower := strings.ToLower(filename)
	for _, ext := range []string{".miniseed", ".mseed", ".sac"} {
		if strings.HasSuffix(lower, ext) {
			return filename[:len(filename)-len(ext)]
		}
	}
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func version(res *model.Result) string {
	if res.ProcessorVersion != "" {
		return res.ProcessorVersion
	}
	return defaultProcessorVersion
}

// checkCurve rejects results whose curve arrays do not cover the
// frequency axis, so a bad processor answer fails instead of panicking.
func checkCurve(res *model.Result) error {
	n := len(res.Frequency)
	if len(res.Curve.Amplitude) < n || len(res.Curve.Lower) < n || len(res.Curve.Upper) < n {
		return fmt.Errorf("curve arrays shorter than frequency axis (%d points)", n)
	}
	return nil
}

// WriteHvsrpy writes the hvsrpy-style text format: commented header
// lines with the f0 statistics, then one CSV row per frequency with
// the combined curve and its one-standard-deviation band.
func WriteHvsrpy(w io.Writer, calc *model.Calculation) error {
	res := calc.Result
	if res == nil {
		return ErrNoResult
	}
	if err := checkCurve(res); err != nil {
		return err
	}

	centre := "Mean"
	if calc.Settings.CurveDistribution == model.DistributionLogNormal {
		centre = "Median"
	}

	azimuth := ""
	if calc.Settings.Method == model.MethodAzimuth {
		azimuth = num(calc.Settings.Azimuth)
	}

	lines := []string{
		"# hvsrpy output version " + version(res),
		"# File Name ()," + calc.Record.Filename,
		"# Method ()," + calc.Settings.Method,
		"# Azimuth ()," + azimuth,
		"# Window Length (s)," + num(calc.Settings.WindowLength),
		"# Total Windows (count)," + strconv.Itoa(res.TotalWindows),
	}

	if res.Rejection != nil {
		lines = append(lines,
			"# Frequency Domain Window Rejection Performed (),True",
			"# Number of Standard Deviations Used for Rejection () [n],"+num(res.Rejection.StdDevs),
			fmt.Sprintf("# Number of Iterations of Rejection (count),%d of %d allowed", res.Rejection.Iterations, res.Rejection.MaxIterations),
			"# Number of Rejected Windows (count),"+strconv.Itoa(res.Rejection.RejectedCount),
		)
	} else {
		lines = append(lines, "# Frequency Domain Window Rejection Performed (),False")
	}
	lines = append(lines,
		"# Number of Accepted Windows (count),"+strconv.Itoa(res.AcceptedWindows),
		"# Distribution of f0 (),"+calc.Settings.F0Distribution,
	)

	if calc.Settings.F0Distribution == model.DistributionLogNormal {
		lines = append(lines,
			"# Median f0 (Hz) [LMf0],"+num(res.F0.Mean),
			"# Log-normal standard deviation of f0 () [SigmaLNf0],"+num(res.F0.Std),
			fmt.Sprintf("# 68 %% Confidence Interval f0 (Hz),%s,to,%s", num(res.F0.Lower), num(res.F0.Upper)),
			"# Median T0 (s) [LMT0],"+num(1/res.F0.Mean),
			"# Log-normal standard deviation of T0 () [SigmaLNT0],"+num(res.F0.Std),
			fmt.Sprintf("# 68 %% Confidence Interval T0 (s),%s,to,%s", num(1/res.F0.Upper), num(1/res.F0.Lower)),
		)
	} else {
		// Periods have no defined statistics under a normal
		// distribution of f0.
		lines = append(lines,
			"# Mean f0 (Hz),"+num(res.F0.Mean),
			"# Standard deviation of f0 (Hz) [Sigmaf0],"+num(res.F0.Std),
			fmt.Sprintf("# 68 %% Confidence Interval f0 (Hz),%s,to,%s", num(res.F0.Lower), num(res.F0.Upper)),
			"# Mean T0 (s),NaN",
			"# Standard deviation of T0 (s) [SigmaT0],NaN",
			"# 68 % Confidence Interval T0 (s),NaN",
		)
	}

	lines = append(lines,
		fmt.Sprintf("# %s Curve Distribution (),%s", centre, calc.Settings.CurveDistribution),
		fmt.Sprintf("# %s Curve Peak Frequency (Hz) [f0mc],%s", centre, num(res.Curve.PeakFrequency)),
		fmt.Sprintf("# %s Curve Peak Amplitude (),%s", centre, num(res.Curve.PeakAmplitude)),
		fmt.Sprintf("# Frequency (Hz),%s Curve (),1 STD Below %s Curve (),1 STD Above %s Curve ()", centre, centre, centre),
	)

	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	for i, f := range res.Frequency {
		row := fmt.Sprintf("%s,%s,%s,%s\n",
			num(f), num(res.Curve.Amplitude[i]), num(res.Curve.Lower[i]), num(res.Curve.Upper[i]))
		if _, err := io.WriteString(w, row); err != nil {
			return err
		}
	}
	return nil
}

// WriteGeopsy writes the geopsy-style tab-separated text format.
func WriteGeopsy(w io.Writer, calc *model.Calculation) error {
	res := calc.Result
	if res == nil {
		return ErrNoResult
	}
	if calc.Settings.Method == model.MethodRotate {
		return ErrRotateUnsupported
	}
	if err := checkCurve(res); err != nil {
		return err
	}

	lines := []string{
		"# hvsrpy output version " + version(res),
		"# Number of windows = " + strconv.Itoa(res.AcceptedWindows),
		"# f0 from average\t" + num(res.Curve.PeakFrequency),
		"# Number of windows for f0 = " + strconv.Itoa(res.AcceptedWindows),
		fmt.Sprintf("# f0 from windows\t%s\t%s\t%s", num(res.F0.Mean), num(res.F0.Lower), num(res.F0.Upper)),
		"# Peak amplitude\t" + num(res.Curve.PeakAmplitude),
		"# Position\t0 0 0",
		"# Category\tDefault",
		"# Frequency\tAverage\tMin\tMax",
	}

	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	for i, f := range res.Frequency {
		row := fmt.Sprintf("%s\t%s\t%s\t%s\n",
			num(f), num(res.Curve.Amplitude[i]), num(res.Curve.Lower[i]), num(res.Curve.Upper[i]))
		if _, err := io.WriteString(w, row); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the whole calculation, result included, as indented
// JSON. This is the format the browser consumed when it rendered the
// result, so the export always matches the last displayed state.
func WriteJSON(w io.Writer, calc *model.Calculation) error {
	if calc.Result == nil {
		return ErrNoResult
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(calc)
}
